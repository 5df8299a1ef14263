package junglemg

import (
	"fmt"
	"strings"
)

// Position holds the full game state. Squares store signed ranks: positive
// for Light, negative for Dark, zero for empty. pieceSq mirrors the board
// per color and rank (each side owns at most one piece of each rank);
// NoSquare marks a captured piece.
type Position struct {
	squares    [NumSquares]int8
	pieceSq    [2][NumRanks]int8
	pieceCount [2]int
	sideToMove Color
	hash       uint64
	halfmove   int

	history []uint64
	undo    []undoInfo
}

type undoInfo struct {
	captured int8
	hash     uint64
	halfmove int
	move     Move
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{}
	p.LoadStart()
	return p
}

// LoadStart resets the position to the standard starting setup.
func (p *Position) LoadStart() {
	p.clear()

	place := func(c Color, r Rank, sq Square) {
		if c == Light {
			p.squares[sq] = int8(r)
		} else {
			p.squares[sq] = -int8(r)
		}
		p.pieceSq[c][r] = int8(sq)
		p.pieceCount[c]++
	}

	place(Light, Tiger, MakeSquare(0, 0))
	place(Light, Lion, MakeSquare(0, 6))
	place(Light, Cat, MakeSquare(1, 1))
	place(Light, Dog, MakeSquare(1, 5))
	place(Light, Elephant, MakeSquare(2, 0))
	place(Light, Wolf, MakeSquare(2, 2))
	place(Light, Leopard, MakeSquare(2, 4))
	place(Light, Rat, MakeSquare(2, 6))

	place(Dark, Tiger, MakeSquare(8, 6))
	place(Dark, Lion, MakeSquare(8, 0))
	place(Dark, Cat, MakeSquare(7, 5))
	place(Dark, Dog, MakeSquare(7, 1))
	place(Dark, Elephant, MakeSquare(6, 6))
	place(Dark, Wolf, MakeSquare(6, 4))
	place(Dark, Leopard, MakeSquare(6, 2))
	place(Dark, Rat, MakeSquare(6, 0))

	p.sideToMove = Light
	p.hash = p.ComputeZobrist()
	p.history = append(p.history, p.hash)
}

func (p *Position) clear() {
	p.squares = [NumSquares]int8{}
	for c := 0; c < 2; c++ {
		for r := 0; r < NumRanks; r++ {
			p.pieceSq[c][r] = int8(NoSquare)
		}
		p.pieceCount[c] = 0
	}
	p.sideToMove = Light
	p.hash = 0
	p.halfmove = 0
	p.history = p.history[:0]
	p.undo = p.undo[:0]
}

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Hash returns the incremental Zobrist hash of the position.
func (p *Position) Hash() uint64 { return p.hash }

// Halfmove returns the number of plies since the last capture.
func (p *Position) Halfmove() int { return p.halfmove }

// Ply returns the number of moves made from the root position.
func (p *Position) Ply() int { return len(p.undo) }

// PieceCount returns how many pieces a side has left.
func (p *Position) PieceCount(c Color) int { return p.pieceCount[c] }

// PieceSquare returns the square of a side's piece of the given rank,
// or NoSquare if it was captured.
func (p *Position) PieceSquare(c Color, r Rank) Square {
	return Square(p.pieceSq[c][r])
}

// At reports the occupant of a square. NoRank means empty; the color is
// meaningless then.
func (p *Position) At(sq Square) (Rank, Color) {
	v := p.squares[sq]
	if v == 0 {
		return NoRank, Light
	}
	if v > 0 {
		return Rank(v), Light
	}
	return Rank(-v), Dark
}

// ComputeZobrist hashes the position from scratch. MakeMove maintains the
// hash incrementally; this is the reference for validation.
func (p *Position) ComputeZobrist() uint64 {
	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		v := p.squares[sq]
		if v == 0 {
			continue
		}
		if v > 0 {
			h ^= zobristPiece[sq][v][Light]
		} else {
			h ^= zobristPiece[sq][-v][Dark]
		}
	}
	if p.sideToMove == Dark {
		h ^= zobristSide
	}
	return h
}

// MakeMove applies a pseudo-legal move. The caller must only pass moves
// produced by GenerateMoves for the current position.
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	piece := p.squares[from]
	rk := piece
	c := Light
	if piece < 0 {
		rk = -piece
		c = Dark
	}

	u := undoInfo{
		captured: p.squares[to],
		hash:     p.hash,
		halfmove: p.halfmove,
		move:     m,
	}
	p.undo = append(p.undo, u)

	if u.captured != 0 {
		cRk, cCol := u.captured, Light
		if u.captured < 0 {
			cRk = -u.captured
			cCol = Dark
		}
		p.pieceSq[cCol][cRk] = int8(NoSquare)
		p.pieceCount[cCol]--
		p.hash ^= zobristPiece[to][cRk][cCol]
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	p.hash ^= zobristPiece[from][rk][c]
	p.hash ^= zobristPiece[to][rk][c]
	p.squares[to] = piece
	p.squares[from] = 0
	p.pieceSq[c][rk] = int8(to)

	p.sideToMove = p.sideToMove.Other()
	p.hash ^= zobristSide
	p.history = append(p.history, p.hash)
}

// UnmakeMove reverts the most recent MakeMove. Panics when there is
// nothing to revert.
func (p *Position) UnmakeMove() {
	if len(p.undo) == 0 {
		panic("junglemg: unmake with empty undo stack")
	}
	u := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	p.history = p.history[:len(p.history)-1]

	from, to := u.move.From(), u.move.To()
	p.sideToMove = p.sideToMove.Other()
	p.hash = u.hash
	p.halfmove = u.halfmove

	piece := p.squares[to]
	rk := piece
	c := Light
	if piece < 0 {
		rk = -piece
		c = Dark
	}
	p.squares[from] = piece
	p.squares[to] = u.captured
	p.pieceSq[c][rk] = int8(from)

	if u.captured != 0 {
		cRk, cCol := u.captured, Light
		if u.captured < 0 {
			cRk = -u.captured
			cCol = Dark
		}
		p.pieceSq[cCol][cRk] = int8(to)
		p.pieceCount[cCol]++
	}
}

// MakeNull passes the turn without moving. Used by null-move pruning.
func (p *Position) MakeNull() {
	p.undo = append(p.undo, undoInfo{
		captured: 0,
		hash:     p.hash,
		halfmove: p.halfmove,
		move:     MoveNone,
	})
	p.sideToMove = p.sideToMove.Other()
	p.hash ^= zobristSide
	p.history = append(p.history, p.hash)
}

// UnmakeNull reverts a MakeNull.
func (p *Position) UnmakeNull() {
	if len(p.undo) == 0 {
		panic("junglemg: unmake null with empty undo stack")
	}
	u := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	p.history = p.history[:len(p.history)-1]
	p.sideToMove = p.sideToMove.Other()
	p.hash = u.hash
	p.halfmove = u.halfmove
}

// IsRepetition reports whether the current position occurred at least two
// more times earlier in the game (a third occurrence overall). Only
// positions with the same side to move are compared.
func (p *Position) IsRepetition() bool {
	n := len(p.history)
	if n < 5 {
		return false
	}
	count := 0
	for i := n - 3; i >= 0; i -= 2 {
		if p.history[i] == p.hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// Status reports the game-theoretic state for the side to move, evaluated
// after the opponent's last move.
func (p *Position) Status() GameStatus {
	ourDen := DenOf(p.sideToMove)
	if v := p.squares[ourDen]; v != 0 {
		vc := Light
		if v < 0 {
			vc = Dark
		}
		if vc == p.sideToMove.Other() {
			return SideToMoveLost
		}
	}
	if p.pieceCount[p.sideToMove] == 0 {
		return SideToMoveLost
	}
	if p.pieceCount[p.sideToMove.Other()] == 0 {
		return SideToMoveWon
	}
	return Ongoing
}

// Validate cross-checks the redundant state against itself. Test helper.
func (p *Position) Validate() error {
	count := [2]int{}
	for sq := 0; sq < NumSquares; sq++ {
		v := p.squares[sq]
		if v == 0 {
			continue
		}
		rk, c := v, Light
		if v < 0 {
			rk = -v
			c = Dark
		}
		if rk < int8(Rat) || rk > int8(Elephant) {
			return fmt.Errorf("square %v holds invalid rank %d", Square(sq), rk)
		}
		if p.pieceSq[c][rk] != int8(sq) {
			return fmt.Errorf("piece list disagrees with board at %v", Square(sq))
		}
		count[c]++
	}
	for c := 0; c < 2; c++ {
		if count[c] != p.pieceCount[c] {
			return fmt.Errorf("%v piece count %d, board has %d", Color(c), p.pieceCount[c], count[c])
		}
	}
	if h := p.ComputeZobrist(); h != p.hash {
		return fmt.Errorf("incremental hash %016x, recomputed %016x", p.hash, h)
	}
	return nil
}

// String renders the board with terrain glyphs, side to move and FEN.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for r := BoardRows - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "  %d ", r+1)
		for c := 0; c < BoardCols; c++ {
			sq := MakeSquare(r, c)
			var ch byte
			if v := p.squares[sq]; v != 0 {
				if v > 0 {
					ch = PieceChar(Rank(v), Light)
				} else {
					ch = PieceChar(Rank(-v), Dark)
				}
			} else {
				switch terrainTab[sq] {
				case Water:
					ch = '~'
				case TrapLight:
					ch = '^'
				case TrapDark:
					ch = 'v'
				case DenLight:
					ch = '*'
				case DenDark:
					ch = '#'
				default:
					ch = '.'
				}
			}
			sb.WriteByte(' ')
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("    ")
	for c := 0; c < BoardCols; c++ {
		sb.WriteByte(' ')
		sb.WriteByte('a' + byte(c))
	}
	fmt.Fprintf(&sb, "\n\n  %v to move\n  FEN: %s\n", p.sideToMove, p.FEN())
	return sb.String()
}
