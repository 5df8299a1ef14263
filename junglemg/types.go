package junglemg

// Board geometry. Square index = row*7 + col, row 0 is Light's back rank
// (rank "1"), col 0 is file 'a'.
const (
	BoardCols  = 7
	BoardRows  = 9
	NumSquares = BoardCols * BoardRows

	MaxMoves   = 80
	MaxGameLen = 2048
)

// Color identifies a side. Light moves first.
type Color uint8

const (
	Light Color = 0
	Dark  Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Light {
		return "Light"
	}
	return "Dark"
}

// Rank is the animal rank of a piece, 1 (Rat) through 8 (Elephant).
// Rank is the sole attribute of a piece beyond its color.
type Rank uint8

const (
	NoRank   Rank = 0
	Rat      Rank = 1
	Cat      Rank = 2
	Dog      Rank = 3
	Wolf     Rank = 4
	Leopard  Rank = 5
	Tiger    Rank = 6
	Lion     Rank = 7
	Elephant Rank = 8

	NumRanks = 9 // index 0 unused
)

// Square represents a board position (0-62), or NoSquare for a captured piece.
type Square int

const NoSquare Square = -1

// Row returns the rank index (0-8) of a square.
func (sq Square) Row() int { return int(sq) / BoardCols }

// Col returns the file index (0-6) of a square.
func (sq Square) Col() int { return int(sq) % BoardCols }

// MakeSquare builds a square from row and column indices.
func MakeSquare(row, col int) Square { return Square(row*BoardCols + col) }

// String produces the coordinate form of the square, e.g. "a1", "d9".
func (sq Square) String() string {
	if sq < 0 || sq >= NumSquares {
		return "--"
	}
	return string([]byte{'a' + byte(sq.Col()), '1' + byte(sq.Row())})
}

// ParseSquare converts coordinate text ("a1".."g9") to a square.
// Returns NoSquare on malformed input.
func ParseSquare(s string) Square {
	if len(s) < 2 {
		return NoSquare
	}
	c := int(s[0] - 'a')
	r := int(s[1] - '1')
	if c < 0 || c >= BoardCols || r < 0 || r >= BoardRows {
		return NoSquare
	}
	return MakeSquare(r, c)
}

// Cardinal step offsets on the 7-wide board.
const (
	DirN = BoardCols
	DirS = -BoardCols
	DirE = 1
	DirW = -1
)

var dirs = [4]int{DirN, DirS, DirE, DirW}

// canStep reports whether a one-square step in the given direction stays
// on the board (guards against wrapping across the a/g files).
func canStep(from Square, dir int) bool {
	to := int(from) + dir
	if to < 0 || to >= NumSquares {
		return false
	}
	if dir == DirE && from.Col() == BoardCols-1 {
		return false
	}
	if dir == DirW && from.Col() == 0 {
		return false
	}
	return true
}

// Move encodes a move in 16 bits: from in bits 0-5, to in bits 6-11.
type Move uint16

const MoveNone Move = 0xFFFF

// NewMove constructs a Move value from source and destination squares.
func NewMove(from, to Square) Move { return Move(uint16(from) | uint16(to)<<6) }

// From returns the source square of the move.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// String produces the 4-character coordinate form, e.g. "a3a4".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove converts 4-character coordinate text to a Move.
// Returns MoveNone on malformed input. No legality check is performed.
func ParseMove(s string) Move {
	if len(s) < 4 {
		return MoveNone
	}
	from := ParseSquare(s[0:2])
	to := ParseSquare(s[2:4])
	if from == NoSquare || to == NoSquare {
		return MoveNone
	}
	return NewMove(from, to)
}

// RankChar returns the upper-case FEN letter for a rank.
// R=Rat C=Cat D=Dog W=Wolf P=Leopard T=Tiger L=Lion E=Elephant.
func RankChar(r Rank) byte {
	const tbl = " RCDWPTLE"
	if r >= Rat && r <= Elephant {
		return tbl[r]
	}
	return '?'
}

// CharRank is the inverse of RankChar; case-insensitive, NoRank on failure.
func CharRank(ch byte) Rank {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	const tbl = "RCDWPTLE"
	for i := 0; i < len(tbl); i++ {
		if tbl[i] == ch {
			return Rank(i + 1)
		}
	}
	return NoRank
}

// PieceChar returns the FEN letter of a piece: upper case for Light,
// lower case for Dark.
func PieceChar(r Rank, c Color) byte {
	ch := RankChar(r)
	if c == Dark {
		ch += 'a' - 'A'
	}
	return ch
}

// GameStatus describes the game-theoretic state of a position from the
// side to move's point of view.
type GameStatus int8

const (
	SideToMoveLost GameStatus = -1
	Ongoing        GameStatus = 0
	SideToMoveWon  GameStatus = 1
)
