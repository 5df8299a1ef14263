package junglemg

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the standard starting position.
// Ranks 9 down to 1, '/'-separated, digits for empty runs, then the side
// to move ('w' = Light, 'b' = Dark).
const FENStartPos = "l5t/1d3c1/r1p1w1e/7/7/7/E1W1P1R/1C3D1/T5L w"

// ParseFEN builds a position from FEN text. The input is validated in
// full before anything is returned; on error the returned position is nil.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, errors.New("fen: expected placement and side-to-move fields")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardRows {
		return nil, fmt.Errorf("fen: expected %d ranks, got %d", BoardRows, len(ranks))
	}

	p := &Position{}
	p.clear()

	seen := [2][NumRanks]bool{}
	for i, rankStr := range ranks {
		row := BoardRows - 1 - i
		col := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '7' {
				col += int(ch - '0')
				continue
			}
			rk := CharRank(ch)
			if rk == NoRank {
				return nil, fmt.Errorf("fen: invalid piece character %q", ch)
			}
			if col >= BoardCols {
				return nil, fmt.Errorf("fen: rank %d overflows the board", row+1)
			}
			c := Dark
			if ch >= 'A' && ch <= 'Z' {
				c = Light
			}
			if seen[c][rk] {
				return nil, fmt.Errorf("fen: duplicate %v %c", c, RankChar(rk))
			}
			seen[c][rk] = true

			sq := MakeSquare(row, col)
			if c == Light {
				p.squares[sq] = int8(rk)
			} else {
				p.squares[sq] = -int8(rk)
			}
			p.pieceSq[c][rk] = int8(sq)
			p.pieceCount[c]++
			col++
		}
		if col != BoardCols {
			return nil, fmt.Errorf("fen: rank %d covers %d files, want %d", row+1, col, BoardCols)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = Light
	case "b":
		p.sideToMove = Dark
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	p.hash = p.ComputeZobrist()
	p.history = append(p.history, p.hash)
	return p, nil
}

// FEN serializes the position.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := BoardRows - 1; r >= 0; r-- {
		empty := 0
		for c := 0; c < BoardCols; c++ {
			v := p.squares[MakeSquare(r, c)]
			if v == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			if v > 0 {
				sb.WriteByte(PieceChar(Rank(v), Light))
			} else {
				sb.WriteByte(PieceChar(Rank(-v), Dark))
			}
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if p.sideToMove == Light {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}
