package engine

import (
	"math/rand"
	"strings"
	"testing"

	gm "jungle-engine/junglemg"
)

// mirrorFEN reflects the board through its center, swaps the colors and
// the side to move. The evaluation must be identical for both positions.
func mirrorFEN(t *testing.T, p *gm.Position) string {
	t.Helper()
	var pieces [gm.NumSquares]byte
	for sq := gm.Square(0); sq < gm.NumSquares; sq++ {
		rk, c := p.At(sq)
		if rk == gm.NoRank {
			continue
		}
		pieces[gm.NumSquares-1-sq] = gm.PieceChar(rk, c.Other())
	}

	var sb strings.Builder
	for r := gm.BoardRows - 1; r >= 0; r-- {
		empty := 0
		for c := 0; c < gm.BoardCols; c++ {
			ch := pieces[gm.MakeSquare(r, c)]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	if p.SideToMove() == gm.Light {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	return sb.String()
}

func TestEvaluateSymmetry(t *testing.T) {
	rnd := rand.New(rand.NewSource(1234))
	p := gm.NewPosition()

	for ply := 0; ply < 150; ply++ {
		mirror, err := gm.ParseFEN(mirrorFEN(t, p))
		if err != nil {
			t.Fatalf("mirroring %q: %v", p.FEN(), err)
		}
		if got, want := Evaluate(mirror), Evaluate(p); got != want {
			t.Fatalf("eval asymmetry at %q: %d vs mirrored %d", p.FEN(), want, got)
		}

		if p.Status() != gm.Ongoing {
			break
		}
		moves := p.GenerateMoves(make([]gm.Move, 0, gm.MaxMoves))
		if len(moves) == 0 {
			break
		}
		p.MakeMove(moves[rnd.Intn(len(moves))])
	}
}

func TestEvaluateStartPosition(t *testing.T) {
	// Everything cancels at the start except the rat-elephant terms,
	// which deliberately favor the attacker: +40 threat, -30 threatened.
	p := gm.NewPosition()
	if got := Evaluate(p); got != 10 {
		t.Fatalf("start position eval = %d, want 10", got)
	}
}

func TestEvaluateMaterialSwing(t *testing.T) {
	// Full board versus the same board without the dark elephant.
	full := gm.NewPosition()
	down, err := gm.ParseFEN("l5t/1d3c1/r1p1w2/7/7/7/E1W1P1R/1C3D1/T5L w")
	if err != nil {
		t.Fatal(err)
	}
	if Evaluate(down) <= Evaluate(full) {
		t.Fatalf("winning the elephant should raise the eval (%d vs %d)",
			Evaluate(down), Evaluate(full))
	}
}

func TestEvaluateDenProximity(t *testing.T) {
	// A light wolf one step from the dark den beats the same wolf three
	// steps away.
	near, err := gm.ParseFEN("l6/3W3/7/7/7/7/7/7/7 w")
	if err != nil {
		t.Fatal(err)
	}
	far, err := gm.ParseFEN("l6/7/7/3W3/7/7/7/7/7 w")
	if err != nil {
		t.Fatal(err)
	}
	if Evaluate(near) <= Evaluate(far) {
		t.Fatalf("den proximity not rewarded (%d vs %d)", Evaluate(near), Evaluate(far))
	}
}
