package engine

import (
	"testing"

	gm "jungle-engine/junglemg"
)

func TestTTStoreProbeExact(t *testing.T) {
	tt := NewTransTable(1)
	move := gm.ParseMove("g3g4")

	tt.Store(0xABCDEF, 6, 0, move, 123, ExactFlag)
	score, hashMove, usable := tt.Probe(0xABCDEF, 6, 0, -ScoreInf, ScoreInf)
	if !usable || score != 123 || hashMove != move {
		t.Fatalf("probe = (%d, %v, %v)", score, hashMove, usable)
	}

	// Deeper requirement than stored: score unusable, move still served.
	_, hashMove, usable = tt.Probe(0xABCDEF, 7, 0, -ScoreInf, ScoreInf)
	if usable || hashMove != move {
		t.Fatal("shallow entry should yield only the hash move")
	}

	// Different key, same slot or not: a miss either way.
	if _, _, usable := tt.Probe(0x123456, 1, 0, -ScoreInf, ScoreInf); usable {
		t.Fatal("mismatched key should miss")
	}
}

func TestTTBoundFlags(t *testing.T) {
	tt := NewTransTable(1)

	tt.Store(1, 4, 0, gm.MoveNone, 50, BetaFlag) // lower bound 50
	if _, _, usable := tt.Probe(1, 4, 0, -100, 40); !usable {
		t.Fatal("lower bound 50 should cut off at beta 40")
	}
	if _, _, usable := tt.Probe(1, 4, 0, -100, 100); usable {
		t.Fatal("lower bound 50 is not usable below beta 100")
	}

	tt.Store(2, 4, 0, gm.MoveNone, -50, AlphaFlag) // upper bound -50
	if _, _, usable := tt.Probe(2, 4, 0, -40, 100); !usable {
		t.Fatal("upper bound -50 should fail low at alpha -40")
	}
	if _, _, usable := tt.Probe(2, 4, 0, -100, 100); usable {
		t.Fatal("upper bound -50 is not usable above alpha -100")
	}
}

// Mate scores are stored relative to the node, so a mate found at one ply
// reads correctly at another.
func TestTTMateScoreNormalization(t *testing.T) {
	tt := NewTransTable(1)
	mateAt7 := MateScore - 7 // stored from a node at ply 5: mate 2 plies below it

	tt.Store(99, 10, 5, gm.MoveNone, mateAt7, ExactFlag)
	score, _, usable := tt.Probe(99, 10, 1, -ScoreInf, ScoreInf)
	if !usable {
		t.Fatal("expected a usable hit")
	}
	if want := MateScore - 3; score != want {
		t.Fatalf("normalized mate score = %d, want %d", score, want)
	}
}

func TestTTDepthPreferredReplacement(t *testing.T) {
	tt := NewTransTable(1)
	h1 := uint64(5)
	h2 := h1 + tt.mask + 1 // same slot, different key

	tt.Store(h1, 8, 0, gm.MoveNone, 10, ExactFlag)
	tt.Store(h2, 3, 0, gm.MoveNone, 20, ExactFlag)
	if _, _, usable := tt.Probe(h1, 8, 0, -ScoreInf, ScoreInf); !usable {
		t.Fatal("shallower newcomer must not evict a deeper entry")
	}

	tt.Store(h2, 9, 0, gm.MoveNone, 20, ExactFlag)
	score, _, usable := tt.Probe(h2, 9, 0, -ScoreInf, ScoreInf)
	if !usable || score != 20 {
		t.Fatal("deeper newcomer should replace the slot")
	}

	// Same key always updates, even at lower depth.
	tt.Store(h2, 2, 0, gm.MoveNone, 30, ExactFlag)
	score, _, usable = tt.Probe(h2, 2, 0, -ScoreInf, ScoreInf)
	if !usable || score != 30 {
		t.Fatal("same-key store should always update")
	}
}
