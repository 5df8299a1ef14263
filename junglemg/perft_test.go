package junglemg

import "testing"

func TestPerftStartPosition(t *testing.T) {
	expected := map[int]uint64{
		1: 24,
		2: 576,
	}
	for depth, want := range expected {
		p := NewPosition()
		if got := Perft(p, depth); got != want {
			t.Errorf("perft(%d) = %d, want %d", depth, got, want)
		}
		if p.FEN() != FENStartPos {
			t.Errorf("perft(%d) mutated the position", depth)
		}
	}
}

func TestPerftStopsAtFinishedGames(t *testing.T) {
	// Light to move but the light den is already occupied by dark.
	p, err := ParseFEN("7/7/7/7/7/7/7/7/1R1l3 w")
	if err != nil {
		t.Fatal(err)
	}
	if got := Perft(p, 3); got != 0 {
		t.Fatalf("perft from a lost position = %d, want 0", got)
	}
}

func TestPerftDepthZero(t *testing.T) {
	p := NewPosition()
	if got := Perft(p, 0); got != 1 {
		t.Fatalf("perft(0) = %d, want 1", got)
	}
}
