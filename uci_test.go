package main

import (
	"strings"
	"testing"

	gm "jungle-engine/junglemg"
)

func TestParsePositionStartpos(t *testing.T) {
	p := parsePosition(strings.Fields("startpos"))
	if p == nil || p.FEN() != gm.FENStartPos {
		t.Fatal("startpos not loaded")
	}
}

func TestParsePositionWithMoves(t *testing.T) {
	p := parsePosition(strings.Fields("startpos moves g3g4 a7a6"))
	if p == nil {
		t.Fatal("position rejected")
	}
	if p.SideToMove() != gm.Light {
		t.Fatal("two moves should return the turn to Light")
	}
	if rk, c := p.At(gm.ParseSquare("g4")); rk != gm.Rat || c != gm.Light {
		t.Fatal("light rat should stand on g4")
	}
	if rk, c := p.At(gm.ParseSquare("a6")); rk != gm.Rat || c != gm.Dark {
		t.Fatal("dark rat should stand on a6")
	}
}

func TestParsePositionStopsAtIllegalMove(t *testing.T) {
	// d1d2 moves from the empty den square; application must stop there
	// but keep the legal prefix.
	p := parsePosition(strings.Fields("startpos moves g3g4 d1d2 a7a6"))
	if p == nil {
		t.Fatal("position rejected")
	}
	if p.SideToMove() != gm.Dark {
		t.Fatal("only the first move should have been applied")
	}
	if rk, _ := p.At(gm.ParseSquare("a6")); rk != gm.NoRank {
		t.Fatal("moves after the illegal one must be ignored")
	}
}

func TestParsePositionFEN(t *testing.T) {
	fen := "7/7/eR5/7/7/7/7/7/7 w"
	p := parsePosition(strings.Fields("fen " + fen + " moves b7a7"))
	if p == nil {
		t.Fatal("position rejected")
	}
	if p.PieceCount(gm.Dark) != 0 {
		t.Fatal("capture from the move list not applied")
	}

	if parsePosition(strings.Fields("fen not a fen")) != nil {
		t.Fatal("malformed FEN should be rejected")
	}
}

func TestParseGo(t *testing.T) {
	depth, movetime, infinite := parseGo(strings.Fields("depth 6"), gm.Light)
	if depth != 6 || infinite {
		t.Fatalf("go depth parsed as (%d, %d, %v)", depth, movetime, infinite)
	}

	_, movetime, _ = parseGo(strings.Fields("movetime 2500"), gm.Light)
	if movetime != 2500 {
		t.Fatalf("movetime = %d", movetime)
	}

	_, _, infinite = parseGo(strings.Fields("infinite"), gm.Light)
	if !infinite {
		t.Fatal("infinite flag not set")
	}

	// Clock allocation: a thirtieth of our clock, floor of 100ms.
	_, movetime, _ = parseGo(strings.Fields("wtime 60000 btime 30000"), gm.Light)
	if movetime != 2000 {
		t.Fatalf("light allocation = %d, want 2000", movetime)
	}
	_, movetime, _ = parseGo(strings.Fields("wtime 60000 btime 30000"), gm.Dark)
	if movetime != 1000 {
		t.Fatalf("dark allocation = %d, want 1000", movetime)
	}
	_, movetime, _ = parseGo(strings.Fields("wtime 900 btime 900"), gm.Light)
	if movetime != 100 {
		t.Fatalf("minimum allocation = %d, want 100", movetime)
	}
}

func TestParseOption(t *testing.T) {
	name, value, ok := parseOption(strings.Fields("name Hash value 128"))
	if !ok || name != "Hash" || value != "128" {
		t.Fatalf("parsed (%q, %q, %v)", name, value, ok)
	}
	if _, _, ok := parseOption(strings.Fields("name Hash")); ok {
		t.Fatal("missing value should not parse")
	}
}
