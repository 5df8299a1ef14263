package junglemg

import "testing"

func TestTerrainLayout(t *testing.T) {
	waterSquares := []Square{22, 23, 29, 30, 36, 37, 25, 26, 32, 33, 39, 40}
	waterSet := make(map[Square]bool)
	for _, sq := range waterSquares {
		waterSet[sq] = true
		if !IsWater(sq) {
			t.Errorf("square %v should be water", sq)
		}
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		if IsWater(sq) && !waterSet[sq] {
			t.Errorf("square %v should not be water", sq)
		}
	}

	if TerrainAt(DenLightSq) != DenLight || TerrainAt(DenDarkSq) != DenDark {
		t.Fatal("den squares misplaced")
	}
	for _, sq := range []Square{2, 4, 10} {
		if TerrainAt(sq) != TrapLight {
			t.Errorf("square %v should be a Light trap", sq)
		}
	}
	for _, sq := range []Square{58, 60, 52} {
		if TerrainAt(sq) != TrapDark {
			t.Errorf("square %v should be a Dark trap", sq)
		}
	}
}

func TestJumpArcCount(t *testing.T) {
	total := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, arc := range JumpsFrom[sq] {
			total++
			if IsWater(sq) || IsWater(arc.To) {
				t.Errorf("jump %v -> %v touches water endpoints", sq, arc.To)
			}
			for _, over := range arc.Over {
				if !IsWater(over) {
					t.Errorf("jump %v -> %v crosses land square %v", sq, arc.To, over)
				}
			}
		}
	}
	if total != 20 {
		t.Fatalf("expected 20 jump arcs, got %d", total)
	}
}

func TestJumpArcsFromCorners(t *testing.T) {
	// a4 jumps only east to d4.
	arcs := JumpsFrom[MakeSquare(3, 0)]
	if len(arcs) != 1 || arcs[0].To != MakeSquare(3, 3) {
		t.Fatalf("a4 arcs = %v", arcs)
	}
	// d5 jumps both ways.
	arcs = JumpsFrom[MakeSquare(4, 3)]
	if len(arcs) != 2 {
		t.Fatalf("d5 should have 2 arcs, got %d", len(arcs))
	}
	// b3 jumps north to b7 over three water squares.
	arcs = JumpsFrom[MakeSquare(2, 1)]
	if len(arcs) != 1 || arcs[0].To != MakeSquare(6, 1) || len(arcs[0].Over) != 3 {
		t.Fatalf("b3 arcs = %v", arcs)
	}
}

func TestDistanceTables(t *testing.T) {
	if DistLand[Light][DenLightSq] != 0 || DistLand[Dark][DenDarkSq] != 0 {
		t.Fatal("den distance to itself should be 0")
	}

	// Land model never enters water.
	for sq := Square(0); sq < NumSquares; sq++ {
		if IsWater(sq) && DistLand[Dark][sq] != 99 {
			t.Errorf("land distance into water square %v = %d", sq, DistLand[Dark][sq])
		}
	}

	// The swimmer cuts through the river and is never slower than the
	// land walker; the jumper never slower than either on land.
	for sq := Square(0); sq < NumSquares; sq++ {
		if DistSwimmer[Dark][sq] > DistLand[Dark][sq] {
			t.Errorf("swimmer slower than land at %v", sq)
		}
		if DistJumper[Dark][sq] > DistLand[Dark][sq] {
			t.Errorf("jumper slower than land at %v", sq)
		}
	}

	// Spot checks against hand counts: c1 (adjacent to Light den),
	// and a jump shortcut from b3.
	if d := DistLand[Light][MakeSquare(0, 2)]; d != 1 {
		t.Errorf("dist c1 -> d1 = %d, want 1", d)
	}
	if d := DistJumper[Dark][MakeSquare(2, 1)]; d >= DistLand[Dark][MakeSquare(2, 1)] {
		t.Errorf("jumper from b3 should beat land walker (%d vs %d)",
			d, DistLand[Dark][MakeSquare(2, 1)])
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if got := ParseSquare(sq.String()); got != sq {
			t.Fatalf("ParseSquare(%q) = %v, want %v", sq.String(), got, sq)
		}
	}
	if ParseSquare("h1") != NoSquare || ParseSquare("a0") != NoSquare || ParseSquare("x") != NoSquare {
		t.Fatal("malformed squares should parse to NoSquare")
	}
}

func TestMoveRoundTrip(t *testing.T) {
	m := NewMove(MakeSquare(2, 6), MakeSquare(3, 6))
	if m.String() != "g3g4" {
		t.Fatalf("move string = %q", m.String())
	}
	if ParseMove("g3g4") != m {
		t.Fatal("ParseMove round trip failed")
	}
	if ParseMove("zz") != MoveNone || ParseMove("") != MoveNone {
		t.Fatal("malformed moves should parse to MoveNone")
	}
	if MoveNone.String() != "0000" {
		t.Fatalf("MoveNone string = %q", MoveNone.String())
	}
}
