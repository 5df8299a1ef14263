package engine

import (
	"fmt"
	"math"

	gm "jungle-engine/junglemg"
)

const (
	ScoreInf  int32 = 30000
	MateScore int32 = 29000

	MaxPly = 128

	// Scores above this are mate-in-N; the distance is MateScore - score.
	Checkmate = MateScore - int32(MaxPly)
)

// lmrTable holds the precomputed reduction per (depth, move number).
var lmrTable [MaxPly + 1][100]int

func initLMRTable() {
	for depth := 1; depth <= MaxPly; depth++ {
		for moves := 1; moves < 100; moves++ {
			lmrTable[depth][moves] = int(0.75 + math.Log(float64(depth))*math.Log(float64(moves))/2.5)
		}
	}
}

type historyTable [2][gm.NumSquares][gm.NumSquares]int32

// update applies the depth-squared bonus for a quiet cutoff move and ages
// the whole table once any entry grows past the cap.
func (h *historyTable) update(c gm.Color, m gm.Move, depth int) {
	entry := &h[c][m.From()][m.To()]
	*entry += int32(depth) * int32(depth)
	if *entry > 100000 {
		h.age()
	}
}

func (h *historyTable) age() {
	for c := 0; c < 2; c++ {
		for from := 0; from < gm.NumSquares; from++ {
			for to := 0; to < gm.NumSquares; to++ {
				h[c][from][to] /= 2
			}
		}
	}
}

func (h *historyTable) clear() {
	*h = historyTable{}
}

// scoreString renders a score for info lines: "mate N" in moves (negative
// when we are being mated), plain centipawns otherwise.
func scoreString(score int32) string {
	if score > Checkmate {
		return fmt.Sprintf("mate %d", (MateScore-score+1)/2)
	}
	if score < -Checkmate {
		return fmt.Sprintf("mate %d", -(MateScore+score+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

// inDanger reports whether any enemy piece stands within two king steps of
// the side to move's den. Pruning is switched off in these positions.
func inDanger(p *gm.Position) bool {
	den := gm.DenOf(p.SideToMove())
	opp := p.SideToMove().Other()
	for rk := gm.Rat; rk <= gm.Elephant; rk++ {
		sq := p.PieceSquare(opp, rk)
		if sq == gm.NoSquare {
			continue
		}
		if manhattan(sq, den) <= 2 {
			return true
		}
	}
	return false
}
