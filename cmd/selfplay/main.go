package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"jungle-engine/engine"
	gm "jungle-engine/junglemg"
)

type result int

const (
	lightWin result = iota
	darkWin
	draw
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	movetime := flag.Int("movetime", 200, "milliseconds per move")
	hashMB := flag.Int("hash", 64, "transposition table size per side in MB")
	maxMoves := flag.Int("maxmoves", 400, "adjudicate a draw after this many plies")
	verbose := flag.Bool("v", false, "print every move")
	flag.Parse()

	var wins [3]int
	totalPlies := 0

	for g := 0; g < *games; g++ {
		res, plies := playGame(*movetime, *hashMB, *maxMoves, *verbose)
		wins[res]++
		totalPlies += plies
		fmt.Printf("game %d: %s in %d plies\n", g+1, resultString(res), plies)
	}

	fmt.Printf("\nLight %d, Dark %d, draws %d (avg length %.1f plies)\n",
		wins[lightWin], wins[darkWin], wins[draw], float64(totalPlies)/float64(*games))
}

func playGame(movetimeMs, hashMB, maxMoves int, verbose bool) (result, int) {
	pos := gm.NewPosition()
	searchers := [2]*engine.Search{engine.NewSearch(hashMB), engine.NewSearch(hashMB)}
	for _, s := range searchers {
		s.SetOutput(io.Discard)
	}

	plies := 0
	for {
		switch pos.Status() {
		case gm.SideToMoveLost:
			if pos.SideToMove() == gm.Light {
				return darkWin, plies
			}
			return lightWin, plies
		case gm.SideToMoveWon:
			if pos.SideToMove() == gm.Light {
				return lightWin, plies
			}
			return darkWin, plies
		}
		if pos.IsRepetition() || pos.Halfmove() >= 200 || plies >= maxMoves {
			return draw, plies
		}

		s := searchers[pos.SideToMove()]
		start := time.Now()
		m := s.Think(pos, 0, movetimeMs, false)
		if m == gm.MoveNone {
			// No legal moves loses.
			if pos.SideToMove() == gm.Light {
				return darkWin, plies
			}
			return lightWin, plies
		}
		if verbose {
			fmt.Printf("%3d. %v plays %v (%d nodes, %v)\n",
				plies+1, pos.SideToMove(), m, s.Nodes(), time.Since(start).Round(time.Millisecond))
		}
		pos.MakeMove(m)
		plies++
	}
}

func resultString(r result) string {
	switch r {
	case lightWin:
		return "Light wins"
	case darkWin:
		return "Dark wins"
	default:
		return "draw"
	}
}
