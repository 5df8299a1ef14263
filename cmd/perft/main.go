package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	gm "jungle-engine/junglemg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		gm.PerftDivide(pos, *depth)
		return
	}

	start := time.Now()
	nodes := gm.Perft(pos, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("perft(%d) = %d (%d ms, %.0f nps)\n", *depth, nodes, elapsed.Milliseconds(), nps)
}
