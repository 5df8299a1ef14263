package junglemg

import "fmt"

// Perft counts the leaf nodes of the move tree to the given depth.
// Finished games contribute zero nodes regardless of remaining depth.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if p.Status() != Ongoing {
		return 0
	}
	moves := p.GenerateMoves(make([]Move, 0, MaxMoves))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += Perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// PerftDivide prints the node count under each root move and returns the
// total. Debugging aid for movegen discrepancies.
func PerftDivide(p *Position, depth int) uint64 {
	moves := p.GenerateMoves(make([]Move, 0, MaxMoves))
	var total uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes := Perft(p, depth-1)
		p.UnmakeMove()
		fmt.Printf("%v: %d\n", m, nodes)
		total += nodes
	}
	fmt.Printf("total: %d\n", total)
	return total
}
