package engine

import (
	gm "jungle-engine/junglemg"
)

// MaterialVal indexes by rank. The Elephant sits below the Lion: it is the
// strongest piece on paper but the enemy Rat always threatens it.
var MaterialVal = [gm.NumRanks]int32{0, 400, 250, 300, 450, 650, 950, 1050, 1000}

// PST holds per-rank square bonuses from Light's perspective; Dark squares
// are looked up through the 180-degree reflection.
var PST [gm.NumRanks][gm.NumSquares]int32

func init() {
	initPST()
	initLMRTable()
}

func initPST() {
	rowBonus := [gm.BoardRows]int32{-5, 0, 5, 15, 25, 35, 55, 85, 120}
	colBonus := [gm.BoardCols]int32{0, 5, 15, 30, 15, 5, 0}

	var base [gm.NumSquares]int32
	for sq := gm.Square(0); sq < gm.NumSquares; sq++ {
		if gm.IsWater(sq) {
			continue
		}
		base[sq] = rowBonus[sq.Row()] + colBonus[sq.Col()]
	}

	for sq := 0; sq < gm.NumSquares; sq++ {
		for rk := gm.Rat; rk <= gm.Elephant; rk++ {
			PST[rk][sq] = base[sq]
		}
	}

	// The rat likes the river: nothing but the enemy rat can touch it
	// there, and water carries it toward the enemy den.
	for sq := gm.Square(0); sq < gm.NumSquares; sq++ {
		if gm.IsWater(sq) {
			PST[gm.Rat][sq] = 20 + int32(sq.Row())*5
		}
	}

	// Jump launch squares are valuable for the jumpers.
	for sq := gm.Square(0); sq < gm.NumSquares; sq++ {
		for range gm.JumpsFrom[sq] {
			PST[gm.Lion][sq] += 15
			PST[gm.Tiger][sq] += 15
		}
	}

	// Steepen the gradient toward the enemy den.
	for sq := gm.Square(0); sq < gm.NumSquares; sq++ {
		if gm.IsWater(sq) {
			continue
		}
		dd := gm.DistLand[gm.Dark][sq]
		if dd <= 8 {
			bonus := 130 - int32(dd)*15
			if bonus < 0 {
				bonus = 0
			}
			for rk := gm.Rat; rk <= gm.Elephant; rk++ {
				PST[rk][sq] += bonus
			}
		}
	}
}

// denDist is the shortest path length from sq to the den of the given
// color, using the movement model the rank allows.
func denDist(rk gm.Rank, sq gm.Square, den gm.Color) int {
	switch rk {
	case gm.Rat:
		return gm.DistSwimmer[den][sq]
	case gm.Lion, gm.Tiger:
		return gm.DistJumper[den][sq]
	default:
		return gm.DistLand[den][sq]
	}
}

func manhattan(a, b gm.Square) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col() - b.Col()
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Evaluate scores the position from the side to move's point of view.
func Evaluate(p *gm.Position) int32 {
	var score int32
	stm := p.SideToMove()
	opp := stm.Other()

	// Material and square tables.
	for c := gm.Light; c <= gm.Dark; c++ {
		var sign int32 = -1
		if c == stm {
			sign = 1
		}
		for rk := gm.Rat; rk <= gm.Elephant; rk++ {
			sq := p.PieceSquare(c, rk)
			if sq == gm.NoSquare {
				continue
			}
			score += sign * MaterialVal[rk]
			pstSq := sq
			if c == gm.Dark {
				pstSq = gm.NumSquares - 1 - sq
			}
			score += sign * PST[rk][pstSq]
		}
	}

	// Den proximity, sharper than the PST gradient.
	for c := gm.Light; c <= gm.Dark; c++ {
		var sign int32 = -1
		if c == stm {
			sign = 1
		}
		targetDen := c.Other()
		for rk := gm.Rat; rk <= gm.Elephant; rk++ {
			sq := p.PieceSquare(c, rk)
			if sq == gm.NoSquare {
				continue
			}
			switch d := denDist(rk, sq, targetDen); {
			case d <= 1:
				score += sign * 250
			case d == 2:
				score += sign * 120
			case d == 3:
				score += sign * 60
			case d <= 5:
				score += sign * 20
			}
		}
	}

	// Trap presence. A piece standing in an enemy trap has rank zero, so
	// its full value is in immediate danger.
	for c := gm.Light; c <= gm.Dark; c++ {
		var sign int32 = 1
		if c == stm {
			sign = -1
		}
		for rk := gm.Rat; rk <= gm.Elephant; rk++ {
			sq := p.PieceSquare(c, rk)
			if sq == gm.NoSquare {
				continue
			}
			if gm.IsTrapOf(sq, c.Other()) {
				score += sign * MaterialVal[rk] / 3
			}
		}
	}

	// Rat versus elephant. Owning the rat while the enemy elephant lives
	// is a standing threat, growing as the rat closes in.
	if ratSq := p.PieceSquare(stm, gm.Rat); ratSq != gm.NoSquare {
		if eleSq := p.PieceSquare(opp, gm.Elephant); eleSq != gm.NoSquare {
			d := manhattan(ratSq, eleSq)
			score += 40
			if d <= 2 {
				score += 60
			}
			if d == 1 {
				score += 80
			}
		}
	}
	if ratSq := p.PieceSquare(opp, gm.Rat); ratSq != gm.NoSquare {
		if eleSq := p.PieceSquare(stm, gm.Elephant); eleSq != gm.NoSquare {
			d := manhattan(ratSq, eleSq)
			score -= 30
			if d <= 2 {
				score -= 40
			}
			if d == 1 {
				score -= 60
			}
		}
	}

	// Den safety: enemy pieces crowding our den.
	ourDen := gm.DenOf(stm)
	for rk := gm.Rat; rk <= gm.Elephant; rk++ {
		sq := p.PieceSquare(opp, rk)
		if sq == gm.NoSquare {
			continue
		}
		switch d := manhattan(sq, ourDen); {
		case d <= 1:
			score -= 300
		case d == 2:
			score -= 100
		case d == 3:
			score -= 30
		}
	}

	// Net piece count.
	score += int32(p.PieceCount(stm)-p.PieceCount(opp)) * 30

	// With few pieces left, races to the den decide the game.
	if p.PieceCount(gm.Light)+p.PieceCount(gm.Dark) <= 6 {
		for rk := gm.Rat; rk <= gm.Elephant; rk++ {
			sq := p.PieceSquare(stm, rk)
			if sq == gm.NoSquare {
				continue
			}
			if d := denDist(rk, sq, opp); d <= 3 {
				score += int32(4-d) * 80
			}
		}
	}

	return score
}
