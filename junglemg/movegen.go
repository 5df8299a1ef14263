package junglemg

// CanCapture applies the capture rules for a piece of attackerRank and
// color on fromSq taking a defender of defenderRank on toSq. Occupancy is
// not consulted: the caller guarantees toSq holds an enemy piece.
func CanCapture(attackerRank, defenderRank Rank, attacker Color, fromSq, toSq Square) bool {
	fromW, toW := waterTab[fromSq], waterTab[toSq]

	// No captures across the water boundary, in either direction.
	if fromW != toW {
		return false
	}

	// Both in water: only rats can be there, and rats take rats.
	if fromW {
		return true
	}

	// A defender sitting in the attacker's own trap has rank zero.
	if IsTrapOf(toSq, attacker) {
		return true
	}

	if attackerRank == Rat && defenderRank == Elephant {
		return true
	}
	if attackerRank == Elephant && defenderRank == Rat {
		return false
	}
	return attackerRank >= defenderRank
}

func (p *Position) addStepMoves(sq Square, rk Rank, c Color, moves []Move) []Move {
	for _, d := range dirs {
		if !canStep(sq, d) {
			continue
		}
		to := sq + Square(d)
		ter := terrainTab[to]

		if c == Light && ter == DenLight {
			continue
		}
		if c == Dark && ter == DenDark {
			continue
		}
		if ter == Water && rk != Rat {
			continue
		}

		target := p.squares[to]
		if target == 0 {
			moves = append(moves, NewMove(sq, to))
			continue
		}
		tRank, tColor := absPiece(target)
		if tColor == c {
			continue
		}
		if CanCapture(rk, tRank, c, sq, to) {
			moves = append(moves, NewMove(sq, to))
		}
	}
	return moves
}

func (p *Position) addJumpMoves(sq Square, rk Rank, c Color, moves []Move) []Move {
	for _, arc := range JumpsFrom[sq] {
		to := arc.To
		if c == Light && terrainTab[to] == DenLight {
			continue
		}
		if c == Dark && terrainTab[to] == DenDark {
			continue
		}
		if p.jumpBlocked(arc) {
			continue
		}
		target := p.squares[to]
		if target == 0 {
			moves = append(moves, NewMove(sq, to))
			continue
		}
		tRank, tColor := absPiece(target)
		if tColor == c {
			continue
		}
		if CanCapture(rk, tRank, c, sq, to) {
			moves = append(moves, NewMove(sq, to))
		}
	}
	return moves
}

// jumpBlocked reports whether any piece occupies a crossed water square.
// Only rats can be in water, so any occupant blocks the jump.
func (p *Position) jumpBlocked(arc JumpArc) bool {
	for _, w := range arc.Over {
		if p.squares[w] != 0 {
			return true
		}
	}
	return false
}

// GenerateMoves appends all legal moves for the side to move. Iteration
// runs rank 1 through 8 over the piece list, so the order is deterministic
// for a given position.
func (p *Position) GenerateMoves(moves []Move) []Move {
	c := p.sideToMove
	for rk := Rat; rk <= Elephant; rk++ {
		sq := Square(p.pieceSq[c][rk])
		if sq == NoSquare {
			continue
		}
		moves = p.addStepMoves(sq, rk, c, moves)
		if rk == Lion || rk == Tiger {
			moves = p.addJumpMoves(sq, rk, c, moves)
		}
	}
	return moves
}

// GenerateCaptures appends only the capturing moves for the side to move.
// The result is always a subset of GenerateMoves.
func (p *Position) GenerateCaptures(moves []Move) []Move {
	c := p.sideToMove
	for rk := Rat; rk <= Elephant; rk++ {
		sq := Square(p.pieceSq[c][rk])
		if sq == NoSquare {
			continue
		}

		for _, d := range dirs {
			if !canStep(sq, d) {
				continue
			}
			to := sq + Square(d)
			ter := terrainTab[to]
			if c == Light && ter == DenLight {
				continue
			}
			if c == Dark && ter == DenDark {
				continue
			}
			if ter == Water && rk != Rat {
				continue
			}
			target := p.squares[to]
			if target == 0 {
				continue
			}
			tRank, tColor := absPiece(target)
			if tColor == c {
				continue
			}
			if CanCapture(rk, tRank, c, sq, to) {
				moves = append(moves, NewMove(sq, to))
			}
		}

		if rk == Lion || rk == Tiger {
			for _, arc := range JumpsFrom[sq] {
				to := arc.To
				if c == Light && terrainTab[to] == DenLight {
					continue
				}
				if c == Dark && terrainTab[to] == DenDark {
					continue
				}
				target := p.squares[to]
				if target == 0 {
					continue
				}
				tRank, tColor := absPiece(target)
				if tColor == c {
					continue
				}
				if p.jumpBlocked(arc) {
					continue
				}
				if CanCapture(rk, tRank, c, sq, to) {
					moves = append(moves, NewMove(sq, to))
				}
			}
		}
	}
	return moves
}

// IsLegal reports whether m is among the legal moves of the position.
func (p *Position) IsLegal(m Move) bool {
	moves := p.GenerateMoves(make([]Move, 0, MaxMoves))
	for _, lm := range moves {
		if lm == m {
			return true
		}
	}
	return false
}

func absPiece(v int8) (Rank, Color) {
	if v > 0 {
		return Rank(v), Light
	}
	return Rank(-v), Dark
}
