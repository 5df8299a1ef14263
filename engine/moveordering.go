package engine

import (
	gm "jungle-engine/junglemg"
)

type scoredMove struct {
	move  gm.Move
	score int32
}

type moveList struct {
	moves []scoredMove
}

// Move ordering offsets. Hash move first, then the den-entering move (an
// immediate win), captures by victim value, killers, history for the rest.
const (
	hashMoveScore int32 = 1000000
	denEntryScore int32 = 900000
	captureOffset int32 = 500000
	killerOffset  int32 = 400000
)

// orderNextMove selection-sorts the move at currIndex into place. Cheaper
// than a full sort when a cutoff ends the loop early.
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := currIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

func (s *Search) scoreMoves(p *gm.Position, moves []gm.Move, ply int, hashMove gm.Move) moveList {
	list := moveList{moves: make([]scoredMove, len(moves))}
	c := p.SideToMove()
	enemyDen := gm.DenOf(c.Other())

	for i, m := range moves {
		var score int32
		victim, _ := p.At(m.To())

		switch {
		case m == hashMove:
			score = hashMoveScore
		case m.To() == enemyDen:
			score = denEntryScore
		case victim != gm.NoRank:
			attacker, _ := p.At(m.From())
			score = captureOffset + 10*MaterialVal[victim] - MaterialVal[attacker]
		case m == s.killers.KillerMoves[ply][0]:
			score = killerOffset + 1000
		case m == s.killers.KillerMoves[ply][1]:
			score = killerOffset
		default:
			score = s.history[c][m.From()][m.To()]
		}

		list.moves[i] = scoredMove{move: m, score: score}
	}
	return list
}

func (s *Search) scoreCaptures(p *gm.Position, moves []gm.Move) moveList {
	list := moveList{moves: make([]scoredMove, len(moves))}
	for i, m := range moves {
		victim, _ := p.At(m.To())
		attacker, _ := p.At(m.From())
		list.moves[i] = scoredMove{
			move:  m,
			score: 10*MaterialVal[victim] - MaterialVal[attacker],
		}
	}
	return list
}
