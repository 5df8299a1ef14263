package engine

import (
	gm "jungle-engine/junglemg"
)

// KillerStruct keeps two quiet moves per ply that recently caused a beta
// cutoff at that ply.
type KillerStruct struct {
	KillerMoves [MaxPly + 1][2]gm.Move
}

func (k *KillerStruct) InsertKiller(move gm.Move, ply int) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// ClearKillers resets the killer table.
func (k *KillerStruct) ClearKillers() {
	for ply := 0; ply <= MaxPly; ply++ {
		k.KillerMoves[ply][0] = gm.MoveNone
		k.KillerMoves[ply][1] = gm.MoveNone
	}
}
