package engine

import (
	"unsafe"

	gm "jungle-engine/junglemg"
)

// Bound flags for stored scores.
const (
	AlphaFlag = iota // upper bound: real score <= stored
	BetaFlag         // lower bound: real score >= stored
	ExactFlag
)

const (
	DefaultHashMB = 256
	MinHashMB     = 1
	MaxHashMB     = 4096

	// Sentinel outside [-ScoreInf, ScoreInf].
	UnusableScore int32 = -32750
)

// TTEntry is one slot of the direct-mapped table.
type TTEntry struct {
	Hash  uint64
	Score int32
	Move  gm.Move
	Depth int8
	Flag  int8
}

// TransTable is a direct-mapped transposition table. Replacement is
// depth-preferred: an entry only yields to a different position when the
// newcomer searched at least as deep.
type TransTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTransTable sizes the table from a megabyte budget, rounded down to a
// power of two entries so indexing is a mask.
func NewTransTable(sizeMB int) *TransTable {
	if sizeMB < MinHashMB {
		sizeMB = MinHashMB
	}
	if sizeMB > MaxHashMB {
		sizeMB = MaxHashMB
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	want := uint64(sizeMB) * 1024 * 1024 / entrySize
	count := uint64(1)
	for count*2 <= want {
		count *= 2
	}
	return &TransTable{
		entries: make([]TTEntry, count),
		mask:    count - 1,
	}
}

// Clear wipes every entry.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// scoreToTT shifts mate scores to be relative to the root before storing,
// so a mate found at one ply stays correct when probed at another.
func scoreToTT(score int32, ply int) int32 {
	if score > Checkmate {
		return score + int32(ply)
	}
	if score < -Checkmate {
		return score - int32(ply)
	}
	return score
}

func scoreFromTT(score int32, ply int) int32 {
	if score > Checkmate {
		return score - int32(ply)
	}
	if score < -Checkmate {
		return score + int32(ply)
	}
	return score
}

// Probe looks the position up. hashMove is returned whenever the entry
// matches, even when the score is not usable at this depth/window.
func (tt *TransTable) Probe(hash uint64, depth, ply int, alpha, beta int32) (score int32, hashMove gm.Move, usable bool) {
	e := &tt.entries[hash&tt.mask]
	if e.Hash != hash {
		return UnusableScore, gm.MoveNone, false
	}
	hashMove = e.Move
	if int(e.Depth) < depth {
		return UnusableScore, hashMove, false
	}
	s := scoreFromTT(e.Score, ply)
	switch e.Flag {
	case ExactFlag:
		return s, hashMove, true
	case AlphaFlag:
		if s <= alpha {
			return alpha, hashMove, true
		}
	case BetaFlag:
		if s >= beta {
			return beta, hashMove, true
		}
	}
	return UnusableScore, hashMove, false
}

// Store writes an entry, keeping deeper results for the same slot unless
// the position itself matches.
func (tt *TransTable) Store(hash uint64, depth, ply int, move gm.Move, score int32, flag int8) {
	e := &tt.entries[hash&tt.mask]
	if e.Hash != 0 && e.Hash != hash && int(e.Depth) > depth {
		return
	}
	e.Hash = hash
	e.Depth = int8(depth)
	e.Move = move
	e.Score = scoreToTT(score, ply)
	e.Flag = flag
}
