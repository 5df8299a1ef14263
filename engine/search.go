package engine

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	gm "jungle-engine/junglemg"
)

const (
	aspirationWindow int32 = 40

	// Fraction of the budget after which no new iteration starts.
	softStopNum = 2
	softStopDen = 5
)

// Search owns all state of one searcher: transposition table, killers,
// history, PV bookkeeping. A Search instance is single-threaded; only the
// stop flag may be touched from another goroutine.
type Search struct {
	tt      *TransTable
	killers KillerStruct
	history historyTable

	pv    [MaxPly + 1][MaxPly + 1]gm.Move
	pvLen [MaxPly + 1]int

	nodes    uint64
	selDepth int

	stop atomic.Bool
	out  io.Writer

	startTime time.Time
	budgetMs  int
	infinite  bool
}

// NewSearch creates a searcher with a transposition table of the given
// size in megabytes.
func NewSearch(hashMB int) *Search {
	s := &Search{
		tt:  NewTransTable(hashMB),
		out: os.Stdout,
	}
	s.killers.ClearKillers()
	return s
}

// SetOutput redirects progress lines. The default sink is stdout.
func (s *Search) SetOutput(w io.Writer) { s.out = w }

// ResizeHash reallocates the transposition table.
func (s *Search) ResizeHash(sizeMB int) { s.tt = NewTransTable(sizeMB) }

// Reset clears all learned state for a new game.
func (s *Search) Reset() {
	s.tt.Clear()
	s.killers.ClearKillers()
	s.history.clear()
}

// Stop requests a cooperative stop. Safe to call from another goroutine.
func (s *Search) Stop() { s.stop.Store(true) }

// Nodes returns the node count of the last Think call.
func (s *Search) Nodes() uint64 { return s.nodes }

// Think runs iterative deepening on p and returns the best move found.
// movetimeMs bounds the wall time unless infinite is set; maxDepth bounds
// the iteration depth (0 means no depth bound).
func (s *Search) Think(p *gm.Position, maxDepth, movetimeMs int, infinite bool) gm.Move {
	s.stop.Store(false)
	s.nodes = 0
	s.selDepth = 0
	s.startTime = time.Now()
	s.budgetMs = movetimeMs
	s.infinite = infinite
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	moves := p.GenerateMoves(make([]gm.Move, 0, gm.MaxMoves))
	if len(moves) == 0 {
		return gm.MoveNone
	}
	bestMove := moves[0]

	var prevScore int32
	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -ScoreInf, ScoreInf
		if depth >= 5 {
			alpha = prevScore - aspirationWindow
			beta = prevScore + aspirationWindow
		}

		score := s.alphaBeta(p, depth, 0, alpha, beta, true, true)
		if !s.stop.Load() && (score <= alpha || score >= beta) {
			alpha = prevScore - 4*aspirationWindow
			beta = prevScore + 4*aspirationWindow
			score = s.alphaBeta(p, depth, 0, alpha, beta, true, true)
			if !s.stop.Load() && (score <= alpha || score >= beta) {
				score = s.alphaBeta(p, depth, 0, -ScoreInf, ScoreInf, true, true)
			}
		}
		if s.stop.Load() {
			break
		}

		prevScore = score
		if s.pvLen[0] > 0 {
			bestMove = s.pv[0][0]
		}
		s.printInfo(depth, score)

		if score > Checkmate || score < -Checkmate {
			break
		}
		if !s.infinite && s.budgetMs > 0 {
			elapsed := int(time.Since(s.startTime).Milliseconds())
			if elapsed*softStopDen >= s.budgetMs*softStopNum {
				break
			}
		}
	}
	return bestMove
}

func (s *Search) printInfo(depth int, score int32) {
	elapsed := time.Since(s.startTime)
	ms := elapsed.Milliseconds()
	nps := int64(0)
	if ms > 0 {
		nps = int64(s.nodes) * 1000 / ms
	}
	fmt.Fprintf(s.out, "info depth %d seldepth %d score %s nodes %d nps %d time %d pv",
		depth, s.selDepth, scoreString(score), s.nodes, nps, ms)
	for i := 0; i < s.pvLen[0]; i++ {
		fmt.Fprintf(s.out, " %v", s.pv[0][i])
	}
	fmt.Fprintln(s.out)
}

func (s *Search) checkTime() {
	if s.infinite || s.budgetMs <= 0 {
		return
	}
	if time.Since(s.startTime).Milliseconds() >= int64(s.budgetMs) {
		s.stop.Store(true)
	}
}

func (s *Search) updatePV(ply int, m gm.Move) {
	s.pv[ply][0] = m
	copy(s.pv[ply][1:], s.pv[ply+1][:s.pvLen[ply+1]])
	s.pvLen[ply] = s.pvLen[ply+1] + 1
}

func (s *Search) alphaBeta(p *gm.Position, depth, ply int, alpha, beta int32, isPV, allowNull bool) int32 {
	s.pvLen[ply] = 0

	s.nodes++
	if s.nodes&4095 == 0 {
		s.checkTime()
	}
	if s.stop.Load() {
		return 0
	}

	switch p.Status() {
	case gm.SideToMoveLost:
		return -(MateScore - int32(ply))
	case gm.SideToMoveWon:
		return MateScore - int32(ply)
	}
	if ply > 0 && (p.IsRepetition() || p.Halfmove() >= 200) {
		return 0
	}
	if ply >= MaxPly {
		return Evaluate(p)
	}
	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	ttScore, hashMove, usable := s.tt.Probe(p.Hash(), depth, ply, alpha, beta)
	if usable && !isPV && ply > 0 {
		return ttScore
	}

	static := Evaluate(p)
	danger := inDanger(p)

	if !isPV && !danger && depth <= 2 && static+300*int32(depth) <= alpha {
		if v := s.quiescence(p, ply, alpha, beta); v <= alpha {
			return v
		}
	}

	if !isPV && !danger && depth <= 3 && static-120*int32(depth) >= beta {
		return static - 120*int32(depth)
	}

	if !isPV && allowNull && depth >= 3 && !danger && static >= beta &&
		p.PieceCount(p.SideToMove()) >= 2 {
		R := 3 + depth/6
		p.MakeNull()
		v := -s.alphaBeta(p, depth-1-R, ply+1, -beta, -beta+1, false, false)
		p.UnmakeNull()
		if s.stop.Load() {
			return 0
		}
		if v >= beta {
			if v > Checkmate {
				v = Checkmate
			}
			return v
		}
	}

	if isPV && hashMove == gm.MoveNone && depth >= 4 {
		s.alphaBeta(p, depth-2, ply, alpha, beta, true, allowNull)
		_, hashMove, _ = s.tt.Probe(p.Hash(), depth, ply, alpha, beta)
	}

	moves := p.GenerateMoves(make([]gm.Move, 0, gm.MaxMoves))
	if len(moves) == 0 {
		return -(MateScore - int32(ply))
	}

	list := s.scoreMoves(p, moves, ply, hashMove)
	enemyDen := gm.DenOf(p.SideToMove().Other())
	alphaOrig := alpha
	bestScore := -ScoreInf
	bestMove := gm.MoveNone
	searched := 0

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		m := list.moves[i].move

		if m.To() == enemyDen {
			s.pv[ply][0] = m
			s.pvLen[ply] = 1
			return MateScore - int32(ply)
		}

		victim, _ := p.At(m.To())
		isCapture := victim != gm.NoRank

		ext := 0
		if danger || (isCapture && victim >= gm.Tiger) {
			ext = 1
		}

		if !isPV && searched > 0 && !isCapture && ext == 0 && depth <= 3 &&
			static+150*int32(depth) <= alpha {
			continue
		}

		p.MakeMove(m)
		newDepth := depth - 1 + ext

		var score int32
		if searched == 0 {
			score = -s.alphaBeta(p, newDepth, ply+1, -beta, -alpha, isPV, true)
		} else {
			reduction := 0
			if depth >= 3 && searched >= 3 && !isCapture {
				d, mn := depth, searched
				if d > MaxPly {
					d = MaxPly
				}
				if mn > 99 {
					mn = 99
				}
				reduction = lmrTable[d][mn]
				if isPV {
					reduction /= 2
				}
				if reduction > newDepth-1 {
					reduction = newDepth - 1
				}
				if reduction < 0 {
					reduction = 0
				}
			}

			score = -s.alphaBeta(p, newDepth-reduction, ply+1, -(alpha + 1), -alpha, false, true)
			if score > alpha && reduction > 0 {
				score = -s.alphaBeta(p, newDepth, ply+1, -(alpha + 1), -alpha, false, true)
			}
			if isPV && score > alpha && score < beta {
				score = -s.alphaBeta(p, newDepth, ply+1, -beta, -alpha, true, true)
			}
		}
		p.UnmakeMove()
		searched++

		if s.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			s.updatePV(ply, m)
		}
		if alpha >= beta {
			if !isCapture {
				s.killers.InsertKiller(m, ply)
				s.history.update(p.SideToMove(), m, depth)
			}
			break
		}
	}

	flag := int8(AlphaFlag)
	if bestScore >= beta {
		flag = BetaFlag
	} else if bestScore > alphaOrig {
		flag = ExactFlag
	}
	s.tt.Store(p.Hash(), depth, ply, bestMove, bestScore, flag)

	return bestScore
}

func (s *Search) quiescence(p *gm.Position, ply int, alpha, beta int32) int32 {
	s.nodes++
	if s.nodes&4095 == 0 {
		s.checkTime()
	}
	if s.stop.Load() {
		return 0
	}
	if ply > s.selDepth {
		s.selDepth = ply
	}

	switch p.Status() {
	case gm.SideToMoveLost:
		return -(MateScore - int32(ply))
	case gm.SideToMoveWon:
		return MateScore - int32(ply)
	}
	if ply >= MaxPly {
		return Evaluate(p)
	}

	standPat := Evaluate(p)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	bestScore := standPat

	captures := p.GenerateCaptures(make([]gm.Move, 0, gm.MaxMoves))
	list := s.scoreCaptures(p, captures)

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		m := list.moves[i].move

		victim, _ := p.At(m.To())
		if standPat+MaterialVal[victim]+200 < alpha {
			continue
		}

		p.MakeMove(m)
		score := -s.quiescence(p, ply+1, -beta, -alpha)
		p.UnmakeMove()

		if s.stop.Load() {
			return 0
		}
		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore
}
