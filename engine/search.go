package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	dm "checkers-engine/draughtsmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	MateScore int32 = 20000
	DrawScore int32 = 0
)

var (
	// ErrGameOver reports that the searched position has no legal moves.
	ErrGameOver = errors.New("no legal moves in this position")

	// ErrSearchCancelled reports that a timed search ran out of budget
	// before completing depth 1.
	ErrSearchCancelled = errors.New("search cancelled before completing depth 1")
)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	// Evaluator scores horizon positions. Defaults to material count.
	Evaluator Evaluator

	// Workers is the number of goroutines splitting the root move list.
	// 1 (the default) searches serially and deterministically.
	Workers int

	// TT lets several engines share one table. Defaults to a fresh table.
	TT *TransTable
}

// Engine searches checkers positions. It is safe for sequential reuse; the
// transposition table persists between queries.
type Engine struct {
	tt      *TransTable
	eval    Evaluator
	workers int

	// Deepest fully searched iteration of the most recent query.
	lastDepth int8
}

// NewEngine builds an Engine from options.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		tt:      opts.TT,
		eval:    opts.Evaluator,
		workers: opts.Workers,
	}
	if e.tt == nil {
		e.tt = NewTransTable()
	}
	if e.eval == nil {
		e.eval = NewMaterial()
	}
	if e.workers < 1 {
		e.workers = 1
	}
	return e
}

// Reset clears the transposition table.
func (e *Engine) Reset() { e.tt.Clear() }

// CompletedDepth reports the deepest iteration the most recent BestMove or
// Evaluate call finished. Zero when no search has completed depth 1. A
// larger time budget on the same position completes at least as deep.
func (e *Engine) CompletedDepth() int8 { return e.lastDepth }

// sign maps a side to the negamax perspective factor: the evaluator is
// Black-positive, so Black nodes keep the sign and White nodes flip it.
func sign(c dm.Color) int32 {
	if c == dm.Black {
		return 1
	}
	return -1
}

// BestMove searches the position under the given limit and returns the
// recommended move together with its score from Black's point of view.
// Returns ErrGameOver when the side to move has no legal moves, and
// ErrSearchCancelled when a timed search could not finish depth 1.
func (e *Engine) BestMove(b dm.Board, limit Limit) (dm.Move, int32, error) {
	res, err := e.run(b, limit)
	if err != nil {
		return 0, 0, err
	}
	return res.move, res.score * sign(b.Turn()), nil
}

// Evaluate searches the position and returns only the score, from Black's
// point of view. Decided positions are scored without searching.
func (e *Engine) Evaluate(b dm.Board, limit Limit) (int32, error) {
	switch b.GameState() {
	case dm.Drawn:
		return DrawScore, nil
	case dm.BlackWins:
		return MaxScore, nil
	case dm.WhiteWins:
		return -MaxScore, nil
	}
	res, err := e.run(b, limit)
	if err != nil {
		return 0, err
	}
	return res.score * sign(b.Turn()), nil
}

type rootResult struct {
	move  dm.Move
	score int32
	depth int8
}

// run drives iterative deepening. For a timed limit, every completed depth
// updates the result and a depth interrupted by the deadline is discarded,
// so the returned move always comes from a fully searched iteration.
func (e *Engine) run(b dm.Board, limit Limit) (rootResult, error) {
	moves := dm.GenerateMoves(b)
	if len(moves) == 0 {
		return rootResult{}, ErrGameOver
	}

	s := &searcher{
		eval:  e.eval,
		tt:    e.tt,
		timed: limit.timed(),
		stop:  &atomic.Bool{},
	}
	if s.timed {
		s.deadline = time.Now().Add(limit.Time)
	}

	var best rootResult
	completed := false
	e.lastDepth = 0

	for depth := int8(1); depth <= limit.maxDepth(); depth++ {
		if s.timed && !time.Now().Before(s.deadline) {
			break
		}
		res, ok := e.searchRoot(s, b, moves, depth, best.move)
		if !ok {
			break
		}
		res.depth = depth
		best = res
		completed = true
		if res.score > MateScore || res.score < -MateScore {
			// Forced line found; deeper iterations cannot improve it.
			break
		}
	}

	if !completed {
		return rootResult{}, ErrSearchCancelled
	}
	e.lastDepth = best.depth
	return best, nil
}

// searchRoot searches every root move to the given depth. ok is false when
// the deadline tripped mid-iteration, in which case the partial result is
// meaningless and must be discarded.
func (e *Engine) searchRoot(s *searcher, b dm.Board, rootMoves []dm.Move, depth int8, prevBest dm.Move) (rootResult, bool) {
	moves := orderedMoves(rootMoves, prevBest)

	if e.workers > 1 && len(moves) > 2 && depth > 2 {
		return e.searchRootParallel(s, b, moves, depth)
	}

	best := rootResult{score: -MaxScore - 1}
	alpha := -MaxScore
	for _, m := range moves {
		score := -s.alphabeta(dm.Apply(b, m), depth-1, 1, -MaxScore, -alpha)
		if s.stop.Load() {
			return rootResult{}, false
		}
		if score > best.score {
			best.move, best.score = m, score
		}
		if score > alpha {
			alpha = score
		}
	}
	s.tt.Store(b.Hash(), depth, 0, best.move, best.score, ExactFlag)
	return best, true
}

// searchRootParallel fans the root move list across workers sharing the
// transposition table. The first (hint) move is searched serially to
// establish a bound, then the brothers run concurrently against a shared
// alpha. Results remain legal and optimal for the achieved depth, though
// tie-breaking between equal moves may vary between runs.
func (e *Engine) searchRootParallel(s *searcher, b dm.Board, moves []dm.Move, depth int8) (rootResult, bool) {
	first := -s.alphabeta(dm.Apply(b, moves[0]), depth-1, 1, -MaxScore, MaxScore)
	if s.stop.Load() {
		return rootResult{}, false
	}

	var sharedAlpha atomic.Int32
	sharedAlpha.Store(first)

	scores := make([]int32, len(moves))
	alphaUsed := make([]int32, len(moves))
	scores[0] = first
	alphaUsed[0] = -MaxScore

	var next atomic.Int32
	next.Store(1)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker := &searcher{
				eval:     s.eval,
				tt:       s.tt,
				timed:    s.timed,
				deadline: s.deadline,
				stop:     s.stop,
			}
			for {
				i := int(next.Add(1)) - 1
				if i >= len(moves) || worker.stop.Load() {
					return
				}
				alpha := sharedAlpha.Load()
				score := -worker.alphabeta(dm.Apply(b, moves[i]), depth-1, 1, -MaxScore, -alpha)
				scores[i] = score
				alphaUsed[i] = alpha
				for score > alpha {
					if sharedAlpha.CompareAndSwap(alpha, score) {
						break
					}
					alpha = sharedAlpha.Load()
				}
			}
		}()
	}
	wg.Wait()

	if s.stop.Load() {
		return rootResult{}, false
	}

	// A brother that failed low against its window only established an
	// upper bound; any move whose true score beats the final alpha was
	// searched with an open window and is exact, so the max over exact
	// scores is the true optimum.
	best := rootResult{move: moves[0], score: scores[0]}
	for i := 1; i < len(moves); i++ {
		if scores[i] > best.score && scores[i] > alphaUsed[i] {
			best.move, best.score = moves[i], scores[i]
		}
	}
	s.tt.Store(b.Hash(), depth, 0, best.move, best.score, ExactFlag)
	return best, true
}

// searcher carries the per-query state of one search worker.
type searcher struct {
	eval     Evaluator
	tt       *TransTable
	deadline time.Time
	timed    bool
	stop     *atomic.Bool
	nodes    uint64
}

// staticEval scores the position from the side to move's perspective.
func (s *searcher) staticEval(b dm.Board) int32 {
	return s.eval.Evaluate(b) * sign(b.Turn())
}

// alphabeta is a negamax alpha-beta search. Scores are from the side to
// move's perspective. Once the stop flag trips the unwinding is
// cooperative: no further table stores happen and the return value is
// discarded by the root.
func (s *searcher) alphabeta(b dm.Board, depth, ply int8, alpha, beta int32) int32 {
	s.nodes++
	if s.timed && s.nodes&1023 == 0 && !time.Now().Before(s.deadline) {
		s.stop.Store(true)
	}
	if s.stop.Load() {
		return 0
	}

	if b.NoProgressPlies() >= dm.DrawMovePlies {
		return DrawScore
	}

	/*
		TRANSPOSITION TABLE LOOKUP
	*/
	key := b.Hash()
	var hint dm.Move
	if entry, ok := s.tt.Probe(key); ok && entry.Key == key {
		hint = entry.Move
		if entry.Depth >= depth {
			score := scoreFromTT(entry.Score, ply)
			switch entry.Flag {
			case ExactFlag:
				return score
			case BetaFlag:
				if score > alpha {
					alpha = score
				}
			case AlphaFlag:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	moves := dm.GenerateMoves(b)
	if len(moves) == 0 {
		// The side to move has lost; prefer the slowest loss.
		return -MaxScore + int32(ply)
	}
	if depth <= 0 {
		return s.staticEval(b)
	}

	list := scoreMoves(moves, hint)

	best := -MaxScore
	var bestMove dm.Move
	var flag int8 = AlphaFlag

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		m := list.moves[i].move
		score := -s.alphabeta(dm.Apply(b, m), depth-1, ply+1, -beta, -alpha)
		if s.stop.Load() {
			return 0
		}
		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			flag = ExactFlag
		}
		if alpha >= beta {
			flag = BetaFlag
			break
		}
	}

	if !s.stop.Load() {
		s.tt.Store(key, depth, ply, bestMove, best, flag)
	}
	return best
}
