// Package search chooses moves for the computer player with a depth-limited,
// time-bounded minimax search with alpha-beta pruning.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/engine"
)

const (
	// DefaultDepth is the search depth in plies.
	DefaultDepth = 4

	// DefaultTimeBudget is the wall-clock budget of one ChooseMove call.
	DefaultTimeBudget = 3000 * time.Millisecond
)

// Score sentinels. Both stay far from the int limits so they can be negated
// and compared without overflow.
const (
	// Infinity bounds every score. A node cut short by the deadline returns
	// -Infinity when maximizing and +Infinity when minimizing.
	Infinity = 1_000_000

	// MateScore is the score of a checkmate at the root. Mates found deeper in
	// the tree score one less per ply so the nearest mate is preferred.
	MateScore = 900_000

	// DrawScore is the score of a stalemate.
	DrawScore = 0
)

// Options configures a Searcher.
type Options struct {
	// Depth is the number of plies searched, the root move included.
	Depth int

	// TimeBudget caps the wall-clock time of a single ChooseMove call.
	TimeBudget time.Duration

	Logger *zap.Logger

	// Clock overrides the system clock, for tests.
	Clock Clock
}

// Stats counts the work done by the last search.
type Stats struct {
	Nodes   uint64
	Leaves  uint64
	Cutoffs uint64
}

// Result describes the move chosen by ChooseMove.
type Result struct {
	Move  chess.Move
	Score int
	Stats Stats
	Depth int

	// TimedOut reports that the deadline expired before every root move was searched.
	TimedOut bool
	Elapsed  time.Duration
}

// Searcher runs move searches. A Searcher is not safe for concurrent use;
// each goroutine needs its own.
type Searcher struct {
	depth  int
	budget time.Duration
	logger *zap.Logger
	clock  Clock

	side  chess.Colour
	timer *deadline
	stats Stats
}

// New creates a Searcher, filling unset options with the defaults.
func New(opts Options) *Searcher {
	s := &Searcher{
		depth:  opts.Depth,
		budget: opts.TimeBudget,
		logger: opts.Logger,
		clock:  opts.Clock,
	}
	if s.depth <= 0 {
		s.depth = DefaultDepth
	}
	if s.budget <= 0 {
		s.budget = DefaultTimeBudget
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.clock == nil {
		s.clock = systemClock{}
	}
	return s
}

// Depth returns the configured search depth.
func (s *Searcher) Depth() int { return s.depth }

// ChooseMove searches the legal moves of side and returns the best one found.
// It returns false when side has no legal move; the caller tells checkmate from
// stalemate with the rules engine.
//
// The state is used as scratch space and is restored before returning. When the
// deadline expires, the best move among the fully searched root moves is
// returned, or the first move in search order if none finished.
func (s *Searcher) ChooseMove(ctx context.Context, g *chess.GameState, side chess.Colour) (Result, bool) {
	start := s.clock.Now()
	s.side = side
	s.stats = Stats{}
	s.timer = newDeadline(ctx, s.clock, start, s.budget)

	moves := orderMoves(g, engine.LegalMoves(g, side))
	if len(moves) == 0 {
		s.logger.Debug("no legal move", zap.Stringer("side", side))
		return Result{Move: chess.NullMove, Depth: s.depth}, false
	}

	result := Result{Move: chess.NullMove, Score: -Infinity, Depth: s.depth}
	found := false
	alpha := -Infinity
	for _, m := range moves {
		saved := g.SaveState()
		record, err := engine.ApplyMove(g, m.From, m.To)
		if err != nil {
			g.RestoreState(saved)
			s.logger.Error("apply root move", zap.Error(err))
			continue
		}
		value := s.minimax(g, s.depth-1, 1, alpha, Infinity, false)
		g.RestoreState(saved)

		if s.timer.expired {
			result.TimedOut = true
			break
		}
		if !found || value > result.Score {
			result.Move, result.Score = record, value
			found = true
			alpha = max(alpha, value)
		}
	}

	if !found {
		result.Move, result.Score = s.fallback(g, moves[0])
	}

	result.Stats = s.stats
	result.Elapsed = s.clock.Now().Sub(start)
	s.logger.Debug("search finished",
		zap.Stringer("side", side),
		zap.Stringer("move", result.Move),
		zap.Int("score", result.Score),
		zap.Int("depth", result.Depth),
		zap.Uint64("nodes", result.Stats.Nodes),
		zap.Uint64("cutoffs", result.Stats.Cutoffs),
		zap.Bool("timed_out", result.TimedOut),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, true
}

// fallback returns the move record and static score of m for a search whose
// first root move did not finish in time.
func (s *Searcher) fallback(g *chess.GameState, m engine.LegalMove) (chess.Move, int) {
	saved := g.SaveState()
	defer g.RestoreState(saved)

	record, err := engine.ApplyMove(g, m.From, m.To)
	if err != nil {
		return chess.NullMove, -Infinity
	}
	return record, Evaluate(g, s.side)
}

// minimax returns the value of the position for the searching side. The side
// to move is the searching side when maximizing and its opponent otherwise.
func (s *Searcher) minimax(g *chess.GameState, depth, ply, alpha, beta int, maximizing bool) int {
	s.stats.Nodes++
	if s.timer.check() {
		if maximizing {
			return -Infinity
		}
		return Infinity
	}
	if depth <= 0 {
		s.stats.Leaves++
		return Evaluate(g, s.side)
	}

	mover := s.side
	if !maximizing {
		mover = s.side.Opposite()
	}
	moves := engine.LegalMoves(g, mover)
	if len(moves) == 0 {
		s.stats.Leaves++
		return terminalScore(g, mover, ply, maximizing)
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, m := range orderMoves(g, moves) {
		saved := g.SaveState()
		if _, err := engine.ApplyMove(g, m.From, m.To); err != nil {
			g.RestoreState(saved)
			continue
		}
		value := s.minimax(g, depth-1, ply+1, alpha, beta, !maximizing)
		g.RestoreState(saved)

		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

// terminalScore scores a node where mover has no legal move: a mate sentinel
// against the mated side, or DrawScore for stalemate.
func terminalScore(g *chess.GameState, mover chess.Colour, ply int, maximizing bool) int {
	if !engine.IsKingInCheck(g, mover) {
		return DrawScore
	}
	if maximizing {
		return -(MateScore - ply)
	}
	return MateScore - ply
}
