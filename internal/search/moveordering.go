package search

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/engine"
)

// PromotionBonus is added to the ordering score of a pawn move onto the last rank.
const PromotionBonus = 800

// ScoreMove returns the ordering heuristic for from -> to: ten times the value
// of the captured piece minus the value of the capturer, plus PromotionBonus
// for a promotion. The score only decides the order moves are searched in.
func ScoreMove(g *chess.GameState, from, to chess.Square) int {
	mover := g.PieceAt(from)
	score := 0
	if victim := g.PieceAt(to); !victim.IsEmpty() {
		score += victim.Kind.Value()*10 - mover.Kind.Value()
	}
	if mover.Kind == chess.Pawn && int(to.Rank) == mover.Colour.PromotionRank() {
		score += PromotionBonus
	}
	return score
}

type scoredMove struct {
	move  engine.LegalMove
	score int
}

// orderMoves sorts moves by descending ScoreMove. Equal scores keep their
// generation order so the search is deterministic.
func orderMoves(g *chess.GameState, moves []engine.LegalMove) []engine.LegalMove {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: ScoreMove(g, m.From, m.To)}
	}

	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return b.score - a.score
	})

	ordered := make([]engine.LegalMove, len(scored))
	for i, s := range scored {
		ordered[i] = s.move
	}
	return ordered
}
