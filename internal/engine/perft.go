package engine

import "github.com/lgbarn/chessduel/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth for the
// side to move. The state is restored before returning.
func Perft(g *chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for _, m := range LegalMoves(g, g.ToMove) {
		if depth == 1 {
			nodes++
			continue
		}
		saved := g.SaveState()
		makeMove(g, m.From, m.To)
		nodes += Perft(g, depth-1)
		g.RestoreState(saved)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by long algebraic move text.
func Divide(g *chess.GameState, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range LegalMoves(g, g.ToMove) {
		saved := g.SaveState()
		move := makeMove(g, m.From, m.To)
		counts[move.String()] = Perft(g, depth-1)
		g.RestoreState(saved)
	}
	return counts
}
