package engine

import "github.com/lgbarn/chessduel/internal/chess"

// pawnMoves returns the pseudo-legal pawn destinations: one step forward onto an
// empty square, two steps from the starting rank when both squares are empty, and
// a diagonal step onto an enemy piece or the en-passant target.
func pawnMoves(g *chess.GameState, from chess.Square, colour chess.Colour) []chess.Square {
	moves := make([]chess.Square, 0, 4)
	dir := colour.PawnDirection()

	// Forward move
	one := from.Offset(0, dir)
	if g.Board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push from starting rank
		two := from.Offset(0, 2*dir)
		if int(from.Rank) == colour.PawnStartRank() && g.Board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		if g.Board.IsEnemy(to, colour) || isEnPassantCapture(g, from, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// isPromotionSquare reports whether a pawn of the colour reaching sq promotes.
func isPromotionSquare(sq chess.Square, colour chess.Colour) bool {
	return int(sq.Rank) == colour.PromotionRank()
}

// enPassantVictim returns the square of the pawn removed by an en-passant capture
// from -> to: same file as the destination, the rank the capturing pawn came from.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Square{File: to.File, Rank: from.Rank}
}

// isEnPassantCapture reports whether a pawn of the colour moving from -> to captures
// en passant. The target must lie on the sixth rank from the capturer's side, so a
// pawn can never take "en passant" behind its own side's double push.
func isEnPassantCapture(g *chess.GameState, from, to chess.Square, colour chess.Colour) bool {
	return to == g.EnPassant && from.File != to.File &&
		int(to.Rank) == colour.PromotionRank()-2*colour.PawnDirection()
}
