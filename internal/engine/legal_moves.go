package engine

import "github.com/lgbarn/chessduel/internal/chess"

// IsMoveLegal reports whether moving from -> to leaves the mover's own king safe.
//
// The move is simulated on the live state, side effects included, and the state
// is restored from a snapshot before returning on every path. The result says
// nothing about whether to is a pseudo-legal destination; callers intersect with
// PossibleMoves (see LegalDestinations).
//
// A castling king must also not pass over a square attacked by the opponent.
func IsMoveLegal(g *chess.GameState, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	piece := g.Board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	if target := g.Board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	if isCastlingMove(piece, from, to) {
		if IsKingInCheck(g, piece.Colour) {
			return false
		}
		if IsSquareAttacked(g, castlingTransitSquare(from, to), piece.Colour.Opposite()) {
			return false
		}
	}

	saved := g.SaveState()
	defer g.RestoreState(saved)

	makeMove(g, from, to)
	return !IsKingInCheck(g, piece.Colour)
}

// LegalDestinations returns the pseudo-legal destinations of the piece on from
// that are also legal.
func LegalDestinations(g *chess.GameState, from chess.Square) []chess.Square {
	candidates := PossibleMoves(g, from)
	legal := make([]chess.Square, 0, len(candidates))
	for _, to := range candidates {
		if IsMoveLegal(g, from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegalDestination reports whether to is among LegalDestinations(from).
func IsLegalDestination(g *chess.GameState, from, to chess.Square) bool {
	for _, candidate := range PossibleMoves(g, from) {
		if candidate == to {
			return IsMoveLegal(g, from, to)
		}
	}
	return false
}

// LegalMove is a legal (from, to) pair for the side being enumerated.
type LegalMove struct {
	From chess.Square
	To   chess.Square
}

// LegalMoves returns every legal move of the colour, origin squares in file order.
func LegalMoves(g *chess.GameState, colour chess.Colour) []LegalMove {
	var moves []LegalMove
	forEachPiece(g, colour, func(from chess.Square, _ chess.Piece) bool {
		for _, to := range LegalDestinations(g, from) {
			moves = append(moves, LegalMove{From: from, To: to})
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(g *chess.GameState, colour chess.Colour) bool {
	found := false
	forEachPiece(g, colour, func(from chess.Square, _ chess.Piece) bool {
		for _, to := range PossibleMoves(g, from) {
			if IsMoveLegal(g, from, to) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
