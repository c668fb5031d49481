package engine

import "github.com/lgbarn/chessduel/internal/chess"

// Status is the outcome of a position for the side being examined.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Ongoing"
}

// IsCheckmate returns true if the colour is in check and has no legal move.
func IsCheckmate(g *chess.GameState, colour chess.Colour) bool {
	return IsKingInCheck(g, colour) && !HasLegalMoves(g, colour)
}

// IsStalemate returns true if the colour is not in check and has no legal move.
func IsStalemate(g *chess.GameState, colour chess.Colour) bool {
	return !IsKingInCheck(g, colour) && !HasLegalMoves(g, colour)
}

// PositionStatus classifies the position for the colour with a single legal-move scan.
func PositionStatus(g *chess.GameState, colour chess.Colour) Status {
	if HasLegalMoves(g, colour) {
		return Ongoing
	}
	if IsKingInCheck(g, colour) {
		return Checkmate
	}
	return Stalemate
}

// ResultText returns the human-readable result of a finished game in which
// colour is the side left without a legal move. Ongoing yields "".
func ResultText(status Status, colour chess.Colour) string {
	switch status {
	case Checkmate:
		return "Checkmate! " + colour.Opposite().String() + " wins!"
	case Stalemate:
		return "Stalemate! Game drawn!"
	}
	return ""
}
