package engine

import "github.com/lgbarn/chessduel/internal/chess"

// IsSquareAttacked returns true if the square is attacked by the given colour.
//
// King attackers cover every square within one step, pawn attackers the two
// diagonal squares ahead of them, whatever stands there. Every other attacker
// counts only if sq is one of its pseudo-legal destinations, so a square held by
// one of byColour's own pieces is not attacked by its knights or sliders.
func IsSquareAttacked(g *chess.GameState, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	board := &g.Board

	// Check king attacks
	for _, offset := range kingOffsets {
		if board.Get(sq.Offset(offset[0], offset[1])).Is(byColour, chess.King) {
			return true
		}
	}

	// Check pawn attacks
	pawnDir := byColour.PawnDirection()
	for df := -1; df <= 1; df += 2 {
		if board.Get(sq.Offset(df, -pawnDir)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	target := board.Get(sq)
	if !target.IsEmpty() && target.Colour == byColour {
		return false
	}

	// Check knight attacks
	for _, offset := range knightOffsets {
		if board.Get(sq.Offset(offset[0], offset[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	// Check sliding pieces (bishop, queen) along diagonals
	for _, dir := range diagonalDirs {
		p := board.Get(firstPieceAlong(board, sq, dir))
		if p.Is(byColour, chess.Bishop) || p.Is(byColour, chess.Queen) {
			return true
		}
	}

	// Check sliding pieces (rook, queen) along straight lines
	for _, dir := range straightDirs {
		p := board.Get(firstPieceAlong(board, sq, dir))
		if p.Is(byColour, chess.Rook) || p.Is(byColour, chess.Queen) {
			return true
		}
	}

	return false
}

// IsKingInCheck returns true if the given colour's king is attacked.
// A colour without a king on the board is never in check.
func IsKingInCheck(g *chess.GameState, colour chess.Colour) bool {
	kingSq := g.KingSquare(colour)
	if !kingSq.Valid() {
		return false
	}
	return IsSquareAttacked(g, kingSq, colour.Opposite())
}

// CheckingPieces returns the squares of every opposing piece whose pseudo-legal
// destinations include the colour's king square. It exists for highlighting; the
// search never calls it.
func CheckingPieces(g *chess.GameState, colour chess.Colour) []chess.Square {
	kingSq := g.KingSquare(colour)
	if !kingSq.Valid() {
		return nil
	}

	var checkers []chess.Square
	forEachPiece(g, colour.Opposite(), func(from chess.Square, _ chess.Piece) bool {
		for _, to := range PossibleMoves(g, from) {
			if to == kingSq {
				checkers = append(checkers, from)
				break
			}
		}
		return true
	})
	return checkers
}
