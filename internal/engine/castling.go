package engine

import "github.com/lgbarn/chessduel/internal/chess"

const (
	kingFile          = 4
	kingsideRookFile  = chess.BoardSize - 1
	queensideRookFile = 0
)

// castlingMoves returns the synthesized castling destinations for a king on from:
// two files toward each rook whose castling right is intact, provided the king is
// not in check and every square between king and rook is empty. Whether the king
// crosses an attacked square is left to IsMoveLegal.
func castlingMoves(g *chess.GameState, from chess.Square, colour chess.Colour) []chess.Square {
	home := colour.HomeRank()
	if from != chess.Sq(kingFile, home) {
		return nil
	}
	kingside := g.Castling.CanCastleKingside(colour) &&
		g.Board.Get(chess.Sq(kingsideRookFile, home)).Is(colour, chess.Rook) &&
		isPathClear(&g.Board, from, chess.Sq(kingsideRookFile, home))
	queenside := g.Castling.CanCastleQueenside(colour) &&
		g.Board.Get(chess.Sq(queensideRookFile, home)).Is(colour, chess.Rook) &&
		isPathClear(&g.Board, from, chess.Sq(queensideRookFile, home))
	if !kingside && !queenside {
		return nil
	}
	if IsKingInCheck(g, colour) {
		return nil
	}

	var moves []chess.Square
	if kingside {
		moves = append(moves, chess.Sq(kingFile+2, home))
	}
	if queenside {
		moves = append(moves, chess.Sq(kingFile-2, home))
	}
	return moves
}

// isCastlingMove reports whether a king moving from -> to is castling.
func isCastlingMove(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && from.Rank == to.Rank && abs(to.File-from.File) == 2
}

// castlingRookSquares returns where the rook starts and lands for a castling king
// arriving on kingTo.
func castlingRookSquares(kingTo chess.Square) (rookFrom, rookTo chess.Square) {
	if kingTo.File > kingFile {
		return chess.Square{File: kingsideRookFile, Rank: kingTo.Rank}, chess.Square{File: kingFile + 1, Rank: kingTo.Rank}
	}
	return chess.Square{File: queensideRookFile, Rank: kingTo.Rank}, chess.Square{File: kingFile - 1, Rank: kingTo.Rank}
}

// castlingTransitSquare returns the square the king passes over while castling.
func castlingTransitSquare(from, to chess.Square) chess.Square {
	return chess.Square{File: (from.File + to.File) / 2, Rank: from.Rank}
}
