package engine

import (
	"github.com/lgbarn/chessduel/internal/chess"
	chesserrors "github.com/lgbarn/chessduel/internal/errors"
)

// ApplyMove commits the move from -> to and resolves its side effects:
// en-passant capture, castling rook relocation, castling-rights flags, the
// en-passant target, promotion to a Queen and the king cache. Finally it flips
// the side to move.
//
// ApplyMove does not check legality; callers filter with IsMoveLegal first.
// It fails without mutating the state when either square is off the board,
// the squares coincide or the origin is empty.
func ApplyMove(g *chess.GameState, from, to chess.Square) (chess.Move, error) {
	if !from.Valid() || !to.Valid() {
		return chess.NullMove, chesserrors.Wrapf(chesserrors.ErrInvalidSquare, "%s-%s", from, to)
	}
	if from == to {
		return chess.NullMove, chesserrors.Wrapf(chesserrors.ErrIllegalMove, "%s-%s", from, to)
	}
	if g.Board.Get(from).IsEmpty() {
		return chess.NullMove, chesserrors.Wrapf(chesserrors.ErrNoPiece, "%s", from)
	}
	return makeMove(g, from, to), nil
}

// makeMove performs a move whose origin is known to hold a piece.
func makeMove(g *chess.GameState, from, to chess.Square) chess.Move {
	piece := g.Board.Get(from)
	colour := piece.Colour
	move := chess.Move{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: g.Board.Get(to),
	}

	switch piece.Kind {
	case chess.Pawn:
		applyPawnMove(g, &move)
	case chess.King:
		applyKingMove(g, &move)
	default:
		g.Board.Set(to, piece)
		g.Board.Set(from, chess.NoPiece)
		g.EnPassant = chess.NoSquare
	}

	if piece.Kind == chess.Rook {
		g.Castling.MarkRookMoved(from)
	}
	if move.Captured.Kind == chess.Rook {
		g.Castling.MarkRookMoved(to)
	}
	if !move.Captured.IsEmpty() {
		move.Flags |= chess.FlagCapture
	}

	g.ToMove = colour.Opposite()
	g.Plies++
	return move
}

// applyPawnMove moves a pawn, handling en passant, the double push and promotion.
func applyPawnMove(g *chess.GameState, move *chess.Move) {
	from, to := move.From, move.To
	colour := move.Piece.Colour

	if isEnPassantCapture(g, from, to, colour) {
		victim := enPassantVictim(from, to)
		move.Captured = g.Board.Get(victim)
		move.Flags |= chess.FlagEnPassant
		g.Board.Set(victim, chess.NoPiece)
	}

	g.Board.Set(from, chess.NoPiece)
	if isPromotionSquare(to, colour) {
		move.Promotion = chess.Queen
		move.Flags |= chess.FlagPromotion
		g.Board.Set(to, chess.NewPiece(colour, chess.Queen))
	} else {
		g.Board.Set(to, move.Piece)
	}

	// Set en passant square if double pawn push
	if abs(to.Rank-from.Rank) == 2 {
		g.EnPassant = chess.Square{File: from.File, Rank: (from.Rank + to.Rank) / 2}
		move.Flags |= chess.FlagDoublePush
	} else {
		g.EnPassant = chess.NoSquare
	}
}

// applyKingMove moves a king, relocating the rook when castling.
func applyKingMove(g *chess.GameState, move *chess.Move) {
	from, to := move.From, move.To
	colour := move.Piece.Colour

	if isCastlingMove(move.Piece, from, to) {
		rookFrom, rookTo := castlingRookSquares(to)
		rook := g.Board.Get(rookFrom)
		g.Board.Set(rookFrom, chess.NoPiece)
		g.Board.Set(rookTo, rook)
		g.Castling.MarkRookMoved(rookFrom)
		if to.File > from.File {
			move.Flags |= chess.FlagCastleKingside
		} else {
			move.Flags |= chess.FlagCastleQueenside
		}
	}

	g.Board.Set(from, chess.NoPiece)
	g.Board.Set(to, move.Piece)
	g.SetKingSquare(colour, to)
	g.Castling.MarkKingMoved(colour)
	g.EnPassant = chess.NoSquare
}
