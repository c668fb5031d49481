package chess

import "strings"

// MoveFlags records the special effects a committed move had.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagDoublePush
	FlagPromotion
)

// Has reports whether all bits of f2 are set in f.
func (f MoveFlags) Has(f2 MoveFlags) bool {
	return f&f2 == f2
}

// Move describes a move from one square to another together with what it did.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is the
	// pawn removed from beside the destination square.
	Captured Piece

	// The kind promoted to (None if not a promotion).
	Promotion Kind

	Flags MoveFlags
}

// NullMove is the zero move, used for "no move".
var NullMove = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether the move is the "no move" value.
func (m Move) IsNull() bool {
	return !m.From.Valid() || !m.To.Valid()
}

// IsCapture reports whether the move captured a piece.
func (m Move) IsCapture() bool {
	return m.Flags.Has(FlagCapture)
}

// IsCastle reports whether the move was castling in either direction.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != None {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}
