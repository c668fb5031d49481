package chess

import (
	"fmt"

	chesserrors "github.com/lgbarn/chessduel/internal/errors"
)

// Board is the 8x8 grid of squares, indexed Squares[file][rank].
// The board owns its pieces by value, so copying a Board copies every piece.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// InBounds reports whether the square lies on the board.
func (b *Board) InBounds(sq Square) bool {
	return sq.Valid()
}

// Get returns the piece on the given square, or NoPiece when the square is off-board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// IsEmpty reports whether the square is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.Squares[sq.File][sq.Rank].IsEmpty()
}

// IsEnemy reports whether the square is on the board and holds a piece of the other colour.
func (b *Board) IsEnemy(sq Square, colour Colour) bool {
	if !sq.Valid() {
		return false
	}
	p := b.Squares[sq.File][sq.Rank]
	return !p.IsEmpty() && p.Colour != colour
}

// CastlingRights records whether each king and rook has ever moved.
// Indexed by Colour.
type CastlingRights struct {
	KingMoved          [NumColours]bool
	KingsideRookMoved  [NumColours]bool
	QueensideRookMoved [NumColours]bool
}

// CanCastleKingside reports whether neither the king nor the h-file rook has moved.
func (c *CastlingRights) CanCastleKingside(colour Colour) bool {
	return !c.KingMoved[colour] && !c.KingsideRookMoved[colour]
}

// CanCastleQueenside reports whether neither the king nor the a-file rook has moved.
func (c *CastlingRights) CanCastleQueenside(colour Colour) bool {
	return !c.KingMoved[colour] && !c.QueensideRookMoved[colour]
}

// MarkKingMoved records that the colour's king has moved.
func (c *CastlingRights) MarkKingMoved(colour Colour) {
	c.KingMoved[colour] = true
}

// MarkRookMoved records a rook move from (or a capture on) a corner square.
// Squares other than the four corners are ignored.
func (c *CastlingRights) MarkRookMoved(sq Square) {
	var colour Colour
	switch int(sq.Rank) {
	case White.HomeRank():
		colour = White
	case Black.HomeRank():
		colour = Black
	default:
		return
	}
	switch sq.File {
	case 0:
		c.QueensideRookMoved[colour] = true
	case BoardSize - 1:
		c.KingsideRookMoved[colour] = true
	}
}

// GameState is the complete position: board plus side to move, en-passant target,
// castling rights, cached king squares, pending promotion and the terminal flag.
// It contains only arrays and scalars, so assigning a GameState is a deep copy.
type GameState struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Square a pawn may capture into on this move only, or NoSquare.
	EnPassant Square

	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	Kings [NumColours]Square

	// Square of a pawn awaiting a promotion choice, or NoSquare.
	Promotion Square

	// Terminal flag and human-readable result once the game ends.
	Over   bool
	Result string

	// Number of half-moves applied since the start of the game.
	Plies int
}

// NewEmptyGameState creates a state with an empty board and White to move.
func NewEmptyGameState() *GameState {
	return &GameState{
		ToMove:    White,
		EnPassant: NoSquare,
		Kings:     [NumColours]Square{NoSquare, NoSquare},
		Promotion: NoSquare,
	}
}

// NewGameState creates a state holding the standard chess starting position.
func NewGameState() *GameState {
	g := NewEmptyGameState()
	g.SetupInitialPosition()
	return g
}

// SetupInitialPosition sets up the standard chess starting position.
func (g *GameState) SetupInitialPosition() {
	*g = *NewEmptyGameState()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		g.Place(Sq(file, White.HomeRank()), W(backRank[file]))
		g.Place(Sq(file, White.PawnStartRank()), W(Pawn))
		g.Place(Sq(file, Black.PawnStartRank()), B(Pawn))
		g.Place(Sq(file, Black.HomeRank()), B(backRank[file]))
	}
}

// Place puts a piece on a square, keeping the king cache current.
// Placing NoPiece clears the square.
func (g *GameState) Place(sq Square, piece Piece) {
	prev := g.Board.Get(sq)
	if prev.Kind == King && g.Kings[prev.Colour] == sq {
		g.Kings[prev.Colour] = NoSquare
	}
	g.Board.Set(sq, piece)
	if piece.Kind == King {
		g.Kings[piece.Colour] = sq
	}
}

// KingSquare returns the cached square of the colour's king.
func (g *GameState) KingSquare(colour Colour) Square {
	return g.Kings[colour]
}

// SetKingSquare updates the king cache after the colour's king moved.
func (g *GameState) SetKingSquare(colour Colour, sq Square) {
	g.Kings[colour] = sq
}

// PieceAt returns the piece on the square.
func (g *GameState) PieceAt(sq Square) Piece {
	return g.Board.Get(sq)
}

// HasPendingPromotion reports whether a pawn is waiting for a promotion choice.
func (g *GameState) HasPendingPromotion() bool {
	return g.Promotion.Valid()
}

// VerifyKingCache checks that each cached king square holds that colour's king.
// A missing king is only reported when a king of that colour is on the board.
func (g *GameState) VerifyKingCache() error {
	for _, colour := range []Colour{White, Black} {
		sq := g.Kings[colour]
		if sq.Valid() && g.Board.Get(sq).Is(colour, King) {
			continue
		}
		if found := g.findKing(colour); found.Valid() || sq.Valid() {
			return &chesserrors.InvariantError{
				Op:     "king cache",
				Square: sq.String(),
				Detail: fmt.Sprintf("%s king cached on %s but found on %s", colour, sq, found),
			}
		}
	}
	return nil
}

// findKing scans the board for the colour's king.
func (g *GameState) findKing(colour Colour) Square {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if g.Board.Squares[file][rank].Is(colour, King) {
				return Sq(file, rank)
			}
		}
	}
	return NoSquare
}

// Snapshot is an independent deep copy of a GameState, used for search rollback and undo.
type Snapshot struct {
	state GameState
}

// SaveState captures the current game state for later restoration.
func (g *GameState) SaveState() Snapshot {
	return Snapshot{state: *g}
}

// RestoreState restores the game to a previously saved state.
func (g *GameState) RestoreState(s Snapshot) {
	*g = s.state
}

// State returns a copy of the state held by the snapshot.
func (s Snapshot) State() GameState {
	return s.state
}

// Copy creates a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	newState := &GameState{}
	*newState = *g
	return newState
}

// String renders the board as eight lines of FEN-style letters, rank 8 first.
func (g *GameState) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			buf = append(buf, g.Board.Squares[file][rank].Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
