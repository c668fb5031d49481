// Package chess provides core chess types and the game state the engine operates on.
package chess

import (
	chesserrors "github.com/lgbarn/chessduel/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (the rank step of a pawn advance).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank holding the colour's pieces at the start of the game.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank the colour's pawns start on.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank for the colour's pawns.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	None Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// pieceValues holds the standard relative material values in centipawns.
var pieceValues = [NumKinds]int{0, 100, 320, 330, 500, 900, 20000}

// Value returns the material value of the kind in centipawns.
func (k Kind) Value() int {
	if k < 0 || k >= NumKinds {
		return 0
	}
	return pieceValues[k]
}

// ParseKind converts a promotion letter (q, r, b, n, case-insensitive) into a Kind.
func ParseKind(letter byte) (Kind, bool) {
	switch letter {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'k', 'K':
		return King, true
	case 'p', 'P':
		return Pawn, true
	}
	return None, false
}

// Piece is an immutable (kind, colour) pair. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the piece is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether the piece has the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour && kind != None
}

// Letter returns the FEN-style letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

var (
	whiteSymbols = []rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
	blackSymbols = []rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}
)

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() rune {
	if p.Kind <= None || p.Kind >= NumKinds {
		return ' '
	}
	if p.Colour == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a (file, rank) pair; file 0 is the a-file and rank 0 is White's back rank.
type Square struct {
	File int8
	Rank int8
}

// NoSquare marks the absence of a square (no en-passant target, no pending promotion).
var NoSquare = Square{File: -1, Rank: -1}

// Sq creates a square from integer coordinates.
func Sq(file, rank int) Square {
	return Square{File: int8(file), Rank: int8(rank)}
}

// Valid reports whether the square lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by (df, dr). The result may be off-board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + int8(df), Rank: s.Rank + int8(dr)}
}

// String returns the algebraic name of the square ("e4"), or "-" when off-board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, chesserrors.Wrapf(chesserrors.ErrInvalidSquare, "%q", name)
	}
	file := name[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	sq := Square{File: int8(file) - 'a', Rank: int8(name[1]) - '1'}
	if !sq.Valid() {
		return NoSquare, chesserrors.Wrapf(chesserrors.ErrInvalidSquare, "%q", name)
	}
	return sq, nil
}

// MustSquare parses a square name and panics on malformed input. Intended for tests and tables.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
