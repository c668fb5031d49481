// Package render draws a game state for the front ends: a text board for
// terminals and an SVG image of the board.
package render

import (
	"strings"

	"github.com/lgbarn/chessduel/internal/chess"
)

// Highlights marks squares of interest on a rendered board.
type Highlights struct {
	Selected     chess.Square
	Destinations []chess.Square
	Checkers     []chess.Square

	// Check is the square of a king in check, or NoSquare.
	Check chess.Square

	// Promotion is the square of a pending promotion, or NoSquare.
	Promotion chess.Square
}

// NoHighlights is the empty set of highlights.
var NoHighlights = Highlights{Selected: chess.NoSquare, Check: chess.NoSquare, Promotion: chess.NoSquare}

// Source is the part of a session highlights are read from.
type Source interface {
	Selected() chess.Square
	Destinations() []chess.Square
	InCheck() bool
	Checkers() []chess.Square
	PendingPromotion() (chess.Square, bool)
	State() *chess.GameState
}

// HighlightsOf collects the selection, check and promotion squares of a session.
func HighlightsOf(src Source) Highlights {
	h := NoHighlights
	h.Selected = src.Selected()
	h.Destinations = src.Destinations()
	if src.InCheck() {
		g := src.State()
		h.Check = g.KingSquare(g.ToMove)
		h.Checkers = src.Checkers()
	}
	if sq, ok := src.PendingPromotion(); ok {
		h.Promotion = sq
	}
	return h
}

// TextOptions controls Text.
type TextOptions struct {
	// Unicode draws chess glyphs instead of FEN letters.
	Unicode bool

	// Flip draws the board from Black's side.
	Flip bool

	Highlights Highlights
}

// Text renders the board with file and rank labels. Destination squares are
// drawn as '*' when empty and bracketed when occupied; the selected piece and
// a checked king are bracketed too.
func Text(g *chess.GameState, opts TextOptions) string {
	var sb strings.Builder
	files := fileOrder(opts.Flip)

	writeFiles := func() {
		sb.WriteString("  ")
		for _, f := range files {
			sb.WriteString(" ")
			sb.WriteByte(byte('a' + f))
			sb.WriteString(" ")
		}
		sb.WriteByte('\n')
	}

	writeFiles()
	for _, rank := range rankOrder(opts.Flip) {
		label := byte('1' + rank)
		sb.WriteByte(label)
		sb.WriteByte(' ')
		for _, file := range files {
			sq := chess.Sq(file, rank)
			sb.WriteString(cell(g.Board.Get(sq), sq, opts))
		}
		sb.WriteByte(' ')
		sb.WriteByte(label)
		sb.WriteByte('\n')
	}
	writeFiles()
	return sb.String()
}

func cell(p chess.Piece, sq chess.Square, opts TextOptions) string {
	glyph := "."
	if !p.IsEmpty() {
		if opts.Unicode {
			glyph = string(p.Symbol())
		} else {
			glyph = string(p.Letter())
		}
	}

	h := opts.Highlights
	marked := sq == h.Selected || sq == h.Check || sq == h.Promotion || contains(h.Destinations, sq)
	switch {
	case !marked:
		return " " + glyph + " "
	case p.IsEmpty():
		return " * "
	}
	return "[" + glyph + "]"
}

func fileOrder(flip bool) []int {
	order := make([]int, chess.BoardSize)
	for i := range order {
		order[i] = i
		if flip {
			order[i] = chess.BoardSize - 1 - i
		}
	}
	return order
}

func rankOrder(flip bool) []int {
	order := make([]int, chess.BoardSize)
	for i := range order {
		order[i] = chess.BoardSize - 1 - i
		if flip {
			order[i] = i
		}
	}
	return order
}

func contains(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
