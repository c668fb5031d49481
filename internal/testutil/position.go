package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessduel/internal/chess"
)

// PositionOption adjusts a position built by Position.
type PositionOption func(*chess.GameState)

// ToMove sets the side to move.
func ToMove(c chess.Colour) PositionOption {
	return func(g *chess.GameState) {
		g.ToMove = c
	}
}

// EnPassant sets the en-passant target square.
func EnPassant(name string) PositionOption {
	return func(g *chess.GameState) {
		g.EnPassant = chess.MustSquare(name)
	}
}

// KingMoved marks the colour's king as having moved (no castling either side).
func KingMoved(c chess.Colour) PositionOption {
	return func(g *chess.GameState) {
		g.Castling.MarkKingMoved(c)
	}
}

// Position builds a game state from an eight-line diagram, rank 8 first.
// Pieces use FEN letters (uppercase White), '.' is an empty square and spaces are ignored.
// Castling rights are derived from piece placement: a king or rook away from its
// starting square counts as having moved.
func Position(t testing.TB, diagram string, opts ...PositionOption) *chess.GameState {
	t.Helper()

	g := chess.NewEmptyGameState()
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		t.Fatalf("Position: diagram has %d ranks, want %d", len(rows), chess.BoardSize)
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		if len(row) != chess.BoardSize {
			t.Fatalf("Position: rank %d has %d files, want %d", rank+1, len(row), chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			letter := row[file]
			if letter == '.' {
				continue
			}
			kind, ok := chess.ParseKind(letter)
			if !ok {
				t.Fatalf("Position: unknown piece %q on %s", letter, chess.Sq(file, rank))
			}
			colour := chess.White
			if letter >= 'a' && letter <= 'z' {
				colour = chess.Black
			}
			g.Place(chess.Sq(file, rank), chess.NewPiece(colour, kind))
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		home := c.HomeRank()
		if !g.Board.Get(chess.Sq(4, home)).Is(c, chess.King) {
			g.Castling.MarkKingMoved(c)
		}
		if !g.Board.Get(chess.Sq(0, home)).Is(c, chess.Rook) {
			g.Castling.MarkRookMoved(chess.Sq(0, home))
		}
		if !g.Board.Get(chess.Sq(7, home)).Is(c, chess.Rook) {
			g.Castling.MarkRookMoved(chess.Sq(7, home))
		}
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OracleFEN renders a state as a FEN string so it can be handed to an independent
// move generator for cross-checking. It is not a general FEN writer.
func OracleFEN(g *chess.GameState) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := g.Board.Get(chess.Sq(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if g.ToMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		home := c.HomeRank()
		if !g.Board.Get(chess.Sq(4, home)).Is(c, chess.King) {
			continue
		}
		k, q := "K", "Q"
		if c == chess.Black {
			k, q = "k", "q"
		}
		if g.Castling.CanCastleKingside(c) && g.Board.Get(chess.Sq(7, home)).Is(c, chess.Rook) {
			rights += k
		}
		if g.Castling.CanCastleQueenside(c) && g.Board.Get(chess.Sq(0, home)).Is(c, chess.Rook) {
			rights += q
		}
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')
	sb.WriteString(g.EnPassant.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
