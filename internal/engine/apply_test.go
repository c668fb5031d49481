package engine

import (
	"testing"

	"github.com/lgbarn/chessduel/internal/chess"
	chesserrors "github.com/lgbarn/chessduel/internal/errors"
	"github.com/lgbarn/chessduel/internal/testutil"
)

// play applies the moves in order, failing the test on the first error.
func play(t *testing.T, g *chess.GameState, moves ...string) chess.Move {
	t.Helper()
	var last chess.Move
	for _, m := range moves {
		from, to := sq(m[:2]), sq(m[2:4])
		if !IsLegalDestination(g, from, to) {
			t.Fatalf("%s is not legal in\n%s", m, g)
		}
		var err error
		last, err = ApplyMove(g, from, to)
		if err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", m, err)
		}
	}
	return last
}

func TestApplyMove_DoublePushThenStraightCapture(t *testing.T) {
	g := chess.NewGameState()

	m := play(t, g, "e2e4")
	if !m.Flags.Has(chess.FlagDoublePush) {
		t.Errorf("e2e4 flags = %b, want double push", m.Flags)
	}
	if g.EnPassant != sq("e3") {
		t.Errorf("EnPassant after e2e4 = %s, want e3", g.EnPassant)
	}

	play(t, g, "d7d5")
	if g.EnPassant != sq("d6") {
		t.Errorf("EnPassant after d7d5 = %s, want d6", g.EnPassant)
	}

	m = play(t, g, "e4d5")
	if got := g.PieceAt(sq("d5")); got != chess.W(chess.Pawn) {
		t.Errorf("d5 = %v, want White Pawn", got)
	}
	if g.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant after exd5 = %s, want none", g.EnPassant)
	}
	if m.Flags.Has(chess.FlagEnPassant) || !m.IsCapture() || m.Captured != chess.B(chess.Pawn) {
		t.Errorf("exd5 = %+v, want plain capture of a black pawn", m)
	}
	if g.ToMove != chess.Black || g.Plies != 3 {
		t.Errorf("ToMove, Plies = %s, %d; want Black, 3", g.ToMove, g.Plies)
	}
}

func TestApplyMove_EnPassant(t *testing.T) {
	g := chess.NewGameState()
	m := play(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")

	want := chess.Move{
		From:     sq("e5"),
		To:       sq("d6"),
		Piece:    chess.W(chess.Pawn),
		Captured: chess.B(chess.Pawn),
		Flags:    chess.FlagEnPassant | chess.FlagCapture,
	}
	testutil.AssertEqual(t, m, want, "en passant move record")

	if !g.Board.IsEmpty(sq("d5")) {
		t.Errorf("d5 = %v after en passant, want empty", g.PieceAt(sq("d5")))
	}
	if !g.Board.IsEmpty(sq("e5")) {
		t.Errorf("e5 = %v after en passant, want empty", g.PieceAt(sq("e5")))
	}
	if got := g.PieceAt(sq("d6")); got != chess.W(chess.Pawn) {
		t.Errorf("d6 = %v, want White Pawn", got)
	}
}

func TestApplyMove_EnPassantExpiresAfterOneMove(t *testing.T) {
	g := chess.NewGameState()
	play(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "a2a3", "a6a5")

	if IsLegalDestination(g, sq("e5"), sq("d6")) {
		t.Error("en passant still available a move later")
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name     string
		colour   chess.Colour
		from, to string
		rookFrom string
		rookTo   string
		flag     chess.MoveFlags
	}{
		{"white kingside", chess.White, "e1", "g1", "h1", "f1", chess.FlagCastleKingside},
		{"white queenside", chess.White, "e1", "c1", "a1", "d1", chess.FlagCastleQueenside},
		{"black kingside", chess.Black, "e8", "g8", "h8", "f8", chess.FlagCastleKingside},
		{"black queenside", chess.Black, "e8", "c8", "a8", "d8", chess.FlagCastleQueenside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := testutil.Position(t, castlingDiagram, testutil.ToMove(tt.colour))

			m, err := ApplyMove(g, sq(tt.from), sq(tt.to))
			testutil.AssertNoError(t, err, "ApplyMove")

			if !m.Flags.Has(tt.flag) || !m.IsCastle() {
				t.Errorf("flags = %b, want %b", m.Flags, tt.flag)
			}
			if got := g.PieceAt(sq(tt.to)); !got.Is(tt.colour, chess.King) {
				t.Errorf("%s = %v, want king", tt.to, got)
			}
			if got := g.PieceAt(sq(tt.rookTo)); !got.Is(tt.colour, chess.Rook) {
				t.Errorf("%s = %v, want rook", tt.rookTo, got)
			}
			if !g.Board.IsEmpty(sq(tt.rookFrom)) || !g.Board.IsEmpty(sq(tt.from)) {
				t.Errorf("origin squares not vacated:\n%s", g)
			}
			if g.KingSquare(tt.colour) != sq(tt.to) {
				t.Errorf("king cache = %s, want %s", g.KingSquare(tt.colour), tt.to)
			}
			if g.Castling.CanCastleKingside(tt.colour) || g.Castling.CanCastleQueenside(tt.colour) {
				t.Error("castling rights survive castling")
			}
			other := tt.colour.Opposite()
			if !g.Castling.CanCastleKingside(other) || !g.Castling.CanCastleQueenside(other) {
				t.Errorf("%s castling rights changed", other)
			}
			testutil.AssertNoError(t, g.VerifyKingCache(), "king cache")
		})
	}
}

func TestApplyMove_RookMovesAndCapturesClearRights(t *testing.T) {
	g := testutil.Position(t, castlingDiagram)

	play(t, g, "a1a2")
	if g.Castling.CanCastleQueenside(chess.White) {
		t.Error("white queenside right survives a rook move")
	}
	if !g.Castling.CanCastleKingside(chess.White) {
		t.Error("white kingside right lost after the queenside rook moved")
	}

	play(t, g, "h8h1")
	if g.Castling.CanCastleKingside(chess.White) {
		t.Error("white kingside right survives the rook being captured")
	}
	if g.Castling.CanCastleKingside(chess.Black) {
		t.Error("black kingside right survives a rook move")
	}
	if !g.Castling.CanCastleQueenside(chess.Black) {
		t.Error("black queenside right lost")
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		colour   chess.Colour
		captured chess.Piece
	}{
		{"white push", "a7", "a8", chess.White, chess.NoPiece},
		{"white capture", "a7", "b8", chess.White, chess.B(chess.Rook)},
		{"black push", "a2", "a1", chess.Black, chess.NoPiece},
		{"black capture", "a2", "b1", chess.Black, chess.W(chess.Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := testutil.Position(t, `
				. r . . k . . .
				P . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				p . . . . . . .
				. R . . K . . .`, testutil.ToMove(tt.colour))

			m, err := ApplyMove(g, sq(tt.from), sq(tt.to))
			testutil.AssertNoError(t, err, "ApplyMove")

			if got := g.PieceAt(sq(tt.to)); !got.Is(tt.colour, chess.Queen) {
				t.Errorf("%s = %v, want %s Queen", tt.to, got, tt.colour)
			}
			if m.Promotion != chess.Queen || !m.Flags.Has(chess.FlagPromotion) {
				t.Errorf("move = %+v, want queen promotion", m)
			}
			if m.Captured != tt.captured {
				t.Errorf("captured = %v, want %v", m.Captured, tt.captured)
			}
			if m.String() != tt.from+tt.to+"q" {
				t.Errorf("String() = %q, want %q", m.String(), tt.from+tt.to+"q")
			}
		})
	}
}

func TestApplyMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Square
		want     error
	}{
		{"empty origin", sq("e4"), sq("e5"), chesserrors.ErrNoPiece},
		{"off-board", sq("e2"), chess.Sq(4, 8), chesserrors.ErrInvalidSquare},
		{"same square", sq("e2"), sq("e2"), chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := chess.NewGameState()

			m, err := ApplyMove(g, tt.from, tt.to)
			testutil.AssertErrorIs(t, err, tt.want)
			if !m.IsNull() {
				t.Errorf("move = %v, want null move", m)
			}
			testutil.AssertEqual(t, *g, *chess.NewGameState(), "state after failed ApplyMove")
		})
	}
}

// TestApplyMove_RestoreIsExact checks that restoring the snapshot taken before
// a committed move gives back an identical state for every kind of move.
func TestApplyMove_RestoreIsExact(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		opts    []testutil.PositionOption
		move    string
	}{
		{name: "plain", diagram: kiwipeteDiagram, move: "e2d1"},
		{name: "capture", diagram: kiwipeteDiagram, move: "e5f7"},
		{name: "kingside castle", diagram: castlingDiagram, move: "e1g1"},
		{name: "queenside castle", diagram: castlingDiagram, move: "e1c1"},
		{name: "promotion", diagram: `
			. r . . k . . .
			P . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . K . . .`, move: "a7b8"},
		{name: "en passant", diagram: `
			. . . . k . . .
			. . . . . . . .
			. . . . . . . .
			. . . p P . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . K . . .`, opts: []testutil.PositionOption{testutil.EnPassant("d6")}, move: "e5d6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := testutil.Position(t, tt.diagram, tt.opts...)
			want := *g
			saved := g.SaveState()

			_, err := ApplyMove(g, sq(tt.move[:2]), sq(tt.move[2:]))
			testutil.AssertNoError(t, err, "ApplyMove(%s)", tt.move)
			if *g == want {
				t.Fatalf("ApplyMove(%s) left the state unchanged", tt.move)
			}

			g.RestoreState(saved)
			testutil.AssertEqual(t, *g, want, "state after restore")
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	g := testutil.Position(b, kiwipeteDiagram)
	from, to := sq("e1"), sq("g1")
	saved := g.SaveState()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		makeMove(g, from, to)
		g.RestoreState(saved)
	}
}
