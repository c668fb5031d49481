package engine

import (
	"testing"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/testutil"
)

func TestIsSquareAttacked_InitialPosition(t *testing.T) {
	g := chess.NewGameState()

	tests := []struct {
		square string
		by     chess.Colour
		want   bool
	}{
		{"e3", chess.White, true},  // d2 and f2 pawns
		{"f3", chess.White, true},  // g1 knight
		{"e4", chess.White, false}, // pawns only reach the third rank
		{"e6", chess.Black, true},
		{"e5", chess.Black, false},
		{"d1", chess.White, true}, // king and queen neighbours
		{"a6", chess.Black, true}, // b8 knight and b7 pawn
	}

	for _, tt := range tests {
		if got := IsSquareAttacked(g, sq(tt.square), tt.by); got != tt.want {
			t.Errorf("IsSquareAttacked(%s, %s) = %v, want %v", tt.square, tt.by, got, tt.want)
		}
	}
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		square  string
		by      chess.Colour
		want    bool
	}{
		{
			name: "pawn attacks diagonally forward",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . P . . .
				. . . . . . . .
				. . . . . . . .
				. . . . K . . .`,
			square: "f5", by: chess.White, want: true,
		},
		{
			name: "pawn does not attack straight ahead",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . P . . .
				. . . . . . . .
				. . . . . . . .
				. . . . K . . .`,
			square: "e5", by: chess.White, want: false,
		},
		{
			name: "black pawn attacks toward rank one",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . p . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . K . . .`,
			square: "d4", by: chess.Black, want: true,
		},
		{
			name: "pawn attack covers a square held by its own side",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . N . . . .
				. . . . P . . .
				. . . . K . . .`,
			square: "d3", by: chess.White, want: true,
		},
		{
			name: "king attacks every neighbouring square",
			diagram: `
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . k . . .
				. . . n . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . K . . .`,
			square: "d4", by: chess.Black, want: true,
		},
		{
			name: "knight does not attack a square held by its own side",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . B . . . . .
				. . . . . . . .
				. N . . K . . .`,
			square: "c3", by: chess.White, want: false,
		},
		{
			name: "rook attack is blocked",
			diagram: `
				r . . . k . . .
				. . . . . . . .
				. . . . . . . .
				p . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . K . . .`,
			square: "a1", by: chess.Black, want: false,
		},
		{
			name: "bishop attacks along an open diagonal",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				b . . . K . . .`,
			square: "h8", by: chess.Black, want: true,
		},
		{
			name: "queen attacks an enemy piece at the end of a ray",
			diagram: `
				. . . . k . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				q . . . K . . .`,
			square: "e1", by: chess.Black, want: true,
		},
		{
			name: "off-board square is never attacked",
			diagram: castlingDiagram,
			square: "", by: chess.White, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := testutil.Position(t, tt.diagram)
			square := chess.NoSquare
			if tt.square != "" {
				square = sq(tt.square)
			}

			if got := IsSquareAttacked(g, square, tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %s) = %v, want %v", square, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsKingInCheck(t *testing.T) {
	g := chess.NewGameState()
	if IsKingInCheck(g, chess.White) || IsKingInCheck(g, chess.Black) {
		t.Fatal("initial position reports a king in check")
	}

	g = testutil.Position(t, scholarsMateDiagram, testutil.ToMove(chess.Black))
	if !IsKingInCheck(g, chess.Black) {
		t.Error("IsKingInCheck(Black) = false after Qxf7, want true")
	}
	if IsKingInCheck(g, chess.White) {
		t.Error("IsKingInCheck(White) = true, want false")
	}
}

func TestIsKingInCheck_NoKing(t *testing.T) {
	g := testutil.Position(t, `
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		q . . . . . . K`)

	if IsKingInCheck(g, chess.Black) {
		t.Error("IsKingInCheck(Black) = true with no black king, want false")
	}
	if !IsKingInCheck(g, chess.White) {
		t.Error("IsKingInCheck(White) = false, want true")
	}
}

func TestCheckingPieces(t *testing.T) {
	g := testutil.Position(t, `
		. . . . k . . .
		. . . . . . . .
		. . . N . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . R . . K`, testutil.ToMove(chess.Black))

	testutil.AssertEqual(t, names(CheckingPieces(g, chess.Black)), []string{"d6", "e1"}, "double check")
	testutil.AssertEqual(t, names(CheckingPieces(g, chess.White)), []string{}, "white is not in check")
}
