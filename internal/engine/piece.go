// Package engine implements the chess rules: per-piece move patterns, attack
// detection, legality filtering and move application.
package engine

import "github.com/lgbarn/chessduel/internal/chess"

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	noDestinations []chess.Square
)

// PossibleMoves returns the pseudo-legal destinations of the piece standing on from.
// Whether a move leaves the mover's own king in check is not considered here.
// The state is never modified. An empty or off-board origin yields no moves.
func PossibleMoves(g *chess.GameState, from chess.Square) []chess.Square {
	piece := g.Board.Get(from)
	if piece.IsEmpty() {
		return noDestinations
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(g, from, piece.Colour)
	case chess.Knight:
		return stepMoves(&g.Board, from, piece.Colour, knightOffsets)
	case chess.Bishop:
		return slidingMoves(&g.Board, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(&g.Board, from, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingMoves(&g.Board, from, piece.Colour, queenDirs)
	case chess.King:
		return append(stepMoves(&g.Board, from, piece.Colour, kingOffsets), castlingMoves(g, from, piece.Colour)...)
	}
	return noDestinations
}

// stepMoves returns the single-step destinations (knight jumps, king steps)
// that are empty or hold an enemy piece.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	moves := make([]chess.Square, 0, len(offsets))
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if board.IsEmpty(to) || board.IsEnemy(to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// countPossibleMoves returns len(PossibleMoves) for every piece of the colour.
func countPossibleMoves(g *chess.GameState, colour chess.Colour) int {
	count := 0
	forEachPiece(g, colour, func(sq chess.Square, _ chess.Piece) bool {
		count += len(PossibleMoves(g, sq))
		return true
	})
	return count
}

// Mobility returns the number of pseudo-legal destinations available to the colour.
func Mobility(g *chess.GameState, colour chess.Colour) int {
	return countPossibleMoves(g, colour)
}

// forEachPiece calls fn for every piece of the colour, file by file.
// Iteration stops when fn returns false.
func forEachPiece(g *chess.GameState, colour chess.Colour, fn func(chess.Square, chess.Piece) bool) {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := g.Board.Squares[file][rank]
			if p.IsEmpty() || p.Colour != colour {
				continue
			}
			if !fn(chess.Sq(file, rank), p) {
				return
			}
		}
	}
}
