package engine

import "github.com/lgbarn/chessduel/internal/chess"

// slidingMoves casts a ray along each direction until the board edge or an
// occupied square. An occupied square is included only when it holds an enemy piece.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	moves := make([]chess.Square, 0, 14)
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// firstPieceAlong returns the first occupied square met walking from sq along dir,
// or NoSquare when the ray reaches the edge.
func firstPieceAlong(board *chess.Board, sq chess.Square, dir [2]int) chess.Square {
	to := sq.Offset(dir[0], dir[1])
	for to.Valid() {
		if !board.Get(to).IsEmpty() {
			return to
		}
		to = to.Offset(dir[0], dir[1])
	}
	return chess.NoSquare
}

// isPathClear reports whether every square strictly between from and to is empty.
// The two squares must share a file, rank or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	df := sign(int(to.File) - int(from.File))
	dr := sign(int(to.Rank) - int(from.Rank))

	sq := from.Offset(df, dr)
	for sq != to {
		if !sq.Valid() || !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(df, dr)
	}
	return true
}
