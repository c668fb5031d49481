package engine

import (
	"sort"

	"github.com/lgbarn/chessduel/internal/chess"
)

// Diagrams shared by several tests, rank 8 first.
const (
	kiwipeteDiagram = `
		r . . . k . . r
		p . p p q p b .
		b n . . p n p .
		. . . P N . . .
		. p . . P . . .
		. . N . . Q . p
		P P P B B P P P
		R . . . K . . R`

	castlingDiagram = `
		r . . . k . . r
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		R . . . K . . R`

	scholarsMateDiagram = `
		r . b q k b . r
		p p p p . Q p p
		. . n . . n . .
		. . . . p . . .
		. . B . P . . .
		. . . . . . . .
		P P P P . P P P
		R N B . K . N R`
)

// names returns the sorted algebraic names of the squares.
func names(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

// sq is shorthand for chess.MustSquare.
func sq(name string) chess.Square {
	return chess.MustSquare(name)
}
