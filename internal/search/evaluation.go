package search

import (
	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/engine"
)

// Evaluation weights in centipawns.
const (
	notCastledPenalty  = 20
	homeSquareBonus    = 10
	castledSquareBonus = 5
	inCheckPenalty     = 50

	centerAttackBonus = 5
	centerPieceBonus  = 3

	doubledPawnPenalty  = 10
	isolatedPawnPenalty = 15
	passedPawnBonus     = 20

	developedPieceBonus = 5
)

// centerSquares are d4, d5, e4 and e5.
var centerSquares = []chess.Square{chess.Sq(3, 3), chess.Sq(3, 4), chess.Sq(4, 3), chess.Sq(4, 4)}

// Terms holds each evaluation component as own score minus opponent score.
type Terms struct {
	Material   int
	Mobility   int
	KingSafety int
	Center     int
	Pawns      int
	Activity   int
}

// Total returns the sum of all terms.
func (t Terms) Total() int {
	return t.Material + t.Mobility + t.KingSafety + t.Center + t.Pawns + t.Activity
}

// Evaluate returns the static score of the position from side's point of view.
// Positive values favour side. The score is antisymmetric:
// Evaluate(g, White) == -Evaluate(g, Black).
func Evaluate(g *chess.GameState, side chess.Colour) int {
	return EvaluateTerms(g, side).Total()
}

// EvaluateTerms returns the individual evaluation components for side.
func EvaluateTerms(g *chess.GameState, side chess.Colour) Terms {
	opp := side.Opposite()
	return Terms{
		Material:   material(g, side) - material(g, opp),
		Mobility:   engine.Mobility(g, side) - engine.Mobility(g, opp),
		KingSafety: kingSafety(g, side) - kingSafety(g, opp),
		Center:     centerControl(g, side) - centerControl(g, opp),
		Pawns:      pawnStructure(g, side) - pawnStructure(g, opp),
		Activity:   activity(g, side) - activity(g, opp),
	}
}

func material(g *chess.GameState, colour chess.Colour) int {
	score := 0
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if p := g.Board.Squares[file][rank]; !p.IsEmpty() && p.Colour == colour {
				score += p.Kind.Value()
			}
		}
	}
	return score
}

// kingSafety penalises a king that has never moved (so has not castled),
// rewards the home square and the castled squares, and penalises check.
func kingSafety(g *chess.GameState, colour chess.Colour) int {
	safety := 0
	if !g.Castling.KingMoved[colour] {
		safety -= notCastledPenalty
	}

	king := g.KingSquare(colour)
	if king.Valid() && int(king.Rank) == colour.HomeRank() {
		switch king.File {
		case 4:
			safety += homeSquareBonus
		case 2, 6:
			safety += castledSquareBonus
		}
	}

	if engine.IsKingInCheck(g, colour) {
		safety -= inCheckPenalty
	}
	return safety
}

// centerControl rewards attacked center squares and non-king pieces on the
// central sixteen squares.
func centerControl(g *chess.GameState, colour chess.Colour) int {
	control := 0
	for _, sq := range centerSquares {
		if engine.IsSquareAttacked(g, sq, colour) {
			control += centerAttackBonus
		}
	}

	for file := 2; file <= 5; file++ {
		for rank := 2; rank <= 5; rank++ {
			p := g.Board.Squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour && p.Kind != chess.King {
				control += centerPieceBonus
			}
		}
	}
	return control
}

// pawnStructure scores doubled, isolated and passed pawns. A doubled pawn is
// penalised once for every other pawn of its colour on the same file.
func pawnStructure(g *chess.GameState, colour chess.Colour) int {
	var own, enemy [chess.BoardSize][]int
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := g.Board.Squares[file][rank]
			if p.Kind != chess.Pawn {
				continue
			}
			if p.Colour == colour {
				own[file] = append(own[file], rank)
			} else {
				enemy[file] = append(enemy[file], rank)
			}
		}
	}

	doubled, isolated, passed := 0, 0, 0
	dir := colour.PawnDirection()
	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range own[file] {
			doubled += len(own[file]) - 1

			hasNeighbour := (file > 0 && len(own[file-1]) > 0) ||
				(file < chess.BoardSize-1 && len(own[file+1]) > 0)
			if !hasNeighbour {
				isolated++
			}

			if !blockedByEnemyPawn(enemy, file, rank, dir) {
				passed++
			}
		}
	}

	return passed*passedPawnBonus - doubled*doubledPawnPenalty - isolated*isolatedPawnPenalty
}

// blockedByEnemyPawn reports whether an enemy pawn stands ahead of (file, rank)
// on the same or an adjacent file.
func blockedByEnemyPawn(enemy [chess.BoardSize][]int, file, rank, dir int) bool {
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f >= chess.BoardSize {
			continue
		}
		for _, r := range enemy[f] {
			if (r-rank)*dir > 0 {
				return true
			}
		}
	}
	return false
}

// activity rewards knights, bishops, rooks and queens that have left their home rank.
func activity(g *chess.GameState, colour chess.Colour) int {
	bonus := 0
	home := colour.HomeRank()
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := g.Board.Squares[file][rank]
			if p.IsEmpty() || p.Colour != colour || p.Kind == chess.Pawn || p.Kind == chess.King {
				continue
			}
			if rank != home {
				bonus += developedPieceBonus
			}
		}
	}
	return bonus
}
