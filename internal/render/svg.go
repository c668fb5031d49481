package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessduel/internal/chess"
)

// SVG geometry and colours.
const (
	TileSize = 60
	margin   = 20

	lightTile = "fill:#ffffff"
	darkTile  = "fill:#d3d3d3"

	destinationStyle = "fill:none;stroke:#00a000;stroke-width:3"
	checkStyle       = "fill:none;stroke:#d00000;stroke-width:3"
	promotionStyle   = "fill:none;stroke:#0000d0;stroke-width:4"
	selectedStyle    = "fill:none;stroke:#a0a000;stroke-width:3"

	pieceStyle  = "text-anchor:middle;dominant-baseline:central;font-size:48px;font-family:sans-serif"
	labelStyle  = "text-anchor:middle;dominant-baseline:central;font-size:12px;font-family:sans-serif"
	bannerStyle = "text-anchor:middle;dominant-baseline:central;font-size:24px;font-weight:bold;fill:#0000c0;font-family:sans-serif"
)

// SVGOptions controls SVG.
type SVGOptions struct {
	Flip       bool
	Highlights Highlights

	// Banner is drawn across the middle of the board, e.g. the game result.
	Banner string
}

// SVG writes an image of the board: checkered tiles, piece glyphs, file and
// rank labels, highlight frames (green destinations, red check, blue pending
// promotion) and an optional banner.
func SVG(w io.Writer, g *chess.GameState, opts SVGOptions) {
	size := chess.BoardSize*TileSize + 2*margin
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Title("chessduel")

	files := fileOrder(opts.Flip)
	ranks := rankOrder(opts.Flip)
	for col, file := range files {
		for row, rank := range ranks {
			x, y := margin+col*TileSize, margin+row*TileSize
			style := lightTile
			if (file+rank)%2 == 0 {
				style = darkTile
			}
			canvas.Rect(x, y, TileSize, TileSize, style)

			if p := g.Board.Get(chess.Sq(file, rank)); !p.IsEmpty() {
				canvas.Text(x+TileSize/2, y+TileSize/2, string(p.Symbol()), pieceStyle)
			}
		}
	}

	for i := 0; i < chess.BoardSize; i++ {
		mid := margin + i*TileSize + TileSize/2
		canvas.Text(mid, size-margin/2, string(rune('a'+files[i])), labelStyle)
		canvas.Text(margin/2, mid, string(rune('1'+ranks[i])), labelStyle)
	}

	h := opts.Highlights
	frame := func(sq chess.Square, style string) {
		if !sq.Valid() {
			return
		}
		col, row := position(sq, opts.Flip)
		canvas.Rect(margin+col*TileSize, margin+row*TileSize, TileSize, TileSize, style)
	}
	frame(h.Selected, selectedStyle)
	for _, sq := range h.Destinations {
		frame(sq, destinationStyle)
	}
	frame(h.Check, checkStyle)
	for _, sq := range h.Checkers {
		frame(sq, checkStyle)
	}
	frame(h.Promotion, promotionStyle)

	if opts.Banner != "" {
		canvas.Text(size/2, size/2, opts.Banner, bannerStyle)
	}
	canvas.End()
}

// position returns the column and row a square is drawn at.
func position(sq chess.Square, flip bool) (col, row int) {
	col, row = int(sq.File), chess.BoardSize-1-int(sq.Rank)
	if flip {
		col, row = chess.BoardSize-1-col, chess.BoardSize-1-row
	}
	return col, row
}
