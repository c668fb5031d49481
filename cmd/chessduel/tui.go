package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/config"
	"github.com/lgbarn/chessduel/internal/render"
	"github.com/lgbarn/chessduel/internal/session"
)

// Board cell geometry in terminal columns and rows.
const (
	cellWidth  = 5
	cellHeight = 2
	boardLeft  = 3
	boardTop   = 1
)

var (
	lightStyle       = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	darkStyle        = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	selectedStyle    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	destinationStyle = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	checkStyle       = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	promotionStyle   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	textStyle        = tcell.StyleDefault
	resultStyle      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

// layout maps board squares to terminal cells and back.
type layout struct {
	flip bool
}

// origin returns the top-left terminal cell of a square.
func (l layout) origin(sq chess.Square) (x, y int) {
	col, row := int(sq.File), chess.BoardSize-1-int(sq.Rank)
	if l.flip {
		col, row = chess.BoardSize-1-col, chess.BoardSize-1-row
	}
	return boardLeft + col*cellWidth, boardTop + row*cellHeight
}

// squareAt returns the square under a terminal cell.
func (l layout) squareAt(x, y int) (chess.Square, bool) {
	if x < boardLeft || y < boardTop {
		return chess.NoSquare, false
	}
	col, row := (x-boardLeft)/cellWidth, (y-boardTop)/cellHeight
	if col >= chess.BoardSize || row >= chess.BoardSize {
		return chess.NoSquare, false
	}
	if l.flip {
		col, row = chess.BoardSize-1-col, chess.BoardSize-1-row
	}
	return chess.Sq(col, chess.BoardSize-1-row), true
}

// tui is the full-screen front end: left click selects and moves, keys
// drive the other commands.
type tui struct {
	s       *session.Session
	ui      *config.UIConfig
	screen  tcell.Screen
	pressed bool
	status  string
}

func runTUI(ctx context.Context, s *session.Session, ui *config.UIConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	t := &tui{s: s, ui: ui, screen: screen}
	return t.loop(ctx)
}

func (t *tui) loop(ctx context.Context) error {
	t.computer(ctx)
	t.draw()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if t.key(ctx, ev) {
				return nil
			}
		case *tcell.EventMouse:
			t.mouse(ctx, ev)
		}
		t.draw()
	}
}

// key handles a key press and reports whether to quit.
func (t *tui) key(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'u':
		if t.s.UndoMoveCycle() == 0 {
			t.status = "Nothing to undo."
			return false
		}
		t.status = ""
		t.computer(ctx)
	case 'r':
		t.s.Reset()
		t.status = ""
		t.computer(ctx)
	case 'c':
		t.status = "You play " + t.s.RandomizeColour().String() + "."
		t.computer(ctx)
	case 'Q', 'R', 'B', 'N':
		kind, _ := chess.ParseKind(byte(ev.Rune()))
		if err := t.s.ResolvePromotion(kind); err != nil {
			t.status = describe(err)
			return false
		}
		t.status = ""
		t.computer(ctx)
	}
	return false
}

// mouse acts on the press of the left button only.
func (t *tui) mouse(ctx context.Context, ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !t.pressed
	t.pressed = down
	if !pressed {
		return
	}

	sq, ok := t.layout().squareAt(ev.Position())
	if !ok {
		return
	}
	if t.s.Click(sq) {
		t.status = ""
		t.computer(ctx)
	}
}

func (t *tui) computer(ctx context.Context) {
	if t.s.IsOver() || t.s.IsHumanTurn() {
		return
	}
	t.status = "Thinking..."
	t.draw()
	if move, ok := t.s.ComputerTurn(ctx); ok {
		t.status = "Computer played " + move.String() + "."
	} else {
		t.status = ""
	}
}

func (t *tui) layout() layout {
	return layout{flip: t.s.HumanColour() == chess.Black}
}

func (t *tui) draw() {
	t.screen.Clear()
	l := t.layout()
	g := t.s.State()
	h := render.HighlightsOf(t.s)

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			x, y := l.origin(sq)
			style := squareStyle(sq, h)
			for dy := 0; dy < cellHeight; dy++ {
				for dx := 0; dx < cellWidth; dx++ {
					t.screen.SetContent(x+dx, y+dy, ' ', nil, style)
				}
			}
			if p := g.Board.Get(sq); !p.IsEmpty() {
				glyph := rune(p.Letter())
				if t.ui.Unicode {
					glyph = p.Symbol()
				}
				t.screen.SetContent(x+cellWidth/2, y+cellHeight/2, glyph, nil, style)
			}
			if file == 0 {
				label := rune('1' + rank)
				t.screen.SetContent(boardLeft-2, y+cellHeight/2, label, nil, textStyle)
			}
			if rank == 0 {
				label := rune('a' + file)
				t.screen.SetContent(x+cellWidth/2, boardTop+chess.BoardSize*cellHeight, label, nil, textStyle)
			}
		}
	}

	line := boardTop + chess.BoardSize*cellHeight + 2
	switch {
	case t.s.IsOver():
		t.text(boardLeft, line, resultStyle, t.s.Result())
	case t.s.InCheck():
		t.text(boardLeft, line, textStyle, t.s.ToMove().String()+" to move, in check.")
	default:
		t.text(boardLeft, line, textStyle, t.s.ToMove().String()+" to move.")
	}
	if _, pending := t.s.PendingPromotion(); pending {
		t.text(boardLeft, line+1, textStyle, "Promote: Q R B N (click = queen)")
	} else {
		t.text(boardLeft, line+1, textStyle, t.status)
	}
	t.text(boardLeft, line+3, textStyle, "click: select/move  u: undo  r: reset  c: random colour  q: quit")
	t.screen.Show()
}

func (t *tui) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func squareStyle(sq chess.Square, h render.Highlights) tcell.Style {
	switch {
	case sq == h.Promotion:
		return promotionStyle
	case sq == h.Check:
		return checkStyle
	case sq == h.Selected:
		return selectedStyle
	}
	for _, c := range h.Checkers {
		if c == sq {
			return checkStyle
		}
	}
	for _, d := range h.Destinations {
		if d == sq {
			return destinationStyle
		}
	}
	if (int(sq.File)+int(sq.Rank))%2 == 0 {
		return darkStyle
	}
	return lightStyle
}
