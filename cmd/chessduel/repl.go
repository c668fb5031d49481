package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/config"
	"github.com/lgbarn/chessduel/internal/engine"
	chesserrors "github.com/lgbarn/chessduel/internal/errors"
	"github.com/lgbarn/chessduel/internal/render"
	"github.com/lgbarn/chessduel/internal/session"
)

const replHelp = `Commands:
  e2e4, e7e8n      move (optional promotion letter)
  select e2        select a piece and list its moves
  moves            list the legal moves of the side to move
  promote q|r|b|n  resolve a pending promotion
  undo             take back your last move and the reply
  reset            start a new game
  random           play a random colour in a new game
  svg [file]       write the board as an SVG image
  board            show the board
  help             show this text
  quit             leave
`

// repl is the line-oriented front end.
type repl struct {
	s   *session.Session
	ui  *config.UIConfig
	in  *bufio.Scanner
	out io.Writer

	announced bool // result already printed
}

func newREPL(s *session.Session, ui *config.UIConfig, in io.Reader, out io.Writer) *repl {
	return &repl{s: s, ui: ui, in: bufio.NewScanner(in), out: out}
}

// Run reads commands until quit or end of input.
func (r *repl) Run(ctx context.Context) error {
	fmt.Fprintf(r.out, "You play %s. Type help for commands.\n", r.s.HumanColour())
	r.computer(ctx)
	r.printBoard()

	for {
		r.prompt()
		if !r.in.Scan() {
			return r.in.Err()
		}
		if r.execute(ctx, r.in.Text()) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (r *repl) prompt() {
	switch {
	case r.s.IsOver():
		fmt.Fprint(r.out, "game over> ")
	default:
		fmt.Fprintf(r.out, "%s> ", strings.ToLower(r.s.ToMove().String()))
	}
}

// execute runs one command line and reports whether the user asked to quit.
func (r *repl) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(r.out, replHelp)
	case "board":
		r.printBoard()
	case "moves":
		r.listMoves()
	case "select":
		r.selectSquare(args)
	case "promote":
		r.promote(ctx, args)
	case "undo":
		if r.s.UndoMoveCycle() == 0 {
			fmt.Fprintln(r.out, "Nothing to undo.")
			return false
		}
		r.announced = false
		r.computer(ctx)
		r.printBoard()
	case "reset":
		r.s.Reset()
		r.announced = false
		r.computer(ctx)
		r.printBoard()
	case "random":
		fmt.Fprintf(r.out, "You play %s.\n", r.s.RandomizeColour())
		r.announced = false
		r.computer(ctx)
		r.printBoard()
	case "svg":
		r.writeSVG(args)
	default:
		r.move(ctx, cmd)
	}
	return false
}

func (r *repl) move(ctx context.Context, text string) {
	from, to, kind, err := parseMove(text)
	if err != nil {
		fmt.Fprintf(r.out, "Unknown command %q. Type help for commands.\n", text)
		return
	}
	if err := r.s.Move(from, to); err != nil {
		fmt.Fprintf(r.out, "%s\n", describe(err))
		return
	}
	if _, pending := r.s.PendingPromotion(); pending {
		if kind == chess.None {
			r.printBoard()
			fmt.Fprintln(r.out, "Promote to? promote q|r|b|n")
			return
		}
		if err := r.s.ResolvePromotion(kind); err != nil {
			fmt.Fprintf(r.out, "%s\n", describe(err))
			return
		}
	}
	r.computer(ctx)
	r.printBoard()
}

func (r *repl) promote(ctx context.Context, args []string) {
	if len(args) != 1 || len(args[0]) != 1 {
		fmt.Fprintln(r.out, "Usage: promote q|r|b|n")
		return
	}
	kind, ok := chess.ParseKind(args[0][0])
	if !ok {
		kind = chess.None
	}
	if err := r.s.ResolvePromotion(kind); err != nil {
		fmt.Fprintf(r.out, "%s\n", describe(err))
		return
	}
	r.computer(ctx)
	r.printBoard()
}

func (r *repl) selectSquare(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: select e2")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil || !r.s.Select(sq) {
		fmt.Fprintf(r.out, "Cannot select %s.\n", args[0])
		return
	}
	r.printBoard()
	fmt.Fprintf(r.out, "%s: %s\n", sq, joinSquares(r.s.Destinations()))
}

func (r *repl) listMoves() {
	g := r.s.State()
	moves := engine.LegalMoves(g, g.ToMove)
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.From.String()+m.To.String())
	}
	fmt.Fprintf(r.out, "%d moves: %s\n", len(names), strings.Join(names, " "))
}

func (r *repl) writeSVG(args []string) {
	path := r.ui.SVGPath
	if len(args) > 0 {
		path = args[0]
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(r.out, "svg: %v\n", err)
		return
	}
	render.SVG(f, r.s.State(), render.SVGOptions{
		Flip:       r.flip(),
		Highlights: render.HighlightsOf(r.s),
		Banner:     r.s.Result(),
	})
	if err := f.Close(); err != nil {
		fmt.Fprintf(r.out, "svg: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Wrote %s.\n", path)
}

// computer lets the computer reply when it is its turn.
func (r *repl) computer(ctx context.Context) {
	if r.s.IsOver() || r.s.IsHumanTurn() {
		return
	}
	fmt.Fprintln(r.out, "Thinking...")
	if move, ok := r.s.ComputerTurn(ctx); ok {
		fmt.Fprintf(r.out, "Computer plays %s.\n", move)
	}
}

func (r *repl) printBoard() {
	fmt.Fprint(r.out, render.Text(r.s.State(), render.TextOptions{
		Unicode:    r.ui.Unicode,
		Flip:       r.flip(),
		Highlights: render.HighlightsOf(r.s),
	}))
	switch {
	case r.s.IsOver():
		if !r.announced {
			fmt.Fprintln(r.out, r.s.Result())
			r.announced = true
		}
	case r.s.InCheck():
		fmt.Fprintf(r.out, "%s is in check.\n", r.s.ToMove())
	}
}

// flip shows the board from Black's side when the human plays Black.
func (r *repl) flip() bool {
	return r.s.HumanColour() == chess.Black
}

// parseMove parses coordinate notation such as "e2e4" or "e7e8q".
func parseMove(text string) (from, to chess.Square, promotion chess.Kind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.None, chesserrors.Wrapf(chesserrors.ErrInvalidSquare, "%q", text)
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.None, err
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.None, err
	}
	if len(text) == 5 {
		kind, ok := chess.ParseKind(text[4])
		if !ok || kind == chess.King || kind == chess.Pawn {
			return chess.NoSquare, chess.NoSquare, chess.None, chesserrors.Wrapf(chesserrors.ErrInvalidPromotion, "%q", text)
		}
		promotion = kind
	}
	return from, to, promotion, nil
}

// describe turns a session error into a message for the player.
func describe(err error) string {
	switch {
	case errors.Is(err, chesserrors.ErrGameOver):
		return "The game is over. Type reset for a new one."
	case errors.Is(err, chesserrors.ErrNotYourTurn):
		return "It is not your turn."
	case errors.Is(err, chesserrors.ErrNoPiece):
		return "There is no piece there."
	case errors.Is(err, chesserrors.ErrNoPromotionPending):
		return "There is no promotion to resolve."
	case errors.Is(err, chesserrors.ErrInvalidPromotion):
		return "Promote to q, r, b or n."
	case errors.Is(err, chesserrors.ErrIllegalMove):
		return "Illegal move."
	}
	return err.Error()
}

func joinSquares(squares []chess.Square) string {
	if len(squares) == 0 {
		return "no moves"
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}
