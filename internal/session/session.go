// Package session runs one game between a human and the computer (or two
// humans sharing a board). It owns the live game state, the undo history and
// the current selection, and it is the only mutator of that state.
package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/config"
	"github.com/lgbarn/chessduel/internal/engine"
	chesserrors "github.com/lgbarn/chessduel/internal/errors"
	"github.com/lgbarn/chessduel/internal/search"
)

// MoveChooser picks a move for the side to move. *search.Searcher implements it.
type MoveChooser interface {
	ChooseMove(ctx context.Context, g *chess.GameState, side chess.Colour) (search.Result, bool)
}

// Option configures a Session.
type Option func(*Session)

// WithRandom sets the source used to pick a random human colour.
func WithRandom(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSearcher replaces the searcher built from the configuration.
func WithSearcher(chooser MoveChooser) Option {
	return func(s *Session) {
		if chooser != nil {
			s.chooser = chooser
		}
	}
}

// Session is a single in-memory game. It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	logger  *zap.Logger
	game    config.GameConfig
	chooser MoveChooser
	rng     *rand.Rand

	state chess.GameState
	human chess.Colour

	// history[0] is the fresh game and is never popped. Every later entry is
	// the state just before a committed move; moves[i] is the move committed
	// from history[i+1].
	history []chess.Snapshot
	moves   []chess.Move

	selected     chess.Square
	destinations []chess.Square
}

// New creates a session from the configuration. A nil configuration means
// the defaults and a nil logger disables logging.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		id:   uuid.New(),
		game: *cfg.Game,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.logger = logger.With(zap.String("session", s.id.String()))
	s.chooser = search.New(search.Options{
		Depth:      cfg.Search.Depth,
		TimeBudget: cfg.Search.TimeBudget,
		Logger:     s.logger.Named("search"),
	})
	for _, opt := range opts {
		opt(s)
	}

	switch s.game.HumanColour {
	case config.PlayBlack:
		s.human = chess.Black
	case config.PlayRandom:
		s.human = s.randomColour()
	default:
		s.human = chess.White
	}
	s.Reset()
	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// PieceAt returns the piece on the square, NoPiece when empty or off-board.
func (s *Session) PieceAt(sq chess.Square) chess.Piece { return s.state.PieceAt(sq) }

// IsEmpty reports whether the square is on the board and unoccupied.
func (s *Session) IsEmpty(sq chess.Square) bool { return s.state.Board.IsEmpty(sq) }

// IsEnemy reports whether the square holds a piece of the other colour.
func (s *Session) IsEnemy(sq chess.Square, c chess.Colour) bool { return s.state.Board.IsEnemy(sq, c) }

// InBounds reports whether the square lies on the board.
func (s *Session) InBounds(sq chess.Square) bool { return s.state.Board.InBounds(sq) }

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour { return s.state.ToMove }

// HumanColour returns the colour the human plays.
func (s *Session) HumanColour() chess.Colour { return s.human }

// IsHumanTurn reports whether the side to move is moved by hand.
// Without a computer opponent both sides are.
func (s *Session) IsHumanTurn() bool {
	return !s.game.ComputerOpponent || s.state.ToMove == s.human
}

// Selected returns the selected square, or NoSquare.
func (s *Session) Selected() chess.Square { return s.selected }

// Destinations returns the legal destinations of the selected piece.
func (s *Session) Destinations() []chess.Square {
	return append([]chess.Square(nil), s.destinations...)
}

// IsOver reports whether the game has ended.
func (s *Session) IsOver() bool { return s.state.Over }

// Result returns the result text of a finished game, or "".
func (s *Session) Result() string { return s.state.Result }

// PendingPromotion returns the square of a pawn waiting for a promotion choice.
func (s *Session) PendingPromotion() (chess.Square, bool) {
	return s.state.Promotion, s.state.HasPendingPromotion()
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool { return engine.IsKingInCheck(&s.state, s.state.ToMove) }

// Checkers returns the squares of the pieces giving check to the side to move.
func (s *Session) Checkers() []chess.Square {
	return engine.CheckingPieces(&s.state, s.state.ToMove)
}

// State returns a copy of the live game state.
func (s *Session) State() *chess.GameState { return s.state.Copy() }

// History returns the number of entries on the undo stack, the fresh game included.
func (s *Session) History() int { return len(s.history) }

// LastMove returns the most recently committed move.
func (s *Session) LastMove() (chess.Move, bool) {
	if len(s.moves) == 0 {
		return chess.NullMove, false
	}
	return s.moves[len(s.moves)-1], true
}

// Moves returns the committed moves in order.
func (s *Session) Moves() []chess.Move {
	return append([]chess.Move(nil), s.moves...)
}

// Select selects a piece of the side to move and computes its legal destinations.
// Anything else clears the selection and returns false.
func (s *Session) Select(sq chess.Square) bool {
	s.clearSelection()
	if !s.acceptsInput() {
		return false
	}
	p := s.state.PieceAt(sq)
	if p.IsEmpty() || p.Colour != s.state.ToMove {
		return false
	}
	s.selected = sq
	s.destinations = engine.LegalDestinations(&s.state, sq)
	return true
}

// MoveTo moves the selected piece to sq when sq is one of its legal
// destinations. The selection is cleared either way.
func (s *Session) MoveTo(sq chess.Square) bool {
	from := s.selected
	legal := from.Valid() && s.acceptsInput() && containsSquare(s.destinations, sq)
	s.clearSelection()
	if !legal {
		return false
	}
	s.mustCommit(from, sq, true)
	return true
}

// Click handles a board click: a piece of the side to move is selected,
// any other square is tried as a destination of the current selection.
// While a promotion is pending, a click promotes to a queen.
// It reports whether the game state changed.
func (s *Session) Click(sq chess.Square) bool {
	if s.state.Over {
		return false
	}
	if s.state.HasPendingPromotion() {
		return s.ResolvePromotion(chess.Queen) == nil
	}
	if p := s.state.PieceAt(sq); !p.IsEmpty() && p.Colour == s.state.ToMove {
		s.Select(sq)
		return false
	}
	return s.MoveTo(sq)
}

// Move plays a human move from -> to.
func (s *Session) Move(from, to chess.Square) error {
	s.clearSelection()
	switch {
	case s.state.Over:
		return chesserrors.ErrGameOver
	case s.state.HasPendingPromotion():
		return chesserrors.Wrapf(chesserrors.ErrIllegalMove, "promotion pending on %s", s.state.Promotion)
	case !s.IsHumanTurn():
		return chesserrors.ErrNotYourTurn
	case !from.Valid() || !to.Valid():
		return chesserrors.Wrapf(chesserrors.ErrInvalidSquare, "%s-%s", from, to)
	}

	p := s.state.PieceAt(from)
	if p.IsEmpty() {
		return chesserrors.Wrapf(chesserrors.ErrNoPiece, "%s", from)
	}
	if p.Colour != s.state.ToMove || !engine.IsLegalDestination(&s.state, from, to) {
		return chesserrors.Wrapf(chesserrors.ErrIllegalMove, "%s%s", from, to)
	}
	return s.commit(from, to, true)
}

// ResolvePromotion replaces the pawn promoted on the pending square with kind.
func (s *Session) ResolvePromotion(kind chess.Kind) error {
	if s.state.Over || !s.state.HasPendingPromotion() {
		return chesserrors.ErrNoPromotionPending
	}
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return chesserrors.Wrapf(chesserrors.ErrInvalidPromotion, "%s", kind)
	}

	sq := s.state.Promotion
	piece := s.state.PieceAt(sq)
	s.state.Place(sq, chess.NewPiece(piece.Colour, kind))
	s.state.Promotion = chess.NoSquare
	if n := len(s.moves); n > 0 {
		s.moves[n-1].Promotion = kind
	}
	s.logger.Info("promotion resolved",
		zap.Stringer("square", sq),
		zap.Stringer("kind", kind),
	)
	return s.checkEnd()
}

// Reset starts a new game with the current colour assignment.
func (s *Session) Reset() {
	s.state = *chess.NewGameState()
	s.history = []chess.Snapshot{s.state.SaveState()}
	s.moves = nil
	s.clearSelection()
	s.logger.Info("new game", zap.Stringer("human", s.human))
}

// RandomizeColour assigns the human a random colour and starts a new game.
func (s *Session) RandomizeColour() chess.Colour {
	s.human = s.randomColour()
	s.Reset()
	return s.human
}

// Undo restores the state before the last committed move.
// The fresh game is never undone.
func (s *Session) Undo() bool {
	if len(s.history) <= 1 {
		return false
	}
	last := len(s.history) - 1
	s.state.RestoreState(s.history[last])
	s.history = s.history[:last]
	if n := len(s.moves); n > 0 {
		s.moves = s.moves[:n-1]
	}
	s.clearSelection()
	if err := s.state.VerifyKingCache(); err != nil {
		panic(err)
	}
	s.logger.Debug("undo", zap.Int("history", len(s.history)))
	return true
}

// UndoMoveCycle undoes moves until it is the human's turn again, so that
// against the computer the human's last move and the reply are both taken
// back. It returns the number of moves undone.
func (s *Session) UndoMoveCycle() int {
	n := 0
	for s.Undo() {
		n++
		if s.IsHumanTurn() {
			break
		}
	}
	return n
}

// ComputerTurn lets the computer move when the game is running, the side to
// move is not the human's and no promotion is pending. The search works on a
// copy of the state; ctx can only shorten the time budget.
func (s *Session) ComputerTurn(ctx context.Context) (chess.Move, bool) {
	if s.state.Over || s.IsHumanTurn() || s.state.HasPendingPromotion() {
		return chess.NullMove, false
	}

	scratch := s.state
	side := s.state.ToMove
	res, ok := s.chooser.ChooseMove(ctx, &scratch, side)
	if !ok {
		if err := s.checkEnd(); err != nil {
			panic(err)
		}
		return chess.NullMove, false
	}
	if !engine.IsLegalDestination(&s.state, res.Move.From, res.Move.To) {
		panic(&chesserrors.InvariantError{
			Op:     "computer move",
			Square: res.Move.From.String(),
			Detail: "searcher returned " + res.Move.String() + " which is not legal",
		})
	}

	s.clearSelection()
	move := s.mustCommit(res.Move.From, res.Move.To, false)
	s.logger.Info("computer moved",
		zap.Stringer("move", move),
		zap.Int("score", res.Score),
		zap.Uint64("nodes", res.Stats.Nodes),
		zap.Bool("timed_out", res.TimedOut),
		zap.Duration("elapsed", res.Elapsed),
	)
	return move, true
}

// commit pushes the pre-move snapshot and applies a move known to be legal.
// A human promotion under the choose policy stays pending; every other move
// is followed by the end-of-game check for the opponent.
func (s *Session) commit(from, to chess.Square, byHuman bool) error {
	saved := s.state.SaveState()
	move, err := engine.ApplyMove(&s.state, from, to)
	if err != nil {
		s.state.RestoreState(saved)
		return err
	}
	s.history = append(s.history, saved)
	s.moves = append(s.moves, move)

	if byHuman {
		s.logger.Info("human moved", zap.Stringer("move", move))
	}
	if move.Promotion != chess.None && byHuman && s.game.Promotion == config.PromoteChoose {
		s.state.Promotion = move.To
		return s.state.VerifyKingCache()
	}
	return s.checkEnd()
}

// mustCommit commits a move already checked for legality; any failure is an
// invariant violation.
func (s *Session) mustCommit(from, to chess.Square, byHuman bool) chess.Move {
	if err := s.commit(from, to, byHuman); err != nil {
		panic(err)
	}
	return s.moves[len(s.moves)-1]
}

// checkEnd marks the game over when the side to move has no legal move.
func (s *Session) checkEnd() error {
	if err := s.state.VerifyKingCache(); err != nil {
		return err
	}
	side := s.state.ToMove
	status := engine.PositionStatus(&s.state, side)
	if status == engine.Ongoing {
		return nil
	}
	s.state.Over = true
	s.state.Result = engine.ResultText(status, side)
	s.logger.Info("game over",
		zap.String("result", s.state.Result),
		zap.Int("plies", s.state.Plies),
	)
	return nil
}

// acceptsInput reports whether a human command may change the board now.
func (s *Session) acceptsInput() bool {
	return !s.state.Over && !s.state.HasPendingPromotion() && s.IsHumanTurn()
}

func (s *Session) clearSelection() {
	s.selected = chess.NoSquare
	s.destinations = nil
}

func (s *Session) randomColour() chess.Colour {
	if s.rng.Intn(2) == 0 {
		return chess.White
	}
	return chess.Black
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, candidate := range squares {
		if candidate == sq {
			return true
		}
	}
	return false
}
