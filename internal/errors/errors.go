// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates a move was requested from an empty square.
	ErrNoPiece = errors.New("no piece on origin square")

	// ErrInvalidSquare indicates a malformed or off-board square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates a command that is not allowed once the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrNoPromotionPending indicates a promotion choice with nothing to promote.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a kind other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrNotYourTurn indicates a human command issued while the computer is to move.
	ErrNotYourTurn = errors.New("not the human's turn")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvariant indicates the game state violated one of its own invariants.
	// It is never expected and must not be swallowed.
	ErrInvariant = errors.New("state invariant violated")
)

// InvariantError wraps ErrInvariant with the operation that detected the violation.
type InvariantError struct {
	Op     string // Operation that detected the problem (e.g. "apply", "restore")
	Square string // Square involved, if any
	Detail string // Human readable description
}

// Error returns a formatted error message including all available context.
func (e *InvariantError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	if len(parts) == 0 {
		return ErrInvariant.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvariant.Error(), strings.Join(parts, ", "))
}

// Unwrap returns ErrInvariant, enabling errors.Is(err, ErrInvariant).
func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
