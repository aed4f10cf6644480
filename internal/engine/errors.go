package engine

import (
	"errors"
	"fmt"
)

// RuleError represents a procedural rule rejection, raised before any
// mutation occurs. Domain-normal conditions (over/innings completion,
// undo on an empty history) are never RuleErrors; they are reported
// through the completion predicates and the controller's boolean returns.
type RuleError struct {
	// Code identifies the rule category.
	Code RuleErrorCode

	// Message is a human-readable description.
	Message string

	// Player identifies the offending selection, when one exists.
	Player string
}

// RuleErrorCode categorizes rule rejections.
type RuleErrorCode string

const (
	// ErrCodeBowlerRepeat indicates the bowler bowled the previous over.
	ErrCodeBowlerRepeat RuleErrorCode = "BOWLER_REPEAT"

	// ErrCodeBatterBowling indicates the selection is currently batting.
	ErrCodeBatterBowling RuleErrorCode = "BATTER_BOWLING"

	// ErrCodeRosterExhausted indicates no rostered bowler is eligible for
	// the next over. Fatal for the current over until the caller augments
	// the roster.
	ErrCodeRosterExhausted RuleErrorCode = "ROSTER_EXHAUSTED"

	// ErrCodeUnknownPlayer indicates the selection is not on the roster.
	ErrCodeUnknownPlayer RuleErrorCode = "UNKNOWN_PLAYER"

	// ErrCodeSelectionPending indicates a delivery was submitted while a
	// striker, non-striker, or bowler slot is still unset.
	ErrCodeSelectionPending RuleErrorCode = "SELECTION_PENDING"

	// ErrCodeInningsComplete indicates a delivery was submitted to a
	// finished innings before the transition was performed.
	ErrCodeInningsComplete RuleErrorCode = "INNINGS_COMPLETE"

	// ErrCodeInningsOpen indicates a lifecycle call (innings transition,
	// finalization) was made before its completion condition held.
	ErrCodeInningsOpen RuleErrorCode = "INNINGS_OPEN"

	// ErrCodeMatchCompleted indicates any mutation attempted after the
	// match was finalized.
	ErrCodeMatchCompleted RuleErrorCode = "MATCH_COMPLETED"

	// ErrCodeInvalidBall indicates the ball event itself is malformed.
	ErrCodeInvalidBall RuleErrorCode = "INVALID_BALL"
)

// Error implements the error interface.
func (e *RuleError) Error() string {
	if e.Player != "" {
		return fmt.Sprintf("%s: %s (player=%s)", e.Code, e.Message, e.Player)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsRosterExhausted reports whether err is a roster-exhaustion rejection.
// Uses errors.As to handle wrapped errors.
func IsRosterExhausted(err error) bool {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code == ErrCodeRosterExhausted
	}
	return false
}

// IsBowlerRejected reports whether err rejects a specific bowler selection
// (repeat over or currently batting).
func IsBowlerRejected(err error) bool {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code == ErrCodeBowlerRepeat || re.Code == ErrCodeBatterBowling
	}
	return false
}

// IsMatchCompleted reports whether err is a post-finalization rejection.
func IsMatchCompleted(err error) bool {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code == ErrCodeMatchCompleted
	}
	return false
}

// NewRuleError creates a RuleError with the given code and message.
func NewRuleError(code RuleErrorCode, message string) *RuleError {
	return &RuleError{Code: code, Message: message}
}

// NewPlayerRuleError creates a RuleError naming the offending player.
func NewPlayerRuleError(code RuleErrorCode, message, player string) *RuleError {
	return &RuleError{Code: code, Message: message, Player: player}
}
