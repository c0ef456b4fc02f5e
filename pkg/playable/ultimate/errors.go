package ultimate

import (
	"errors"
	"fmt"
)

// ErrInvalidBetAmount is returned when a bet is outside the table limits or cannot be funded
var ErrInvalidBetAmount = errors.New("invalid bet amount")

// ErrInsufficientFunds is returned when the bankroll cannot cover a bet
// It wraps ErrInvalidBetAmount
var ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvalidBetAmount)

// ErrIllegalStateTransition is matched by every IllegalStateError
var ErrIllegalStateTransition = errors.New("illegal state transition")

// ErrInvalidOptions is returned when a game is created with unusable options
var ErrInvalidOptions = errors.New("invalid options")

// ErrInvalidCategory is returned when a resolution is given an unknown hand category
var ErrInvalidCategory = errors.New("invalid hand category")

// ErrLedgerMismatch is returned by Verify when the round history does not add up to the profit
var ErrLedgerMismatch = errors.New("ledger does not match bankroll")

// IllegalStateError is returned when an action is attempted from a state that does not allow it
type IllegalStateError struct {
	Action Action
	State  RoundState
}

func (i IllegalStateError) Error() string {
	return fmt.Sprintf("cannot %s from state: %s", i.Action.verb(), i.State)
}

// Is allows errors.Is(err, ErrIllegalStateTransition)
func (i IllegalStateError) Is(target error) bool {
	return target == ErrIllegalStateTransition
}
