package celengan

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the core operations. Callers match them with
// errors.Is to decide which message to show; none of them is fatal and the
// user may always retry with corrected input.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateUser       = errors.New("username is already registered")
	ErrBadCredentials      = errors.New("wrong username or password")
	ErrTargetNotFound      = errors.New("target not found")
	ErrDuplicateTarget     = errors.New("a target with that name already exists")
	ErrInvalidName         = errors.New("name must not be empty")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrEmptyNote           = errors.New("a note is required for spending")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTargetCompleted     = errors.New("target is already completed")
	ErrExceedsCap          = errors.New("amount exceeds the 30% withdrawal cap")
)

// BlockReason names why a target refuses any withdrawal at all.
type BlockReason string

const (
	// BlockInsufficient means the 30% cap on the current balance rounds
	// down to zero, so there is nothing to withdraw.
	BlockInsufficient BlockReason = "insufficient balance"
	// BlockCooldown means the previous withdrawal was less than 365 days
	// ago.
	BlockCooldown BlockReason = "cooldown"
)

// BlockedError reports a withdrawal refused by the target policy, with
// enough detail for the caller to render a precise message.
type BlockedError struct {
	Reason        BlockReason
	DaysRemaining int    // days left on the cooldown, when Reason is BlockCooldown
	Max           Rupiah // the cap on the target's current balance
}

func (e *BlockedError) Error() string {
	if e.Reason == BlockCooldown {
		return fmt.Sprintf("cooldown active, %d days remaining", e.DaysRemaining)
	}
	return "target balance is too low to withdraw from"
}
