package celengan

import (
	"strings"
	"time"
)

// Kind identifies the direction of a transaction.
type Kind string

const (
	// KindDeposit is money moving into an account.
	KindDeposit Kind = "deposit"
	// KindWithdrawal is money moving out of an account.
	KindWithdrawal Kind = "withdrawal"
)

// Origin identifies what produced a transaction. A transfer entry is
// written to the main ledger when a funded target is deleted; the history
// views rely on this tag to avoid counting the same movement twice.
type Origin string

const (
	// OriginUser marks a transaction entered by the user.
	OriginUser Origin = "user"
	// OriginTransfer marks a synthetic transaction produced by deleting a
	// funded target.
	OriginTransfer Origin = "transfer"
)

// TransferNotePrefix starts the note of every transfer-on-delete entry.
const TransferNotePrefix = "Transfer dari target: "

// Transaction is one immutable movement of money. Entries are only ever
// appended to a ledger, never edited or removed.
type Transaction struct {
	Time   time.Time `json:"time"`
	Kind   Kind      `json:"kind"`
	Amount Rupiah    `json:"amount"`
	Note   string    `json:"note"`
	Origin Origin    `json:"origin,omitempty"`
}

// When returns the calendar day the transaction happened on.
func (t Transaction) When() Day { return DayOf(t.Time) }

// IsTransfer reports whether the transaction is a synthetic
// transfer-on-delete entry. Entries written before the origin tag existed
// are recognized by their reserved note prefix.
func (t Transaction) IsTransfer() bool {
	return t.Origin == OriginTransfer || strings.HasPrefix(t.Note, TransferNotePrefix)
}
