package celengan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a target. A target becomes completed
// the moment a deposit fills it to its goal, and turns active again on
// any successful withdrawal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Target is a named savings goal. Its balance never exceeds the goal
// (excess deposits are clamped) and never goes negative.
type Target struct {
	Name           string        `json:"name"`
	Goal           Rupiah        `json:"goal"`
	Balance        Rupiah        `json:"balance"`
	Status         Status        `json:"status"`
	Ledger         []Transaction `json:"ledger"`
	LastWithdrawAt time.Time     `json:"lastWithdrawAt,omitzero"`
}

// Completed reports whether the target has reached its goal.
func (t *Target) Completed() bool { return t.Status == StatusCompleted }

// Progress returns how much of the goal is funded, as a whole percentage
// capped at 100.
func (t *Target) Progress() int {
	if t.Goal <= 0 {
		return 0
	}
	p := decimal.NewFromInt(int64(t.Balance)).
		Div(decimal.NewFromInt(int64(t.Goal))).
		Mul(decimal.NewFromInt(100)).
		Round(0).IntPart()
	if p > 100 {
		p = 100
	}
	return int(p)
}
