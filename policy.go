package celengan

import (
	"fmt"
	"strings"
	"time"
)

// CooldownDays is the minimum number of days between two withdrawals from
// the same target.
const CooldownDays = 365

// Eligibility is the answer to "can this target be withdrawn from right
// now, and up to how much".
type Eligibility struct {
	Eligible      bool
	Max           Rupiah      // cap for a single spend: 30% of the balance, floored
	Reason        BlockReason // set when not eligible
	DaysRemaining int         // days left on the cooldown, when it is running
}

// CanWithdraw evaluates the withdrawal policy at the given instant. The
// cooldown and the balance check are independent; when both block, the
// insufficient balance is the reported reason, though DaysRemaining is
// still populated so callers can surface both facts.
func (t *Target) CanWithdraw(now time.Time) Eligibility {
	e := Eligibility{Eligible: true, Max: WithdrawCap(t.Balance)}
	if !t.LastWithdrawAt.IsZero() {
		elapsed := elapsedDays(t.LastWithdrawAt, now)
		if elapsed < CooldownDays {
			e.Eligible = false
			e.Reason = BlockCooldown
			e.DaysRemaining = CooldownDays - elapsed
		}
	}
	if e.Max <= 0 {
		e.Eligible = false
		e.Reason = BlockInsufficient
	}
	return e
}

// CreateTarget adds a new, empty, active savings target. Name uniqueness
// is case-insensitive.
func (u *User) CreateTarget(name string, goal Rupiah) (*Target, error) {
	display := strings.TrimSpace(name)
	if display == "" {
		return nil, ErrInvalidName
	}
	if goal <= 0 {
		return nil, ErrInvalidAmount
	}
	key := normalize(display)
	if _, exists := u.Targets[key]; exists {
		return nil, ErrDuplicateTarget
	}
	t := &Target{
		Name:   display,
		Goal:   goal,
		Status: StatusActive,
		Ledger: make([]Transaction, 0),
	}
	u.Targets[key] = t
	return t, nil
}

// RenameTarget moves a target to a new name, preserving balance, status,
// ledger and cooldown state. Renaming a target to its own name is a
// no-op; a case-only change updates the display name.
func (u *User) RenameTarget(oldName, newName string) error {
	display := strings.TrimSpace(newName)
	if display == "" {
		return ErrInvalidName
	}
	oldKey := normalize(oldName)
	t, ok := u.Targets[oldKey]
	if !ok {
		return ErrTargetNotFound
	}
	if display == t.Name {
		return nil
	}
	newKey := normalize(display)
	if newKey != oldKey {
		if _, exists := u.Targets[newKey]; exists {
			return ErrDuplicateTarget
		}
	}
	delete(u.Targets, oldKey)
	t.Name = display
	u.Targets[newKey] = t
	return nil
}

// DeletePlan describes what confirming a target deletion will do. The
// two-phase plan/confirm split exists so an interactive caller can ask
// for confirmation before any residual balance is moved.
type DeletePlan struct {
	TargetName string
	Transfer   Rupiah // residual balance that will move to the main balance
}

// PlanDelete describes the deletion of a target without performing it.
func (u *User) PlanDelete(name string) (DeletePlan, error) {
	t, ok := u.Target(name)
	if !ok {
		return DeletePlan{}, ErrTargetNotFound
	}
	return DeletePlan{TargetName: t.Name, Transfer: t.Balance}, nil
}

// ConfirmDelete removes the target. A residual balance is credited to the
// main balance first, recorded on the main ledger as a transfer entry.
func (u *User) ConfirmDelete(name string, now time.Time) (DeletePlan, error) {
	plan, err := u.PlanDelete(name)
	if err != nil {
		return DeletePlan{}, err
	}
	if plan.Transfer > 0 {
		u.MainBalance += plan.Transfer
		u.MainLedger = append(u.MainLedger, Transaction{
			Time:   now,
			Kind:   KindDeposit,
			Amount: plan.Transfer,
			Note:   TransferNotePrefix + plan.TargetName,
			Origin: OriginTransfer,
		})
	}
	delete(u.Targets, normalize(plan.TargetName))
	return plan, nil
}

// WithdrawFromTarget spends a user-chosen amount from a target. The
// amount is bounded by the 30% cap and by the balance, and the cooldown
// must have elapsed. A successful withdrawal starts a new cooldown and
// reactivates a completed target, whatever the resulting balance.
//
// All checks run before any mutation: a refused withdrawal leaves the
// target untouched.
func (u *User) WithdrawFromTarget(name string, amount Rupiah, note string, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(note) == "" {
		return ErrEmptyNote
	}
	t, ok := u.Target(name)
	if !ok {
		return ErrTargetNotFound
	}
	e := t.CanWithdraw(now)
	if !e.Eligible {
		return &BlockedError{Reason: e.Reason, DaysRemaining: e.DaysRemaining, Max: e.Max}
	}
	if amount > e.Max {
		return fmt.Errorf("%s is over the %s limit: %w", amount, e.Max, ErrExceedsCap)
	}
	if amount > t.Balance {
		return ErrInsufficientBalance
	}

	t.Balance -= amount
	t.LastWithdrawAt = now
	t.Ledger = append(t.Ledger, Transaction{
		Time:   now,
		Kind:   KindWithdrawal,
		Amount: amount,
		Note:   strings.TrimSpace(note),
		Origin: OriginUser,
	})
	if t.Completed() {
		t.Status = StatusActive
	}
	return nil
}
