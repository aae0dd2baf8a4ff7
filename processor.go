package celengan

import (
	"strings"
	"time"
)

// defaultNote fills the placeholder note used for deposits left without
// one.
func defaultNote(note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return "-"
	}
	return note
}

// DepositToMain adds money to the main balance and records it on the main
// ledger.
func (u *User) DepositToMain(amount Rupiah, note string, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	u.MainBalance += amount
	u.MainLedger = append(u.MainLedger, Transaction{
		Time:   now,
		Kind:   KindDeposit,
		Amount: amount,
		Note:   defaultNote(note),
		Origin: OriginUser,
	})
	return nil
}

// DepositToTarget adds money to a savings target. A deposit that reaches
// the goal clamps the balance to the goal and completes the target; the
// ledger entry still records the full deposited amount, the way the user
// entered it. Deposits into a completed target are refused.
//
// The updated target is returned so callers can tell whether this deposit
// completed it.
func (u *User) DepositToTarget(name string, amount Rupiah, note string, now time.Time) (*Target, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	t, ok := u.Target(name)
	if !ok {
		return nil, ErrTargetNotFound
	}
	if t.Completed() {
		return nil, ErrTargetCompleted
	}

	t.Balance += amount
	if t.Balance >= t.Goal {
		t.Balance = t.Goal
		t.Status = StatusCompleted
	}
	t.Ledger = append(t.Ledger, Transaction{
		Time:   now,
		Kind:   KindDeposit,
		Amount: amount,
		Note:   defaultNote(note),
		Origin: OriginUser,
	})
	return t, nil
}

// WithdrawFromMain spends money from the main balance. A note is
// mandatory so every expense is accounted for.
func (u *User) WithdrawFromMain(amount Rupiah, note string, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(note) == "" {
		return ErrEmptyNote
	}
	if amount > u.MainBalance {
		return ErrInsufficientBalance
	}
	u.MainBalance -= amount
	u.MainLedger = append(u.MainLedger, Transaction{
		Time:   now,
		Kind:   KindWithdrawal,
		Amount: amount,
		Note:   strings.TrimSpace(note),
		Origin: OriginUser,
	})
	return nil
}
