package celengan

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestCreateTarget(t *testing.T) {
	testCases := []struct {
		name       string
		targetName string
		goal       Rupiah
		wantErr    error
	}{
		{"valid", "Laptop", 10_000_000, nil},
		{"empty name", "   ", 10_000_000, ErrInvalidName},
		{"zero goal", "Laptop", 0, ErrInvalidAmount},
		{"negative goal", "Laptop", -1, ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUser()
			tgt, err := u.CreateTarget(tc.targetName, tc.goal)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CreateTarget() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				if len(u.Targets) != 0 {
					t.Errorf("rejected create must not register a target")
				}
				return
			}
			if tgt.Status != StatusActive || tgt.Balance != 0 || len(tgt.Ledger) != 0 {
				t.Errorf("new target not pristine: %+v", tgt)
			}
			if !tgt.LastWithdrawAt.IsZero() {
				t.Errorf("new target has a cooldown already running")
			}
		})
	}
}

func TestCreateTarget_DuplicateIsCaseInsensitive(t *testing.T) {
	u := newTestUser()
	if _, err := u.CreateTarget("Liburan", 5_000_000); err != nil {
		t.Fatal(err)
	}
	if _, err := u.CreateTarget("LIBURAN", 1_000_000); !errors.Is(err, ErrDuplicateTarget) {
		t.Fatalf("case-insensitive duplicate accepted, err = %v", err)
	}
	if tgt, ok := u.Target("liburan"); !ok || tgt.Name != "Liburan" {
		t.Errorf("display name not preserved: %+v", tgt)
	}
}

func TestRenameTarget(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "A", 10_000_000, 2_000_000)
	newTestTarget(u, "Other", 1_000_000, 0)

	before, _ := u.Target("A")
	ledger := make([]Transaction, len(before.Ledger))
	copy(ledger, before.Ledger)
	mainLen := len(u.MainLedger)

	if err := u.RenameTarget("A", "B"); err != nil {
		t.Fatalf("RenameTarget() = %v", err)
	}
	if _, ok := u.Target("A"); ok {
		t.Errorf("old name still resolves after rename")
	}
	after, ok := u.Target("B")
	if !ok {
		t.Fatalf("new name does not resolve")
	}
	if after.Balance != before.Balance || after.Status != before.Status ||
		!after.LastWithdrawAt.Equal(before.LastWithdrawAt) {
		t.Errorf("rename altered target state: %+v", after)
	}
	if !reflect.DeepEqual(after.Ledger, ledger) {
		t.Errorf("rename altered the target ledger")
	}
	if len(u.MainLedger) != mainLen {
		t.Errorf("rename touched the main ledger")
	}
}

func TestRenameTarget_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		oldName string
		newName string
		wantErr error
	}{
		{"empty new name", "A", "  ", ErrInvalidName},
		{"unknown target", "missing", "B", ErrTargetNotFound},
		{"collision", "A", "other", ErrDuplicateTarget},
		{"same name is a no-op", "A", "A", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUser()
			newTestTarget(u, "A", 10_000_000, 0)
			newTestTarget(u, "Other", 1_000_000, 0)
			if err := u.RenameTarget(tc.oldName, tc.newName); !errors.Is(err, tc.wantErr) {
				t.Fatalf("RenameTarget(%q, %q) = %v, want %v", tc.oldName, tc.newName, err, tc.wantErr)
			}
		})
	}
}

func TestRenameTarget_CaseOnlyChange(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "liburan", 5_000_000, 0)
	if err := u.RenameTarget("liburan", "Liburan"); err != nil {
		t.Fatalf("case-only rename refused: %v", err)
	}
	tgt, ok := u.Target("liburan")
	if !ok || tgt.Name != "Liburan" {
		t.Errorf("display name not updated, got %+v", tgt)
	}
}

func TestDeleteTarget_TransfersResidualBalance(t *testing.T) {
	u := newTestUser()
	u.MainBalance = 1_500_000
	newTestTarget(u, "Motor", 20_000_000, 5_000_000)

	plan, err := u.PlanDelete("Motor")
	if err != nil {
		t.Fatal(err)
	}
	if plan.Transfer != 5_000_000 || plan.TargetName != "Motor" {
		t.Fatalf("unexpected plan: %+v", plan)
	}

	if _, err := u.ConfirmDelete("Motor", t0); err != nil {
		t.Fatal(err)
	}
	if u.MainBalance != 6_500_000 {
		t.Errorf("MainBalance = %d, want 6500000", u.MainBalance)
	}
	if _, ok := u.Target("Motor"); ok {
		t.Errorf("target still present after delete")
	}
	last := u.MainLedger[len(u.MainLedger)-1]
	want := Transaction{
		Time:   t0,
		Kind:   KindDeposit,
		Amount: 5_000_000,
		Note:   "Transfer dari target: Motor",
		Origin: OriginTransfer,
	}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("transfer entry = %+v, want %+v", last, want)
	}
}

func TestDeleteTarget_EmptyBalanceLeavesNoTrace(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "Kosong", 1_000_000, 0)
	if _, err := u.ConfirmDelete("Kosong", t0); err != nil {
		t.Fatal(err)
	}
	if len(u.MainLedger) != 0 || u.MainBalance != 0 {
		t.Errorf("deleting an empty target touched the main account")
	}
}

func TestDeleteTarget_Unknown(t *testing.T) {
	u := newTestUser()
	if _, err := u.PlanDelete("missing"); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("PlanDelete() = %v, want ErrTargetNotFound", err)
	}
	if _, err := u.ConfirmDelete("missing", t0); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("ConfirmDelete() = %v, want ErrTargetNotFound", err)
	}
}

func TestCanWithdraw_Cooldown(t *testing.T) {
	testCases := []struct {
		name          string
		lastWithdraw  time.Time
		now           time.Time
		wantEligible  bool
		wantReason    BlockReason
		wantRemaining int
	}{
		{
			name:         "never withdrawn",
			now:          t0,
			wantEligible: true,
		},
		{
			name:          "one day after",
			lastWithdraw:  t0,
			now:           t0.Add(24 * time.Hour),
			wantEligible:  false,
			wantReason:    BlockCooldown,
			wantRemaining: 364,
		},
		{
			name:          "day 364",
			lastWithdraw:  t0,
			now:           t0.Add(364 * 24 * time.Hour),
			wantEligible:  false,
			wantReason:    BlockCooldown,
			wantRemaining: 1,
		},
		{
			name:         "day 365 exactly",
			lastWithdraw: t0,
			now:          t0.Add(365 * 24 * time.Hour),
			wantEligible: true,
		},
		{
			name:          "partial days round up",
			lastWithdraw:  t0,
			now:           t0.Add(364*24*time.Hour + time.Hour),
			wantEligible:  true, // ceil(364d1h) = 365 days elapsed
			wantReason:    "",
			wantRemaining: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tgt := &Target{Name: "T", Goal: 10_000_000, Balance: 1_000_000, Status: StatusActive, LastWithdrawAt: tc.lastWithdraw}
			e := tgt.CanWithdraw(tc.now)
			if e.Eligible != tc.wantEligible || e.Reason != tc.wantReason || e.DaysRemaining != tc.wantRemaining {
				t.Errorf("CanWithdraw() = %+v, want eligible=%v reason=%q remaining=%d",
					e, tc.wantEligible, tc.wantReason, tc.wantRemaining)
			}
			if e.Max != 300_000 {
				t.Errorf("Max = %d, want 300000", e.Max)
			}
		})
	}
}

func TestCanWithdraw_InsufficiencyWinsOverCooldown(t *testing.T) {
	tgt := &Target{Name: "T", Goal: 100, Balance: 2, Status: StatusActive, LastWithdrawAt: t0}
	e := tgt.CanWithdraw(t0.Add(24 * time.Hour))
	if e.Eligible {
		t.Fatal("eligible despite empty cap and running cooldown")
	}
	if e.Reason != BlockInsufficient {
		t.Errorf("Reason = %q, want insufficiency to take precedence", e.Reason)
	}
	if e.DaysRemaining != 364 {
		t.Errorf("DaysRemaining = %d, want 364 still reported", e.DaysRemaining)
	}
}

func TestCanWithdraw_EmptyCap(t *testing.T) {
	// floor(3 * 0.3) = 0: too small to withdraw from.
	tgt := &Target{Name: "T", Goal: 100, Balance: 3, Status: StatusActive}
	e := tgt.CanWithdraw(t0)
	if e.Eligible || e.Reason != BlockInsufficient || e.Max != 0 {
		t.Errorf("CanWithdraw() = %+v, want blocked with empty cap", e)
	}
}

func TestWithdrawFromTarget(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "Dana", 10_000_000, 1_000_000)

	if err := u.WithdrawFromTarget("Dana", 300_000, "servis motor", t0.Add(time.Hour)); err != nil {
		t.Fatalf("WithdrawFromTarget() = %v", err)
	}
	tgt, _ := u.Target("Dana")
	if tgt.Balance != 700_000 {
		t.Errorf("Balance = %d, want 700000", tgt.Balance)
	}
	if !tgt.LastWithdrawAt.Equal(t0.Add(time.Hour)) {
		t.Errorf("LastWithdrawAt not set to the withdrawal instant")
	}
	last := tgt.Ledger[len(tgt.Ledger)-1]
	if last.Kind != KindWithdrawal || last.Amount != 300_000 || last.Note != "servis motor" {
		t.Errorf("ledger entry = %+v", last)
	}
}

func TestWithdrawFromTarget_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		amount  Rupiah
		note    string
		wantErr error
	}{
		{"zero amount", 0, "n", ErrInvalidAmount},
		{"empty note", 100, " ", ErrEmptyNote},
		{"over the cap", 300_001, "n", ErrExceedsCap},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUser()
			newTestTarget(u, "Dana", 10_000_000, 1_000_000)
			before, _ := u.Target("Dana")
			ledgerLen := len(before.Ledger)

			err := u.WithdrawFromTarget("Dana", tc.amount, tc.note, t0)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("WithdrawFromTarget() = %v, want %v", err, tc.wantErr)
			}
			// A rejection must not mutate anything.
			after, _ := u.Target("Dana")
			if after.Balance != 1_000_000 || len(after.Ledger) != ledgerLen || !after.LastWithdrawAt.IsZero() {
				t.Errorf("rejected withdrawal mutated the target: %+v", after)
			}
		})
	}
}

func TestWithdrawFromTarget_Blocked(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "Dana", 10_000_000, 1_000_000)
	if err := u.WithdrawFromTarget("Dana", 100_000, "first", t0); err != nil {
		t.Fatal(err)
	}

	err := u.WithdrawFromTarget("Dana", 100_000, "second", t0.Add(30*24*time.Hour))
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("WithdrawFromTarget() = %v, want *BlockedError", err)
	}
	if blocked.Reason != BlockCooldown || blocked.DaysRemaining != 335 {
		t.Errorf("blocked = %+v, want cooldown with 335 days remaining", blocked)
	}
	tgt, _ := u.Target("Dana")
	if tgt.Balance != 900_000 || len(tgt.Ledger) != 2 {
		t.Errorf("blocked withdrawal mutated the target")
	}
}

func TestWithdrawFromTarget_ReactivatesCompleted(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "Dana", 1_000_000, 1_000_000)
	tgt, _ := u.Target("Dana")
	if !tgt.Completed() {
		t.Fatalf("target should be completed after reaching its goal")
	}
	if err := u.WithdrawFromTarget("Dana", 1, "ambil sedikit", t0.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if tgt.Status != StatusActive {
		t.Errorf("Status = %q, want a withdrawal to reactivate the target", tgt.Status)
	}
}

func TestWithdrawFromTarget_Unknown(t *testing.T) {
	u := newTestUser()
	if err := u.WithdrawFromTarget("missing", 100, "n", t0); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("WithdrawFromTarget() = %v, want ErrTargetNotFound", err)
	}
}
