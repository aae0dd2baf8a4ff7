package celengan

import (
	"testing"
	"time"
)

func TestSummarize_Empty(t *testing.T) {
	u := newTestUser()
	s := u.Summarize()
	if s.TotalSaved != 0 || s.TotalSpent != 0 || s.Health != HealthUnknown {
		t.Errorf("empty account summary = %+v", s)
	}
}

func TestSummarize_TalliesAcrossLedgers(t *testing.T) {
	u := newTestUser()
	if err := u.DepositToMain(1_000_000, "", t0); err != nil {
		t.Fatal(err)
	}
	newTestTarget(u, "Motor", 10_000_000, 2_000_000)
	if err := u.WithdrawFromMain(100_000, "jajan", t0); err != nil {
		t.Fatal(err)
	}
	if err := u.WithdrawFromTarget("Motor", 500_000, "servis", t0.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	s := u.Summarize()
	if s.TotalSaved != 3_000_000 {
		t.Errorf("TotalSaved = %d, want 3000000 (main + target deposits)", s.TotalSaved)
	}
	if s.TotalSpent != 600_000 {
		t.Errorf("TotalSpent = %d, want 600000 (main + target withdrawals)", s.TotalSpent)
	}
	if got := s.Ratio.StringFixed(1); got != "20.0" {
		t.Errorf("Ratio = %s, want 20.0", got)
	}
	if s.Health != HealthSehat {
		t.Errorf("Health = %q, want %q", s.Health, HealthSehat)
	}
}

func TestSummarize_HealthBands(t *testing.T) {
	testCases := []struct {
		name  string
		saved Rupiah
		spent Rupiah
		want  Health
	}{
		{"under 30 percent", 1000, 299, HealthSehat},
		{"exactly 30 percent", 1000, 300, HealthStabil},
		{"exactly 60 percent", 1000, 600, HealthStabil},
		{"over 60 percent", 1000, 601, HealthBoros},
		{"nothing saved", 0, 0, HealthUnknown},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUser()
			if tc.saved > 0 {
				if err := u.DepositToMain(tc.saved, "", t0); err != nil {
					t.Fatal(err)
				}
			}
			if tc.spent > 0 {
				if err := u.WithdrawFromMain(tc.spent, "keluar", t0); err != nil {
					t.Fatal(err)
				}
			}
			if s := u.Summarize(); s.Health != tc.want {
				t.Errorf("Health = %q, want %q (ratio %s)", s.Health, tc.want, s.Ratio)
			}
		})
	}
}

func TestTargetProgress(t *testing.T) {
	testCases := []struct {
		balance Rupiah
		goal    Rupiah
		want    int
	}{
		{0, 10_000_000, 0},
		{2_500_000, 10_000_000, 25},
		{10_000_000, 10_000_000, 100},
		{1, 3, 33},
	}
	for _, tc := range testCases {
		tgt := &Target{Goal: tc.goal, Balance: tc.balance}
		if got := tgt.Progress(); got != tc.want {
			t.Errorf("Progress(%d/%d) = %d, want %d", tc.balance, tc.goal, got, tc.want)
		}
	}
}

func TestTargetSelectors(t *testing.T) {
	u := newTestUser()
	newTestTarget(u, "B aktif", 10_000_000, 0)
	newTestTarget(u, "A penuh", 1_000_000, 1_000_000) // completed
	newTestTarget(u, "C isi", 5_000_000, 100_000)

	active := u.ActiveTargets()
	if len(active) != 2 || active[0].Name != "B aktif" || active[1].Name != "C isi" {
		t.Errorf("ActiveTargets() = %v", names(active))
	}
	funded := u.FundedTargets()
	if len(funded) != 2 || funded[0].Name != "A penuh" || funded[1].Name != "C isi" {
		t.Errorf("FundedTargets() = %v", names(funded))
	}
}

func names(ts []*Target) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name
	}
	return out
}
