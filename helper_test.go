package celengan

import "time"

// t0 is the reference instant for tests: Monday 2026-01-05 10:30 UTC.
var t0 = time.Date(2026, time.January, 5, 10, 30, 0, 0, time.UTC)

// Rp is a helper for tests to spell amounts as plain integers.
func Rp(v int64) Rupiah { return Rupiah(v) }

func newTestUser() *User {
	return &User{
		Username:   "Budi",
		MainLedger: make([]Transaction, 0),
		Targets:    make(map[string]*Target),
		CreatedAt:  t0,
	}
}

// newTestTarget registers a target on u and fills it with balance using a
// plain deposit. Inputs are controlled by the tests, so errors panic.
func newTestTarget(u *User, name string, goal, balance Rupiah) *Target {
	t, err := u.CreateTarget(name, goal)
	if err != nil {
		panic(err)
	}
	if balance > 0 {
		if _, err := u.DepositToTarget(name, balance, "seed", t0); err != nil {
			panic(err)
		}
	}
	return t
}
