package celengan

import (
	"sort"
	"strings"
	"time"
)

// User is one registered account: a main balance with its ledger, and a
// set of savings targets. Target lookup is case-insensitive: the map key
// is the normalized name while Target.Name preserves the original casing.
type User struct {
	Username     string             `json:"username"`
	PasswordHash []byte             `json:"passwordHash"`
	MainBalance  Rupiah             `json:"mainBalance"`
	MainLedger   []Transaction      `json:"mainLedger"`
	Targets      map[string]*Target `json:"targets"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// normalize is the case-insensitive lookup key for usernames and target
// names.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Target returns the target with that name, matched case-insensitively.
func (u *User) Target(name string) (*Target, bool) {
	t, ok := u.Targets[normalize(name)]
	return t, ok
}

// TargetNames returns the display names of every target, sorted for
// deterministic iteration.
func (u *User) TargetNames() []string {
	names := make([]string, 0, len(u.Targets))
	for _, t := range u.Targets {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// AllTargets returns every target ordered by name.
func (u *User) AllTargets() []*Target {
	targets := make([]*Target, 0, len(u.Targets))
	for _, name := range u.TargetNames() {
		t, _ := u.Target(name)
		targets = append(targets, t)
	}
	return targets
}

// ActiveTargets returns the targets that can still receive deposits.
func (u *User) ActiveTargets() []*Target {
	var active []*Target
	for _, t := range u.AllTargets() {
		if !t.Completed() {
			active = append(active, t)
		}
	}
	return active
}

// FundedTargets returns the targets holding a positive balance, the ones
// a withdrawal could be attempted from.
func (u *User) FundedTargets() []*Target {
	var funded []*Target
	for _, t := range u.AllTargets() {
		if t.Balance > 0 {
			funded = append(funded, t)
		}
	}
	return funded
}
