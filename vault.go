package celengan

import (
	"strings"
	"time"
)

// Vault is the store of every registered user, keyed by normalized
// username. Reads and writes are whole-user snapshots: callers mutate a
// User in memory and Put it back, then persist the vault as one unit.
// There is no rollback, so operations must validate before mutating.
type Vault struct {
	Users map[string]*User `json:"users"`
}

// NewVault creates an empty vault.
func NewVault() *Vault {
	return &Vault{Users: make(map[string]*User)}
}

// Get returns the user registered under that name, matched
// case-insensitively, or ErrUserNotFound.
func (v *Vault) Get(username string) (*User, error) {
	u, ok := v.Users[normalize(username)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Put stores the user snapshot under its normalized username.
func (v *Vault) Put(u *User) {
	v.Users[normalize(u.Username)] = u
}

// CreateUser registers a new user with an already-hashed credential. It
// fails with ErrDuplicateUser when the username is taken, compared
// case-insensitively.
func (v *Vault) CreateUser(username string, passwordHash []byte, now time.Time) (*User, error) {
	key := normalize(username)
	if key == "" {
		return nil, ErrInvalidName
	}
	if _, exists := v.Users[key]; exists {
		return nil, ErrDuplicateUser
	}
	u := &User{
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		MainLedger:   make([]Transaction, 0),
		Targets:      make(map[string]*Target),
		CreatedAt:    now,
	}
	v.Users[key] = u
	return u, nil
}
