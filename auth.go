package celengan

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var usernameRE = regexp.MustCompile(`^[A-Za-z0-9_\-\s]+$`)

// ValidateUsername checks the registration rules for usernames: 3 to 32
// characters of letters, digits, spaces, '_' or '-'.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username must not be empty")
	}
	if len(username) < 3 || len(username) > 32 {
		return errors.New("username must be 3 to 32 characters")
	}
	if !usernameRE.MatchString(username) {
		return errors.New("username may only contain letters, digits, spaces, _ or -")
	}
	return nil
}

// ValidatePassword checks the minimal password policy.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// Register validates the credentials, hashes the password and creates the
// user in the vault.
func Register(v *Vault, username, password string, now time.Time) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}
	return v.CreateUser(username, hash, now)
}

// Login checks the credentials against the vault. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func Login(v *Vault, username, password string) (*User, error) {
	u, err := v.Get(username)
	if err != nil {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}
