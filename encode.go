package celengan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EncodeVault writes the vault as indented JSON, the human-readable,
// version-controllable form it is persisted in.
func EncodeVault(w io.Writer, v *Vault) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode vault: %w", err)
	}
	return nil
}

// DecodeVault reads a vault back from its JSON form. Lookup keys are
// re-normalized and nil maps are replaced, so a hand-edited file still
// loads into a usable vault.
func DecodeVault(r io.Reader) (*Vault, error) {
	var raw Vault
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode vault: %w", err)
	}
	v := NewVault()
	for _, u := range raw.Users {
		if u.Targets == nil {
			u.Targets = make(map[string]*Target)
		}
		if u.MainLedger == nil {
			u.MainLedger = make([]Transaction, 0)
		}
		targets := make(map[string]*Target, len(u.Targets))
		for _, t := range u.Targets {
			if t.Ledger == nil {
				t.Ledger = make([]Transaction, 0)
			}
			targets[normalize(t.Name)] = t
		}
		u.Targets = targets
		v.Put(u)
	}
	return v, nil
}

// LoadVault reads the vault file at path. A missing file is not an
// error: it yields an empty vault, the state before any registration.
func LoadVault(path string) (*Vault, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewVault(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open vault file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeVault(f)
}

// SaveVault writes the whole vault to path atomically: the JSON is
// written to a temporary file first and renamed over the old one, so a
// crash mid-write cannot leave a truncated vault.
func SaveVault(path string, v *Vault) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create vault directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".vault-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary vault file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeVault(tmp, v); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary vault file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace vault file %q: %w", path, err)
	}
	return nil
}

// LoadSession returns the username of the logged-in session, or "" when
// logged out.
func LoadSession(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read session file %q: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// SaveSession records username as the logged-in session.
func SaveSession(path, username string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create session directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(normalize(username)+"\n"), 0o600); err != nil {
		return fmt.Errorf("could not write session file %q: %w", path, err)
	}
	return nil
}

// ClearSession logs the session out. Clearing an absent session is fine.
func ClearSession(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
