// Package cmd implements the CLI application to manage a savings vault.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/sandhika/celengan"
)

// Register the subcommands. The main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&logoutCmd{}, "account")

	c.Register(&saveCmd{}, "transactions")
	c.Register(&spendCmd{}, "transactions")

	c.Register(&targetCmd{}, "targets")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables for the app-level flags.

var homePath = flag.String("home", "", "Path to the celengan data directory (default $CELENGAN_HOME or ~/.celengan)")

// home resolves the data directory lazily, so that an env file loaded in
// main() can still set CELENGAN_HOME.
func home() string {
	if *homePath != "" {
		return *homePath
	}
	if h := os.Getenv("CELENGAN_HOME"); h != "" {
		return h
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".celengan"
	}
	return filepath.Join(dir, ".celengan")
}

func vaultPath() string   { return filepath.Join(home(), "vault.json") }
func sessionPath() string { return filepath.Join(home(), "session") }

// OpenVault is the central function to load the vault file.
func OpenVault() (*celengan.Vault, error) {
	v, err := celengan.LoadVault(vaultPath())
	if err != nil {
		return nil, err
	}
	if len(v.Users) == 0 {
		log.Println("vault is empty, register an account with 'clg register'")
	}
	return v, nil
}

// CloseVault persists the vault back to disk.
func CloseVault(v *celengan.Vault) error {
	return celengan.SaveVault(vaultPath(), v)
}

// currentUser resolves the logged-in user from the session file.
func currentUser(v *celengan.Vault) (*celengan.User, error) {
	username, err := celengan.LoadSession(sessionPath())
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, fmt.Errorf("not logged in, run 'clg login' first")
	}
	u, err := v.Get(username)
	if err != nil {
		return nil, fmt.Errorf("session user %q: %w", username, err)
	}
	return u, nil
}

// openSession loads the vault and resolves the logged-in user in one go,
// the preamble of every command that operates on an account.
func openSession() (*celengan.Vault, *celengan.User, error) {
	v, err := OpenVault()
	if err != nil {
		return nil, nil, err
	}
	u, err := currentUser(v)
	if err != nil {
		return nil, nil, err
	}
	return v, u, nil
}
