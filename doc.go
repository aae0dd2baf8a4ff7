// Package celengan implements a local-first personal savings tracker: a
// main balance, named savings targets with goal amounts, and per-account
// transaction ledgers, all persisted in a single JSON vault on disk.
//
// The core responsibilities are:
//   - Vault: the persistent store of every registered user, each with a
//     main balance, a main ledger and a set of savings targets.
//   - Target policy: target lifecycle (create, rename, delete with the
//     residual balance transferred back to the main balance) and the
//     withdrawal throttle that caps a single spend at 30% of a target's
//     balance and enforces a 365-day cooldown between spends.
//   - Transaction processing: validated deposits and withdrawals against
//     the main balance or a target, with no partial mutation on failure.
//   - History: read-side projections that merge the main ledger and every
//     target ledger into one chronological, day-grouped view without
//     double-counting transfer entries.
//
// This package is the foundation of the `clg` command-line tool; it never
// renders anything itself and reports every failure as an error value.
package celengan
