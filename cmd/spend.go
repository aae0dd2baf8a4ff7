package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sandhika/celengan"
)

type spendCmd struct {
	target string
	note   string
}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "record a withdrawal from the main balance or a target" }
func (*spendCmd) Usage() string {
	return `clg spend [-t <target>] -n <note> <amount>

  Withdraws the amount from the main balance, or from a savings target
  when -t is given. A note is required.

  Target withdrawals are throttled: at most 30% of the target balance
  may be taken per 365 days. Withdrawing from a completed target
  reactivates it.
`
}

func (c *spendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "t", "", "name of the savings target to withdraw from")
	f.StringVar(&c.note, "n", "", "note attached to the transaction (required)")
}

func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "spend takes exactly one amount argument")
		return subcommands.ExitUsageError
	}
	amount, err := celengan.ParseRupiah(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	v, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.target == "" {
		if err := u.WithdrawFromMain(amount, c.note, time.Now()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := CloseVault(v); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Spent %s. Main balance: %s\n", amount, u.MainBalance)
		return subcommands.ExitSuccess
	}

	if err := u.WithdrawFromTarget(c.target, amount, c.note, time.Now()); err != nil {
		var blocked *celengan.BlockedError
		if errors.As(err, &blocked) {
			switch blocked.Reason {
			case celengan.BlockCooldown:
				fmt.Fprintf(os.Stderr, "Withdrawal blocked: last withdrawal was less than a year ago, %d day(s) remaining.\n", blocked.DaysRemaining)
			case celengan.BlockInsufficient:
				fmt.Fprintf(os.Stderr, "Withdrawal blocked: the target balance is too low to withdraw from.\n")
			}
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, celengan.ErrTargetNotFound) {
			suggestTargets(u.FundedTargets())
		}
		return subcommands.ExitFailure
	}
	if err := CloseVault(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, _ := u.Target(c.target)
	fmt.Printf("Spent %s from %q. Target balance: %s\n", amount, t.Name, t.Balance)
	return subcommands.ExitSuccess
}
