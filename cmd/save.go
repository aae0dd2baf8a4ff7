package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/sandhika/celengan"
)

type saveCmd struct {
	target string
	note   string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "record a deposit into the main balance or a target" }
func (*saveCmd) Usage() string {
	return `clg save [-t <target>] [-n <note>] <amount>

  Deposits the amount into the main balance, or into a savings target
  when -t is given. Target deposits are clamped at the goal: the target
  never holds more than its goal amount.

  Amounts accept plain digits or the display form, e.g. 250000 or Rp250.000.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "t", "", "name of the savings target to deposit into")
	f.StringVar(&c.note, "n", "", "note attached to the transaction")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "save takes exactly one amount argument")
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
		if err := u.DepositToMain(amount, c.note, time.Now()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := CloseVault(v); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved %s. Main balance: %s\n", amount, u.MainBalance)
		return subcommands.ExitSuccess
	}

	t, err := u.DepositToTarget(c.target, amount, c.note, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, celengan.ErrTargetNotFound) {
			suggestTargets(u.ActiveTargets())
		}
		return subcommands.ExitFailure
	}
	if err := CloseVault(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %s into %q: %s of %s (%d%%)\n", amount, t.Name, t.Balance, t.Goal, t.Progress())
	if t.Completed() {
		fmt.Printf("Target %q is complete! 🎉\n", t.Name)
	}
	return subcommands.ExitSuccess
}

// suggestTargets lists the targets a retry could name.
func suggestTargets(targets []*celengan.Target) {
	if len(targets) == 0 {
		return
	}
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	fmt.Fprintf(os.Stderr, "Available targets: %s\n", strings.Join(names, ", "))
}
