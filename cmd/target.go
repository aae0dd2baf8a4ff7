package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/sandhika/celengan"
	"github.com/sandhika/celengan/renderer"
)

// targetCmd groups the target lifecycle verbs under 'clg target <verb>'.
type targetCmd struct{}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "manage savings targets (new, rename, rm, info)" }
func (*targetCmd) Usage() string {
	return `clg target <new|rename|rm|info> ...

  Manage savings targets. Run 'clg target' for the list of verbs.
`
}
func (c *targetCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cdr := subcommands.NewCommander(f, "clg target")
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(&targetNewCmd{}, "")
	cdr.Register(&targetRenameCmd{}, "")
	cdr.Register(&targetRmCmd{}, "")
	cdr.Register(&targetInfoCmd{}, "")
	cdr.Register(&targetListCmd{}, "")
	return cdr.Execute(ctx, args...)
}

type targetListCmd struct{}

func (*targetListCmd) Name() string             { return "list" }
func (*targetListCmd) Synopsis() string         { return "list every savings target" }
func (*targetListCmd) Usage() string            { return "clg target list\n" }
func (*targetListCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TargetsMarkdown(u.AllTargets()))
	return subcommands.ExitSuccess
}

type targetNewCmd struct{}

func (*targetNewCmd) Name() string     { return "new" }
func (*targetNewCmd) Synopsis() string { return "create a savings target" }
func (*targetNewCmd) Usage() string {
	return `clg target new <name> <goal>

  Creates a savings target with the given goal amount. Names are
  case-insensitive: "Liburan" and "liburan" are the same target.
`
}
func (c *targetNewCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "target new takes a name and a goal amount")
		return subcommands.ExitUsageError
	}
	goal, err := celengan.ParseRupiah(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	v, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := u.CreateTarget(f.Arg(0), goal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := CloseVault(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Target %q created with goal %s.\n", t.Name, t.Goal)
	return subcommands.ExitSuccess
}

type targetRenameCmd struct{}

func (*targetRenameCmd) Name() string     { return "rename" }
func (*targetRenameCmd) Synopsis() string { return "rename a savings target" }
func (*targetRenameCmd) Usage() string {
	return `clg target rename <old> <new>

  Renames a target. Its balance, ledger and withdrawal state carry over.
`
}
func (c *targetRenameCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetRenameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "target rename takes the old and the new name")
		return subcommands.ExitUsageError
	}
	v, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := u.RenameTarget(f.Arg(0), f.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := CloseVault(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Target %q renamed to %q.\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}

type targetRmCmd struct {
	yes bool
}

func (*targetRmCmd) Name() string     { return "rm" }
func (*targetRmCmd) Synopsis() string { return "delete a savings target, transferring its balance" }
func (*targetRmCmd) Usage() string {
	return `clg target rm [-y] <name>

  Deletes a target. Its remaining balance is transferred back to the
  main balance and recorded there as a transfer deposit. Prints the
  plan and asks for confirmation unless -y is given.
`
}

func (c *targetRmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *targetRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "target rm takes exactly one target name")
		return subcommands.ExitUsageError
	}
	v, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	plan, err := u.PlanDelete(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if plan.Transfer > 0 {
		fmt.Printf("Deleting %q transfers %s back to the main balance.\n", plan.TargetName, plan.Transfer)
	} else {
		fmt.Printf("Deleting %q. It holds no balance.\n", plan.TargetName)
	}
	if !c.yes && !confirm("Proceed? [y/N] ") {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	if _, err := u.ConfirmDelete(f.Arg(0), time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := CloseVault(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Target %q deleted. Main balance: %s\n", plan.TargetName, u.MainBalance)
	return subcommands.ExitSuccess
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

type targetInfoCmd struct{}

func (*targetInfoCmd) Name() string     { return "info" }
func (*targetInfoCmd) Synopsis() string { return "show a target's progress, history and withdrawal state" }
func (*targetInfoCmd) Usage() string {
	return `clg target info <name>

  Shows the target's progress, its withdrawal eligibility and its
  transaction history grouped by day.
`
}
func (c *targetInfoCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetInfoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "target info takes exactly one target name")
		return subcommands.ExitUsageError
	}
	_, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, ok := u.Target(f.Arg(0))
	if !ok {
		fmt.Fprintln(os.Stderr, celengan.ErrTargetNotFound)
		return subcommands.ExitFailure
	}
	txs, err := u.TargetHistory(t.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TargetDetailMarkdown(t, celengan.GroupByDay(txs), t.CanWithdraw(time.Now())))
	return subcommands.ExitSuccess
}
