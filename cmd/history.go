package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sandhika/celengan"
	"github.com/sandhika/celengan/renderer"
)

type historyCmd struct {
	target string
	main   bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show transaction history grouped by day" }
func (*historyCmd) Usage() string {
	return `clg history [-t <target> | -main]

  Without flags, shows the unified history: main balance transactions
  plus every target's, annotated with the target name. Transfer records
  from deleted targets appear once, on the main side.

  -t shows a single target's history, -main only the main balance.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "t", "", "show only this target's history")
	f.BoolVar(&c.main, "main", false, "show only the main balance history")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.target != "" && c.main {
		fmt.Fprintln(os.Stderr, "-t and -main are mutually exclusive")
		return subcommands.ExitUsageError
	}
	_, u, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var title string
	var txs []celengan.Transaction
	switch {
	case c.target != "":
		title = "Riwayat " + c.target
		txs, err = u.TargetHistory(c.target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case c.main:
		title = "Riwayat Saldo Utama"
		txs = u.MainHistory()
	default:
		title = "Riwayat Transaksi"
		txs = u.UnifiedHistory()
	}

	printMarkdown(renderer.HistoryMarkdown(title, celengan.GroupByDay(txs)))
	return subcommands.ExitSuccess
}
