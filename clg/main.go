package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sandhika/celengan/cmd"
)

// completion describes the CLI surface for shell completion. Has no
// effect outside of a completion invocation.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"home": predict.Dirs("*"),
	},
	Sub: map[string]*complete.Command{
		"register": {Flags: map[string]complete.Predictor{"u": predict.Nothing}},
		"login":    {Flags: map[string]complete.Predictor{"u": predict.Nothing}},
		"logout":   {},
		"save": {Flags: map[string]complete.Predictor{
			"t": predict.Nothing,
			"n": predict.Nothing,
		}},
		"spend": {Flags: map[string]complete.Predictor{
			"t": predict.Nothing,
			"n": predict.Nothing,
		}},
		"target": {Sub: map[string]*complete.Command{
			"new":    {},
			"rename": {},
			"rm":     {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"info":   {},
			"list":   {},
		}},
		"history": {Flags: map[string]complete.Predictor{
			"t":    predict.Nothing,
			"main": predict.Nothing,
		}},
		"summary": {},
		"topic":   {Args: predict.Set{"readme", "targets", "withdrawal", "history"}},
	},
}

func main() {
	// A .env file can set CELENGAN_HOME for the -home default.
	godotenv.Load()

	completion.Complete("clg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
