package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/silvio-dacol/matapan/renderer"
)

type yearlyCmd struct{}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the yearly income and savings rollup" }
func (*yearlyCmd) Usage() string {
	return `mat yearly

  Displays the yearly rollup: months counted, income, expenses, savings and
  average save rate per calendar year.
`
}

func (*yearlyCmd) SetFlags(f *flag.FlagSet) {}

func (*yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := ComputeDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.YearlyMarkdown(d.YearlyStats, d.BaseCurrency))
	return subcommands.ExitSuccess
}
