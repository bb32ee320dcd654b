package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/silvio-dacol/matapan"
	"github.com/silvio-dacol/matapan/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a net-worth snapshot summary" }
func (*summaryCmd) Usage() string {
	return `mat summary [-m <month>]

  Displays the snapshot of a given month (the latest by default):
  breakdown, totals, cash flow, performance and adjusted views.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to display (YYYY-MM). Defaults to the latest snapshot.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := ComputeDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot := d.Latest
	if c.month != "" {
		month, err := matapan.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		snapshot = nil
		for _, s := range d.Snapshots {
			if s.Month == month {
				snapshot = s
				break
			}
		}
		if snapshot == nil {
			fmt.Fprintf(os.Stderr, "No snapshot for month %s\n", month)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SnapshotMarkdown(snapshot))
	return subcommands.ExitSuccess
}
