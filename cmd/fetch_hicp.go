package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/silvio-dacol/matapan"
	"github.com/silvio-dacol/matapan/eurostat"
)

// fetchHICPCmd holds the flags for the 'fetch-hicp' subcommand.
type fetchHICPCmd struct {
	geo   string
	since string
}

func (*fetchHICPCmd) Name() string     { return "fetch-hicp" }
func (*fetchHICPCmd) Synopsis() string { return "download an HICP index series from Eurostat" }
func (*fetchHICPCmd) Usage() string {
	return `mat fetch-hicp [-geo <code>] [-since <month>]

  Downloads the all-items HICP monthly index series (2015 = 100) from the
  Eurostat statistics API and prints it, one month per line.
`
}

func (c *fetchHICPCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.geo, "geo", "EA20", "Eurostat geo code (e.g. EA20, NL, PT)")
	f.StringVar(&c.since, "since", "", "First month of the series (YYYY-MM). Defaults to 24 months ago.")
}

func (c *fetchHICPCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	since := matapan.ThisMonth().Add(-24)
	if c.since != "" {
		var err error
		since, err = matapan.ParseMonth(c.since)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	series, err := eurostat.Fetch(c.geo, since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching HICP series: %v\n", err)
		return subcommands.ExitFailure
	}

	months := make([]matapan.Month, 0, len(series))
	for m := range series {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	for _, m := range months {
		fmt.Printf("%s %.2f\n", m, series[m])
	}
	return subcommands.ExitSuccess
}
