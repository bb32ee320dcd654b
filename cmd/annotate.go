package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/silvio-dacol/matapan"
	"github.com/silvio-dacol/matapan/eurostat"
)

// annotateCmd holds the flags for the 'annotate' subcommand.
type annotateCmd struct {
	geo string
}

func (*annotateCmd) Name() string     { return "annotate" }
func (*annotateCmd) Synopsis() string { return "stamp official HICP values into stored documents" }
func (*annotateCmd) Usage() string {
	return `mat annotate [-geo <code>]

  Fetches the HICP monthly series from Eurostat and writes the index value
  into every stored document that does not have one yet. Documents that
  already carry an index are left untouched.
`
}

func (c *annotateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.geo, "geo", "EA20", "Eurostat geo code (e.g. EA20, NL, PT)")
}

func (c *annotateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	docs, err := LoadDocuments()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load documents: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(docs) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no documents to annotate.\n")
		return subcommands.ExitSuccess
	}

	since := docs[0].Month
	for _, doc := range docs {
		if doc.Month.Before(since) {
			since = doc.Month
		}
	}

	series, err := eurostat.Fetch(c.geo, since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching HICP series: %v\n", err)
		return subcommands.ExitFailure
	}

	annotated := 0
	for _, doc := range docs {
		if doc.HICP > 0 {
			continue
		}
		value, ok := series[doc.Month]
		if !ok {
			fmt.Fprintf(os.Stderr, "No HICP value published for %s, skipped.\n", doc.Month)
			continue
		}
		doc.HICP = value
		if err := matapan.SaveDocument(*documentsPath, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving document %s: %v\n", doc.Month, err)
			return subcommands.ExitFailure
		}
		annotated++
		fmt.Fprintf(os.Stderr, "Annotated %s with HICP %.2f.\n", doc.Month, value)
	}

	fmt.Fprintf(os.Stderr, "Annotated %d document(s).\n", annotated)
	return subcommands.ExitSuccess
}
