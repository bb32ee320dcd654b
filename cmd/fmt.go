package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/silvio-dacol/matapan"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the monthly documents in canonical form"
}
func (*fmtCmd) Usage() string {
	return `mat fmt

  Validates and formats the stored monthly documents. Each document is
  decoded, validated (month key, duplicates) and written back to its
  canonical file "<documents-path>/<month>.json".
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	docs, err := LoadDocuments()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load documents: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(docs) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no documents found to format.\n")
		return subcommands.ExitSuccess
	}

	for _, doc := range docs {
		if err := matapan.SaveDocument(*documentsPath, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving document %s: %v\n", doc.Month, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Formatted document %s.\n", doc.Month)
	}
	return subcommands.ExitSuccess
}
