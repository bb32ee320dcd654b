// Package cmd implements the CLI application to manage a net-worth
// dashboard computed from monthly documents.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/silvio-dacol/matapan"
)

// Commands lists the subcommands of the mat binary in registration order.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&summaryCmd{},
	&yearlyCmd{},
	&fmtCmd{},
	&fetchHICPCmd{},
	&annotateCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var documentsPath = flag.String("documents-path", "documents", "Path to the folder holding monthly document files (JSON)")
var settingsFile = flag.String("settings-file", "settings.json", "Path to the settings file")

// LoadDocuments decodes all monthly documents from the app documents path.
func LoadDocuments() ([]*matapan.MonthlyDocument, error) {
	return matapan.DecodeDocuments(*documentsPath)
}

// LoadSettings decodes the app settings, falling back to defaults when the
// settings file does not exist.
func LoadSettings() (*matapan.Settings, error) {
	return matapan.LoadSettings(*settingsFile)
}

// ComputeDashboard runs the whole pipeline over the stored documents.
func ComputeDashboard() (*matapan.Dashboard, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	docs, err := LoadDocuments()
	if err != nil {
		return nil, err
	}
	return matapan.NewDashboard(docs, settings)
}

// printMarkdown renders markdown content for the terminal. If rendering
// fails the raw markdown is printed instead.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
