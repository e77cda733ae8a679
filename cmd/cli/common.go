package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/webscout/webscout/pkg/config"
	"github.com/webscout/webscout/pkg/scraper"
	"github.com/webscout/webscout/pkg/ui"
)

// loadSettings loads configuration and exits on failure; every command
// calls this first.
func loadSettings(configPath string, verbose bool) *config.Settings {
	setupLogger(verbose)
	settings, err := config.Load(configPath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Config error: %v", err))
		os.Exit(1)
	}
	return settings
}

// requireTarget validates the -u flag and exits on failure.
func requireTarget(target string) {
	if target == "" {
		ui.PrintError("Target URL is required. Use -u https://example.com")
		os.Exit(1)
	}
	if err := scraper.ValidateURL(target); err != nil {
		ui.PrintError(fmt.Sprintf("Invalid URL: %v", err))
		os.Exit(1)
	}
}

// writeReport writes v as indented JSON to path, or to stdout when path
// is "-".
func writeReport(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		ui.PrintError(fmt.Sprintf("Encoding report: %v", err))
		os.Exit(1)
	}
	data = append(data, '\n')

	if path == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		ui.PrintError(fmt.Sprintf("Writing report: %v", err))
		os.Exit(1)
	}
	ui.PrintSuccess("Report written to " + path)
}
