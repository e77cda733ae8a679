package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/webscout/webscout/pkg/duration"
	"github.com/webscout/webscout/pkg/listing"
	"github.com/webscout/webscout/pkg/scraper"
	"github.com/webscout/webscout/pkg/ui"
)

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	target := fs.String("u", "", "URL to analyze (required)")
	configPath := fs.String("config", "", "Path to YAML config file")
	output := fs.String("output", "", "Write the JSON report to this file ('-' for stdout)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	fs.Parse(os.Args[2:])

	settings := loadSettings(*configPath, *verbose)
	requireTarget(*target)

	client := scraper.New(settings.ScraperConfig())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), duration.ContextShort)
	defer cancel()

	report, err := listing.Analyze(ctx, client, *target)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Analyze failed: %v", err))
		os.Exit(1)
	}

	ui.PrintSection("Directory Analysis")
	ui.PrintConfigLine("URL", report.URL)
	ui.PrintConfigLine("Status", fmt.Sprintf("%d", report.Status))
	ui.PrintConfigLine("Listing", fmt.Sprintf("%t", report.IsListing))
	if report.Server != "" {
		ui.PrintConfigLine("Server", report.Server)
	}

	if len(report.Links) > 0 {
		ui.PrintInfo(fmt.Sprintf("Directories (%d):", len(report.Links)))
		for _, l := range report.Links {
			fmt.Fprintln(os.Stderr, "    "+l)
		}
	}
	if len(report.Files) > 0 {
		ui.PrintInfo(fmt.Sprintf("Files (%d):", len(report.Files)))
		for _, f := range report.Files {
			fmt.Fprintln(os.Stderr, "    "+f)
		}
	}
	if len(report.Links) == 0 && len(report.Files) == 0 {
		ui.PrintInfo("No links found")
	}

	if *output != "" {
		writeReport(*output, report)
	}
}
