package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/webscout/webscout/pkg/defaults"
	"github.com/webscout/webscout/pkg/duration"
	"github.com/webscout/webscout/pkg/page"
	"github.com/webscout/webscout/pkg/scraper"
	"github.com/webscout/webscout/pkg/ui"
)

// runPage handles the single-page extraction commands: title, links,
// images, meta, and text. They share fetch plumbing and differ only in
// which part of the parsed page they print.
func runPage(command string) {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	target := fs.String("u", "", "URL to fetch (required)")
	configPath := fs.String("config", "", "Path to YAML config file")
	chars := fs.Int("chars", defaults.SnippetChars, "Snippet length for the text command")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	fs.Parse(os.Args[2:])

	settings := loadSettings(*configPath, *verbose)
	requireTarget(*target)

	client := scraper.New(settings.ScraperConfig())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), duration.ContextShort)
	defer cancel()

	res, err := page.Fetch(ctx, client, *target)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Fetch failed: %v", err))
		os.Exit(1)
	}

	switch command {
	case "title":
		fmt.Println(res.Title())
	case "links":
		printList("Links", res.Links())
	case "images":
		printList("Images", res.Images())
	case "meta":
		fmt.Println(res.MetaDescription())
	case "text":
		fmt.Println(res.TextSnippet(*chars))
	}
}

func printList(label string, items []string) {
	if len(items) == 0 {
		ui.PrintInfo("No " + label + " found")
		return
	}
	ui.PrintInfo(fmt.Sprintf("%s (%d):", label, len(items)))
	for _, item := range items {
		fmt.Println(item)
	}
}
