// webscout probes a site for common paths and extracts structural
// information from its pages: titles, links, images, meta descriptions,
// text snippets, and directory-listing structure.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/webscout/webscout/pkg/defaults"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "discover":
		runDiscover()
	case "analyze":
		runAnalyze()
	case "title", "links", "images", "meta", "text":
		runPage(os.Args[1])
	case "version":
		fmt.Printf("webscout %s\n", defaults.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `webscout - wordlist-driven site reconnaissance

Usage:
  webscout <command> [flags]

Commands:
  discover   Probe an origin for common directories and files
  analyze    Analyze a page as a directory listing
  title      Fetch the page title
  links      List the links on a page
  images     List the images on a page
  meta       Fetch the page meta description
  text       Fetch a visible-text snippet of a page
  version    Print the version

Run 'webscout <command> -h' for command flags.
`)
}

// setupLogger installs the process-wide logger; -verbose lowers the
// level to debug so individual probes become visible.
func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
