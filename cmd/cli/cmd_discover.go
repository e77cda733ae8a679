package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/webscout/webscout/pkg/discovery"
	"github.com/webscout/webscout/pkg/duration"
	"github.com/webscout/webscout/pkg/interactive"
	"github.com/webscout/webscout/pkg/paginate"
	"github.com/webscout/webscout/pkg/scraper"
	"github.com/webscout/webscout/pkg/throttle"
	"github.com/webscout/webscout/pkg/ui"
)

func runDiscover() {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	target := fs.String("u", "", "Target URL (required); probing runs against its origin")
	configPath := fs.String("config", "", "Path to YAML config file")
	output := fs.String("output", "", "Write the JSON report to this file ('-' for stdout)")
	interactiveMode := fs.Bool("interactive", false, "Page through results interactively")
	pageSize := fs.Int("page-size", 0, "Results per page in interactive mode")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	fs.Parse(os.Args[2:])

	settings := loadSettings(*configPath, *verbose)
	requireTarget(*target)
	if *pageSize > 0 {
		settings.PageSize = *pageSize
	}

	base, err := scraper.Origin(*target)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Invalid URL: %v", err))
		os.Exit(1)
	}

	client := scraper.New(settings.ScraperConfig())
	defer client.Close()
	scanner := discovery.NewScanner(client)
	gate := throttle.NewGate(settings.CallerCooldown)

	ui.PrintSection("Path Discovery")
	ui.PrintConfigLine("Target", base)
	ui.PrintConfigLine("Candidates", fmt.Sprintf("%d", len(discovery.ProbeList())))
	ui.PrintConfigLine("Min interval", settings.MinInterval.String())

	report := discoverOnce(scanner, gate, base)
	printDiscoverSummary(base, report)

	if *output != "" {
		writeReport(*output, report)
	}

	if *interactiveMode {
		discoverLoop(scanner, gate, base, report, settings.PageSize)
	}
}

// discoverOnce runs a full wordlist scan against base. The gate call
// stamps the origin so an immediate rescan is refused.
func discoverOnce(scanner *discovery.Scanner, gate *throttle.Gate, base string) *discovery.Report {
	if wait, ok := gate.Allow(base); !ok {
		ui.PrintWarning(fmt.Sprintf("Please wait %.0fs before scanning %s again", wait.Seconds(), base))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration.ContextMedium)
	defer cancel()

	ui.PrintInfo("Scanning " + base + " ...")
	report, err := scanner.Discover(ctx, base)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Scan failed: %v", err))
		os.Exit(1)
	}
	return report
}

func printDiscoverSummary(base string, report *discovery.Report) {
	if report == nil {
		return
	}
	ui.PrintSuccess(fmt.Sprintf("Checked %d paths in %s, found %d",
		report.Checked, report.Duration.Round(duration.DisplayRound), len(report.Found)))
	for _, hit := range report.Found {
		ui.PrintHitLine(strings.TrimPrefix(hit.URL, base), hit.Status)
	}
}

// discoverLoop pages through the findings on stdin commands. The rescan
// command goes back through the same per-origin gate as the initial
// scan.
func discoverLoop(scanner *discovery.Scanner, gate *throttle.Gate, base string, report *discovery.Report, pageSize int) {
	if report == nil {
		return
	}
	pager := paginate.New(base, report.Found, pageSize)
	session := interactive.NewSession(pager, duration.SessionIdle)

	fmt.Fprintln(os.Stderr)
	ui.PrintInfo("Commands: n(ext), p(rev), r(escan), q(uit)")
	fmt.Fprintln(os.Stderr, session.Text())

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !in.Scan() {
			return
		}
		var err error
		switch strings.TrimSpace(in.Text()) {
		case "n":
			err = session.Next()
		case "p":
			err = session.Prev()
		case "r":
			fresh := discoverOnce(scanner, gate, base)
			if fresh == nil {
				continue
			}
			report = fresh
			pager = paginate.New(base, report.Found, pageSize)
			session = interactive.NewSession(pager, duration.SessionIdle)
		case "q":
			return
		case "":
			continue
		default:
			ui.PrintWarning("Unknown command")
			continue
		}
		if err != nil {
			ui.PrintWarning("Session expired; results are frozen. Rerun to scan again.")
			return
		}
		fmt.Fprintln(os.Stderr, session.Text())
	}
}
