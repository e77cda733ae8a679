// Package ui renders CLI output: section headers, key/value config lines,
// and status-colored result lines. Everything prints to stderr so stdout
// stays clean for piped report data.
package ui

import (
	"fmt"
	"os"
	"strconv"
)

// PrintSection prints a styled section header.
func PrintSection(title string) {
	fmt.Fprintln(os.Stderr, SectionStyle.Render(title))
}

// PrintConfigLine prints an aligned "label: value" line.
func PrintConfigLine(label, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		LabelStyle.Render(fmt.Sprintf("%-14s", label+":")),
		ValueStyle.Render(value))
}

// PrintInfo prints an informational line.
func PrintInfo(msg string) {
	fmt.Fprintln(os.Stderr, MutedStyle.Render("[*] ")+msg)
}

// PrintSuccess prints a success line.
func PrintSuccess(msg string) {
	fmt.Fprintln(os.Stderr, SuccessStyle.Render("[+] ")+msg)
}

// PrintWarning prints a warning line.
func PrintWarning(msg string) {
	fmt.Fprintln(os.Stderr, WarningStyle.Render("[!] ")+msg)
}

// PrintError prints an error line.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("[x] ")+msg)
}

// PrintHitLine prints one discovery hit with its status code colored by
// class.
func PrintHitLine(path string, status int) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		StatusStyle(status).Render(strconv.Itoa(status)),
		path)
}
