package ui

import (
	"fmt"
	"strings"

	"github.com/crazywolf132/termchroma"
)

var (
	green  string = ""
	red    string = ""
	yellow string = ""
	gray   string = ""
	white  string = ""

	bold  string = termchroma.Bold
	reset string = termchroma.Reset
)

// Colors
func Green(s string) string  { return green + s + reset }
func Red(s string) string    { return red + s + reset }
func Yellow(s string) string { return yellow + s + reset }
func Gray(s string) string   { return gray + s + reset }
func White(s string) string  { return white + s + reset }
func Bold(s string) string   { return bold + s + reset }

// ColorHeadings colorizes the section headings of a cobra usage
// template.
func ColorHeadings(text string) string {
	headings := []string{
		"Usage:",
		"Examples:",
		"Available Commands:",
		"Flags:",
		"Aliases:",
		"Additional Commands:",
	}

	for _, heading := range headings {
		text = strings.ReplaceAll(text, heading, fmt.Sprintf("%s%s%s%s", green, bold, heading, reset))
	}

	text = strings.ReplaceAll(text, "{{rpad .Name .NamePadding }}", fmt.Sprintf("%s%s%s", white, "{{rpad .Name .NamePadding }}", reset))
	text = strings.ReplaceAll(text, "{{.CommandPath}}", fmt.Sprintf("%s%s%s", white, "{{.CommandPath}}", reset))

	return text
}

func init() {
	green, _ = termchroma.ANSIForeground("#98C379")
	yellow, _ = termchroma.ANSIForeground("#FFC402")
	red, _ = termchroma.ANSIForeground("#FF707E")
	gray, _ = termchroma.ANSIForeground("#6B737C")
	white, _ = termchroma.ANSIForeground("#FFF")
}
