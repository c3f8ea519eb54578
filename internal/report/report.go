// Package report renders the operator-facing progress and summary output for
// a fixture run. The text is observational only; nothing downstream parses it.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"elevseed/internal/emergency"
)

// Semantic colors, matching the gateway project's console palette.
var (
	successColor = lipgloss.Color("#8BC34A")
	errorColor   = lipgloss.Color("#e53935")
	infoColor    = lipgloss.Color("#2196F3")
	mutedColor   = lipgloss.Color("#7a8699")
)

var (
	bannerStyle  = lipgloss.NewStyle().Foreground(infoColor).Bold(true)
	stepStyle    = lipgloss.NewStyle().Foreground(infoColor)
	okStyle      = lipgloss.NewStyle().Foreground(successColor)
	errStyle     = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// Printer writes the run report to a single output stream.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Banner prints the run header.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", len(title))
	fmt.Fprintln(p.out, bannerStyle.Render(title))
	fmt.Fprintln(p.out, bannerStyle.Render(rule))
}

// Step prints one progress line.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.out, stepStyle.Render(fmt.Sprintf(format, args...)))
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintln(p.out, okStyle.Render("[OK] "+fmt.Sprintf(format, args...)))
}

// Errorf prints a failure diagnostic.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.out, errStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Building prints the per-building result line with both picks.
func (p *Printer) Building(res emergency.BuildingResult) {
	picks := make([]string, 0, len(res.Picks))
	for _, pk := range res.Picks {
		picks = append(picks, fmt.Sprintf("%s (elevator %d, floor %d)", pk.Type, pk.Elevator, pk.Floor))
	}
	fmt.Fprintf(p.out, "  %s %s\n",
		headingStyle.Render(res.BuildingID),
		detailStyle.Render(strings.Join(picks, ", ")))
}

// Summary prints the final statistics block and the document-wide
// distribution of emergency types.
func (p *Printer) Summary(sum *emergency.RunSummary) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, headingStyle.Render("Final statistics:"))
	fmt.Fprintf(p.out, "  Buildings processed:   %d\n", len(sum.Buildings))
	fmt.Fprintf(p.out, "  Requests per building: %d\n", emergency.RequestsPerBuilding)
	fmt.Fprintf(p.out, "  Total requests added:  %d\n", sum.Added)

	if len(sum.Distribution) == 0 {
		return
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, headingStyle.Render("Emergency type distribution:"))
	types := make([]string, 0, len(sum.Distribution))
	for t := range sum.Distribution {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(p.out, "  %-20s %d\n", t, sum.Distribution[emergency.Type(t)])
	}
}
