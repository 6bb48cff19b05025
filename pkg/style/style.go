// Package style defines the lipgloss themes used by the console reporter.
package style

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles for the elements of a console test trace. A zero
// style renders its text verbatim, so partial themes degrade gracefully.
type Theme struct {
	// Header styles the "Running unit tests..." banner.
	Header lipgloss.Style
	// Suite styles a suite marker line ("+ name").
	Suite lipgloss.Style
	// Case styles a case marker line ("- name").
	Case lipgloss.Style
	// Failure styles an inline failure line ("! file(line): ...").
	Failure lipgloss.Style
	// SummaryPass styles the executed/passed summary rows.
	SummaryPass lipgloss.Style
	// SummaryFail styles the failed summary row.
	SummaryFail lipgloss.Style
	// Elapsed styles the running-time footer.
	Elapsed lipgloss.Style
}

// Default returns the colored theme.
func Default() Theme {
	return Theme{
		Header:      lipgloss.NewStyle().Bold(true),
		Suite:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Case:        lipgloss.NewStyle(),
		Failure:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		SummaryPass: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		SummaryFail: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Elapsed:     lipgloss.NewStyle().Faint(true),
	}
}

// Plain returns a theme with no styling at all. Output is byte-identical to
// the unstyled trace format, which is what tests and piped output want.
func Plain() Theme {
	return Theme{}
}

// Named resolves a theme by its configuration name. Unknown names fall back
// to the default theme.
func Named(name string) Theme {
	switch name {
	case "plain", "mono":
		return Plain()
	default:
		return Default()
	}
}
