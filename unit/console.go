package unit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/dkoosis/unit/pkg/style"
)

// IndentStep is the indent added per tree level in the console trace.
const IndentStep = 2

// ConsoleConfig configures a ConsoleReporter.
type ConsoleConfig struct {
	// Out is the destination stream. Defaults to os.Stdout.
	Out io.Writer
	// Theme styles the trace. The zero theme renders plain text; use
	// style.Default() or style.Named for colored output.
	Theme style.Theme
	// Monochrome forces the plain theme regardless of Theme.
	Monochrome bool
}

// ConsoleReporter renders a nested, indented progress trace and a final
// summary to a text stream. Suites print a "+" marker, cases a "-" marker,
// failures a "!" line at the column of the active node. The indent follows a
// stack discipline: every End restores the indent its Begin found, so the
// level balances exactly no matter how many children failed.
type ConsoleReporter struct {
	Recorder
	out    io.Writer
	theme  style.Theme
	indent int
	width  int // terminal width when Out is a TTY, 0 otherwise
}

// NewConsoleReporter creates a reporter for cfg. When Out is a terminal,
// failure lines longer than the terminal width are truncated with an
// ellipsis; other writers receive untruncated output.
func NewConsoleReporter(cfg ConsoleConfig) *ConsoleReporter {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	theme := cfg.Theme
	if cfg.Monochrome {
		theme = style.Plain()
	}
	width := 0
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &ConsoleReporter{out: out, theme: theme, width: width}
}

// AllBegin prints the run banner.
func (c *ConsoleReporter) AllBegin() {
	c.Recorder.AllBegin()
	c.indent = 0
	fmt.Fprintf(c.out, "\n\n%s\n\n", c.theme.Header.Render("Running unit tests..."))
}

// Begin prints the marker line for test and descends one level.
func (c *ConsoleReporter) Begin(test Runnable) {
	c.Recorder.Begin(test)
	marker, st := "- ", c.theme.Case
	if test.Kind() == KindSuite {
		marker, st = "+ ", c.theme.Suite
	}
	fmt.Fprintf(c.out, "%s%s\n", strings.Repeat(" ", c.indent), st.Render(marker+test.Name()))
	c.indent += IndentStep
}

// End ascends one level.
func (c *ConsoleReporter) End(test Runnable) {
	c.Recorder.End(test)
	c.indent -= IndentStep
}

// Failure prints the failure inline at the marker column of the active node.
func (c *ConsoleReporter) Failure(f FailureRecord) {
	c.Recorder.Failure(f)
	pad := c.indent - IndentStep
	if pad < 0 {
		pad = 0
	}
	line := "! " + f.String()
	if c.width > 0 && pad+runewidth.StringWidth(line) > c.width && c.width > pad {
		line = runewidth.Truncate(line, c.width-pad, "…")
	}
	fmt.Fprintf(c.out, "%s%s\n", strings.Repeat(" ", pad), c.theme.Failure.Render(line))
}

// AllEnd prints the summary block and the elapsed-time footer. The failed
// row appears only when at least one failure was recorded.
func (c *ConsoleReporter) AllEnd() {
	c.Recorder.AllEnd()

	fmt.Fprintf(c.out, "\nSummary:\n")
	fmt.Fprintf(c.out, "  - Executed tests : %s\n",
		c.theme.SummaryPass.Render(fmt.Sprintf("%8d", c.Executed())))
	fmt.Fprintf(c.out, "  - Passed tests   : %s\n",
		c.theme.SummaryPass.Render(fmt.Sprintf("%8d", c.Executed()-c.Failures())))
	if c.Failures() != 0 {
		fmt.Fprintf(c.out, "  - Failed tests   : %s\n",
			c.theme.SummaryFail.Render(fmt.Sprintf("%8d", c.Failures())))
	}
	fmt.Fprintf(c.out, "\n%s\n\n",
		c.theme.Elapsed.Render(fmt.Sprintf("Tests running time: %ds.", c.ElapsedSeconds())))
}
