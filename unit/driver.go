package unit

import (
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/unit/internal/config"
	"github.com/dkoosis/unit/pkg/style"
)

// Main is the standard driver: it loads .unit.yaml if present, applies the
// guard toggles, runs the default registry against a console reporter on
// stdout, and returns the total failure count. The return value is meant for
// os.Exit, so zero means success and CI can gate on it directly:
//
//	func main() { os.Exit(unit.Main()) }
//
// Output is unstyled when stdout is not a terminal.
func Main() int {
	cfg := config.Load()

	g := defaultRegistry.Guard()
	g.DisableRecovery = cfg.DisableRecovery
	g.DisableSignals = cfg.DisableSignals

	rep := NewConsoleReporter(ConsoleConfig{
		Theme:      style.Named(cfg.Theme),
		Monochrome: cfg.Monochrome || !term.IsTerminal(int(os.Stdout.Fd())),
	})
	return RunAll(rep)
}
