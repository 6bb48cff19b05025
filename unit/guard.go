package unit

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
)

// abortBody is the sentinel panic value used by failing checks to unwind the
// remainder of a test body. It never escapes the guard.
type abortBody struct{}

// Guard executes a test body with fault translation: panics (which is how the
// Go runtime surfaces memory faults and arithmetic traps in-process) and OS
// signals delivered while the body runs are converted into failure records on
// the reporter, so a crashing test is reported like any other failure instead
// of terminating the run.
//
// Both channels can be disabled independently. With DisableRecovery set the
// body runs unguarded and a panic propagates to the caller, so a debugger can
// stop at its origin; failing checks still unwind only their own body.
type Guard struct {
	// DisableRecovery lets panics escape the test body instead of being
	// translated into failures.
	DisableRecovery bool
	// DisableSignals skips signal interception entirely.
	DisableSignals bool
	// Signals is the capability set to intercept. The set of the first guard
	// to install wins for the process lifetime.
	Signals []os.Signal
}

// NewGuard returns a guard with the platform default signal set.
func NewGuard() *Guard {
	return &Guard{Signals: defaultSignals()}
}

var (
	signalOnce sync.Once
	signalCh   chan os.Signal
)

// install registers the signal handlers once per process.
func (g *Guard) install() {
	signalOnce.Do(func() {
		signalCh = make(chan os.Signal, 16)
		signal.Notify(signalCh, g.Signals...)
	})
}

// Run executes body for the named test, translating faults into failures on
// rep. Exactly one call is active at a time; the framework never runs bodies
// concurrently.
func (g *Guard) Run(name string, rep Reporter, body func()) {
	if g.DisableRecovery {
		defer swallowAbort()
		body()
		return
	}

	if !g.DisableSignals {
		g.install()
	}

	defer func() {
		r := recover()
		if !g.DisableSignals {
			g.drain(name, rep)
		}
		if r == nil {
			return
		}
		if _, ok := r.(abortBody); ok {
			return // failing check already reported
		}
		rep.Failure(NewFailure("Unhandled exception: "+panicMessage(r), name, UnknownFile, UnknownLine))
	}()

	body()
}

// swallowAbort catches only the check-abort sentinel, re-raising anything
// else. This keeps early-exit-on-failure working in unguarded mode.
func swallowAbort() {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(abortBody); ok {
		return
	}
	panic(r)
}

// drain converts signals received while the body ran into failure records.
func (g *Guard) drain(name string, rep Reporter) {
	for {
		select {
		case sig := <-signalCh:
			rep.Failure(NewFailure("Unhandled exception: signal "+sig.String(), name, UnknownFile, UnknownLine))
		default:
			return
		}
	}
}

func panicMessage(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", r)
}
