//go:build unix

package unit

import (
	"os"
	"syscall"
)

// defaultSignals returns the signals intercepted by default on Unix-like
// systems. Memory faults (SIGSEGV, SIGBUS) and arithmetic traps (SIGFPE) are
// not listed: the Go runtime already converts those into panics for faults in
// Go code, and the recovery channel handles them.
func defaultSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT,
		syscall.SIGABRT,
	}
}
