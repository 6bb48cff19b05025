//go:build !unix

package unit

import "os"

// defaultSignals returns the signals intercepted by default on platforms
// without the full POSIX signal set.
func defaultSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
