package unit

import (
	"path/filepath"
	"runtime"
)

// Case is a leaf Runnable pairing a name with a test body.
type Case struct {
	name  string
	body  func(*T)
	guard *Guard
}

// NewCase creates a standalone case with its own default guard. Cases created
// through a Registry share the registry's guard instead.
func NewCase(name string, body func(*T)) *Case {
	return &Case{name: name, body: body, guard: NewGuard()}
}

// Name returns the case name.
func (c *Case) Name() string { return c.name }

// Kind returns KindCase.
func (c *Case) Kind() Kind { return KindCase }

// SetGuard replaces the guard used to execute the body.
func (c *Case) SetGuard(g *Guard) { c.guard = g }

// Run executes the body inside the guard and returns the failure delta.
// Cleanups registered by the body run after it, even when it aborts.
func (c *Case) Run(rep Reporter) int {
	before := rep.Failures()
	rep.Begin(c)
	t := &T{name: c.name, rep: rep}
	c.guard.Run(c.name, rep, func() {
		defer t.runCleanups()
		c.body(t)
	})
	rep.End(c)
	return rep.Failures() - before
}

// T is the context handed to a test body. It carries the reporting channel
// the check functions use and the cleanup stack for fixtures. A T is valid
// only for the duration of its body; bodies run strictly sequentially, so no
// locking is needed.
type T struct {
	name     string
	rep      Reporter
	cleanups []func()
}

// Name returns the name of the running case.
func (t *T) Name() string { return t.name }

// Cleanup schedules fn to run after the body finishes, last-registered first.
// Cleanups run even when the body aborts on a failing check or a panic.
func (t *T) Cleanup(fn func()) {
	t.cleanups = append(t.cleanups, fn)
}

func (t *T) runCleanups() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		t.cleanups[i]()
	}
	t.cleanups = nil
}

// fail records a failure at the caller's source location and unwinds the
// test body. skip counts stack frames above fail itself.
func (t *T) fail(skip int, condition, note string) {
	if note != "" {
		condition += ", Note: " + note
	}
	file, line := callerLocation(skip + 1)
	t.rep.Failure(NewFailure(condition, t.name, file, line))
	panic(abortBody{})
}

func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return UnknownFile, UnknownLine
	}
	return filepath.Base(file), line
}
