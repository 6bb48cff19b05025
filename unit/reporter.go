package unit

import "time"

// Reporter receives lifecycle and failure events during a run and accumulates
// counts. Implementations are driven single-threaded, strictly in execution
// order.
type Reporter interface {
	// AllBegin is called once before the first top-level runnable.
	AllBegin()
	// AllEnd is called once after the last top-level runnable.
	AllEnd()
	// Begin is called when a runnable starts.
	Begin(test Runnable)
	// End is called when a runnable finishes. Ends always pair with Begins.
	End(test Runnable)
	// Failure is called for every failed check or translated fault, at the
	// point in the trace where it occurred.
	Failure(f FailureRecord)
	// Failures returns the failures recorded so far.
	Failures() int
	// ElapsedSeconds returns the whole-second duration of the run, valid
	// after AllEnd.
	ElapsedSeconds() int
}

// Recorder is the embeddable base Reporter: it counts executed cases and
// failures and tracks run timing, with no output. Concrete reporters embed it
// and call through from their own event methods.
type Recorder struct {
	testCount    int
	failureCount int
	elapsed      int
	startTime    time.Time
}

// AllBegin resets the counters and captures the start time.
func (r *Recorder) AllBegin() {
	r.testCount = 0
	r.failureCount = 0
	r.elapsed = 0
	r.startTime = time.Now()
}

// AllEnd computes the elapsed whole seconds.
func (r *Recorder) AllEnd() {
	r.elapsed = int(time.Since(r.startTime).Seconds())
}

// Begin has no default effect.
func (r *Recorder) Begin(test Runnable) {}

// End increments the executed-test counter for leaf cases. Suites do not
// count as executed tests.
func (r *Recorder) End(test Runnable) {
	if test.Kind() == KindCase {
		r.testCount++
	}
}

// Failure increments the failure counter.
func (r *Recorder) Failure(f FailureRecord) {
	r.failureCount++
}

// Failures returns the failures recorded so far.
func (r *Recorder) Failures() int { return r.failureCount }

// Executed returns the number of leaf cases that have finished.
func (r *Recorder) Executed() int { return r.testCount }

// ElapsedSeconds returns the run duration captured by AllEnd.
func (r *Recorder) ElapsedSeconds() int { return r.elapsed }
