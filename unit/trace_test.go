package unit

// traceReporter records the event sequence and failure records for
// assertions on run ordering and failure placement.
type traceReporter struct {
	Recorder
	events  []string
	records []FailureRecord
}

func (r *traceReporter) AllBegin() {
	r.Recorder.AllBegin()
	r.events = append(r.events, "all-begin")
}

func (r *traceReporter) AllEnd() {
	r.Recorder.AllEnd()
	r.events = append(r.events, "all-end")
}

func (r *traceReporter) Begin(test Runnable) {
	r.Recorder.Begin(test)
	r.events = append(r.events, "begin "+test.Name())
}

func (r *traceReporter) End(test Runnable) {
	r.Recorder.End(test)
	r.events = append(r.events, "end "+test.Name())
}

func (r *traceReporter) Failure(f FailureRecord) {
	r.Recorder.Failure(f)
	r.events = append(r.events, "failure "+f.TestName)
	r.records = append(r.records, f)
}
