// Package unit is a minimal, extensible unit-testing framework: explicit test
// registration, suite composition, fixture setup/teardown, check functions
// with rich failure messages, and pluggable result reporters.
//
// Tests are plain functions taking a *T. A Registry collects cases and suites
// in declaration order and runs them sequentially, depth-first. Panics and
// OS signals raised inside a test body are translated into ordinary failure
// records so a crashing test does not take down the whole run.
//
// The package-level functions (Suite, Case, RunAll, Main) forward to a shared
// default registry for the common single-binary layout:
//
//	unit.Suite("Calculator")
//	unit.Case("Add", func(t *unit.T) {
//		unit.Equal(t, Add(2, 2), 4)
//	})
//	os.Exit(unit.Main())
package unit

// Kind discriminates the two runnable node types.
type Kind int

const (
	// KindCase is a leaf test executing one body.
	KindCase Kind = iota
	// KindSuite is a group of child runnables executed depth-first.
	KindSuite
)

// String returns the node type tag.
func (k Kind) String() string {
	if k == KindSuite {
		return "TestSuite"
	}
	return "TestCase"
}

// Runnable is a node in the test tree: a leaf case or a suite.
//
// Run executes the node against the reporter and returns the number of
// failures recorded while it ran. Implementations must emit exactly one
// Begin/End pair on the reporter per invocation, regardless of how the
// body or children fare.
type Runnable interface {
	Name() string
	Kind() Kind
	Run(r Reporter) int
}
