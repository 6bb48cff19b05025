package unit

// Suite is a Runnable grouping an ordered list of children. Children keep
// their declaration order; a suite with no children is valid and runs as a
// no-op. Suites aggregate failures transitively and never abort early: every
// child runs no matter how many siblings failed.
type Suite struct {
	name     string
	children []Runnable
}

// NewSuite creates an empty suite.
func NewSuite(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the suite name.
func (s *Suite) Name() string { return s.name }

// Kind returns KindSuite.
func (s *Suite) Kind() Kind { return KindSuite }

// Add appends a child.
func (s *Suite) Add(test Runnable) {
	s.children = append(s.children, test)
}

// Len returns the number of direct children.
func (s *Suite) Len() int { return len(s.children) }

// Run runs every child in declaration order against the same reporter and
// returns the summed failure delta. Begin and End are emitted exactly once
// around the children.
func (s *Suite) Run(rep Reporter) int {
	before := rep.Failures()
	rep.Begin(s)
	for _, child := range s.children {
		child.Run(rep)
	}
	rep.End(s)
	return rep.Failures() - before
}
