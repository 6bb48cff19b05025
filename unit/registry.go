package unit

// Registry is an ordered collection of top-level runnables plus the "current
// suite" cursor used during the registration phase. Declaration order decides
// suite membership: a case attaches to whichever suite was declared most
// recently at the moment the case is created. Registration must fully precede
// RunAll; both phases are single-threaded, so the registry carries no locks.
type Registry struct {
	top     []Runnable
	current *Suite
	guard   *Guard
}

// NewRegistry creates an empty registry with a default guard.
func NewRegistry() *Registry {
	return &Registry{guard: NewGuard()}
}

// Guard returns the guard shared by cases created through this registry.
// Toggle its fields before RunAll to change fault interception.
func (r *Registry) Guard() *Guard { return r.guard }

// Register appends a runnable to the top-level list without touching the
// cursor. Use it for trees assembled by hand.
func (r *Registry) Register(test Runnable) {
	r.top = append(r.top, test)
}

// NewSuite declares a top-level suite and makes it the current attachment
// point for subsequently declared cases and subsuites.
func (r *Registry) NewSuite(name string) *Suite {
	s := NewSuite(name)
	r.Register(s)
	r.current = s
	return s
}

// NewSubsuite declares a suite nested under parent and moves the cursor to
// it. The parent keeps its position in the tree; only attachment of later
// declarations changes.
func (r *Registry) NewSubsuite(parent *Suite, name string) *Suite {
	s := NewSuite(name)
	parent.Add(s)
	r.current = s
	return s
}

// NewCase declares a case attached to the current suite. Cases declared
// before any suite land in a lazily created DefaultTestSuite; that default
// is registered only if it is actually reached first, so declaring a named
// suite up front keeps it out of the tree entirely.
func (r *Registry) NewCase(name string, body func(*T)) *Case {
	c := NewCase(name, body)
	c.SetGuard(r.guard)
	r.currentGroup().Add(c)
	return c
}

func (r *Registry) currentGroup() *Suite {
	if r.current == nil {
		def := NewSuite("DefaultTestSuite")
		r.Register(def)
		r.current = def
	}
	return r.current
}

// RunAll runs every top-level runnable in registration order, wrapped in the
// reporter's AllBegin/AllEnd, and returns the total failure count. The count
// doubles as the process exit code for CI gating.
func (r *Registry) RunAll(rep Reporter) int {
	rep.AllBegin()
	for _, test := range r.top {
		test.Run(rep)
	}
	rep.AllEnd()
	return rep.Failures()
}

// defaultRegistry backs the package-level registration functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by the package-level functions.
func DefaultRegistry() *Registry { return defaultRegistry }

// Suite declares a top-level suite on the default registry.
func Suite(name string) *Suite { return defaultRegistry.NewSuite(name) }

// Subsuite declares a nested suite on the default registry.
func Subsuite(parent *Suite, name string) *Suite {
	return defaultRegistry.NewSubsuite(parent, name)
}

// Case declares a case on the default registry.
func Case(name string, body func(*T)) *Case { return defaultRegistry.NewCase(name, body) }

// Register appends a hand-built runnable to the default registry.
func Register(test Runnable) { defaultRegistry.Register(test) }

// RunAll runs the default registry against rep.
func RunAll(rep Reporter) int { return defaultRegistry.RunAll(rep) }
