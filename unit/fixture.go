package unit

// Fixture provides setup and teardown around a single test invocation.
// Exactly one live instance exists per invocation; fixtures must not be
// shared between cases or copied.
type Fixture interface {
	SetUp()
	TearDown()
}

// Use runs the fixture's SetUp immediately and schedules its TearDown on the
// cleanup stack, so teardown happens even when the body aborts:
//
//	unit.Case("ParsesHeader", func(t *unit.T) {
//		f := &tempDirFixture{}
//		t.Use(f)
//		...
//	})
func (t *T) Use(f Fixture) {
	f.SetUp()
	t.Cleanup(f.TearDown)
}
