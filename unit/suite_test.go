package unit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSuite_Run_When_Empty(t *testing.T) {
	rep := &traceReporter{}
	s := NewSuite("Empty")

	delta := s.Run(rep)

	assert.Equal(t, 0, delta)
	assert.Equal(t, 0, rep.Executed(), "a suite does not count as an executed test")
	want := []string{"begin Empty", "end Empty"}
	if diff := cmp.Diff(want, rep.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}

func TestSuite_Run_When_ChildrenPassAndFail(t *testing.T) {
	rep := &traceReporter{}
	s := NewSuite("S")
	s.Add(NewCase("A", func(tt *T) {}))
	s.Add(NewCase("B", func(tt *T) { Equal(tt, 1, 2) }))
	s.Add(NewCase("C", func(tt *T) {}))

	delta := s.Run(rep)

	assert.Equal(t, 1, delta, "suite delta equals the sum of child deltas")
	assert.Equal(t, 3, rep.Executed(), "a failing child does not stop its siblings")
	want := []string{
		"begin S",
		"begin A", "end A",
		"begin B", "failure B", "end B",
		"begin C", "end C",
		"end S",
	}
	if diff := cmp.Diff(want, rep.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}

func TestSuite_Run_When_Nested(t *testing.T) {
	rep := &traceReporter{}
	outer := NewSuite("Outer")
	inner := NewSuite("Inner")
	inner.Add(NewCase("Leaf", func(tt *T) { Fail(tt) }))
	outer.Add(inner)
	outer.Add(NewCase("After", func(tt *T) {}))

	delta := outer.Run(rep)

	assert.Equal(t, 1, delta)
	want := []string{
		"begin Outer",
		"begin Inner",
		"begin Leaf", "failure Leaf", "end Leaf",
		"end Inner",
		"begin After", "end After",
		"end Outer",
	}
	if diff := cmp.Diff(want, rep.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}

func TestCase_Run_When_BodyPasses(t *testing.T) {
	rep := &traceReporter{}
	c := NewCase("Passes", func(tt *T) {})

	delta := c.Run(rep)

	assert.Equal(t, 0, delta)
	assert.Equal(t, 1, rep.Executed())
	assert.Equal(t, 0, rep.Failures())
}

func TestCase_Run_When_CheckFails_AbortsRemainderOfBody(t *testing.T) {
	rep := &traceReporter{}
	reached := false
	c := NewCase("Aborts", func(tt *T) {
		Equal(tt, 1, 2)
		reached = true
	})

	delta := c.Run(rep)

	assert.Equal(t, 1, delta)
	assert.False(t, reached, "statements after a failing check must not run")
	assert.Equal(t, 1, rep.Executed(), "an aborted case still counts as executed")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "TestCase", KindCase.String())
	assert.Equal(t, "TestSuite", KindSuite.String())
}
