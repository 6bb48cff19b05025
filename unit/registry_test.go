package unit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NewCase_When_NoSuiteDeclared_AttachesToDefaultSuite(t *testing.T) {
	reg := NewRegistry()
	reg.NewCase("Orphan", func(tt *T) {})

	rep := &traceReporter{}
	reg.RunAll(rep)

	want := []string{
		"all-begin",
		"begin DefaultTestSuite",
		"begin Orphan", "end Orphan",
		"end DefaultTestSuite",
		"all-end",
	}
	if diff := cmp.Diff(want, rep.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_NewCase_When_SuiteDeclaredFirst_DefaultSuiteNeverRegistered(t *testing.T) {
	reg := NewRegistry()
	reg.NewSuite("Named")
	reg.NewCase("Inside", func(tt *T) {})

	rep := &traceReporter{}
	reg.RunAll(rep)

	want := []string{
		"all-begin",
		"begin Named",
		"begin Inside", "end Inside",
		"end Named",
		"all-end",
	}
	if diff := cmp.Diff(want, rep.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_CursorFollowsDeclarationOrder(t *testing.T) {
	reg := NewRegistry()
	first := reg.NewSuite("First")
	reg.NewCase("InFirst", func(tt *T) {})
	sub := reg.NewSubsuite(first, "Sub")
	reg.NewCase("InSub", func(tt *T) {})
	reg.NewSuite("Second")
	reg.NewCase("InSecond", func(tt *T) {})

	require.Equal(t, 2, first.Len(), "First owns its case and the subsuite")
	require.Equal(t, 1, sub.Len())

	rep := &traceReporter{}
	reg.RunAll(rep)

	want := []string{
		"all-begin",
		"begin First",
		"begin InFirst", "end InFirst",
		"begin Sub",
		"begin InSub", "end InSub",
		"end Sub",
		"end First",
		"begin Second",
		"begin InSecond", "end InSecond",
		"end Second",
		"all-end",
	}
	if diff := cmp.Diff(want, rep.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RunAll_ReturnsTotalFailures(t *testing.T) {
	reg := NewRegistry()
	reg.NewSuite("S")
	reg.NewCase("A", func(tt *T) {})
	reg.NewCase("B", func(tt *T) { Equal(tt, 1, 2) })

	rep := &traceReporter{}
	total := reg.RunAll(rep)

	assert.Equal(t, 1, total)
	assert.Equal(t, 2, rep.Executed())
}

func TestRegistry_RunAll_When_Empty(t *testing.T) {
	reg := NewRegistry()
	rep := &traceReporter{}

	total := reg.RunAll(rep)

	assert.Equal(t, 0, total)
	assert.Equal(t, 0, rep.Executed())
	assert.Equal(t, []string{"all-begin", "all-end"}, rep.events)
}

func TestRegistry_Register_AppendsTopLevelWithoutMovingCursor(t *testing.T) {
	reg := NewRegistry()
	s := reg.NewSuite("S")
	hand := NewSuite("HandBuilt")
	hand.Add(NewCase("X", func(tt *T) {}))
	reg.Register(hand)
	reg.NewCase("StillInS", func(tt *T) {})

	assert.Equal(t, 1, s.Len(), "explicit registration must not steal the cursor")
}
