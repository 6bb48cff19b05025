package unit

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"
)

// Check functions are the assertion surface. Each takes the running test's *T
// first, evaluates its predicate, and on failure records a FailureRecord whose
// condition text embeds the runtime values of the operands, then unwinds the
// rest of the test body. Sibling tests are unaffected. Every function returns
// the predicate result, though a false return is only observable to deferred
// code since the body aborts.
//
// An optional note is appended to the condition as ", Note: <note>".

// Number is the operand constraint for Close.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

func joinNote(note []string) string {
	return strings.Join(note, " ")
}

// Check fails the test when ok is false, using expr as the condition text.
// It is the escape hatch for predicates the typed checks do not cover.
func Check(t *T, ok bool, expr string, note ...string) bool {
	if ok {
		return true
	}
	t.fail(1, expr, joinNote(note))
	return false
}

// Equal checks x == y.
func Equal[V comparable](t *T, x, y V, note ...string) bool {
	if x == y {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) == %v (%v)", x, x, y, y), joinNote(note))
	return false
}

// Differ checks !(x == y).
func Differ[V comparable](t *T, x, y V, note ...string) bool {
	if x != y {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) != %v (%v)", x, x, y, y), joinNote(note))
	return false
}

// Close checks that x and y are within delta of each other:
// (y-x) < delta && (y-x) > -delta.
func Close[V Number](t *T, x, y, delta V, note ...string) bool {
	diff := y - x
	if diff < delta && diff > -delta {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) close to %v (%v) with delta %v (%v)", x, x, y, y, delta, delta), joinNote(note))
	return false
}

// Less checks x < y.
func Less[V cmp.Ordered](t *T, x, y V, note ...string) bool {
	if x < y {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) < %v (%v)", x, x, y, y), joinNote(note))
	return false
}

// LessOrEqual checks x <= y.
func LessOrEqual[V cmp.Ordered](t *T, x, y V, note ...string) bool {
	if x <= y {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) <= %v (%v)", x, x, y, y), joinNote(note))
	return false
}

// More checks x > y.
func More[V cmp.Ordered](t *T, x, y V, note ...string) bool {
	if x > y {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) > %v (%v)", x, x, y, y), joinNote(note))
	return false
}

// MoreOrEqual checks x >= y.
func MoreOrEqual[V cmp.Ordered](t *T, x, y V, note ...string) bool {
	if x >= y {
		return true
	}
	t.fail(1, fmt.Sprintf("%v (%v) >= %v (%v)", x, x, y, y), joinNote(note))
	return false
}

// SameData checks byte-wise equality of the first size bytes of two buffers.
// A zero size or identical backing arrays pass without comparing; a nil
// buffer with a nonzero size fails, as does a buffer shorter than size.
// Operand values are not printed.
func SameData(t *T, x, y []byte, size int, note ...string) bool {
	if sameData(x, y, size) {
		return true
	}
	t.fail(1, fmt.Sprintf("same data with size %d", size), joinNote(note))
	return false
}

func sameData(x, y []byte, size int) bool {
	if size == 0 {
		return true
	}
	if len(x) > 0 && len(y) > 0 && &x[0] == &y[0] && len(x) >= size && len(y) >= size {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	if len(x) < size || len(y) < size {
		return false
	}
	return bytes.Equal(x[:size], y[:size])
}

// Fail records an explicit failure and aborts the body.
func Fail(t *T, note ...string) {
	t.fail(1, "Explicit failure", joinNote(note))
}

// Panics checks that fn panics.
func Panics(t *T, fn func(), note ...string) bool {
	if _, panicked := catchPanic(fn); panicked {
		return true
	}
	t.fail(1, "expected panic did not occur", joinNote(note))
	return false
}

// NotPanics checks that fn does not panic.
func NotPanics(t *T, fn func(), note ...string) bool {
	v, panicked := catchPanic(fn)
	if !panicked {
		return true
	}
	t.fail(1, fmt.Sprintf("unexpected panic: %v", v), joinNote(note))
	return false
}

func catchPanic(fn func()) (v interface{}, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			v, panicked = r, true
		}
	}()
	fn()
	return nil, false
}
