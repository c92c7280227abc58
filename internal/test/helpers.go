package test

import (
	"errors"
	"math"
	"testing"
)

// T wraps *testing.T with the assertions the display tests need on top of
// toast.
type T struct {
	*testing.T
}

// FromT creates a new test helper from a *testing.T.
func FromT(t *testing.T) *T {
	t.Helper()
	return &T{t}
}

// Assert fails the test if the condition is false.
func (t *T) Assert(condition bool, msgAndArgs ...any) {
	t.Helper()
	if condition {
		return
	}
	if len(msgAndArgs) == 0 {
		t.Fatal("assertion failed")
	}
	if format, ok := msgAndArgs[0].(string); ok {
		t.Fatalf(format, msgAndArgs[1:]...)
	}
	t.Fatal(msgAndArgs...)
}

// Assertf fails the test if the condition is false, with a formatted message.
func (t *T) Assertf(condition bool, format string, args ...any) {
	t.Helper()
	if !condition {
		t.Fatalf(format, args...)
	}
}

// CheckErr fails the test if err is not nil.
func (t *T) CheckErr(err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ExpectErr fails the test unless errors.Is(err, expected).
func (t *T) ExpectErr(err, expected error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error '%v', but got nil", expected)
	}
	if !errors.Is(err, expected) {
		t.Fatalf("expected error '%v', but got '%v'", expected, err)
	}
}

// ShouldPanic fails the test if f does not panic.
func (t *T) ShouldPanic(f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic, but did not get one")
		}
	}()
	f()
}

// AssertNear fails the test if got and want differ by more than eps.
func (t *T) AssertNear(got, want, eps float32) {
	t.Helper()
	if d := math.Abs(float64(got) - float64(want)); d > float64(eps) {
		t.Fatalf("got %v, want %v (diff %g > %g)", got, want, d, eps)
	}
}
