package chk

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Shared fixtures
// ---------------------------------------------------------------------------

// alwaysTrue and alwaysFalse are the simplest possible conditions.
func alwaysTrue() Check  { return FromFunc("true", func() bool { return true }) }
func alwaysFalse() Check { return FromFunc("false", func() bool { return false }) }

// mustNotEvaluate fails the test if the check is ever evaluated; used to
// verify short-circuiting.
func mustNotEvaluate(t *testing.T) Check {
	t.Helper()

	return FromFunc("must not evaluate", func() bool {
		t.Fatal("check should not have been evaluated")
		return false
	})
}

// counting returns a check with the fixed result and a pointer to its
// evaluation count.
func counting(result bool) (Check, *int) {
	n := new(int)

	return FromFunc("counting", func() bool {
		*n++
		return result
	}), n
}

// erroring returns a check that always fails with err.
func erroring(err error) Check {
	return New("erroring", func(_ context.Context) (bool, error) {
		return false, err
	})
}

// ---------------------------------------------------------------------------
// Tests: construction and evaluation
// ---------------------------------------------------------------------------

func TestNewEvaluatesCondition(t *testing.T) {
	called := false

	c := New("probe", func(_ context.Context) (bool, error) {
		called = true
		return true, nil
	})

	ok, err := c.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate() error = %v, want nil", err)
	}

	if !ok {
		t.Fatal("Evaluate() = false, want true")
	}

	if !called {
		t.Fatal("condition was not evaluated")
	}
}

func TestFromFuncAdaptsPredicate(t *testing.T) {
	for _, want := range []bool{true, false} {
		c := FromFunc("pred", func() bool { return want })

		got, err := c.Evaluate(context.Background())
		if err != nil {
			t.Fatalf("Evaluate() error = %v, want nil", err)
		}

		if got != want {
			t.Fatalf("Evaluate() = %v, want %v", got, want)
		}
	}
}

func TestZeroValueEvaluatesFalse(t *testing.T) {
	var c Check

	ok, err := c.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate() error = %v, want nil", err)
	}

	if ok {
		t.Fatal("zero value Evaluate() = true, want false")
	}
}

func TestCheckIsReEvaluable(t *testing.T) {
	c, n := counting(true)

	for range 3 {
		if _, err := c.Evaluate(context.Background()); err != nil {
			t.Fatalf("Evaluate() error = %v, want nil", err)
		}
	}

	if *n != 3 {
		t.Fatalf("condition evaluated %d times, want 3", *n)
	}
}

func TestConditionErrorPropagates(t *testing.T) {
	sentinel := errors.New("boom")

	_, err := erroring(sentinel).Evaluate(context.Background())
	if !errors.Is(err, sentinel) {
		t.Fatalf("Evaluate() error = %v, want %v", err, sentinel)
	}
}

// ---------------------------------------------------------------------------
// Tests: descriptions
// ---------------------------------------------------------------------------

func TestStringReturnsDescription(t *testing.T) {
	c := FromFunc("queue empty", func() bool { return true })

	if got := c.String(); got != "queue empty" {
		t.Fatalf("String() = %q, want %q", got, "queue empty")
	}
}

func TestStringZeroValue(t *testing.T) {
	var c Check

	if got := c.String(); got != "<check>" {
		t.Fatalf("String() = %q, want %q", got, "<check>")
	}
}

func TestDerivedDescriptions(t *testing.T) {
	c := FromFunc("a", func() bool { return true })
	d := FromFunc("b", func() bool { return true })

	cases := []struct {
		got  string
		want string
	}{
		{c.And(d).String(), "(a && b)"},
		{c.Or(d).String(), "(a || b)"},
		{c.Not().String(), "not(a)"},
		{All().String(), "true"},
		{Any().String(), "false"},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("description = %q, want %q", tc.got, tc.want)
		}
	}
}
