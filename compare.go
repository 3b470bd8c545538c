package chk

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Comparison checks wrap pure two-operand predicates. The operands are
// captured at construction and baked into the description, so a failed
// assertion prints both sides.

// IsEqual is true iff got == want.
func IsEqual[T comparable](got, want T) Check {
	return FromFunc(
		fmt.Sprintf("%v == %v", got, want),
		func() bool { return got == want },
	)
}

// IsNotEqual is true iff got != want.
func IsNotEqual[T comparable](got, want T) Check {
	return FromFunc(
		fmt.Sprintf("%v != %v", got, want),
		func() bool { return got != want },
	)
}

// IsGreaterThan is true iff got > threshold.
func IsGreaterThan[T cmp.Ordered](got, threshold T) Check {
	return FromFunc(
		fmt.Sprintf("%v > %v", got, threshold),
		func() bool { return got > threshold },
	)
}

// IsLessThan is true iff got < threshold.
func IsLessThan[T cmp.Ordered](got, threshold T) Check {
	return FromFunc(
		fmt.Sprintf("%v < %v", got, threshold),
		func() bool { return got < threshold },
	)
}

// IsIn is true iff member occurs in collection.
func IsIn[T comparable](member T, collection []T) Check {
	return FromFunc(
		fmt.Sprintf("%v in %v", member, collection),
		func() bool { return slices.Contains(collection, member) },
	)
}

// ContainsSubstring is true iff needle occurs in haystack.
func ContainsSubstring(haystack, needle string) Check {
	return FromFunc(
		fmt.Sprintf("%q in %q", needle, haystack),
		func() bool { return strings.Contains(haystack, needle) },
	)
}

// IsOfType is true iff v's dynamic type is assignable to T.
func IsOfType[T any](v any) Check {
	var zero T

	return FromFunc(
		fmt.Sprintf("%v is %s", v, typeName(zero)),
		func() bool {
			_, ok := v.(T)
			return ok
		},
	)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
