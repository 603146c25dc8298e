package rose

import (
	"cmp"
)

// Equal reports whether a and b are structurally equal: same shape, and
// equal values at every position. Comparison stops at the first mismatch
// at any depth.
func Equal[A comparable](a, b Tree[A]) bool {
	return EqualFunc(a, b, func(x, y A) bool { return x == y })
}

// EqualFunc is [Equal] under a caller-supplied value equivalence.
// Values are compared first, then child counts, then children pairwise in
// order.
func EqualFunc[A, B any](a Tree[A], b Tree[B], eq func(A, B) bool) bool {
	if !eq(a.shape.value, b.shape.value) {
		return false
	}
	if len(a.shape.forest) != len(b.shape.forest) {
		return false
	}
	for i, child := range a.shape.forest {
		if !EqualFunc(child, b.shape.forest[i], eq) {
			return false
		}
	}
	return true
}

// Compare returns a total order over trees: -1 when a sorts before b, 0
// when they are equal, +1 when a sorts after b.
//
// Values are compared first. At equal values a leaf sorts before a branch;
// two branches compare by child count, then child-wise, the first unequal
// child deciding.
func Compare[A cmp.Ordered](a, b Tree[A]) int {
	return CompareFunc(a, b, cmp.Compare[A])
}

// CompareFunc is [Compare] under a caller-supplied value order. The result
// is always determinate; compare is called only as long as every
// comparison so far has been a tie.
func CompareFunc[A any](a, b Tree[A], compare func(A, A) int) int {
	if c := compare(a.shape.value, b.shape.value); c != 0 {
		return c
	}
	// A leaf has 0 children, so this also sorts leaves before branches.
	if c := cmp.Compare(len(a.shape.forest), len(b.shape.forest)); c != 0 {
		return c
	}
	for i, child := range a.shape.forest {
		if c := CompareFunc(child, b.shape.forest[i], compare); c != 0 {
			return c
		}
	}
	return 0
}
