package rose

// FlatMap substitutes f(value) for every node of t and flattens the
// result, see [Flatten] for the exact grafting rule.
func FlatMap[A, B any](t Tree[A], f func(A) Tree[B]) Tree[B] {
	return Flatten(Map(t, f))
}

// Flatten collapses a tree of trees by one level.
//
// An outer leaf is replaced by the tree it holds, unchanged. An outer
// branch keeps its own (flattened) children and takes only the root value
// of the tree it holds: the held tree's own children are discarded.
//
//	Flatten(Branch(inner, outerChildren))
//	  == Branch(inner.Value(), flattened outerChildren)
//
// The held tree's children are discarded, not merged. The monad laws
// hold under this rule and [FlatMap] inherits it.
func Flatten[A any](tt Tree[Tree[A]]) Tree[A] {
	inner := tt.shape.value
	if tt.IsLeaf() {
		return inner
	}
	children := make([]Tree[A], len(tt.shape.forest))
	for i, child := range tt.shape.forest {
		children[i] = Flatten(child)
	}
	return Branch(inner.shape.value, children)
}

// Pair holds two values of independent types. Trees of pairs are produced
// by [Zip] and [Product] and consumed by [Unzip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product returns the cartesian product of two trees: every value of a
// paired with every value of b, a-major. The result's shape follows from
// nested [FlatMap]/[Map] under the [Flatten] grafting rule.
func Product[A, B any](a Tree[A], b Tree[B]) Tree[Pair[A, B]] {
	return FlatMap(a, func(x A) Tree[Pair[A, B]] {
		return Map(b, func(y B) Pair[A, B] {
			return Pair[A, B]{x, y}
		})
	})
}

// ProductAll returns the cartesian product of a list of trees: a tree of
// slices, one element per input tree, in input order. An empty input
// yields a single leaf holding an empty slice.
func ProductAll[A any](trees []Tree[A]) Tree[[]A] {
	result := Leaf(make([]A, 0))
	for i := len(trees) - 1; i >= 0; i-- {
		tail := result
		result = FlatMap(trees[i], func(x A) Tree[[]A] {
			return Map(tail, func(xs []A) []A {
				combined := make([]A, 0, len(xs)+1)
				combined = append(combined, x)
				return append(combined, xs...)
			})
		})
	}
	return result
}
