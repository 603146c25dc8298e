package rose

// TreeF is the one-level shape of a tree: a node value and the children of
// some carrier type C, without any recursion. In the fixed type [Tree],
// C is Tree itself; in a fold C is the result type being accumulated; in an
// unfold C is the seed type being consumed.
//
// A nil forest means a leaf shape. A non-nil forest is never empty; that is
// the sole leaf/branch discriminant. The zero value is a leaf shape holding
// the zero value of A.
type TreeF[A, C any] struct {
	value  A
	forest []C
}

// LeafF returns a leaf shape holding value.
func LeafF[A, C any](value A) TreeF[A, C] {
	return TreeF[A, C]{value, nil}
}

// BranchF returns a branch shape with the given non-empty forest.
// BranchF panics if forest is empty; callers that may have no children
// should use [TreeFOf].
// The forest slice is referenced, not copied; callers must not mutate it.
func BranchF[A, C any](value A, forest []C) TreeF[A, C] {
	if len(forest) == 0 {
		panic("forest must be non-empty")
	}
	return TreeF[A, C]{value, forest}
}

// TreeFOf returns a branch shape when forest is non-empty, and a leaf shape
// otherwise. The forest slice is referenced, not copied.
func TreeFOf[A, C any](value A, forest []C) TreeF[A, C] {
	if len(forest) == 0 {
		return TreeF[A, C]{value, nil}
	}
	return TreeF[A, C]{value, forest}
}

// Match destructures a shape: it calls onLeaf for a leaf shape and onBranch
// for a branch shape. Every other operation in this package bottoms out in
// Match or an equivalent forest-length check.
//
// Match is a top-level function because Go methods cannot introduce the
// result type parameter R.
func Match[A, C, R any](s TreeF[A, C], onLeaf func(A) R, onBranch func(A, []C) R) R {
	if len(s.forest) == 0 {
		return onLeaf(s.value)
	}
	return onBranch(s.value, s.forest)
}

// MapF returns a shape with the node value replaced by f(value), preserving
// the forest. This is the functorial map over the node value only.
func MapF[A, B, C any](s TreeF[A, C], f func(A) B) TreeF[B, C] {
	return TreeF[B, C]{f(s.value), s.forest}
}

// Value returns the node value.
func (s TreeF[A, C]) Value() A {
	return s.value
}

// Forest returns the children carriers, empty for a leaf shape.
// The returned slice references internal storage; callers must not mutate it.
func (s TreeF[A, C]) Forest() []C {
	return s.forest
}

// Len returns the number of children, 0 for a leaf shape.
func (s TreeF[A, C]) Len() int {
	return len(s.forest)
}

// IsLeaf returns whether s has no children.
func (s TreeF[A, C]) IsLeaf() bool {
	return len(s.forest) == 0
}

// IsBranch returns whether s has at least one child.
func (s TreeF[A, C]) IsBranch() bool {
	return len(s.forest) > 0
}

// WithValue returns a shape identical to s with the node value replaced.
func (s TreeF[A, C]) WithValue(value A) TreeF[A, C] {
	return TreeF[A, C]{value, s.forest}
}

// WithForest returns a shape with the same node value and the given forest.
// An empty forest degrades the result to a leaf shape.
func (s TreeF[A, C]) WithForest(forest []C) TreeF[A, C] {
	return TreeFOf(s.value, forest)
}
