package rose

// Map returns a tree of the same shape with every node value replaced by
// f(value). Untouched structure is rebuilt, not shared, since every value
// changes type.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	if t.IsLeaf() {
		return Leaf(f(t.shape.value))
	}
	children := make([]Tree[B], len(t.shape.forest))
	for i, child := range t.shape.forest {
		children[i] = Map(child, f)
	}
	return Branch(f(t.shape.value), children)
}

// TraverseE rebuilds t with every value replaced by f(value), running f in
// post-order: all of a node's children are visited first, left to right,
// each fully resolved before the next begins, and the node itself last.
// Evaluation is strictly sequential. The first error aborts the run; f is
// not called for any remaining node.
func TraverseE[A, B any](t Tree[A], f func(A) (B, error)) (Tree[B], error) {
	var children []Tree[B]
	if t.IsBranch() {
		children = make([]Tree[B], len(t.shape.forest))
		for i, child := range t.shape.forest {
			mapped, err := TraverseE(child, f)
			if err != nil {
				return Tree[B]{}, err
			}
			children[i] = mapped
		}
	}
	value, err := f(t.shape.value)
	if err != nil {
		return Tree[B]{}, err
	}
	return TreeOf(value, children...), nil
}

// TraversePreE is [TraverseE] in pre-order: a node's own value is visited
// before any of its children.
func TraversePreE[A, B any](t Tree[A], f func(A) (B, error)) (Tree[B], error) {
	value, err := f(t.shape.value)
	if err != nil {
		return Tree[B]{}, err
	}
	var children []Tree[B]
	if t.IsBranch() {
		children = make([]Tree[B], len(t.shape.forest))
		for i, child := range t.shape.forest {
			mapped, err := TraversePreE(child, f)
			if err != nil {
				return Tree[B]{}, err
			}
			children[i] = mapped
		}
	}
	return TreeOf(value, children...), nil
}

// SequenceE turns a tree of suspended computations into the computation of
// a tree: each node's function is run exactly once, in post-order, and the
// first error aborts the run.
func SequenceE[A any](t Tree[func() (A, error)]) (Tree[A], error) {
	return TraverseE(t, func(run func() (A, error)) (A, error) {
		return run()
	})
}
