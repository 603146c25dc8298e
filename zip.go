package rose

// Zip pairs two trees position-wise, cropping to the intersection of their
// shapes: if either tree is a leaf at a position the result is a leaf
// there, and a branch keeps only as many children as both sides have.
func Zip[A, B any](a Tree[A], b Tree[B]) Tree[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{x, y}
	})
}

// ZipWith is [Zip] combining the paired values with f.
func ZipWith[A, B, C any](a Tree[A], b Tree[B], f func(A, B) C) Tree[C] {
	width := min(len(a.shape.forest), len(b.shape.forest))
	if width == 0 {
		return Leaf(f(a.shape.value, b.shape.value))
	}
	children := make([]Tree[C], width)
	for i := range width {
		children[i] = ZipWith(a.shape.forest[i], b.shape.forest[i], f)
	}
	return Branch(f(a.shape.value, b.shape.value), children)
}

// ZipWithE is [ZipWith] for combining functions that can fail. Positions
// are combined in pre-order, left to right; the first error aborts the
// run.
func ZipWithE[A, B, C any](a Tree[A], b Tree[B], f func(A, B) (C, error)) (Tree[C], error) {
	value, err := f(a.shape.value, b.shape.value)
	if err != nil {
		return Tree[C]{}, err
	}
	width := min(len(a.shape.forest), len(b.shape.forest))
	if width == 0 {
		return Leaf(value), nil
	}
	children := make([]Tree[C], width)
	for i := range width {
		child, err := ZipWithE(a.shape.forest[i], b.shape.forest[i], f)
		if err != nil {
			return Tree[C]{}, err
		}
		children[i] = child
	}
	return Branch(value, children), nil
}

// Unzip splits a tree of pairs into two trees of identical shape, the
// first holding every First and the second every Second.
func Unzip[A, B any](t Tree[Pair[A, B]]) (Tree[A], Tree[B]) {
	if t.IsLeaf() {
		return Leaf(t.shape.value.First), Leaf(t.shape.value.Second)
	}
	firsts := make([]Tree[A], len(t.shape.forest))
	seconds := make([]Tree[B], len(t.shape.forest))
	for i, child := range t.shape.forest {
		firsts[i], seconds[i] = Unzip(child)
	}
	return Branch(t.shape.value.First, firsts), Branch(t.shape.value.Second, seconds)
}
