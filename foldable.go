package rose

// Reduce threads an accumulator through every node value of t, depth
// first: a node's value is consumed before its children, children left to
// right.
func Reduce[A, R any](t Tree[A], initial R, f func(R, A) R) R {
	acc := f(initial, t.shape.value)
	for _, child := range t.shape.forest {
		acc = Reduce(child, acc, f)
	}
	return acc
}

// FoldMap maps every node value into a monoid and combines the results in
// [Reduce] order. The combine operation must be associative with empty as
// its identity.
func FoldMap[A, M any](t Tree[A], empty M, combine func(M, M) M, f func(A) M) M {
	return Reduce(t, empty, func(acc M, value A) M {
		return combine(acc, f(value))
	})
}

// CountIf returns the number of nodes whose value satisfies pred.
func CountIf[A any](t Tree[A], pred func(A) bool) int {
	return Fold(t, func(s TreeF[A, int]) int {
		n := 0
		if pred(s.value) {
			n = 1
		}
		for _, count := range s.forest {
			n += count
		}
		return n
	})
}

// Every reports whether every node of a boolean tree is true.
func Every(t Tree[bool]) bool {
	return FoldMap(t, true, func(a, b bool) bool { return a && b }, id)
}

// Some reports whether at least one node of a boolean tree is true.
func Some(t Tree[bool]) bool {
	return FoldMap(t, false, func(a, b bool) bool { return a || b }, id)
}

// Xor folds a boolean tree under exclusive or: true iff an odd number of
// nodes are true.
func Xor(t Tree[bool]) bool {
	return FoldMap(t, false, func(a, b bool) bool { return a != b }, id)
}

// Eqv folds a boolean tree under equivalence, the dual of [Xor]: true iff
// an even number of nodes are false.
func Eqv(t Tree[bool]) bool {
	return FoldMap(t, true, func(a, b bool) bool { return a == b }, id)
}

func id(b bool) bool { return b }
