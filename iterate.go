package rose

import (
	"iter"
)

// Iterators over trees. All of them are depth first with children visited
// left to right, except [BreadthFirst]. Iterators should be idempotent:
// ranging twice over the same sequence visits the same nodes.

// All returns the node values of t in pre-order.
func All[A any](t Tree[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for subtree := range PreOrder(t) {
			if !yield(subtree.shape.value) {
				return
			}
		}
	}
}

// PreOrder returns every subtree of t, parents before children.
func PreOrder[A any](t Tree[A]) iter.Seq[Tree[A]] {
	return func(yield func(Tree[A]) bool) {
		preOrderRecurse(t, yield)
	}
}

// Returns true if done (some yield has returned false).
func preOrderRecurse[A any](t Tree[A], yield func(Tree[A]) bool) bool {
	if !yield(t) {
		return true
	}
	for _, child := range t.shape.forest {
		if preOrderRecurse(child, yield) {
			return true
		}
	}
	return false
}

// PostOrder returns every subtree of t, children before parents.
func PostOrder[A any](t Tree[A]) iter.Seq[Tree[A]] {
	return func(yield func(Tree[A]) bool) {
		postOrderRecurse(t, yield)
	}
}

// Returns true if done (some yield has returned false).
func postOrderRecurse[A any](t Tree[A], yield func(Tree[A]) bool) bool {
	for _, child := range t.shape.forest {
		if postOrderRecurse(child, yield) {
			return true
		}
	}
	return !yield(t)
}

// Paths returns the root-to-node path of every subtree of t, in pre-order.
// The yielded sequence references a volatile internal slice, clone it if
// you need it after a step in the iteration.
func Paths[A any](t Tree[A]) iter.Seq[[]Tree[A]] {
	return func(yield func([]Tree[A]) bool) {
		pathsRecurse([]Tree[A]{t}, yield)
	}
}

// Returns true if done (some yield has returned false).
func pathsRecurse[A any](path []Tree[A], yield func([]Tree[A]) bool) bool {
	if !yield(path) {
		return true
	}
	for _, child := range path[len(path)-1].shape.forest {
		if pathsRecurse(append(path, child), yield) {
			return true
		}
	}
	return false
}

// BreadthFirst returns (depth, value) pairs level by level, the root at
// depth 0, siblings left to right within a level.
func BreadthFirst[A any](t Tree[A]) iter.Seq2[int, A] {
	type at struct {
		tree  Tree[A]
		depth int
	}
	return func(yield func(int, A) bool) {
		queue := []at{{t, 0}}
		for len(queue) > 0 {
			head := queue[0]
			queue = queue[1:]
			if !yield(head.depth, head.tree.shape.value) {
				return
			}
			for _, child := range head.tree.shape.forest {
				queue = append(queue, at{child, head.depth + 1})
			}
		}
	}
}
