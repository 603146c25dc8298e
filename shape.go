package rose

import (
	"slices"
	"strconv"
)

// Count returns the total number of nodes in t, always at least 1.
func Count[A any](t Tree[A]) int {
	return Fold(t, func(s TreeF[A, int]) int {
		n := 1
		for _, count := range s.forest {
			n += count
		}
		return n
	})
}

// Height returns the number of nodes on the longest root-to-leaf path,
// 1 for a leaf.
func Height[A any](t Tree[A]) int {
	return Fold(t, func(s TreeF[A, int]) int {
		tallest := 0
		for _, height := range s.forest {
			tallest = max(tallest, height)
		}
		return tallest + 1
	})
}

// MaxDegree returns the largest child count of any node in t, 0 for a
// leaf.
func MaxDegree[A any](t Tree[A]) int {
	return Fold(t, func(s TreeF[A, int]) int {
		widest := len(s.forest)
		for _, degree := range s.forest {
			widest = max(widest, degree)
		}
		return widest
	})
}

// Depthed pairs a node value with its hop count from the root.
type Depthed[A any] struct {
	Value A
	Depth int
}

// AnnotateDepth returns a tree of the same shape pairing every value with
// its depth, 0 at the root.
func AnnotateDepth[A any](t Tree[A]) Tree[Depthed[A]] {
	type seed struct {
		tree  Tree[A]
		depth int
	}
	return Unfold(seed{t, 0}, func(s seed) TreeF[Depthed[A], seed] {
		seeds := make([]seed, len(s.tree.shape.forest))
		for i, child := range s.tree.shape.forest {
			seeds[i] = seed{child, s.depth + 1}
		}
		return TreeFOf(Depthed[A]{s.tree.shape.value, s.depth}, seeds)
	})
}

// Labeled pairs a node value with its dotted ordinal path from the root.
type Labeled[A any] struct {
	Value A
	Label string
}

// AnnotateLabels returns a tree of the same shape labeling every node with
// its 1-indexed position path: the root is "1.", its third child "1.3.",
// that child's second child "1.3.2.", and so on.
func AnnotateLabels[A any](t Tree[A]) Tree[Labeled[A]] {
	type seed struct {
		tree  Tree[A]
		label string
	}
	return Unfold(seed{t, "1."}, func(s seed) TreeF[Labeled[A], seed] {
		seeds := make([]seed, len(s.tree.shape.forest))
		for i, child := range s.tree.shape.forest {
			seeds[i] = seed{child, s.label + strconv.Itoa(i+1) + "."}
		}
		return TreeFOf(Labeled[A]{s.tree.shape.value, s.label}, seeds)
	})
}

// CropDepth returns t truncated to at most depth levels: any subtree at
// the last level within budget is replaced by a leaf holding its root
// value. CropDepth panics if depth < 1.
func CropDepth[A any](t Tree[A], depth int) Tree[A] {
	if depth < 1 {
		panic("depth must be at least 1")
	}
	type seed struct {
		tree   Tree[A]
		budget int
	}
	return Unfold(seed{t, depth}, func(s seed) TreeF[A, seed] {
		if s.budget <= 1 || s.tree.IsLeaf() {
			return LeafF[A, seed](s.tree.shape.value)
		}
		seeds := make([]seed, len(s.tree.shape.forest))
		for i, child := range s.tree.shape.forest {
			seeds[i] = seed{child, s.budget - 1}
		}
		return BranchF(s.tree.shape.value, seeds)
	})
}

// Levels groups node values by depth: row 0 holds the root value, row i+1
// the concatenation of the i-th rows of the children, left to right. This
// is the breadth-first grouping of the tree.
func Levels[A any](t Tree[A]) [][]A {
	return Fold(t, func(s TreeF[A, [][]A]) [][]A {
		rows := [][]A{{s.value}}
		for _, childRows := range s.forest {
			for i, row := range childRows {
				if i+1 < len(rows) {
					rows[i+1] = append(rows[i+1], row...)
				} else {
					rows = append(rows, slices.Clone(row))
				}
			}
		}
		return rows
	})
}

// GrowLeaves replaces every leaf of t by grow(leaf value), leaving
// branch nodes untouched. The grown subtrees may themselves be branches,
// so the result can be arbitrarily deeper than t.
func GrowLeaves[A any](t Tree[A], grow func(A) Tree[A]) Tree[A] {
	return Fold(t, func(s TreeF[A, Tree[A]]) Tree[A] {
		if s.IsLeaf() {
			return grow(s.value)
		}
		return Branch(s.value, s.forest)
	})
}
