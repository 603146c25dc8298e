// Package rose provides an immutable, generic rose tree (N-ary tree) and an
// algebraic toolkit for constructing, traversing, transforming, comparing,
// folding, and encoding trees.
//
// Every Tree is a persistent value: no operation mutates a tree in place,
// and transformed trees share unchanged subtrees with their originals.
// Concurrent readers of the same tree never need synchronization.
//
// The package is organized around the separation between the one-level
// shape [TreeF] and the fixed recursive type [Tree]. The generic fold
// ([Fold]) and unfold ([Unfold]) runners, and their error-aware variants,
// are the computational core; counting, leveling, cropping, zipping,
// comparison, and every codec in this package are instances of them.
package rose

// Tree is an immutable rose tree: a node value and zero or more ordered
// child trees. The zero value is a leaf holding the zero value of A.
//
// Child order is significant and preserved by every operation unless
// documented otherwise. Identity is structural: use [Equal] or [EqualFunc],
// not ==.
type Tree[A any] struct {
	shape TreeF[A, Tree[A]]
}

// Leaf returns a tree with no children.
func Leaf[A any](value A) Tree[A] {
	return Tree[A]{LeafF[A, Tree[A]](value)}
}

// Branch returns a tree with the given non-empty forest.
// Branch panics if forest is empty; callers that may have no children
// should use [TreeOf].
// The forest slice is referenced, not copied; callers must not mutate it.
func Branch[A any](value A, forest []Tree[A]) Tree[A] {
	return Tree[A]{BranchF(value, forest)}
}

// TreeOf returns a branch when at least one child is given, and a leaf
// otherwise.
func TreeOf[A any](value A, children ...Tree[A]) Tree[A] {
	return Tree[A]{TreeFOf(value, children)}
}

// MatchTree destructures a tree: it calls onLeaf for a leaf and onBranch
// for a branch.
func MatchTree[A, R any](t Tree[A], onLeaf func(A) R, onBranch func(A, []Tree[A]) R) R {
	return Match(t.shape, onLeaf, onBranch)
}

// Shape returns the one-level view of t, with the children as carriers.
func (t Tree[A]) Shape() TreeF[A, Tree[A]] {
	return t.shape
}

// Value returns the root value.
func (t Tree[A]) Value() A {
	return t.shape.value
}

// Forest returns the children, empty for a leaf.
// The returned slice references internal storage; callers must not mutate it.
func (t Tree[A]) Forest() []Tree[A] {
	return t.shape.forest
}

// BranchForest returns the children and true for a branch, and nil and
// false for a leaf.
func (t Tree[A]) BranchForest() ([]Tree[A], bool) {
	if t.IsLeaf() {
		return nil, false
	}
	return t.shape.forest, true
}

// Len returns the number of children, 0 for a leaf.
func (t Tree[A]) Len() int {
	return len(t.shape.forest)
}

// IsLeaf returns whether t has no children.
func (t Tree[A]) IsLeaf() bool {
	return t.shape.IsLeaf()
}

// IsBranch returns whether t has at least one child.
func (t Tree[A]) IsBranch() bool {
	return t.shape.IsBranch()
}

// WithValue returns a tree identical to t with the root value replaced.
// Descendants are shared, not copied.
func (t Tree[A]) WithValue(value A) Tree[A] {
	return Tree[A]{t.shape.WithValue(value)}
}

// WithForest returns a tree with the same root value and the given
// children. An empty forest yields a leaf.
func (t Tree[A]) WithForest(forest []Tree[A]) Tree[A] {
	return Tree[A]{t.shape.WithForest(forest)}
}

// MapRoot returns a tree with the root value replaced by f(value).
// Descendants are untouched; compare [Map], which transforms every node.
func (t Tree[A]) MapRoot(f func(A) A) Tree[A] {
	return t.WithValue(f(t.shape.value))
}

// MapForest returns a tree with the children replaced by f(children).
// A leaf passes an empty slice to f; if f returns an empty slice the
// result is a leaf.
func (t Tree[A]) MapForest(f func([]Tree[A]) []Tree[A]) Tree[A] {
	return t.WithForest(f(t.Forest()))
}

// MapBranch returns f(t) for a branch and t unchanged for a leaf.
func (t Tree[A]) MapBranch(f func(Tree[A]) Tree[A]) Tree[A] {
	if t.IsLeaf() {
		return t
	}
	return f(t)
}

// MapBranchForest returns a tree with the children replaced by
// f(children) for a branch, and t unchanged for a leaf.
func (t Tree[A]) MapBranchForest(f func([]Tree[A]) []Tree[A]) Tree[A] {
	if t.IsLeaf() {
		return t
	}
	return t.WithForest(f(t.shape.forest))
}

// FirstChild returns the first child of a branch, and ok=false for a leaf.
func (t Tree[A]) FirstChild() (Tree[A], bool) {
	return t.NthChild(0)
}

// LastChild returns the last child of a branch, and ok=false for a leaf.
func (t Tree[A]) LastChild() (Tree[A], bool) {
	return t.NthChild(-1)
}

// NthChild returns the n-th child. Negative indices count from the end,
// -1 being the last child. Returns ok=false when n is out of range or t is
// a leaf; child lookups never panic.
func (t Tree[A]) NthChild(n int) (Tree[A], bool) {
	if n < 0 {
		n += len(t.shape.forest)
	}
	if n < 0 || n >= len(t.shape.forest) {
		return Tree[A]{}, false
	}
	return t.shape.forest[n], true
}

// Drill applies [Tree.NthChild] along path, left to right. An empty path
// returns t itself. The first failing step aborts with ok=false.
func (t Tree[A]) Drill(path ...int) (Tree[A], bool) {
	for _, n := range path {
		var ok bool
		t, ok = t.NthChild(n)
		if !ok {
			return Tree[A]{}, false
		}
	}
	return t, true
}

// String returns the indented representation of t, see [Sprint].
func (t Tree[A]) String() string {
	return Sprint(t)
}
