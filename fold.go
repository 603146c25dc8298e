package rose

// The fold/unfold runners below are the computational core of the package.
// A Folder sees one level at a time: the node value, and for a branch the
// already-folded results of the children in place of the children
// themselves. An Unfolder is its dual: from a seed it decides one level,
// producing the node value and the seeds of the children, if any.
//
// Both runners evaluate depth first, children strictly left to right, and
// never in parallel; code with ordering-sensitive side effects can rely on
// that. The error-aware variants stop at the first error: remaining
// siblings and unexpanded descendants are never visited.

// Folder collapses one level of a tree. For a branch, the carriers are the
// folded results of the children, in child order.
type Folder[A, R any] func(TreeF[A, R]) R

// FolderE is a [Folder] that can fail.
type FolderE[A, R any] func(TreeF[A, R]) (R, error)

// Unfolder expands a seed into one level of a tree: the node value, and
// seeds for the children, if any.
type Unfolder[S, A any] func(S) TreeF[A, S]

// UnfolderE is an [Unfolder] that can fail.
type UnfolderE[S, A any] func(S) (TreeF[A, S], error)

// Fold collapses t bottom-up into a single value. Children are folded
// first, left to right, each subtree fully resolved before its sibling
// begins; folder then combines their results at the parent.
func Fold[A, R any](t Tree[A], folder Folder[A, R]) R {
	if t.IsLeaf() {
		return folder(LeafF[A, R](t.shape.value))
	}
	results := make([]R, len(t.shape.forest))
	for i, child := range t.shape.forest {
		results[i] = Fold(child, folder)
	}
	return folder(BranchF(t.shape.value, results))
}

// FoldWith returns Fold with the folder applied, for composing with other
// tree-consuming functions.
func FoldWith[A, R any](folder Folder[A, R]) func(Tree[A]) R {
	return func(t Tree[A]) R {
		return Fold(t, folder)
	}
}

// FoldE is [Fold] for folders that can fail. The first error is returned
// as-is and short-circuits the run: siblings to the right of the failing
// subtree, and all of their descendants, are never folded.
func FoldE[A, R any](t Tree[A], folder FolderE[A, R]) (R, error) {
	if t.IsLeaf() {
		return folder(LeafF[A, R](t.shape.value))
	}
	results := make([]R, len(t.shape.forest))
	for i, child := range t.shape.forest {
		result, err := FoldE(child, folder)
		if err != nil {
			var zero R
			return zero, err
		}
		results[i] = result
	}
	return folder(BranchF(t.shape.value, results))
}

// FoldWithE returns FoldE with the folder applied.
func FoldWithE[A, R any](folder FolderE[A, R]) func(Tree[A]) (R, error) {
	return func(t Tree[A]) (R, error) {
		return FoldE(t, folder)
	}
}

// Unfold grows a tree from seed top-down: unfolder decides the shape at
// the current seed before any child seed is expanded, and children are
// expanded left to right.
//
// Termination is the unfolder's contract: it must eventually return leaf
// shapes on every path.
func Unfold[S, A any](seed S, unfolder Unfolder[S, A]) Tree[A] {
	shape := unfolder(seed)
	if shape.IsLeaf() {
		return Leaf(shape.value)
	}
	children := make([]Tree[A], len(shape.forest))
	for i, childSeed := range shape.forest {
		children[i] = Unfold(childSeed, unfolder)
	}
	return Branch(shape.value, children)
}

// UnfoldWith returns Unfold with the unfolder applied.
func UnfoldWith[S, A any](unfolder Unfolder[S, A]) func(S) Tree[A] {
	return func(seed S) Tree[A] {
		return Unfold(seed, unfolder)
	}
}

// UnfoldE is [Unfold] for unfolders that can fail. The first error is
// returned as-is and short-circuits the run: no further seeds are
// expanded.
func UnfoldE[S, A any](seed S, unfolder UnfolderE[S, A]) (Tree[A], error) {
	shape, err := unfolder(seed)
	if err != nil {
		return Tree[A]{}, err
	}
	if shape.IsLeaf() {
		return Leaf(shape.value), nil
	}
	children := make([]Tree[A], len(shape.forest))
	for i, childSeed := range shape.forest {
		child, err := UnfoldE(childSeed, unfolder)
		if err != nil {
			return Tree[A]{}, err
		}
		children[i] = child
	}
	return Branch(shape.value, children), nil
}

// UnfoldWithE returns UnfoldE with the unfolder applied.
func UnfoldWithE[S, A any](unfolder UnfolderE[S, A]) func(S) (Tree[A], error) {
	return func(seed S) (Tree[A], error) {
		return UnfoldE(seed, unfolder)
	}
}
