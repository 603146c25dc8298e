package rose

import (
	"errors"
	"fmt"
)

// Codecs in this package follow one contract: encoding is a fold that
// emits one level at a time, decoding is an error-aware unfold that
// consumes one level at a time. Any pair of structurally dual one-level
// functions round-trips through [FoldE]/[UnfoldE] the same way the codecs
// below do.

var (
	// ErrCodecEmpty is returned when decoding an empty encoded form; an
	// empty tree does not exist.
	ErrCodecEmpty = errors.New("empty encoding")

	// ErrCodecTruncated is returned when an encoded form ends before the
	// tree it describes is complete.
	ErrCodecTruncated = errors.New("truncated encoding")

	// ErrCodecTrailing is returned when input remains after a complete
	// tree has been decoded.
	ErrCodecTrailing = errors.New("trailing input after tree")

	// ErrCodecDegree is returned when an array cell declares a negative
	// child count.
	ErrCodecDegree = errors.New("invalid cell degree")

	// ErrCodecEdge is returned when an edge list does not describe a
	// single tree rooted at node 0.
	ErrCodecEdge = errors.New("edge list is not a tree")
)

// Cell is one node of the array encoding: the node value and the number
// of children that follow it.
type Cell[A any] struct {
	Value  A
	Degree int
}

// EncodeArray flattens t into cells in pre-order, each cell recording its
// node's child count. The encoding is self-delimiting: [DecodeArray]
// inverts it exactly.
func EncodeArray[A any](t Tree[A]) []Cell[A] {
	cells := make([]Cell[A], 0, Count(t))
	for subtree := range PreOrder(t) {
		cells = append(cells, Cell[A]{subtree.shape.value, subtree.Len()})
	}
	return cells
}

// DecodeArray rebuilds the tree encoded by [EncodeArray]. It is an
// [UnfoldE] instance over a cursor into the cells: the unfolder consumes
// the next cell and emits one seed per declared child, relying on the
// runner's documented depth-first left-to-right order to keep the cursor
// consistent.
func DecodeArray[A any](cells []Cell[A]) (Tree[A], error) {
	if len(cells) == 0 {
		return Tree[A]{}, ErrCodecEmpty
	}
	cursor := 0
	t, err := UnfoldE(&cursor, func(pos *int) (TreeF[A, *int], error) {
		if *pos >= len(cells) {
			return TreeF[A, *int]{}, fmt.Errorf("%w: want %d cells, got %d",
				ErrCodecTruncated, *pos+1, len(cells))
		}
		cell := cells[*pos]
		*pos++
		if cell.Degree < 0 {
			return TreeF[A, *int]{}, fmt.Errorf("%w: %d", ErrCodecDegree, cell.Degree)
		}
		seeds := make([]*int, cell.Degree)
		for i := range seeds {
			seeds[i] = pos
		}
		return TreeFOf(cell.Value, seeds), nil
	})
	if err != nil {
		return Tree[A]{}, err
	}
	if cursor != len(cells) {
		return Tree[A]{}, fmt.Errorf("%w: %d cells unused", ErrCodecTrailing, len(cells)-cursor)
	}
	return t, nil
}

// Edge connects a parent node to a child node in the edge-list encoding.
// Nodes are identified by their pre-order position, the root being 0.
type Edge struct {
	Parent int
	Child  int
}

// EncodeEdges flattens t into its node values in pre-order plus the
// parent/child edges between their positions, in pre-order of the child.
func EncodeEdges[A any](t Tree[A]) ([]A, []Edge) {
	values := make([]A, 0, Count(t))
	edges := make([]Edge, 0, Count(t)-1)
	next := 0
	var walk func(t Tree[A]) int
	walk = func(t Tree[A]) int {
		self := next
		next++
		values = append(values, t.shape.value)
		for _, child := range t.shape.forest {
			edges = append(edges, Edge{self, walk(child)})
		}
		return self
	}
	walk(t)
	return values, edges
}

// DecodeEdges rebuilds the tree encoded by [EncodeEdges]. The input must
// describe a single tree rooted at node 0: every node except the root has
// exactly one parent edge, indices are in range, and every node is
// reachable from the root. Child order is edge order.
func DecodeEdges[A any](values []A, edges []Edge) (Tree[A], error) {
	if len(values) == 0 {
		return Tree[A]{}, ErrCodecEmpty
	}
	children := make([][]int, len(values))
	seen := make([]bool, len(values))
	seen[0] = true
	for _, edge := range edges {
		if edge.Parent < 0 || edge.Parent >= len(values) || edge.Child < 0 || edge.Child >= len(values) {
			return Tree[A]{}, fmt.Errorf("%w: edge %d->%d out of range",
				ErrCodecEdge, edge.Parent, edge.Child)
		}
		if seen[edge.Child] {
			return Tree[A]{}, fmt.Errorf("%w: node %d has two parents or is the root",
				ErrCodecEdge, edge.Child)
		}
		seen[edge.Child] = true
		children[edge.Parent] = append(children[edge.Parent], edge.Child)
	}
	reached := 0
	t := Unfold(0, func(node int) TreeF[A, int] {
		reached++
		return TreeFOf(values[node], children[node])
	})
	// Nodes with a parent edge but no path from the root form a cycle or
	// a detached component.
	if reached != len(values) {
		return Tree[A]{}, fmt.Errorf("%w: %d of %d nodes unreachable from the root",
			ErrCodecEdge, len(values)-reached, len(values))
	}
	return t, nil
}
