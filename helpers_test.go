package rose_test

import (
	rand "math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/middle-ages/rose"
)

// This file contains things that help in writing tests.
// There are no top-level tests here.

type (
	intTree  = rose.Tree[int]
	strTree  = rose.Tree[string]
	boolTree = rose.Tree[bool]
)

// numericTree returns the 11-node fixture used throughout the tests:
//
//	1
//	├── 2 ── 3, 4, 5
//	├── 6 ── 7, 8, 11 ── 9
//	└── 10
func numericTree() intTree {
	return rose.TreeOf(1,
		rose.TreeOf(2, rose.Leaf(3), rose.Leaf(4), rose.Leaf(5)),
		rose.TreeOf(6, rose.Leaf(7), rose.Leaf(8), rose.TreeOf(11, rose.Leaf(9))),
		rose.Leaf(10),
	)
}

func letterTree() strTree {
	return rose.TreeOf("a",
		rose.Leaf("b"),
		rose.TreeOf("c", rose.Leaf("d")),
	)
}

// randomTree returns a tree of bounded depth with 1-3 children per branch.
func randomTree(random *rand.Rand, depth int) intTree {
	value := random.IntN(100)
	if depth <= 1 || random.Float32() < 0.4 {
		return rose.Leaf(value)
	}
	children := make([]intTree, 1+random.IntN(3))
	for i := range children {
		children[i] = randomTree(random, depth-1)
	}
	return rose.Branch(value, children)
}

func newRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func values[A any](t rose.Tree[A]) []A {
	collected := []A{}
	for value := range rose.All(t) {
		collected = append(collected, value)
	}
	return collected
}

func assertTreeEqual[A comparable](t *testing.T, want, got rose.Tree[A]) {
	t.Helper()
	if !rose.Equal(want, got) {
		t.Errorf("trees differ (-want +got):\n%s",
			cmp.Diff(rose.EncodeArray(want), rose.EncodeArray(got)))
	}
}
