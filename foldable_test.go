package rose_test

import (
	"testing"

	"github.com/middle-ages/rose"
	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	t.Parallel()
	sum := rose.Reduce(numericTree(), 0, func(acc, value int) int {
		return acc + value
	})
	assert.Equal(t, 66, sum)
}

func TestReduceOrder(t *testing.T) {
	t.Parallel()
	visited := rose.Reduce(numericTree(), []int{}, func(acc []int, value int) []int {
		return append(acc, value)
	})
	// depth-first, node before children, left to right
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 11, 9, 10}, visited)
}

func TestFoldMap(t *testing.T) {
	t.Parallel()
	concat := func(a, b string) string { return a + b }
	joined := rose.FoldMap(letterTree(), "", concat, func(value string) string {
		return value
	})
	assert.Equal(t, "abcd", joined)
}

func TestCountIf(t *testing.T) {
	t.Parallel()
	tree := numericTree()
	assert.Equal(t, 3, rose.CountIf(tree, func(n int) bool { return n >= 9 }))
	assert.Equal(t, 11, rose.CountIf(tree, func(int) bool { return true }))
	assert.Equal(t, 0, rose.CountIf(tree, func(int) bool { return false }))
}

func boolTreeOf(root bool, rest ...bool) boolTree {
	children := make([]boolTree, len(rest))
	for i, value := range rest {
		children[i] = rose.Leaf(value)
	}
	return rose.TreeOf(root, children...)
}

func TestEvery(t *testing.T) {
	t.Parallel()
	assert.True(t, rose.Every(boolTreeOf(true, true, true)))
	assert.False(t, rose.Every(boolTreeOf(true, false, true)))
	assert.True(t, rose.Every(rose.Leaf(true)))
	assert.False(t, rose.Every(rose.Leaf(false)))
}

func TestSome(t *testing.T) {
	t.Parallel()
	assert.True(t, rose.Some(boolTreeOf(false, false, true)))
	assert.False(t, rose.Some(boolTreeOf(false, false, false)))
}

func TestXor(t *testing.T) {
	t.Parallel()
	// true iff an odd number of nodes are true
	assert.True(t, rose.Xor(boolTreeOf(true, false, false)))
	assert.False(t, rose.Xor(boolTreeOf(true, true, false)))
	assert.True(t, rose.Xor(boolTreeOf(true, true, true)))
}

func TestEqv(t *testing.T) {
	t.Parallel()
	// true iff an even number of nodes are false
	assert.True(t, rose.Eqv(boolTreeOf(true, true, true)))
	assert.True(t, rose.Eqv(boolTreeOf(false, false, true)))
	assert.False(t, rose.Eqv(boolTreeOf(false, true, true)))
}
