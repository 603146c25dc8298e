package rose_test

import (
	"testing"

	"github.com/middle-ages/rose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeArray(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []rose.Cell[int]{{Value: 42, Degree: 0}}, rose.EncodeArray(rose.Leaf(42)))
	assert.Equal(t, []rose.Cell[string]{
		{Value: "a", Degree: 2},
		{Value: "b", Degree: 0},
		{Value: "c", Degree: 1},
		{Value: "d", Degree: 0},
	}, rose.EncodeArray(letterTree()))
}

func TestArrayRoundTrip(t *testing.T) {
	t.Parallel()
	trees := []intTree{rose.Leaf(1), numericTree()}
	random := newRandom(41)
	for range 30 {
		trees = append(trees, randomTree(random, 5))
	}
	for _, tree := range trees {
		cells := rose.EncodeArray(tree)
		decoded, err := rose.DecodeArray(cells)
		require.NoError(t, err)
		assertTreeEqual(t, tree, decoded)
		// the dual direction: decode then encode is the identity as well
		assert.Equal(t, cells, rose.EncodeArray(decoded))
	}
}

func TestDecodeArrayErrors(t *testing.T) {
	t.Parallel()
	cell := func(value, degree int) rose.Cell[int] {
		return rose.Cell[int]{Value: value, Degree: degree}
	}

	_, err := rose.DecodeArray[int](nil)
	assert.ErrorIs(t, err, rose.ErrCodecEmpty)

	_, err = rose.DecodeArray([]rose.Cell[int]{cell(1, 2), cell(2, 0)})
	assert.ErrorIs(t, err, rose.ErrCodecTruncated)

	_, err = rose.DecodeArray([]rose.Cell[int]{cell(1, 0), cell(2, 0)})
	assert.ErrorIs(t, err, rose.ErrCodecTrailing)

	_, err = rose.DecodeArray([]rose.Cell[int]{cell(1, -1)})
	assert.ErrorIs(t, err, rose.ErrCodecDegree)
}

func TestEncodeEdges(t *testing.T) {
	t.Parallel()
	values, edges := rose.EncodeEdges(letterTree())
	assert.Equal(t, []string{"a", "b", "c", "d"}, values)
	assert.Equal(t, []rose.Edge{{0, 1}, {0, 2}, {2, 3}}, edges)

	intValues, intEdges := rose.EncodeEdges(rose.Leaf(7))
	assert.Equal(t, []int{7}, intValues)
	assert.Empty(t, intEdges)
}

func TestEdgesRoundTrip(t *testing.T) {
	t.Parallel()
	trees := []intTree{rose.Leaf(1), numericTree()}
	random := newRandom(43)
	for range 30 {
		trees = append(trees, randomTree(random, 5))
	}
	for _, tree := range trees {
		values, edges := rose.EncodeEdges(tree)
		decoded, err := rose.DecodeEdges(values, edges)
		require.NoError(t, err)
		assertTreeEqual(t, tree, decoded)
	}
}

func TestDecodeEdgesErrors(t *testing.T) {
	t.Parallel()
	values := []int{10, 20, 30}

	_, err := rose.DecodeEdges[int](nil, nil)
	assert.ErrorIs(t, err, rose.ErrCodecEmpty)

	_, err = rose.DecodeEdges(values, []rose.Edge{{0, 1}, {0, 3}})
	assert.ErrorIs(t, err, rose.ErrCodecEdge, "child out of range")

	_, err = rose.DecodeEdges(values, []rose.Edge{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, rose.ErrCodecEdge, "the root may not be a child")

	_, err = rose.DecodeEdges(values, []rose.Edge{{0, 1}, {0, 1}})
	assert.ErrorIs(t, err, rose.ErrCodecEdge, "two parents")

	// 1 and 2 form a cycle detached from the root
	_, err = rose.DecodeEdges(values, []rose.Edge{{1, 2}, {2, 1}})
	assert.ErrorIs(t, err, rose.ErrCodecEdge, "detached cycle")

	// node 2 has no parent at all
	_, err = rose.DecodeEdges(values, []rose.Edge{{0, 1}})
	assert.ErrorIs(t, err, rose.ErrCodecEdge, "unreachable node")
}
