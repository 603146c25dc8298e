package rose_test

import (
	"strings"
	"testing"

	"github.com/middle-ages/rose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToYAMLNode(t *testing.T) {
	t.Parallel()
	leaf := rose.ToYAMLNode(rose.Leaf("a"))
	assert.Equal(t, yaml.ScalarNode, leaf.Kind)
	assert.Equal(t, "a", leaf.Value)

	branch := rose.ToYAMLNode(letterTree())
	require.Equal(t, yaml.MappingNode, branch.Kind)
	require.Len(t, branch.Content, 2)
	assert.Equal(t, "a", branch.Content[0].Value)
	assert.Equal(t, yaml.SequenceNode, branch.Content[1].Kind)
	assert.Len(t, branch.Content[1].Content, 2)
}

func TestYAMLNodeRoundTrip(t *testing.T) {
	t.Parallel()
	trees := []strTree{rose.Leaf("x"), letterTree()}
	random := newRandom(59)
	for range 30 {
		trees = append(trees, rose.Map(randomTree(random, 5), func(n int) string {
			return strings.Repeat("v", 1+n%4)
		}))
	}
	for _, tree := range trees {
		decoded, err := rose.FromYAMLNode(rose.ToYAMLNode(tree))
		require.NoError(t, err)
		assertTreeEqual(t, tree, decoded)
	}
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()
	encoded, err := rose.MarshalYAML(rose.Leaf("a"))
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(encoded))

	encoded, err = rose.MarshalYAML(letterTree())
	require.NoError(t, err)
	decoded, err := rose.UnmarshalYAML(encoded)
	require.NoError(t, err)
	assertTreeEqual(t, letterTree(), decoded)
}

func TestUnmarshalYAMLHandwritten(t *testing.T) {
	t.Parallel()
	decoded, err := rose.UnmarshalYAML([]byte("a:\n- b\n- c:\n  - d\n"))
	require.NoError(t, err)
	assertTreeEqual(t, letterTree(), decoded)
}

func TestYAMLScalarsStayStrings(t *testing.T) {
	t.Parallel()
	tree := rose.TreeOf("1", rose.Leaf("true"), rose.Leaf("3.5"))
	encoded, err := rose.MarshalYAML(tree)
	require.NoError(t, err)
	decoded, err := rose.UnmarshalYAML(encoded)
	require.NoError(t, err)
	assertTreeEqual(t, tree, decoded)
}

func TestUnmarshalYAMLErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"two mapping entries", "a:\n- b\nc:\n- d\n"},
		{"non-sequence forest", "a: b\n"},
		{"empty forest", "a: []\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := rose.UnmarshalYAML([]byte(test.input))
			assert.ErrorIs(t, err, rose.ErrCodecYAML)
		})
	}
}
