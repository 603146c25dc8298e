package rose

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrCodecYAML is returned when a YAML document does not describe a tree.
var ErrCodecYAML = errors.New("malformed tree YAML")

// ToYAMLNode encodes a tree of strings as a YAML node: a leaf becomes a
// scalar, a branch becomes a single-entry mapping from the node value to
// the sequence of its encoded children.
//
//	a:
//	  - b
//	  - c:
//	      - d
func ToYAMLNode(t Tree[string]) *yaml.Node {
	if t.IsLeaf() {
		return scalarNode(t.shape.value)
	}
	children := make([]*yaml.Node, len(t.shape.forest))
	for i, child := range t.shape.forest {
		children[i] = ToYAMLNode(child)
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalarNode(t.shape.value),
			{Kind: yaml.SequenceNode, Tag: "!!seq", Content: children},
		},
	}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// FromYAMLNode decodes the form produced by [ToYAMLNode]. Scalars decode
// to leaves; a mapping must have exactly one entry, from a scalar to a
// sequence.
func FromYAMLNode(n *yaml.Node) (Tree[string], error) {
	var none Tree[string]
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return none, fmt.Errorf("%w: document with %d nodes", ErrCodecYAML, len(n.Content))
		}
		return FromYAMLNode(n.Content[0])
	case yaml.ScalarNode:
		return Leaf(n.Value), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return none, fmt.Errorf("%w: mapping with %d entries", ErrCodecYAML, len(n.Content)/2)
		}
		key, value := n.Content[0], n.Content[1]
		if key.Kind != yaml.ScalarNode {
			return none, fmt.Errorf("%w: non-scalar node value", ErrCodecYAML)
		}
		if value.Kind != yaml.SequenceNode {
			return none, fmt.Errorf("%w: non-sequence forest", ErrCodecYAML)
		}
		if len(value.Content) == 0 {
			return none, fmt.Errorf("%w: empty forest", ErrCodecYAML)
		}
		children := make([]Tree[string], len(value.Content))
		for i, childNode := range value.Content {
			child, err := FromYAMLNode(childNode)
			if err != nil {
				return none, err
			}
			children[i] = child
		}
		return Branch(key.Value, children), nil
	default:
		return none, fmt.Errorf("%w: unsupported node kind %v", ErrCodecYAML, n.Kind)
	}
}

// MarshalYAML encodes a tree of strings as a YAML document, see
// [ToYAMLNode].
func MarshalYAML(t Tree[string]) ([]byte, error) {
	out, err := yaml.Marshal(ToYAMLNode(t))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCodecYAML, err)
	}
	return out, nil
}

// UnmarshalYAML decodes a YAML document produced by [MarshalYAML].
func UnmarshalYAML(data []byte) (Tree[string], error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Tree[string]{}, fmt.Errorf("%w: %w", ErrCodecYAML, err)
	}
	if node.Kind == 0 {
		return Tree[string]{}, fmt.Errorf("%w: empty document", ErrCodecYAML)
	}
	return FromYAMLNode(&node)
}
