package rose

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCodecIndent is returned when indented text does not describe a single
// tree: an odd or skipping indent, tabs, or more than one root line.
var ErrCodecIndent = errors.New("malformed indented tree")

// Sprint returns one line per node of t in pre-order, indented two spaces
// per level of depth. Values are printed using the `%v` format specifier.
func Sprint[A any](t Tree[A]) string {
	var s strings.Builder
	if _, err := Fprint(&s, t); err != nil {
		panic(err)
	}
	return s.String()
}

func indent(n int) string {
	const (
		indent         = "  "
		repeatedIndent = "                                                                                "
	)
	if 2*n > len(repeatedIndent) {
		return strings.Repeat(indent, n)
	}
	return repeatedIndent[:2*n]
}

// Fprint writes the indented representation of t to w, see [Sprint].
func Fprint[A any](w io.Writer, t Tree[A]) (int, error) {
	n := 0
	var werr error
	for node := range All(AnnotateDepth(Map(t, func(a A) any { return a }))) {
		written, err := fmt.Fprintf(w, "%s%v\n", indent(node.Depth), node.Value)
		n += written
		if err != nil {
			werr = err
			break
		}
	}
	return n, werr
}

// DecodeIndented parses the output of [Sprint] back into a tree of the
// line contents: a line indented one level deeper than the previous one is
// its first child, a line at the same or a shallower level closes every
// deeper node. A trailing newline is accepted.
//
// Round trip with [Sprint] holds for trees of strings that are non-empty,
// contain no newline, and do not start with a space.
func DecodeIndented(encoded string) (Tree[string], error) {
	type frame struct {
		value    string
		children []Tree[string]
	}
	var none Tree[string]
	var stack []frame
	var root Tree[string]
	rooted := false

	// Completes the deepest open node and attaches it to its parent, or
	// makes it the root when it is the last open node.
	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		done := TreeOf(top.value, top.children...)
		if len(stack) == 0 {
			root = done
			rooted = true
			return
		}
		stack[len(stack)-1].children = append(stack[len(stack)-1].children, done)
	}

	encoded = strings.TrimSuffix(encoded, "\n")
	if encoded == "" {
		return none, ErrCodecEmpty
	}
	lines := strings.Split(encoded, "\n")
	for _, line := range lines {
		if line == "" {
			return none, fmt.Errorf("%w: empty line", ErrCodecIndent)
		}
		value := strings.TrimLeft(line, " ")
		spaces := len(line) - len(value)
		if spaces%2 != 0 {
			return none, fmt.Errorf("%w: odd indent %d", ErrCodecIndent, spaces)
		}
		depth := spaces / 2
		if depth > len(stack) {
			return none, fmt.Errorf("%w: indent jumps from %d to %d", ErrCodecIndent, len(stack)-1, depth)
		}
		for len(stack) > depth {
			pop()
		}
		if len(stack) == 0 && rooted {
			return none, fmt.Errorf("%w: second root %q", ErrCodecIndent, value)
		}
		stack = append(stack, frame{value: value})
	}
	if len(stack) == 0 {
		return none, ErrCodecEmpty
	}
	for len(stack) > 0 {
		pop()
	}
	return root, nil
}
