package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a node by zero-based sibling indices from the tree root.
type Path []int

// ParsePath parses CLI path arguments. Each argument is either a single
// index or a dotted sequence like "0.1.2".
func ParsePath(args []string) (Path, error) {
	var p Path
	for _, arg := range args {
		for _, seg := range strings.Split(arg, ".") {
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid path segment %q", seg)
			}
			p = append(p, idx)
		}
	}
	return p, nil
}

// String renders the path in dotted form ("0.1.2").
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// location is the result of resolving a path: the node itself, the sibling
// list that contains it (addressable for splicing), its index within that
// list, and the chain of ancestor nodes from root to immediate parent.
type location struct {
	node      *Node
	container *[]*Node
	index     int
	ancestors []*Node
}

// locate resolves p against the tree, validating bounds at every depth.
// It fails with ErrEmptyPath for an empty path and with a *PathError
// naming the offending depth for an out-of-range segment. The tree is
// never modified.
func (t *Tree) locate(p Path) (location, error) {
	if len(p) == 0 {
		return location{}, ErrEmptyPath
	}

	container := &t.Tasks
	ancestors := make([]*Node, 0, len(p)-1)
	for depth, idx := range p {
		siblings := *container
		if idx < 0 || idx >= len(siblings) {
			return location{}, &PathError{Depth: depth, Index: idx, Count: len(siblings)}
		}
		node := siblings[idx]
		if depth == len(p)-1 {
			return location{
				node:      node,
				container: container,
				index:     idx,
				ancestors: ancestors,
			}, nil
		}
		ancestors = append(ancestors, node)
		container = &node.Subtasks
	}
	// Unreachable: the loop always returns on the last segment.
	return location{}, ErrEmptyPath
}

// Resolve returns the node at p, or an error if the path does not resolve.
func (t *Tree) Resolve(p Path) (*Node, error) {
	loc, err := t.locate(p)
	if err != nil {
		return nil, err
	}
	return loc.node, nil
}
