package task

import "time"

// Node is a single task. Subtasks are ordered; their order is the sibling
// order used for display and for move operations.
type Node struct {
	Text        string     `json:"text" yaml:"text"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time `json:"completed_at" yaml:"completed_at,omitempty"`
	Subtasks    []*Node    `json:"subtasks" yaml:"subtasks,omitempty"`
}

// NewNode returns an open node with CreatedAt set to now.
func NewNode(text string) *Node {
	return &Node{
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Subtasks:  []*Node{},
	}
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Count() int {
	total := 1
	for _, sub := range n.Subtasks {
		total += sub.Count()
	}
	return total
}

// Tree is one project's task list: an ordered sequence of root nodes.
type Tree struct {
	Tasks []*Node `json:"tasks" yaml:"tasks"`
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{Tasks: []*Node{}}
}

// Count returns the total number of nodes in the tree.
func (t *Tree) Count() int {
	total := 0
	for _, n := range t.Tasks {
		total += n.Count()
	}
	return total
}

// Walk visits every node depth-first in display order. The callback
// receives the node and its path.
func (t *Tree) Walk(fn func(p Path, n *Node)) {
	walk(t.Tasks, nil, fn)
}

func walk(nodes []*Node, prefix Path, fn func(p Path, n *Node)) {
	for i, n := range nodes {
		p := append(append(Path{}, prefix...), i)
		fn(p, n)
		walk(n.Subtasks, p, fn)
	}
}

func allCompleted(nodes []*Node) bool {
	for _, n := range nodes {
		if !n.Completed {
			return false
		}
	}
	return true
}

// setCompleted sets a node's state directly, stamping or clearing
// CompletedAt.
func setCompleted(n *Node, done bool, now time.Time) {
	n.Completed = done
	if done {
		at := now
		n.CompletedAt = &at
	} else {
		n.CompletedAt = nil
	}
}
