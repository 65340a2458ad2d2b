// Package task implements the task tree: recursive task nodes, positional
// path resolution, and the mutation operations the CLI applies to a tree.
//
// A tree is an ordered sequence of root nodes; each node owns an ordered
// list of subtasks of unbounded depth:
//
//	{
//	  "text": "write release notes",
//	  "completed": false,
//	  "created_at": "2024-01-01T00:00:00Z",
//	  "completed_at": null,
//	  "subtasks": [ ... ]
//	}
//
// # Addressing
//
// Nodes are addressed purely by position: a Path is a sequence of
// zero-based sibling indices from the root ("0 1 2" or "0.1.2" on the
// CLI). Nodes carry no identifiers, so a node's address changes whenever
// an earlier sibling is inserted, removed, or moved. Every operation
// re-resolves its path from scratch; resolved locations are never cached
// across operations.
//
// # Completion
//
// A node with subtasks derives its completed state from them: it is
// completed exactly when every subtask is. Checking or unchecking a node
// sets that node directly and then reconciles every ancestor up to the
// root; deleting a node reconciles from its former parent. A parent
// checked directly while some subtasks are open keeps its state until the
// next subtask change reconciles it.
//
// # Atomicity
//
// Every mutator validates before touching the tree. A failed operation
// returns an error and leaves the tree exactly as it was.
package task
