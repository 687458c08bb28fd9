package flatdom

// NodeHandle identifies a node by its position in the owning arena. Handles
// are stable for the arena's whole lifetime, are never reused, and mean
// nothing outside the arena that issued them.
type NodeHandle int

const (
	// InvalidHandle marks an absent node reference, e.g. the parent of a
	// node that was never inserted anywhere.
	InvalidHandle NodeHandle = -1

	// DocumentHandle is the handle of the root document node of every
	// arena.
	DocumentHandle NodeHandle = 0
)

// Arena owns every node of one tree-construction pass. It only grows: nodes
// are appended by Allocate and never destroyed, so any handle it ever issued
// stays indexable. The arena knows nothing about HTML beyond the node-kind
// taxonomy; all tree semantics live in FlatSink.
type Arena struct {
	nodes []*Node
}

// NewArena returns an arena holding exactly one node, the root document, and
// the root's handle.
func NewArena() (*Arena, NodeHandle) {
	a := &Arena{nodes: make([]*Node, 0, 200)}
	root := a.Allocate(NewDocumentNode())
	return a, root
}

// Allocate appends n to the arena and stamps its handle. The new node has no
// parent and no children.
func (a *Arena) Allocate(n *Node) NodeHandle {
	n.Handle = NodeHandle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return n.Handle
}

// Node returns the node for the given handle. The handle must have been
// issued by Allocate on this same arena; anything else is a bug in the
// caller, and indexing is deliberately unchecked.
func (a *Arena) Node(h NodeHandle) *Node {
	return a.nodes[h]
}

// Len returns the number of nodes ever allocated, detached ones included.
func (a *Arena) Len() int {
	return len(a.nodes)
}
