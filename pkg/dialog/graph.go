package dialog

import "fmt"

// StartID is the entry node every graph must define.
const StartID = "start"

// FarewellID is the optional node quit keywords jump to before ending.
// Graphs without it end the session immediately on a quit keyword.
const FarewellID = "exit_conversation"

// Graph is the validated arena of dialogue nodes keyed by id. Links are held
// as id strings, not pointers, so cycles are representable and resolution is
// an explicit lookup. A Graph is immutable once built.
type Graph struct {
	nodes map[string]Node
	order []string // declaration order, for stable listings
}

// NewGraph builds and validates a graph from the given nodes. Construction
// is all-or-nothing: either every node is well formed and every reference
// resolves, or an error is returned and no graph exists.
func NewGraph(nodes ...Node) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]Node, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}

	for _, n := range nodes {
		if err := checkNode(n); err != nil {
			return nil, err
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, &DuplicateNodeError{ID: n.ID}
		}
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
	}

	if _, ok := g.nodes[StartID]; !ok {
		return nil, ErrMissingStart
	}

	// Reference check runs after the whole arena is indexed, so forward
	// references and cycles are fine.
	for _, id := range g.order {
		n := g.nodes[id]
		if n.Next != "" {
			if _, ok := g.nodes[n.Next]; !ok {
				return nil, &DanglingReferenceError{NodeID: id, Target: n.Next}
			}
		}
		for _, opt := range n.Options {
			if _, ok := g.nodes[opt.Target]; !ok {
				return nil, &DanglingReferenceError{NodeID: id, Target: opt.Target}
			}
		}
	}

	return g, nil
}

// checkNode enforces the per-node structural invariants: a base-style
// message is always present, and the populated fields agree with the kind.
func checkNode(n Node) error {
	if n.ID == "" {
		return &MalformedNodeError{NodeID: n.ID, Reason: "empty node id"}
	}
	if _, ok := n.Messages[StyleBase]; !ok {
		return &MalformedNodeError{NodeID: n.ID, Reason: fmt.Sprintf("no %q message", StyleBase)}
	}

	switch n.Kind {
	case KindMessage:
		if n.Next == "" {
			return &MalformedNodeError{NodeID: n.ID, Reason: "message node without next_node"}
		}
		if len(n.Options) > 0 {
			return &MalformedNodeError{NodeID: n.ID, Reason: "message node with options"}
		}
	case KindChoice:
		if len(n.Options) == 0 {
			return &MalformedNodeError{NodeID: n.ID, Reason: "choice node without options"}
		}
		if n.Next != "" {
			return &MalformedNodeError{NodeID: n.ID, Reason: "choice node with next_node"}
		}
		for i, opt := range n.Options {
			if opt.Label == "" || opt.Target == "" {
				return &MalformedNodeError{NodeID: n.ID, Reason: fmt.Sprintf("option %d has an empty label or target", i)}
			}
		}
	case KindTerminal:
		if n.Next != "" || len(n.Options) > 0 {
			return &MalformedNodeError{NodeID: n.ID, Reason: "terminal node with successors"}
		}
	default:
		return &MalformedNodeError{NodeID: n.ID, Reason: fmt.Sprintf("unknown kind %q", n.Kind)}
	}

	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Has reports whether a node with the given id exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Start returns the entry node.
func (g *Graph) Start() Node {
	return g.nodes[StartID]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns the node ids in declaration order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// Nodes returns the nodes in declaration order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns the total number of transitions declared in the graph.
func (g *Graph) Edges() int {
	total := 0
	for _, n := range g.nodes {
		if n.Next != "" {
			total++
		}
		total += len(n.Options)
	}
	return total
}

// Unreachable returns the ids of nodes no path from the start node visits,
// in declaration order. Unreachable nodes are legal; callers surface them as
// warnings.
func (g *Graph) Unreachable() []string {
	visited := make(map[string]bool, len(g.nodes))
	queue := []string{StartID}
	visited[StartID] = true

	for len(queue) > 0 {
		n := g.nodes[queue[0]]
		queue = queue[1:]

		var targets []string
		if n.Next != "" {
			targets = append(targets, n.Next)
		}
		for _, opt := range n.Options {
			targets = append(targets, opt.Target)
		}
		for _, t := range targets {
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}

	var unreachable []string
	for _, id := range g.order {
		if !visited[id] {
			unreachable = append(unreachable, id)
		}
	}
	return unreachable
}
