package reasoner

import "github.com/anusornc/owl2-rs/ontology"

// NodeID identifies a node in a completion graph. 0 is never issued —
// it is reserved so the zero value of NodeID reads as "no node".
type NodeID uint32

type edge struct {
	property ontology.ObjectPropertyExpression // always ObjectProperty or InverseObjectProperty
	to       NodeID
}

// node is one vertex of a completion graph: a label (the set of class
// expressions forced to hold at it) and the labelled edges to its
// successors. Concepts are keyed by their canonical String() form since
// the concrete types are not comparable (they hold slices).
type node struct {
	id          NodeID
	individual  ontology.Individual // zero value for generated (non-asserted) nodes
	named       bool                // true iff this node corresponds to a named individual
	concepts    map[string]ontology.ClassExpression
	edges       []edge
	predecessor NodeID
	hasPred     bool
	parent      NodeID // union-find parent; parent == id means representative
	blocked     bool
	blockedBy   NodeID
	distinct    map[NodeID]bool // nodes asserted DifferentIndividuals from this one
}

func newNode(id NodeID) *node {
	return &node{
		id:       id,
		concepts: make(map[string]ontology.ClassExpression),
		parent:   id,
		distinct: make(map[NodeID]bool),
	}
}

// graph is a tableau completion graph: a growable set of nodes connected
// by property edges, supporting union-find merging (for SameIndividual
// and nominal/functional-property collapses) and an append-only change
// log so the engine can roll back to any earlier checkpoint in O(delta).
type graph struct {
	nodes     []*node
	named     map[ontology.Individual]NodeID
	log       []undoOp
}

func newGraph() *graph {
	g := &graph{named: make(map[ontology.Individual]NodeID)}
	g.nodes = append(g.nodes, nil) // index 0 unused, so NodeID zero value is invalid
	return g
}

// undoOp records one reversible mutation so backtracking can replay the
// log backwards from a checkpoint instead of cloning the whole graph —
// the O(delta) rollback strategy instead of exception- or recursion-based
// backtracking.
type undoOp interface{ undo(g *graph) }

type undoAddNode struct{}

func (undoAddNode) undo(g *graph) { g.nodes = g.nodes[:len(g.nodes)-1] }

type undoAddConcept struct {
	node NodeID
	key  string
}

func (u undoAddConcept) undo(g *graph) { delete(g.nodes[u.node].concepts, u.key) }

type undoAddEdge struct{ node NodeID }

func (u undoAddEdge) undo(g *graph) {
	n := g.nodes[u.node]
	n.edges = n.edges[:len(n.edges)-1]
}

type undoMerge struct {
	node     NodeID
	oldParent NodeID
}

func (u undoMerge) undo(g *graph) { g.nodes[u.node].parent = u.oldParent }

type undoBlock struct {
	node             NodeID
	wasBlocked       bool
	oldBlockedBy     NodeID
}

func (u undoBlock) undo(g *graph) {
	g.nodes[u.node].blocked = u.wasBlocked
	g.nodes[u.node].blockedBy = u.oldBlockedBy
}

type undoDistinct struct {
	a, b NodeID
}

func (u undoDistinct) undo(g *graph) {
	delete(g.nodes[u.a].distinct, u.b)
	delete(g.nodes[u.b].distinct, u.a)
}

// checkpoint returns the current log length, to later pass to rollback.
func (g *graph) checkpoint() int { return len(g.log) }

// rollback undoes every logged mutation back to (but not including) the
// given checkpoint, in reverse order.
func (g *graph) rollback(checkpoint int) {
	for i := len(g.log) - 1; i >= checkpoint; i-- {
		g.log[i].undo(g)
	}
	g.log = g.log[:checkpoint]
}

func (g *graph) record(op undoOp) { g.log = append(g.log, op) }

// find returns the representative NodeID of n's union-find class.
func (g *graph) find(n NodeID) NodeID {
	for g.nodes[n].parent != n {
		n = g.nodes[n].parent
	}
	return n
}

// fresh creates a new, initially unlabelled node with no predecessor.
func (g *graph) fresh() NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, newNode(id))
	g.record(undoAddNode{})
	return id
}

// getOrCreateNamed returns the node for a named individual, creating one
// (and registering it as a graph root) the first time it is seen.
func (g *graph) getOrCreateNamed(ind ontology.Individual) NodeID {
	if id, ok := g.named[ind]; ok {
		return id
	}
	id := g.fresh()
	n := g.nodes[id]
	n.individual = ind
	n.named = true
	g.named[ind] = id
	return id
}

// addConcept adds ce to n's label if not already present (by canonical
// string form). Returns true if this changed the label.
func (g *graph) addConcept(n NodeID, ce ontology.ClassExpression) bool {
	rep := g.find(n)
	key := ce.String()
	target := g.nodes[rep]
	if _, ok := target.concepts[key]; ok {
		return false
	}
	target.concepts[key] = ce
	g.record(undoAddConcept{node: rep, key: key})
	return true
}

func (g *graph) hasConcept(n NodeID, ce ontology.ClassExpression) bool {
	rep := g.find(n)
	_, ok := g.nodes[rep].concepts[ce.String()]
	return ok
}

// addEdge adds a directed property edge from a to b, and records b's
// predecessor if it does not already have one (blocking only applies to
// tree-structured, i.e. single-predecessor, nodes).
func (g *graph) addEdge(a NodeID, p ontology.ObjectPropertyExpression, b NodeID) {
	ra := g.find(a)
	g.nodes[ra].edges = append(g.nodes[ra].edges, edge{property: p, to: b})
	g.record(undoAddEdge{node: ra})
	rb := g.find(b)
	if !g.nodes[rb].hasPred {
		g.nodes[rb].predecessor = ra
		g.nodes[rb].hasPred = true
	}
}

// edgesFrom returns all outgoing edges stored on n's representative,
// unfiltered; callers match property keys and resolve targets themselves.
func (g *graph) edgesFrom(n NodeID) []edge {
	return g.nodes[g.find(n)].edges
}

// merge unions b into a's equivalence class (a survives as representative).
// Concepts and edges are not copied eagerly; callers must re-run label
// propagation afterward so a also carries b's former obligations — the
// tableau engine does this via addConcept calls driven by iterating b's
// former label before calling merge.
func (g *graph) merge(a, b NodeID) {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return
	}
	old := g.nodes[rb].parent
	g.nodes[rb].parent = ra
	g.record(undoMerge{node: rb, oldParent: old})
}

func (g *graph) markDistinct(a, b NodeID) {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return
	}
	g.nodes[ra].distinct[rb] = true
	g.nodes[rb].distinct[ra] = true
	g.record(undoDistinct{a: ra, b: rb})
}

func (g *graph) areDistinct(a, b NodeID) bool {
	ra, rb := g.find(a), g.find(b)
	return g.nodes[ra].distinct[rb]
}

func (g *graph) setBlocked(n NodeID, by NodeID) {
	nd := g.nodes[n]
	g.record(undoBlock{node: n, wasBlocked: nd.blocked, oldBlockedBy: nd.blockedBy})
	nd.blocked = true
	nd.blockedBy = by
}

func (g *graph) clearBlocked(n NodeID) {
	nd := g.nodes[n]
	if !nd.blocked {
		return
	}
	g.record(undoBlock{node: n, wasBlocked: nd.blocked, oldBlockedBy: nd.blockedBy})
	nd.blocked = false
}

// ancestors returns n's predecessor chain, root-first is not guaranteed;
// this returns nearest-ancestor-first, which is what blocking needs.
func (g *graph) ancestors(n NodeID) []NodeID {
	var out []NodeID
	cur := g.find(n)
	seen := make(map[NodeID]bool)
	for g.nodes[cur].hasPred {
		pred := g.find(g.nodes[cur].predecessor)
		if seen[pred] {
			break
		}
		seen[pred] = true
		out = append(out, pred)
		cur = pred
	}
	return out
}
