package reasoner

import (
	"context"

	"github.com/anusornc/owl2-rs/ontology"
	"go.uber.org/zap"
)

// choiceKind distinguishes the two places the tableau must guess and may
// need to retry: which disjunct of a ⊔ to add, and which pair of
// successors to merge to satisfy a ≤ restriction.
type choiceKind int

const (
	choiceDisjunction choiceKind = iota
	choiceMerge
)

type mergeCandidate struct{ a, b NodeID }

// choicePoint is one entry of the backtracking stack: enough state to try
// the next untried alternative after a clash forces a rollback, per the
// chronological-backtracking design (an explicit stack instead of
// recursion or exceptions, so rollback costs O(delta) via graph.rollback).
type choicePoint struct {
	kind       choiceKind
	checkpoint int
	node       NodeID
	operands   []ontology.ClassExpression // for choiceDisjunction
	candidates []mergeCandidate           // for choiceMerge
	nextIdx    int
}

// engine runs the tableau decision procedure over a single completion
// graph. A fresh engine (and fresh graph) is created per service
// invocation, never shared across goroutines — classify/realize's
// parallel fan-out (parallel.go) gives each worker its own engine.
type engine struct {
	ont        *ontology.Ontology
	tb         *tbox
	g          *graph
	cfg        Config
	log        *zap.Logger
	choices    []choicePoint
	iterations int

	negObjectEdges map[string]bool // "prop|subjRep|objRep" forbidden edges
	dataFacts      map[NodeID][]dataFact
}

func newEngine(ont *ontology.Ontology, tb *tbox, cfg Config, log *zap.Logger) *engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &engine{
		ont:            ont,
		tb:             tb,
		g:              newGraph(),
		cfg:            cfg,
		log:            log,
		negObjectEdges: make(map[string]bool),
		dataFacts:      make(map[NodeID][]dataFact),
	}
}

// initialize seeds the completion graph from the ontology's assertions,
// mirroring original_source/src/reasoner.rs's TableauReasoner::initialize
// (which also seeds only from assertions) but additionally resolving
// SameIndividual merges and DifferentIndividuals inequality guards up
// front, matching the Open Question decision to merge eagerly.
func (e *engine) initialize() {
	for _, ax := range e.ont.Axioms {
		switch a := ax.(type) {
		case ontology.ClassAssertion:
			n := e.g.getOrCreateNamed(a.Individual)
			e.g.addConcept(n, toNNF(a.Class))
		case ontology.ObjectPropertyAssertion:
			s := e.g.getOrCreateNamed(a.Subject)
			o := e.g.getOrCreateNamed(a.Object)
			e.g.addEdge(s, a.Property, o)
		case ontology.NegativeObjectPropertyAssertion:
			s := e.g.getOrCreateNamed(a.Subject)
			o := e.g.getOrCreateNamed(a.Object)
			e.negObjectEdges[negEdgeKey(a.Property, s, o)] = true
		case ontology.DataPropertyAssertion:
			n := e.g.getOrCreateNamed(a.Subject)
			e.addDataAssertion(n, a.Property, a.Value, false)
		case ontology.NegativeDataPropertyAssertion:
			n := e.g.getOrCreateNamed(a.Subject)
			e.addDataAssertion(n, a.Property, a.Value, true)
		}
	}
	for _, ax := range e.ont.Axioms {
		if a, ok := ax.(ontology.SameIndividual); ok {
			for i := 1; i < len(a.Individuals); i++ {
				e.mergeNodes(e.g.getOrCreateNamed(a.Individuals[0]), e.g.getOrCreateNamed(a.Individuals[i]))
			}
		}
	}
	for _, ax := range e.ont.Axioms {
		if a, ok := ax.(ontology.DifferentIndividuals); ok {
			for i := 0; i < len(a.Individuals); i++ {
				for j := i + 1; j < len(a.Individuals); j++ {
					e.g.markDistinct(e.g.getOrCreateNamed(a.Individuals[i]), e.g.getOrCreateNamed(a.Individuals[j]))
				}
			}
		}
	}
	for id := NodeID(1); id < NodeID(len(e.g.nodes)); id++ {
		if e.g.find(id) == id {
			e.g.addConcept(id, ontology.Top)
		}
	}
}

func negEdgeKey(p ontology.ObjectPropertyExpression, a, b NodeID) string {
	return atomicKey(p) + "|" + itoa(int(a)) + "|" + itoa(int(b))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

type dataFact struct {
	property ontology.DataProperty
	value    ontology.Literal
	negative bool
}

func (e *engine) addDataAssertion(n NodeID, p ontology.DataProperty, lit ontology.Literal, negative bool) {
	key := e.g.find(n)
	e.dataFacts[key] = append(e.dataFacts[key], dataFact{property: p, value: lit, negative: negative})
}

// run expands the completion graph to a fixed point, applying
// nondeterministic choices and backtracking on clash via chronological
// backtracking over an explicit choice-point stack rather than
// exceptions or recursion.
func (e *engine) run(ctx context.Context) (consistent bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return false, newCancelled(ctx.Err())
		default:
		}
		e.iterations++
		if e.iterations > e.cfg.MaxBacktracks*8 {
			return false, newLogicalError("exceeded iteration bound without reaching a fixed point")
		}
		if e.anyClash() {
			if e.backtrack() {
				continue
			}
			return false, nil
		}
		fired, rerr := e.applyDeterministicRules()
		if rerr != nil {
			return false, rerr
		}
		if fired {
			continue
		}
		if e.applyNondeterministicRule() {
			continue
		}
		return true, nil
	}
}

func (e *engine) activeNodeIDs() []NodeID {
	var out []NodeID
	for id := NodeID(1); id < NodeID(len(e.g.nodes)); id++ {
		if e.g.find(id) != id {
			continue
		}
		if e.g.nodes[id].blocked {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (e *engine) applyDeterministicRules() (bool, error) {
	if e.applyConjunction() {
		return true, nil
	}
	if e.applyTBoxRule() {
		return true, nil
	}
	if e.applyUniversal() {
		return true, nil
	}
	if e.applyRolePropagation() {
		return true, nil
	}
	if fired := e.applyFunctionalMerge(); fired {
		return true, nil
	}
	if fired := e.applyHasKey(); fired {
		return true, nil
	}
	if e.applyHasSelf() {
		return true, nil
	}
	if e.applyHasValue() {
		return true, nil
	}
	if e.applyDataPropertyDomain() {
		return true, nil
	}
	if e.updateBlocking() {
		return true, nil
	}
	if e.applyExistential() {
		return true, nil
	}
	if e.applyMinCardinality() {
		return true, nil
	}
	return false, nil
}

func (e *engine) applyNondeterministicRule() bool {
	if e.applyDisjunction() {
		return true
	}
	if e.applyMaxCardinality() {
		return true
	}
	return false
}

// --- deterministic rules ---

func (e *engine) applyConjunction() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			in, ok := ce.(ontology.ObjectIntersectionOf)
			if !ok {
				continue
			}
			for _, op := range in.Operands {
				if e.g.addConcept(n, op) {
					return true
				}
			}
		}
	}
	return false
}

func (e *engine) applyTBoxRule() bool {
	for _, n := range e.activeNodeIDs() {
		for _, gci := range e.tb.gcis {
			if e.g.addConcept(n, gci) {
				return true
			}
		}
	}
	return false
}

func (e *engine) applyUniversal() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			av, ok := ce.(ontology.ObjectAllValuesFrom)
			if !ok {
				continue
			}
			for _, succ := range e.successorsVia(n, av.Property) {
				if e.g.addConcept(succ, av.Filler) {
					return true
				}
			}
		}
	}
	return false
}

// successorsVia returns representative successor NodeIDs reachable from n
// by a role that is a sub-role of pe, following the role hierarchy
// closure, and correctly consulting incoming edges when pe is an
// InverseObjectProperty.
func (e *engine) successorsVia(n NodeID, pe ontology.ObjectPropertyExpression) []NodeID {
	target := atomicKey(pe)
	var out []NodeID
	for _, ed := range e.g.edgesFrom(n) {
		if e.tb.roles.supers(ed.property)[target] {
			out = append(out, e.g.find(ed.to))
		}
	}
	if inv, ok := pe.(ontology.InverseObjectProperty); ok {
		base := ontology.ObjectProperty{IRI: inv.Property.IRI}
		for _, other := range e.activeOrAllNodeIDs() {
			for _, ed := range e.g.edgesFrom(other) {
				if e.g.find(ed.to) == e.g.find(n) && e.tb.roles.supers(ed.property)[atomicKey(base)] {
					out = append(out, e.g.find(other))
				}
			}
		}
	}
	return out
}

func (e *engine) activeOrAllNodeIDs() []NodeID {
	var out []NodeID
	for id := NodeID(1); id < NodeID(len(e.g.nodes)); id++ {
		if e.g.find(id) == id {
			out = append(out, id)
		}
	}
	return out
}

// applyRolePropagation derives new edges from symmetric, inverse,
// transitive, reflexive properties and property chains, using the role
// hierarchy and chain tables normalize.go precomputes into the tbox.
func (e *engine) applyRolePropagation() bool {
	for _, n := range e.activeOrAllNodeIDs() {
		for _, ed := range append([]edge(nil), e.g.edgesFrom(n)...) {
			k := atomicKey(ed.property)
			if e.tb.roles.symmetric[k] {
				if base, ok := ed.property.(ontology.ObjectProperty); ok {
					if e.addEdgeIfNew(e.g.find(ed.to), base, n) {
						return true
					}
				}
			}
			if inv, ok := e.tb.roles.inverseOf[k]; ok {
				if e.addEdgeIfNew(e.g.find(ed.to), e.tb.roles.atom(inv), n) {
					return true
				}
			}
			if e.tb.roles.transitive[k] {
				for _, ed2 := range e.g.edgesFrom(e.g.find(ed.to)) {
					if atomicKey(ed2.property) == k {
						if base, ok := ed.property.(ontology.ObjectProperty); ok {
							if e.addEdgeIfNew(n, base, e.g.find(ed2.to)) {
								return true
							}
						}
					}
				}
			}
		}
	}
	for k := range e.tb.roles.reflexive {
		p := e.tb.roles.atom(k)
		for _, n := range e.activeOrAllNodeIDs() {
			if !e.hasEdgeKeyTo(n, k, n) {
				e.g.addEdge(n, p, n)
				return true
			}
		}
	}
	for _, chain := range e.tb.roles.chains {
		for _, n := range e.activeOrAllNodeIDs() {
			if end, ok := e.matchChain(n, chain.props); ok {
				if e.addEdgeIfNew(n, e.toAtomic(chain.super), end) {
					return true
				}
			}
		}
	}
	return false
}

func (e *engine) toAtomic(pe ontology.ObjectPropertyExpression) ontology.ObjectProperty {
	if p, ok := pe.(ontology.ObjectProperty); ok {
		return p
	}
	if p, ok := e.tb.roles.atom(atomicKey(pe)).(ontology.ObjectProperty); ok {
		return p
	}
	return ontology.ObjectProperty{IRI: ontology.IRI(atomicKey(pe))}
}

func (e *engine) matchChain(start NodeID, props []ontology.ObjectPropertyExpression) (NodeID, bool) {
	cur := e.g.find(start)
	for _, p := range props {
		succs := e.successorsVia(cur, p)
		if len(succs) == 0 {
			return 0, false
		}
		cur = succs[0]
	}
	return cur, true
}

func (e *engine) hasEdgeKeyTo(from NodeID, key string, to NodeID) bool {
	for _, ed := range e.g.edgesFrom(from) {
		if atomicKey(ed.property) == key && e.g.find(ed.to) == e.g.find(to) {
			return true
		}
	}
	return false
}

func (e *engine) addEdgeIfNew(from NodeID, p ontology.ObjectPropertyExpression, to NodeID) bool {
	if e.hasEdgeKeyTo(from, atomicKey(p), to) {
		return false
	}
	e.g.addEdge(from, p, to)
	return true
}


// applyFunctionalMerge merges two distinct, non-distinct-marked successors
// of a functional property (or two predecessors of an inverse-functional
// one), the deterministic collapse rule — never a choice point because
// there is only one way to satisfy functionality.
func (e *engine) applyFunctionalMerge() bool {
	for k := range e.tb.roles.functional {
		for _, n := range e.activeOrAllNodeIDs() {
			var succs []NodeID
			for _, ed := range e.g.edgesFrom(n) {
				if atomicKey(ed.property) == k {
					succs = append(succs, e.g.find(ed.to))
				}
			}
			if pair, ok := firstMergeablePair(e.g, succs); ok {
				e.mergeNodes(pair.a, pair.b)
				return true
			}
		}
	}
	for k := range e.tb.roles.invFunc {
		preds := map[NodeID][]NodeID{}
		for _, n := range e.activeOrAllNodeIDs() {
			for _, ed := range e.g.edgesFrom(n) {
				if atomicKey(ed.property) == k {
					to := e.g.find(ed.to)
					preds[to] = append(preds[to], e.g.find(n))
				}
			}
		}
		for _, ps := range preds {
			if pair, ok := firstMergeablePair(e.g, ps); ok {
				e.mergeNodes(pair.a, pair.b)
				return true
			}
		}
	}
	return false
}

func firstMergeablePair(g *graph, ids []NodeID) (mergeCandidate, bool) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				continue
			}
			if g.areDistinct(ids[i], ids[j]) {
				continue
			}
			return mergeCandidate{a: ids[i], b: ids[j]}, true
		}
	}
	return mergeCandidate{}, false
}

// applyHasKey merges two named individuals of the same HasKey class whose
// key-property values all agree (the same non-empty successor set for each
// object key property, a common literal for each data key property),
// the Open Question decision to apply
// keys as a conditional merge during expansion.
func (e *engine) applyHasKey() bool {
	for _, k := range e.tb.keys {
		var members []NodeID
		for ind, id := range e.g.named {
			_ = ind
			if e.g.hasConcept(id, k.Class) {
				members = append(members, e.g.find(id))
			}
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				if a == b || e.g.areDistinct(a, b) {
					continue
				}
				if e.keysAgree(a, b, k) {
					e.mergeNodes(a, b)
					return true
				}
			}
		}
	}
	return false
}

func (e *engine) keysAgree(a, b NodeID, k ontology.HasKey) bool {
	for _, p := range k.ObjectProperties {
		if !sameNodeSet(e.successorsVia(a, p), e.successorsVia(b, p)) {
			return false
		}
	}
	for _, dp := range k.DataProperties {
		shared := false
		for _, fa := range e.dataFacts[a] {
			for _, fb := range e.dataFacts[b] {
				if !fa.negative && !fb.negative && fa.property == dp && fb.property == dp && fa.value == fb.value {
					shared = true
				}
			}
		}
		if !shared {
			return false
		}
	}
	return true
}

func sameNodeSet(a, b []NodeID) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[NodeID]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, y := range b {
		if set[y] {
			return true
		}
	}
	return false
}

func (e *engine) applyHasSelf() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			hs, ok := ce.(ontology.ObjectHasSelf)
			if !ok {
				continue
			}
			if e.addEdgeIfNew(n, hs.Property, n) {
				return true
			}
		}
	}
	return false
}

func (e *engine) applyHasValue() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			hv, ok := ce.(ontology.ObjectHasValue)
			if !ok {
				continue
			}
			target := e.g.getOrCreateNamed(hv.Value)
			if !e.hasEdgeKeyTo(n, atomicKey(hv.Property), target) {
				e.g.addEdge(n, hv.Property, target)
				return true
			}
		}
	}
	return false
}

// applyDataPropertyDomain folds a declared DataPropertyDomain obligation
// onto every node with a non-negative data-property assertion on that (or a
// sub-) property, the data-property analogue of ObjectPropertyDomain's GCI
// folding in normalize.go.
func (e *engine) applyDataPropertyDomain() bool {
	for _, n := range e.activeOrAllNodeIDs() {
		for _, f := range e.dataFacts[n] {
			if f.negative {
				continue
			}
			for k := range e.tb.dataSupers(f.property.String()) {
				dom, ok := e.tb.dataDomain[k]
				if !ok {
					continue
				}
				if e.g.addConcept(n, dom) {
					return true
				}
			}
		}
	}
	return false
}

// mergeNodes unions b into a and re-propagates a's and b's former
// obligations onto the surviving representative, since union-find alone
// does not copy labels/edges.
func (e *engine) mergeNodes(a, b NodeID) {
	ra, rb := e.g.find(a), e.g.find(b)
	if ra == rb {
		return
	}
	bConcepts := make([]ontology.ClassExpression, 0, len(e.g.nodes[rb].concepts))
	for _, c := range e.g.nodes[rb].concepts {
		bConcepts = append(bConcepts, c)
	}
	bEdges := append([]edge(nil), e.g.nodes[rb].edges...)
	e.g.merge(ra, rb)
	for _, c := range bConcepts {
		e.g.addConcept(ra, c)
	}
	for _, ed := range bEdges {
		e.g.addEdge(ra, ed.property, ed.to)
	}
}

// --- generating rules, blocking-aware ---

func (e *engine) updateBlocking() bool {
	changed := false
	for _, n := range e.activeOrAllNodeIDs() {
		if e.g.nodes[n].named {
			continue
		}
		wasBlocked := e.g.nodes[n].blocked
		blocker, isBlocked := e.findBlocker(n)
		if isBlocked && !wasBlocked {
			e.g.setBlocked(n, blocker)
			changed = true
		} else if !isBlocked && wasBlocked {
			e.g.clearBlocked(n)
			changed = true
		}
	}
	return changed
}

// findBlocker implements subset blocking: n is blocked by the nearest
// ancestor whose label is a superset of n's label.
func (e *engine) findBlocker(n NodeID) (NodeID, bool) {
	nLabel := e.g.nodes[e.g.find(n)].concepts
	for _, anc := range e.g.ancestors(n) {
		ancLabel := e.g.nodes[anc].concepts
		if isSubsetLabel(nLabel, ancLabel) {
			return anc, true
		}
	}
	return 0, false
}

func isSubsetLabel(sub, super map[string]ontology.ClassExpression) bool {
	for k := range sub {
		if _, ok := super[k]; !ok {
			return false
		}
	}
	return true
}

func (e *engine) applyExistential() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			sv, ok := ce.(ontology.ObjectSomeValuesFrom)
			if !ok {
				continue
			}
			satisfied := false
			for _, succ := range e.successorsVia(n, sv.Property) {
				if e.g.hasConcept(succ, sv.Filler) {
					satisfied = true
					break
				}
			}
			if satisfied {
				continue
			}
			fresh := e.g.fresh()
			e.g.addEdge(n, sv.Property, fresh)
			e.g.addConcept(fresh, ontology.Top)
			e.g.addConcept(fresh, sv.Filler)
			return true
		}
	}
	return false
}

func (e *engine) applyMinCardinality() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			mc, ok := ce.(ontology.ObjectMinCardinality)
			if !ok || mc.N == 0 {
				continue
			}
			filler := mc.Filler
			if filler == nil {
				filler = ontology.Top
			}
			matching := e.matchingSuccessors(n, mc.Property, filler)
			if countPairwiseDistinct(e.g, matching) >= int(mc.N) {
				continue
			}
			need := int(mc.N) - len(matching)
			fresh := make([]NodeID, 0, need)
			for i := 0; i < need; i++ {
				id := e.g.fresh()
				e.g.addEdge(n, mc.Property, id)
				e.g.addConcept(id, ontology.Top)
				e.g.addConcept(id, filler)
				fresh = append(fresh, id)
			}
			all := append(matching, fresh...)
			for i := 0; i < len(all); i++ {
				for j := i + 1; j < len(all); j++ {
					e.g.markDistinct(all[i], all[j])
				}
			}
			return true
		}
	}
	return false
}

func (e *engine) matchingSuccessors(n NodeID, pe ontology.ObjectPropertyExpression, filler ontology.ClassExpression) []NodeID {
	var out []NodeID
	for _, succ := range e.successorsVia(n, pe) {
		if e.g.hasConcept(succ, filler) {
			out = append(out, succ)
		}
	}
	return out
}

func countPairwiseDistinct(g *graph, ids []NodeID) int {
	best := 0
	for i := range ids {
		count := 1
		for j := range ids {
			if i == j {
				continue
			}
			if g.areDistinct(ids[i], ids[j]) {
				count++
			}
		}
		if count > best {
			best = count
		}
	}
	if len(ids) > 0 && best == 0 {
		return 1
	}
	return best
}

// --- nondeterministic rules (choice points) ---

func (e *engine) applyDisjunction() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			un, ok := ce.(ontology.ObjectUnionOf)
			if !ok {
				continue
			}
			already := false
			for _, op := range un.Operands {
				if e.g.hasConcept(n, op) {
					already = true
					break
				}
			}
			if already {
				continue
			}
			cp := choicePoint{
				kind:       choiceDisjunction,
				checkpoint: e.g.checkpoint(),
				node:       n,
				operands:   un.Operands,
				nextIdx:    1,
			}
			e.g.addConcept(n, un.Operands[0])
			e.choices = append(e.choices, cp)
			return true
		}
	}
	return false
}

func (e *engine) applyMaxCardinality() bool {
	for _, n := range e.activeNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			mc, ok := ce.(ontology.ObjectMaxCardinality)
			if !ok {
				continue
			}
			filler := mc.Filler
			if filler == nil {
				filler = ontology.Top
			}
			matching := e.matchingSuccessors(n, mc.Property, filler)
			if len(matching) <= int(mc.N) {
				continue
			}
			var candidates []mergeCandidate
			for i := 0; i < len(matching); i++ {
				for j := i + 1; j < len(matching); j++ {
					if !e.g.areDistinct(matching[i], matching[j]) {
						candidates = append(candidates, mergeCandidate{a: matching[i], b: matching[j]})
					}
				}
			}
			if len(candidates) == 0 {
				continue
			}
			cp := choicePoint{
				kind:       choiceMerge,
				checkpoint: e.g.checkpoint(),
				candidates: candidates,
				nextIdx:    1,
			}
			e.mergeNodes(candidates[0].a, candidates[0].b)
			e.choices = append(e.choices, cp)
			return true
		}
	}
	return false
}

// backtrack rolls the graph back to the most recent choice point with an
// untried alternative and tries the next one, popping exhausted choice
// points first. Returns false if every choice point is exhausted.
func (e *engine) backtrack() bool {
	for len(e.choices) > 0 {
		top := &e.choices[len(e.choices)-1]
		e.g.rollback(top.checkpoint)
		switch top.kind {
		case choiceDisjunction:
			if top.nextIdx < len(top.operands) {
				e.g.addConcept(top.node, top.operands[top.nextIdx])
				top.nextIdx++
				return true
			}
		case choiceMerge:
			if top.nextIdx < len(top.candidates) {
				c := top.candidates[top.nextIdx]
				e.mergeNodes(c.a, c.b)
				top.nextIdx++
				return true
			}
		}
		e.choices = e.choices[:len(e.choices)-1]
	}
	return false
}

// anyClash reports whether any node's label is contradictory (findClash),
// any forbidden (negatively asserted) edge now holds, any data-property
// constraint is violated (dataClash), or an irreflexive, max-cardinality,
// asymmetric or disjoint-object-property condition is broken.
func (e *engine) anyClash() bool {
	for _, n := range e.activeOrAllNodeIDs() {
		if findClash(e.g, n) {
			return true
		}
	}
	for key := range e.negObjectEdges {
		if e.negEdgeHolds(key) {
			return true
		}
	}
	for _, n := range e.activeOrAllNodeIDs() {
		if dataClash(e.tb, e.dataFacts[n]) {
			return true
		}
	}
	for k := range e.tb.roles.irreflexive {
		for _, n := range e.activeOrAllNodeIDs() {
			if e.hasEdgeKeyTo(n, k, n) {
				return true
			}
		}
	}
	for _, n := range e.activeOrAllNodeIDs() {
		for _, ce := range snapshotConcepts(e.g, n) {
			mc, ok := ce.(ontology.ObjectMaxCardinality)
			if !ok {
				continue
			}
			filler := mc.Filler
			if filler == nil {
				filler = ontology.Top
			}
			matching := e.matchingSuccessors(n, mc.Property, filler)
			if countPairwiseDistinct(e.g, matching) > int(mc.N) {
				return true
			}
		}
	}
	for k := range e.tb.roles.asymmetric {
		for _, n := range e.activeOrAllNodeIDs() {
			for _, ed := range e.g.edgesFrom(n) {
				if atomicKey(ed.property) != k {
					continue
				}
				if e.hasEdgeKeyTo(e.g.find(ed.to), k, n) {
					return true
				}
			}
		}
	}
	if e.objDisjointViolated() {
		return true
	}
	return false
}

// objDisjointViolated reports whether two object properties declared
// DisjointObjectProperties both hold between the same subject and object,
// the "a declared disjointness violated" clash condition of spec.md §4.3
// applied to property (rather than class) disjointness.
func (e *engine) objDisjointViolated() bool {
	for _, pair := range e.tb.objDisjoint {
		for _, n := range e.activeOrAllNodeIDs() {
			for _, ed := range e.g.edgesFrom(n) {
				to := e.g.find(ed.to)
				k := atomicKey(ed.property)
				if k == pair[0] && e.hasEdgeKeyTo(n, pair[1], to) {
					return true
				}
				if k == pair[1] && e.hasEdgeKeyTo(n, pair[0], to) {
					return true
				}
			}
		}
	}
	return false
}

func (e *engine) negEdgeHolds(key string) bool {
	for _, n := range e.activeOrAllNodeIDs() {
		for _, ed := range e.g.edgesFrom(n) {
			if negEdgeKey(ed.property, n, e.g.find(ed.to)) == key {
				return true
			}
		}
	}
	return false
}

func dataClash(tb *tbox, facts []dataFact) bool {
	byProp := map[string][]dataFact{}
	for _, f := range facts {
		k := f.property.String()
		byProp[k] = append(byProp[k], f)
	}
	for _, fs := range facts {
		for _, g := range facts {
			if fs.property.IRI == g.property.IRI && fs.value == g.value && fs.negative != g.negative {
				return true
			}
		}
	}
	for k, fs := range byProp {
		if !tb.dataFunctional(k) {
			continue
		}
		distinct := map[ontology.Literal]bool{}
		for _, f := range fs {
			if !f.negative {
				distinct[f.value] = true
			}
		}
		if len(distinct) > 1 {
			return true
		}
	}
	for _, f := range facts {
		if f.negative {
			continue
		}
		for k := range tb.dataSupers(f.property.String()) {
			if rng, ok := tb.dataRange[k]; ok && !literalInRange(f.value, rng) {
				return true
			}
		}
	}
	for _, pair := range tb.dataDisjoint {
		for _, f1 := range facts {
			if f1.negative {
				continue
			}
			if !tb.dataSupers(f1.property.String())[pair[0]] {
				continue
			}
			for _, f2 := range facts {
				if f2.negative || f1.value != f2.value {
					continue
				}
				if tb.dataSupers(f2.property.String())[pair[1]] {
					return true
				}
			}
		}
	}
	return false
}

// dataFunctional reports whether the data property named by key was
// declared FunctionalDataProperty. Kept as a tiny method on tbox so
// dataClash does not need direct field access ordering concerns.
func (t *tbox) dataFunctional(key string) bool {
	return t.functionalData[key]
}

func snapshotConcepts(g *graph, n NodeID) []ontology.ClassExpression {
	rep := g.find(n)
	out := make([]ontology.ClassExpression, 0, len(g.nodes[rep].concepts))
	for _, c := range g.nodes[rep].concepts {
		out = append(out, c)
	}
	return out
}
