package reasoner

import (
	"testing"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddConceptDedupsByCanonicalForm(t *testing.T) {
	g := newGraph()
	n := g.fresh()
	a := ontology.ClassAtom{IRI: "A"}
	assert.True(t, g.addConcept(n, a))
	assert.False(t, g.addConcept(n, a))
	assert.True(t, g.hasConcept(n, a))
}

func TestGraphRollbackUndoesConceptsEdgesAndMerges(t *testing.T) {
	g := newGraph()
	a := g.fresh()
	b := g.fresh()
	cp := g.checkpoint()

	g.addConcept(a, ontology.ClassAtom{IRI: "A"})
	g.addEdge(a, ontology.ObjectProperty{IRI: "p"}, b)
	g.merge(a, b)
	require.Equal(t, g.find(a), g.find(b))

	g.rollback(cp)
	assert.False(t, g.hasConcept(a, ontology.ClassAtom{IRI: "A"}))
	assert.Empty(t, g.edgesFrom(a))
	assert.NotEqual(t, g.find(a), g.find(b))
}

func TestGraphMarkDistinctIsSymmetric(t *testing.T) {
	g := newGraph()
	a := g.fresh()
	b := g.fresh()
	g.markDistinct(a, b)
	assert.True(t, g.areDistinct(a, b))
	assert.True(t, g.areDistinct(b, a))
}

func TestGraphAncestorsNearestFirst(t *testing.T) {
	g := newGraph()
	root := g.fresh()
	mid := g.fresh()
	leaf := g.fresh()
	g.addEdge(root, ontology.ObjectProperty{IRI: "p"}, mid)
	g.addEdge(mid, ontology.ObjectProperty{IRI: "p"}, leaf)

	anc := g.ancestors(leaf)
	require.Len(t, anc, 2)
	assert.Equal(t, mid, anc[0])
	assert.Equal(t, root, anc[1])
}

func TestGraphGetOrCreateNamedIsIdempotent(t *testing.T) {
	g := newGraph()
	ind := ontology.NamedIndividual("http://example.org/i1")
	a := g.getOrCreateNamed(ind)
	b := g.getOrCreateNamed(ind)
	assert.Equal(t, a, b)
}
