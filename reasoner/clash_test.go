package reasoner

import (
	"testing"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/stretchr/testify/assert"
)

func TestNegateDeMorgan(t *testing.T) {
	a := ontology.ClassAtom{IRI: "A"}
	b := ontology.ClassAtom{IRI: "B"}
	inter := ontology.ObjectIntersectionOf{Operands: []ontology.ClassExpression{a, b}}
	got := negate(inter)
	union, ok := got.(ontology.ObjectUnionOf)
	assert.True(t, ok)
	assert.Equal(t, "ObjectComplementOf(Class(<A>))", union.Operands[0].String())
	assert.Equal(t, "ObjectComplementOf(Class(<B>))", union.Operands[1].String())
}

func TestNegateTopBottom(t *testing.T) {
	assert.Equal(t, ontology.Bottom, negate(ontology.Top))
	assert.Equal(t, ontology.Top, negate(ontology.Bottom))
}

func TestNegateQuantifierDuals(t *testing.T) {
	p := ontology.ObjectProperty{IRI: "p"}
	c := ontology.ClassAtom{IRI: "C"}
	some := ontology.ObjectSomeValuesFrom{Property: p, Filler: c}
	got := negate(some)
	all, ok := got.(ontology.ObjectAllValuesFrom)
	assert.True(t, ok)
	assert.Equal(t, "ObjectComplementOf(Class(<C>))", all.Filler.String())
}

func TestNegateCardinalityDuals(t *testing.T) {
	p := ontology.ObjectProperty{IRI: "p"}
	min2 := ontology.ObjectMinCardinality{N: 2, Property: p}
	got := negate(min2)
	max1, ok := got.(ontology.ObjectMaxCardinality)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), max1.N)

	max3 := ontology.ObjectMaxCardinality{N: 3, Property: p}
	got2 := negate(max3)
	min4, ok := got2.(ontology.ObjectMinCardinality)
	assert.True(t, ok)
	assert.Equal(t, uint32(4), min4.N)

	exact2 := ontology.ObjectExactCardinality{N: 2, Property: p}
	got3 := negate(exact2)
	union, ok := got3.(ontology.ObjectUnionOf)
	assert.True(t, ok)
	assert.Len(t, union.Operands, 2)
}

func TestToNNFDecomposesExactCardinality(t *testing.T) {
	p := ontology.ObjectProperty{IRI: "p"}
	exact2 := ontology.ObjectExactCardinality{N: 2, Property: p}
	got := toNNF(exact2)
	inter, ok := got.(ontology.ObjectIntersectionOf)
	assert.True(t, ok)
	assert.Len(t, inter.Operands, 2)
	_, minOK := inter.Operands[0].(ontology.ObjectMinCardinality)
	_, maxOK := inter.Operands[1].(ontology.ObjectMaxCardinality)
	assert.True(t, minOK)
	assert.True(t, maxOK)
}

func TestDoubleNegationCancels(t *testing.T) {
	a := ontology.ClassAtom{IRI: "A"}
	not := ontology.ObjectComplementOf{Operand: a}
	assert.Equal(t, a, toNNF(ontology.ObjectComplementOf{Operand: not}))
	assert.Equal(t, a, negate(not))
}

func TestFindClashDetectsBottom(t *testing.T) {
	g := newGraph()
	n := g.fresh()
	g.addConcept(n, ontology.Bottom)
	assert.True(t, findClash(g, n))
}

func TestFindClashDetectsAtomAndComplement(t *testing.T) {
	g := newGraph()
	n := g.fresh()
	a := ontology.ClassAtom{IRI: "A"}
	g.addConcept(n, a)
	g.addConcept(n, ontology.ObjectComplementOf{Operand: a})
	assert.True(t, findClash(g, n))
}

func TestFindClashNoneWhenConsistent(t *testing.T) {
	g := newGraph()
	n := g.fresh()
	g.addConcept(n, ontology.ClassAtom{IRI: "A"})
	g.addConcept(n, ontology.ClassAtom{IRI: "B"})
	assert.False(t, findClash(g, n))
}

func TestFindClashDetectsHasSelfComplement(t *testing.T) {
	g := newGraph()
	n := g.fresh()
	p := ontology.ObjectProperty{IRI: "p"}
	g.addConcept(n, ontology.ObjectComplementOf{Operand: ontology.ObjectHasSelf{Property: p}})
	g.addEdge(n, p, n)
	assert.True(t, findClash(g, n))
}

func TestFindClashNoHasSelfClashWithoutSelfEdge(t *testing.T) {
	g := newGraph()
	n := g.fresh()
	other := g.fresh()
	p := ontology.ObjectProperty{IRI: "p"}
	g.addConcept(n, ontology.ObjectComplementOf{Operand: ontology.ObjectHasSelf{Property: p}})
	g.addEdge(n, p, other)
	assert.False(t, findClash(g, n))
}

func TestLiteralInRangeDatatype(t *testing.T) {
	lit := ontology.Literal{Value: "5", Datatype: "xsd:int"}
	assert.True(t, literalInRange(lit, ontology.DatatypeRange{IRI: "xsd:int"}))
	assert.False(t, literalInRange(lit, ontology.DatatypeRange{IRI: "xsd:string"}))
}

func TestLiteralInRangeDefaultsToXSDString(t *testing.T) {
	lit := ontology.Literal{Value: "hi"}
	assert.True(t, literalInRange(lit, ontology.DatatypeRange{IRI: ontology.XSDString}))
}

func TestLiteralInRangeUnionAndComplement(t *testing.T) {
	lit := ontology.Literal{Value: "5", Datatype: "xsd:int"}
	union := ontology.DataUnionOf{Operands: []ontology.DataRange{
		ontology.DatatypeRange{IRI: "xsd:string"},
		ontology.DatatypeRange{IRI: "xsd:int"},
	}}
	assert.True(t, literalInRange(lit, union))
	assert.False(t, literalInRange(lit, ontology.DataComplementOf{Operand: ontology.DatatypeRange{IRI: "xsd:int"}}))
}
