package ontology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunctionalMinimalOntology(t *testing.T) {
	input := `Ontology(<http://example.org/onto>
  Declaration(Class(<http://example.org/A>))
  Declaration(Class(<http://example.org/B>))
  SubClassOf(<http://example.org/A> <http://example.org/B>)
)`
	ont, err := ParseFunctional(input)
	require.NoError(t, err)
	assert.Equal(t, IRI("http://example.org/onto"), ont.IRI)
	require.Len(t, ont.Axioms, 3)

	sub, ok := ont.Axioms[2].(SubClassOf)
	require.True(t, ok)
	assert.Equal(t, ClassAtom{IRI: "http://example.org/A"}, sub.Sub)
	assert.Equal(t, ClassAtom{IRI: "http://example.org/B"}, sub.Super)
}

func TestParseFunctionalPrefixedNames(t *testing.T) {
	input := `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/onto>
  SubClassOf(ex:A ex:B)
  ClassAssertion(ex:A ex:i1)
)`
	ont, err := ParseFunctional(input)
	require.NoError(t, err)
	require.Len(t, ont.Axioms, 2)

	ca, ok := ont.Axioms[1].(ClassAssertion)
	require.True(t, ok)
	assert.Equal(t, ClassAtom{IRI: "http://example.org/A"}, ca.Class)
	assert.Equal(t, NamedIndividual("http://example.org/i1"), ca.Individual)
}

func TestParseFunctionalComplexClassExpressions(t *testing.T) {
	input := `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/onto>
  SubClassOf(
    ObjectIntersectionOf(ex:A ObjectSomeValuesFrom(ex:p ex:B))
    ObjectUnionOf(ex:C ObjectComplementOf(ex:D))
  )
  SubObjectPropertyOf(ObjectPropertyChain(ex:p ex:q) ex:r)
  TransitiveObjectProperty(ex:p)
  DisjointClasses(ex:A ex:C)
)`
	ont, err := ParseFunctional(input)
	require.NoError(t, err)
	require.Len(t, ont.Axioms, 4)

	sub, ok := ont.Axioms[0].(SubClassOf)
	require.True(t, ok)
	inter, ok := sub.Sub.(ObjectIntersectionOf)
	require.True(t, ok)
	require.Len(t, inter.Operands, 2)
	_, ok = inter.Operands[1].(ObjectSomeValuesFrom)
	assert.True(t, ok)

	union, ok := sub.Super.(ObjectUnionOf)
	require.True(t, ok)
	require.Len(t, union.Operands, 2)
	_, ok = union.Operands[1].(ObjectComplementOf)
	assert.True(t, ok)

	chain, ok := ont.Axioms[1].(SubObjectPropertyOf)
	require.True(t, ok)
	_, ok = chain.Sub.(ObjectPropertyChain)
	assert.True(t, ok)
}

func TestParseFunctionalCardinality(t *testing.T) {
	input := `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/onto>
  SubClassOf(ex:A ObjectMinCardinality(2 ex:p ex:B))
  SubClassOf(ex:A ObjectMaxCardinality(1 ex:p))
)`
	ont, err := ParseFunctional(input)
	require.NoError(t, err)

	sub0 := ont.Axioms[0].(SubClassOf)
	minCard := sub0.Super.(ObjectMinCardinality)
	assert.Equal(t, uint32(2), minCard.N)
	require.NotNil(t, minCard.Filler)

	sub1 := ont.Axioms[1].(SubClassOf)
	maxCard := sub1.Super.(ObjectMaxCardinality)
	assert.Equal(t, uint32(1), maxCard.N)
	assert.Nil(t, maxCard.Filler)
}

func TestParseFunctionalRejectsUndeclaredPrefix(t *testing.T) {
	_, err := ParseFunctional(`Ontology(<http://example.org/onto>
  SubClassOf(foo:A foo:B)
)`)
	require.Error(t, err)
}

func TestWriteFunctionalRoundTrips(t *testing.T) {
	ont := &Ontology{
		IRI: "http://example.org/onto",
		Axioms: []Axiom{
			SubClassOf{Sub: ClassAtom{IRI: "http://example.org/A"}, Super: ClassAtom{IRI: "http://example.org/B"}},
		},
	}
	var buf strings.Builder
	require.NoError(t, WriteFunctional(ont, &buf))
	reparsed, err := ParseFunctional(buf.String())
	require.NoError(t, err)
	require.Len(t, reparsed.Axioms, 1)
	assert.Equal(t, ont.Axioms[0].String(), reparsed.Axioms[0].String())
}
