package profile

import (
	"testing"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ontology.Ontology {
	t.Helper()
	ont, err := ontology.ParseFunctional(src)
	require.NoError(t, err)
	return ont
}

func TestELAcceptsConjunctionAndExistential(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  SubClassOf(ObjectIntersectionOf(ex:A ObjectSomeValuesFrom(ex:p ex:B)) ex:C)
)`)
	result := Check(ont, EL)
	assert.True(t, result.Conforms)
	assert.Empty(t, result.Violations)
}

func TestELRejectsUnion(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  SubClassOf(ObjectUnionOf(ex:A ex:B) ex:C)
)`)
	result := Check(ont, EL)
	assert.False(t, result.Conforms)
	assert.NotEmpty(t, result.Violations)
}

func TestELRejectsInverseObjectProperties(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  InverseObjectProperties(ex:p ex:q)
)`)
	result := Check(ont, EL)
	assert.False(t, result.Conforms)
}

func TestQLRejectsTransitiveObjectProperty(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  TransitiveObjectProperty(ex:p)
)`)
	result := Check(ont, QL)
	assert.False(t, result.Conforms)
}

func TestQLAcceptsAtomicSubClassOf(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  SubClassOf(ex:A ex:B)
)`)
	result := Check(ont, QL)
	assert.True(t, result.Conforms)
}

func TestRLRejectsMinCardinality(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  SubClassOf(ex:A ObjectMinCardinality(1 ex:p ex:B))
)`)
	result := Check(ont, RL)
	assert.False(t, result.Conforms)
}

func TestRLAcceptsUnionOnSubclassSide(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  SubClassOf(ObjectUnionOf(ex:A ex:B) ex:C)
)`)
	result := Check(ont, RL)
	assert.True(t, result.Conforms)
}

func TestRLRejectsReflexiveObjectProperty(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  ReflexiveObjectProperty(ex:p)
)`)
	result := Check(ont, RL)
	assert.False(t, result.Conforms)
}

func TestRLRejectsDisjointUnion(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  DisjointUnion(ex:A ex:B ex:C)
)`)
	result := Check(ont, RL)
	assert.False(t, result.Conforms)
}

func TestRLRejectsOwlRealDataRange(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  DataPropertyRange(ex:p DatatypeRestriction(<http://www.w3.org/2002/07/owl#real>))
)`)
	result := Check(ont, RL)
	assert.False(t, result.Conforms)
}

func TestELRejectsUnionDataRange(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  DataPropertyRange(ex:p DataUnionOf(<http://www.w3.org/2001/XMLSchema#string> <http://www.w3.org/2001/XMLSchema#int>))
)`)
	result := Check(ont, EL)
	assert.False(t, result.Conforms)
}

func TestELAcceptsPlainDatatypeRange(t *testing.T) {
	ont := mustParse(t, `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  DataPropertyRange(ex:p <http://www.w3.org/2001/XMLSchema#string>)
)`)
	result := Check(ont, EL)
	assert.True(t, result.Conforms)
}

func TestProfileStringer(t *testing.T) {
	assert.Equal(t, "EL", EL.String())
	assert.Equal(t, "QL", QL.String())
	assert.Equal(t, "RL", RL.String())
}
