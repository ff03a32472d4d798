package owl2

import (
	"context"
	"testing"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/anusornc/owl2-rs/profile"
	"github.com/anusornc/owl2-rs/reasoner"
	"github.com/stretchr/testify/require"
)

const sampleOntology = `Prefix(ex:=<http://example.org/>)
Ontology(<http://example.org/o>
  Declaration(Class(ex:A))
  Declaration(Class(ex:B))
  SubClassOf(ex:A ex:B)
  ClassAssertion(ex:A ex:i1)
)`

func TestLoadFromStringAndIsConsistent(t *testing.T) {
	eng, err := LoadFromString(sampleOntology, reasoner.DefaultConfig(), nil)
	require.NoError(t, err)
	ok, err := eng.IsConsistent(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEngineIsSubsumedBy(t *testing.T) {
	eng, err := LoadFromString(sampleOntology, reasoner.DefaultConfig(), nil)
	require.NoError(t, err)
	ok, err := eng.IsSubsumedBy(context.Background(), "http://example.org/A", "http://example.org/B")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEngineIsInstanceOf(t *testing.T) {
	eng, err := LoadFromString(sampleOntology, reasoner.DefaultConfig(), nil)
	require.NoError(t, err)
	ok, err := eng.IsInstanceOf(context.Background(), ontology.NamedIndividual("http://example.org/i1"), "http://example.org/B")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEngineCheckProfile(t *testing.T) {
	eng, err := LoadFromString(sampleOntology, reasoner.DefaultConfig(), nil)
	require.NoError(t, err)
	result := eng.CheckProfile(profile.EL)
	require.True(t, result.Conforms)
}

func TestLoadFromStringRejectsBadSyntax(t *testing.T) {
	_, err := LoadFromString("not an ontology", reasoner.DefaultConfig(), nil)
	require.Error(t, err)
}
