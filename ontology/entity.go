// Package ontology defines the abstract syntax model for OWL 2
// Functional-Style Syntax ontologies: IRIs, entities, class and property
// expressions, data ranges, axioms, and the ontology container itself.
//
// The model is a deeply recursive algebraic structure. Go has no sum
// types, so each recursive family (ClassExpression, ObjectPropertyExpression,
// DataRange, Axiom) is modeled as a small marker interface implemented by
// one concrete struct per constructor.
package ontology

import "fmt"

// IRI is an Internationalized Resource Identifier. It is treated as an
// opaque string throughout the core; no resolution or normalization is
// performed.
type IRI string

func (i IRI) String() string { return string(i) }

// EntityKind distinguishes the disjoint entity categories of OWL 2.
// Category membership is declared by the axiom/entity that introduces it,
// never inferred from IRI shape — the same IRI used as both a Class and
// an ObjectProperty denotes two distinct entities (punning is out of
// scope).
type EntityKind uint8

const (
	EntityClass EntityKind = iota
	EntityDatatype
	EntityObjectProperty
	EntityDataProperty
	EntityAnnotationProperty
	EntityNamedIndividual
)

func (k EntityKind) String() string {
	switch k {
	case EntityClass:
		return "Class"
	case EntityDatatype:
		return "Datatype"
	case EntityObjectProperty:
		return "ObjectProperty"
	case EntityDataProperty:
		return "DataProperty"
	case EntityAnnotationProperty:
		return "AnnotationProperty"
	case EntityNamedIndividual:
		return "NamedIndividual"
	default:
		return "Entity"
	}
}

// Entity is a declared building block of an ontology: a Class, Datatype,
// ObjectProperty, DataProperty, AnnotationProperty, or NamedIndividual,
// each wrapping an IRI.
type Entity struct {
	Kind EntityKind
	IRI  IRI
}

func (e Entity) String() string { return fmt.Sprintf("%s(<%s>)", e.Kind, e.IRI) }

// Individual is a constant denoting one element of the domain. It is
// named (identified by an IRI) if Name is non-empty, and anonymous
// (identified by a NodeID) otherwise. Individual is comparable, so it is
// used directly as a map key by the completion graph.
type Individual struct {
	Name IRI    // set iff this is a named individual
	Node string // set iff this is an anonymous individual ("_:b1" style)
}

// NamedIndividual builds a named Individual from an IRI.
func NamedIndividual(iri IRI) Individual { return Individual{Name: iri} }

// AnonymousIndividual builds an anonymous Individual from a NodeID string.
func AnonymousIndividual(nodeID string) Individual { return Individual{Node: nodeID} }

func (i Individual) IsAnonymous() bool { return i.Name == "" }

func (i Individual) String() string {
	if i.IsAnonymous() {
		return i.Node
	}
	return "<" + string(i.Name) + ">"
}

// Literal is a data value: a lexical form paired with a datatype and an
// optional language tag (mutually exclusive with a non-default datatype
// in well-formed input, but the model does not enforce that — the parser
// does).
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

const XSDString = IRI("http://www.w3.org/2001/XMLSchema#string")

func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Value, l.Lang)
	}
	if l.Datatype != "" && l.Datatype != XSDString {
		return fmt.Sprintf("%q^^<%s>", l.Value, l.Datatype)
	}
	return fmt.Sprintf("%q", l.Value)
}
