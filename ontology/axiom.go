package ontology

import "strings"

// Axiom is the sum type of every OWL 2 axiom this package models: class
// axioms, object- and data-property axioms, and assertions.
type Axiom interface {
	axiom()
	String() string
}

// Declaration introduces an entity into the signature of the ontology
// (Class, Datatype, ObjectProperty, DataProperty, AnnotationProperty, or
// NamedIndividual). It carries no logical content of its own but the
// parser and writer round-trip it like any other axiom.
type Declaration struct{ Entity Entity }

func (Declaration) axiom() {}
func (a Declaration) String() string {
	return "Declaration(" + a.Entity.String() + ")"
}

// --- Class axioms ---

type SubClassOf struct{ Sub, Super ClassExpression }

func (SubClassOf) axiom() {}
func (a SubClassOf) String() string {
	return "SubClassOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}

type EquivalentClasses struct{ Classes []ClassExpression }

func (EquivalentClasses) axiom() {}
func (a EquivalentClasses) String() string {
	return "EquivalentClasses(" + joinExprs(a.Classes) + ")"
}

type DisjointClasses struct{ Classes []ClassExpression }

func (DisjointClasses) axiom() {}
func (a DisjointClasses) String() string {
	return "DisjointClasses(" + joinExprs(a.Classes) + ")"
}

// DisjointUnion asserts Class is the union of Disjoints, each pairwise
// disjoint from every other.
type DisjointUnion struct {
	Class     ClassAtom
	Disjoints []ClassExpression
}

func (DisjointUnion) axiom() {}
func (a DisjointUnion) String() string {
	return "DisjointUnion(" + a.Class.String() + " " + joinExprs(a.Disjoints) + ")"
}

// --- Object property axioms ---

type SubObjectPropertyOf struct {
	Sub   ObjectPropertyExpression // ObjectPropertyChain allowed only here
	Super ObjectPropertyExpression
}

func (SubObjectPropertyOf) axiom() {}
func (a SubObjectPropertyOf) String() string {
	return "SubObjectPropertyOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}

type EquivalentObjectProperties struct{ Properties []ObjectPropertyExpression }

func (EquivalentObjectProperties) axiom() {}
func (a EquivalentObjectProperties) String() string {
	return "EquivalentObjectProperties(" + joinProps(a.Properties) + ")"
}

type DisjointObjectProperties struct{ Properties []ObjectPropertyExpression }

func (DisjointObjectProperties) axiom() {}
func (a DisjointObjectProperties) String() string {
	return "DisjointObjectProperties(" + joinProps(a.Properties) + ")"
}

type InverseObjectProperties struct{ First, Second ObjectPropertyExpression }

func (InverseObjectProperties) axiom() {}
func (a InverseObjectProperties) String() string {
	return "InverseObjectProperties(" + a.First.String() + " " + a.Second.String() + ")"
}

type ObjectPropertyDomain struct {
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

func (ObjectPropertyDomain) axiom() {}
func (a ObjectPropertyDomain) String() string {
	return "ObjectPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}

type ObjectPropertyRange struct {
	Property ObjectPropertyExpression
	Range    ClassExpression
}

func (ObjectPropertyRange) axiom() {}
func (a ObjectPropertyRange) String() string {
	return "ObjectPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}

type FunctionalObjectProperty struct{ Property ObjectPropertyExpression }

func (FunctionalObjectProperty) axiom() {}
func (a FunctionalObjectProperty) String() string {
	return "FunctionalObjectProperty(" + a.Property.String() + ")"
}

type InverseFunctionalObjectProperty struct{ Property ObjectPropertyExpression }

func (InverseFunctionalObjectProperty) axiom() {}
func (a InverseFunctionalObjectProperty) String() string {
	return "InverseFunctionalObjectProperty(" + a.Property.String() + ")"
}

type ReflexiveObjectProperty struct{ Property ObjectPropertyExpression }

func (ReflexiveObjectProperty) axiom() {}
func (a ReflexiveObjectProperty) String() string {
	return "ReflexiveObjectProperty(" + a.Property.String() + ")"
}

type IrreflexiveObjectProperty struct{ Property ObjectPropertyExpression }

func (IrreflexiveObjectProperty) axiom() {}
func (a IrreflexiveObjectProperty) String() string {
	return "IrreflexiveObjectProperty(" + a.Property.String() + ")"
}

type SymmetricObjectProperty struct{ Property ObjectPropertyExpression }

func (SymmetricObjectProperty) axiom() {}
func (a SymmetricObjectProperty) String() string {
	return "SymmetricObjectProperty(" + a.Property.String() + ")"
}

type AsymmetricObjectProperty struct{ Property ObjectPropertyExpression }

func (AsymmetricObjectProperty) axiom() {}
func (a AsymmetricObjectProperty) String() string {
	return "AsymmetricObjectProperty(" + a.Property.String() + ")"
}

type TransitiveObjectProperty struct{ Property ObjectPropertyExpression }

func (TransitiveObjectProperty) axiom() {}
func (a TransitiveObjectProperty) String() string {
	return "TransitiveObjectProperty(" + a.Property.String() + ")"
}

// --- Data property axioms ---

type SubDataPropertyOf struct{ Sub, Super DataProperty }

func (SubDataPropertyOf) axiom() {}
func (a SubDataPropertyOf) String() string {
	return "SubDataPropertyOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}

type EquivalentDataProperties struct{ Properties []DataProperty }

func (EquivalentDataProperties) axiom() {}
func (a EquivalentDataProperties) String() string {
	return "EquivalentDataProperties(" + joinDataProps(a.Properties) + ")"
}

type DisjointDataProperties struct{ Properties []DataProperty }

func (DisjointDataProperties) axiom() {}
func (a DisjointDataProperties) String() string {
	return "DisjointDataProperties(" + joinDataProps(a.Properties) + ")"
}

type DataPropertyDomain struct {
	Property DataProperty
	Domain   ClassExpression
}

func (DataPropertyDomain) axiom() {}
func (a DataPropertyDomain) String() string {
	return "DataPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}

type DataPropertyRange struct {
	Property DataProperty
	Range    DataRange
}

func (DataPropertyRange) axiom() {}
func (a DataPropertyRange) String() string {
	return "DataPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}

type FunctionalDataProperty struct{ Property DataProperty }

func (FunctionalDataProperty) axiom() {}
func (a FunctionalDataProperty) String() string {
	return "FunctionalDataProperty(" + a.Property.String() + ")"
}

// HasKey: an individual in Class is uniquely identified by the combination
// of its ObjectProperties and DataProperties values.
type HasKey struct {
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
}

func (HasKey) axiom() {}
func (a HasKey) String() string {
	return "HasKey(" + a.Class.String() + " (" + joinProps(a.ObjectProperties) + ") (" + joinDataProps(a.DataProperties) + "))"
}

// --- Assertions ---

type SameIndividual struct{ Individuals []Individual }

func (SameIndividual) axiom() {}
func (a SameIndividual) String() string {
	return "SameIndividual(" + joinIndividuals(a.Individuals) + ")"
}

type DifferentIndividuals struct{ Individuals []Individual }

func (DifferentIndividuals) axiom() {}
func (a DifferentIndividuals) String() string {
	return "DifferentIndividuals(" + joinIndividuals(a.Individuals) + ")"
}

type ClassAssertion struct {
	Class      ClassExpression
	Individual Individual
}

func (ClassAssertion) axiom() {}
func (a ClassAssertion) String() string {
	return "ClassAssertion(" + a.Class.String() + " " + a.Individual.String() + ")"
}

type ObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}

func (ObjectPropertyAssertion) axiom() {}
func (a ObjectPropertyAssertion) String() string {
	return "ObjectPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}

type NegativeObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}

func (NegativeObjectPropertyAssertion) axiom() {}
func (a NegativeObjectPropertyAssertion) String() string {
	return "NegativeObjectPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}

type DataPropertyAssertion struct {
	Property DataProperty
	Subject  Individual
	Value    Literal
}

func (DataPropertyAssertion) axiom() {}
func (a DataPropertyAssertion) String() string {
	return "DataPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}

type NegativeDataPropertyAssertion struct {
	Property DataProperty
	Subject  Individual
	Value    Literal
}

func (NegativeDataPropertyAssertion) axiom() {}
func (a NegativeDataPropertyAssertion) String() string {
	return "NegativeDataPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}

func joinProps(ps []ObjectPropertyExpression) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func joinDataProps(ps []DataProperty) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func joinIndividuals(is []Individual) string {
	parts := make([]string, len(is))
	for i, ind := range is {
		parts[i] = ind.String()
	}
	return strings.Join(parts, " ")
}
