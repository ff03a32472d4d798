// Package profile implements the OWL 2 EL/QL/RL profile conformance
// checker: pure structural predicates over the axiom tree, grounded on
// _examples/original_source/src/owl2_profile.rs's per-profile grammars
// (OwlProfile, check_el_class_axiom, is_el_class_expression, and siblings),
// reimplemented here as a Go visitor over the ontology package's ADT
// instead of the Rust enum match.
package profile

import (
	"fmt"

	"github.com/anusornc/owl2-rs/ontology"
)

// Profile names one of the three OWL 2 tractable profiles this checker
// recognizes.
type Profile int

const (
	EL Profile = iota
	QL
	RL
)

func (p Profile) String() string {
	switch p {
	case EL:
		return "EL"
	case QL:
		return "QL"
	case RL:
		return "RL"
	default:
		return "Unknown"
	}
}

// Result reports whether an ontology conforms to a profile, and if not,
// every structural reason it fails, in the shape Owl2RsError's
// ProfileCheckResult took in original_source/src/owl2_profile.rs.
type Result struct {
	Profile    Profile
	Conforms   bool
	Violations []string
}

// Check runs the structural conformance predicate for the named profile
// against every axiom in ont.
func Check(ont *ontology.Ontology, p Profile) Result {
	var violations []string
	for i, ax := range ont.Axioms {
		var v []string
		switch p {
		case EL:
			v = checkELAxiom(ax)
		case QL:
			v = checkQLAxiom(ax)
		case RL:
			v = checkRLAxiom(ax)
		}
		for _, msg := range v {
			violations = append(violations, fmt.Sprintf("axiom %d (%s): %s", i, ax.String(), msg))
		}
	}
	return Result{Profile: p, Conforms: len(violations) == 0, Violations: violations}
}

// --- EL ---

// isELClassExpression allows: atomic classes (incl. owl:Thing/owl:Nothing),
// ObjectIntersectionOf of EL expressions, ObjectSomeValuesFrom with an EL
// filler, ObjectHasValue, and ObjectOneOf of a single individual —
// exactly the OWL 2 EL class-expression grammar.
func isELClassExpression(ce ontology.ClassExpression) bool {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		return true
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			if !isELClassExpression(op) {
				return false
			}
		}
		return true
	case ontology.ObjectSomeValuesFrom:
		return isELClassExpression(c.Filler)
	case ontology.ObjectHasValue:
		return true
	case ontology.ObjectOneOf:
		return len(c.Individuals) == 1
	default:
		return false
	}
}

func checkELAxiom(ax ontology.Axiom) []string {
	var out []string
	bad := func(msg string) { out = append(out, msg) }
	switch a := ax.(type) {
	case ontology.SubClassOf:
		if !isELClassExpression(a.Sub) {
			bad("subclass is not an EL class expression")
		}
		if !isELClassExpression(a.Super) {
			bad("superclass is not an EL class expression")
		}
	case ontology.EquivalentClasses:
		for _, c := range a.Classes {
			if !isELClassExpression(c) {
				bad("EquivalentClasses operand is not an EL class expression")
			}
		}
	case ontology.DisjointClasses:
		for _, c := range a.Classes {
			if !isELClassExpression(c) {
				bad("DisjointClasses operand is not an EL class expression")
			}
		}
	case ontology.ObjectPropertyDomain:
		if !isELClassExpression(a.Domain) {
			bad("ObjectPropertyDomain filler is not an EL class expression")
		}
	case ontology.ObjectPropertyRange:
		if !isELClassExpression(a.Range) {
			bad("ObjectPropertyRange filler is not an EL class expression")
		}
	case ontology.InverseObjectProperties:
		bad("EL forbids InverseObjectProperties")
	case ontology.SymmetricObjectProperty:
		bad("EL forbids SymmetricObjectProperty")
	case ontology.AsymmetricObjectProperty:
		bad("EL forbids AsymmetricObjectProperty")
	case ontology.IrreflexiveObjectProperty:
		bad("EL forbids IrreflexiveObjectProperty")
	case ontology.FunctionalObjectProperty:
		bad("EL forbids FunctionalObjectProperty")
	case ontology.InverseFunctionalObjectProperty:
		bad("EL forbids InverseFunctionalObjectProperty")
	case ontology.DisjointUnion:
		bad("EL forbids DisjointUnion")
	case ontology.ClassAssertion:
		if !isELClassExpression(a.Class) {
			bad("ClassAssertion class is not an EL class expression")
		}
	case ontology.DataPropertyRange:
		if !isDatatypeOnlyRange(a.Range) {
			bad("EL restricts DataPropertyRange to a plain datatype, no union/intersection/complement/oneOf")
		}
	}
	return out
}

// isDatatypeOnlyRange allows a bare DatatypeRange or DatatypeRestriction,
// rejecting the boolean DataRange combinators EL's simpler grammar excludes.
func isDatatypeOnlyRange(dr ontology.DataRange) bool {
	switch dr.(type) {
	case ontology.DatatypeRange, ontology.DatatypeRestriction:
		return true
	default:
		return false
	}
}

// owl:real and owl:rational are excluded from OWL 2 RL's datatype map
// (spec.md §4.5/the OWL 2 RL profile definition) because the rule-based
// RL reasoning this profile targets has no decision procedure for them.
const (
	owlReal     = ontology.IRI("http://www.w3.org/2002/07/owl#real")
	owlRational = ontology.IRI("http://www.w3.org/2002/07/owl#rational")
)

// isRLDataRange rejects owl:real/owl:rational anywhere in a DataRange,
// recursing through the boolean combinators the same way isDatatypeOnlyRange
// does not need to for EL's stricter grammar.
func isRLDataRange(dr ontology.DataRange) bool {
	switch d := dr.(type) {
	case ontology.DatatypeRange:
		return d.IRI != owlReal && d.IRI != owlRational
	case ontology.DatatypeRestriction:
		return d.Datatype != owlReal && d.Datatype != owlRational
	case ontology.DataIntersectionOf:
		for _, op := range d.Operands {
			if !isRLDataRange(op) {
				return false
			}
		}
		return true
	case ontology.DataUnionOf:
		for _, op := range d.Operands {
			if !isRLDataRange(op) {
				return false
			}
		}
		return true
	case ontology.DataComplementOf:
		return isRLDataRange(d.Operand)
	case ontology.DataOneOf:
		return true
	default:
		return true
	}
}

// --- QL ---

// isQLSubClassExpression restricts the left-hand side of a SubClassOf
// much further than EL: atomic classes and ObjectSomeValuesFrom with an
// unqualified (owl:Thing) filler only.
func isQLSubClassExpression(ce ontology.ClassExpression) bool {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		return true
	case ontology.ObjectSomeValuesFrom:
		atom, ok := c.Filler.(ontology.ClassAtom)
		return ok && atom.IRI == ontology.Top.IRI
	default:
		return false
	}
}

// isQLSuperClassExpression allows atomic classes, ObjectIntersectionOf of
// QL superclass expressions, ObjectComplementOf of a QL subclass
// expression, and unqualified ObjectSomeValuesFrom.
func isQLSuperClassExpression(ce ontology.ClassExpression) bool {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		return true
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			if !isQLSuperClassExpression(op) {
				return false
			}
		}
		return true
	case ontology.ObjectComplementOf:
		return isQLSubClassExpression(c.Operand)
	case ontology.ObjectSomeValuesFrom:
		atom, ok := c.Filler.(ontology.ClassAtom)
		return ok && atom.IRI == ontology.Top.IRI
	default:
		return false
	}
}

func checkQLAxiom(ax ontology.Axiom) []string {
	var out []string
	bad := func(msg string) { out = append(out, msg) }
	switch a := ax.(type) {
	case ontology.SubClassOf:
		if !isQLSubClassExpression(a.Sub) {
			bad("subclass exceeds QL's restricted left-hand grammar")
		}
		if !isQLSuperClassExpression(a.Super) {
			bad("superclass exceeds QL's restricted right-hand grammar")
		}
	case ontology.TransitiveObjectProperty:
		bad("QL forbids TransitiveObjectProperty")
	case ontology.FunctionalObjectProperty:
		bad("QL forbids FunctionalObjectProperty")
	case ontology.InverseFunctionalObjectProperty:
		bad("QL forbids InverseFunctionalObjectProperty")
	case ontology.DisjointUnion:
		bad("QL forbids DisjointUnion")
	case ontology.HasKey:
		bad("QL forbids HasKey")
	case ontology.SubObjectPropertyOf:
		if _, ok := a.Sub.(ontology.ObjectPropertyChain); ok {
			bad("QL forbids object property chains")
		}
	case ontology.ClassAssertion:
		if !isQLSubClassExpression(a.Class) {
			bad("ClassAssertion class exceeds QL's restricted grammar")
		}
	}
	return out
}

// --- RL ---

// isRLSuperClassExpression (the right-hand "head" position of SubClassOf)
// allows atomic classes, intersections of RL superclass expressions,
// bounded ∀ restrictions, ObjectHasValue, and ObjectMaxCardinality with
// N of 0 or 1.
func isRLSuperClassExpression(ce ontology.ClassExpression) bool {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		return true
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			if !isRLSuperClassExpression(op) {
				return false
			}
		}
		return true
	case ontology.ObjectAllValuesFrom:
		return isRLSuperClassExpression(c.Filler)
	case ontology.ObjectHasValue:
		return true
	case ontology.ObjectMaxCardinality:
		return c.N <= 1
	default:
		return false
	}
}

// isRLSubClassExpression (the left-hand "body" position) allows atomic
// classes, intersection/union of RL subclass expressions,
// ObjectSomeValuesFrom with an RL filler, and ObjectHasValue.
func isRLSubClassExpression(ce ontology.ClassExpression) bool {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		return true
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			if !isRLSubClassExpression(op) {
				return false
			}
		}
		return true
	case ontology.ObjectUnionOf:
		for _, op := range c.Operands {
			if !isRLSubClassExpression(op) {
				return false
			}
		}
		return true
	case ontology.ObjectSomeValuesFrom:
		return isRLSubClassExpression(c.Filler)
	case ontology.ObjectHasValue:
		return true
	default:
		return false
	}
}

func checkRLAxiom(ax ontology.Axiom) []string {
	var out []string
	bad := func(msg string) { out = append(out, msg) }
	switch a := ax.(type) {
	case ontology.SubClassOf:
		if !isRLSubClassExpression(a.Sub) {
			bad("subclass exceeds RL's restricted left-hand grammar")
		}
		if !isRLSuperClassExpression(a.Super) {
			bad("superclass exceeds RL's restricted right-hand grammar")
		}
	case ontology.ReflexiveObjectProperty:
		bad("RL forbids ReflexiveObjectProperty")
	case ontology.DisjointUnion:
		bad("RL forbids DisjointUnion")
	case ontology.DataPropertyRange:
		if !isRLDataRange(a.Range) {
			bad("RL forbids owl:real and owl:rational in DataPropertyRange")
		}
	}
	return out
}
