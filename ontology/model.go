package ontology

// Ontology is a parsed OWL 2 Functional-Style Syntax ontology document: an
// optional IRI, the IRIs it directly imports, and the flat list of axioms
// it asserts. Axioms are the only unit of content — there are no
// stanza-shaped terms.
type Ontology struct {
	IRI           IRI
	DirectImports []IRI
	Axioms        []Axiom
}

// ClassAssertions returns every ClassAssertion axiom in the ontology, in
// declaration order.
func (o *Ontology) ClassAssertions() []ClassAssertion {
	var out []ClassAssertion
	for _, ax := range o.Axioms {
		if ca, ok := ax.(ClassAssertion); ok {
			out = append(out, ca)
		}
	}
	return out
}

// Individuals returns the set of individuals mentioned anywhere an
// assertion names one, deduplicated, in first-seen order.
func (o *Ontology) Individuals() []Individual {
	seen := make(map[Individual]bool)
	var out []Individual
	add := func(i Individual) {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	for _, ax := range o.Axioms {
		switch a := ax.(type) {
		case ClassAssertion:
			add(a.Individual)
		case ObjectPropertyAssertion:
			add(a.Subject)
			add(a.Object)
		case NegativeObjectPropertyAssertion:
			add(a.Subject)
			add(a.Object)
		case DataPropertyAssertion:
			add(a.Subject)
		case NegativeDataPropertyAssertion:
			add(a.Subject)
		case SameIndividual:
			for _, i := range a.Individuals {
				add(i)
			}
		case DifferentIndividuals:
			for _, i := range a.Individuals {
				add(i)
			}
		}
	}
	return out
}

// NamedClasses returns every distinct named class IRI that is declared or
// appears as a top-level class argument of a SubClassOf, EquivalentClasses,
// DisjointClasses, DisjointUnion, ClassAssertion, ObjectPropertyDomain,
// ObjectPropertyRange, DataPropertyDomain or HasKey axiom, in first-seen
// order. Named classes nested inside complex class expressions are not
// collected. classify uses this as the set of concepts to pairwise-compare.
func (o *Ontology) NamedClasses() []IRI {
	seen := make(map[IRI]bool)
	var out []IRI
	add := func(c ClassExpression) {
		if atom, ok := c.(ClassAtom); ok {
			if !seen[atom.IRI] {
				seen[atom.IRI] = true
				out = append(out, atom.IRI)
			}
		}
	}
	walkClasses(o, add)
	return out
}

func walkClasses(o *Ontology, add func(ClassExpression)) {
	for _, ax := range o.Axioms {
		switch a := ax.(type) {
		case Declaration:
			if a.Entity.Kind == EntityClass {
				add(ClassAtom{IRI: a.Entity.IRI})
			}
		case SubClassOf:
			add(a.Sub)
			add(a.Super)
		case EquivalentClasses:
			for _, c := range a.Classes {
				add(c)
			}
		case DisjointClasses:
			for _, c := range a.Classes {
				add(c)
			}
		case DisjointUnion:
			add(a.Class)
			for _, c := range a.Disjoints {
				add(c)
			}
		case ClassAssertion:
			add(a.Class)
		case ObjectPropertyDomain:
			add(a.Domain)
		case ObjectPropertyRange:
			add(a.Range)
		case DataPropertyDomain:
			add(a.Domain)
		case HasKey:
			add(a.Class)
		}
	}
}
