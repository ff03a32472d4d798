package reasoner

import "github.com/anusornc/owl2-rs/ontology"

// toNNF rewrites a class expression into negation normal form: every
// ObjectComplementOf is pushed down until it wraps a named class, an
// ObjectHasValue, an ObjectHasSelf or an ObjectOneOf (see negate), so
// clash detection never has to deal with general double negation.
func toNNF(ce ontology.ClassExpression) ontology.ClassExpression {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		return c
	case ontology.ObjectIntersectionOf:
		return ontology.ObjectIntersectionOf{Operands: nnfAll(c.Operands)}
	case ontology.ObjectUnionOf:
		return ontology.ObjectUnionOf{Operands: nnfAll(c.Operands)}
	case ontology.ObjectComplementOf:
		return negate(c.Operand)
	case ontology.ObjectOneOf:
		return c
	case ontology.ObjectSomeValuesFrom:
		return ontology.ObjectSomeValuesFrom{Property: c.Property, Filler: toNNF(c.Filler)}
	case ontology.ObjectAllValuesFrom:
		return ontology.ObjectAllValuesFrom{Property: c.Property, Filler: toNNF(c.Filler)}
	case ontology.ObjectHasValue:
		return c
	case ontology.ObjectHasSelf:
		return c
	case ontology.ObjectMinCardinality:
		return ontology.ObjectMinCardinality{N: c.N, Property: c.Property, Filler: nnfOrNil(c.Filler)}
	case ontology.ObjectMaxCardinality:
		return ontology.ObjectMaxCardinality{N: c.N, Property: c.Property, Filler: nnfOrNil(c.Filler)}
	case ontology.ObjectExactCardinality:
		// =n P.C has no dedicated expansion rule; decompose it into the
		// equivalent (>=n P.C) ⊓ (<=n P.C) so applyMinCardinality and
		// applyMaxCardinality both fire on it.
		filler := nnfOrNil(c.Filler)
		return ontology.ObjectIntersectionOf{Operands: []ontology.ClassExpression{
			ontology.ObjectMinCardinality{N: c.N, Property: c.Property, Filler: filler},
			ontology.ObjectMaxCardinality{N: c.N, Property: c.Property, Filler: filler},
		}}
	default:
		return ce
	}
}

func nnfOrNil(ce ontology.ClassExpression) ontology.ClassExpression {
	if ce == nil {
		return nil
	}
	return toNNF(ce)
}

func nnfAll(cs []ontology.ClassExpression) []ontology.ClassExpression {
	out := make([]ontology.ClassExpression, len(cs))
	for i, c := range cs {
		out[i] = toNNF(c)
	}
	return out
}

// negate computes the NNF of ¬ce, per the standard duals: De Morgan for
// boolean combinations, ∃/∀ and min/max cardinality duals, and
// ¬(=n P.C) = (≤(n-1) P.C) ⊔ (≥(n+1) P.C).
func negate(ce ontology.ClassExpression) ontology.ClassExpression {
	switch c := ce.(type) {
	case ontology.ClassAtom:
		if c.IRI == ontology.Top.IRI {
			return ontology.Bottom
		}
		if c.IRI == ontology.Bottom.IRI {
			return ontology.Top
		}
		return ontology.ObjectComplementOf{Operand: c}
	case ontology.ObjectComplementOf:
		return toNNF(c.Operand)
	case ontology.ObjectIntersectionOf:
		return ontology.ObjectUnionOf{Operands: negateAll(c.Operands)}
	case ontology.ObjectUnionOf:
		return ontology.ObjectIntersectionOf{Operands: negateAll(c.Operands)}
	case ontology.ObjectSomeValuesFrom:
		return ontology.ObjectAllValuesFrom{Property: c.Property, Filler: negate(c.Filler)}
	case ontology.ObjectAllValuesFrom:
		return ontology.ObjectSomeValuesFrom{Property: c.Property, Filler: negate(c.Filler)}
	case ontology.ObjectHasValue:
		return ontology.ObjectComplementOf{Operand: toNNF(c)}
	case ontology.ObjectHasSelf:
		return ontology.ObjectComplementOf{Operand: c}
	case ontology.ObjectMinCardinality:
		if c.N == 0 {
			return ontology.Bottom
		}
		return ontology.ObjectMaxCardinality{N: c.N - 1, Property: c.Property, Filler: nnfOrNil(c.Filler)}
	case ontology.ObjectMaxCardinality:
		return ontology.ObjectMinCardinality{N: c.N + 1, Property: c.Property, Filler: nnfOrNil(c.Filler)}
	case ontology.ObjectExactCardinality:
		var lower ontology.ClassExpression = ontology.Bottom
		if c.N > 0 {
			lower = ontology.ObjectMaxCardinality{N: c.N - 1, Property: c.Property, Filler: nnfOrNil(c.Filler)}
		}
		upper := ontology.ObjectMinCardinality{N: c.N + 1, Property: c.Property, Filler: nnfOrNil(c.Filler)}
		return ontology.ObjectUnionOf{Operands: []ontology.ClassExpression{lower, upper}}
	case ontology.ObjectOneOf:
		return ontology.ObjectComplementOf{Operand: c}
	default:
		return ontology.ObjectComplementOf{Operand: toNNF(ce)}
	}
}

func negateAll(cs []ontology.ClassExpression) []ontology.ClassExpression {
	out := make([]ontology.ClassExpression, len(cs))
	for i, c := range cs {
		out[i] = negate(c)
	}
	return out
}

// findClash reports whether n's label (after union-find resolution to its
// representative) contains an outright contradiction: Bottom, an atomic
// class alongside its complement, or ComplementOf(HasSelf(P)) on a node
// with a P edge to itself. Cardinality clashes are checked by anyClash,
// not here.
func findClash(g *graph, n NodeID) bool {
	rep := g.find(n)
	lbl := g.nodes[rep].concepts
	if _, ok := lbl[ontology.Bottom.String()]; ok {
		return true
	}
	for _, ce := range lbl {
		comp, ok := ce.(ontology.ObjectComplementOf)
		if !ok {
			continue
		}
		switch operand := comp.Operand.(type) {
		case ontology.ClassAtom:
			if _, present := lbl[operand.String()]; present {
				return true
			}
		case ontology.ObjectHasSelf:
			if hasSelfEdge(g, rep, operand.Property) {
				return true
			}
		}
	}
	return false
}

// hasSelfEdge reports whether n has a (P,n) edge to itself, the clash
// condition for ComplementOf(HasSelf(P)) per spec.md §4.3's clash table.
func hasSelfEdge(g *graph, n NodeID, p ontology.ObjectPropertyExpression) bool {
	key := atomicKey(p)
	for _, ed := range g.edgesFrom(n) {
		if atomicKey(ed.property) == key && g.find(ed.to) == n {
			return true
		}
	}
	return false
}

// literalInRange reports whether lit conforms to the data range dr,
// recursing through the boolean DataRange combinators down to a base
// DatatypeRange comparison. Facet restrictions (minInclusive and friends)
// inside a DatatypeRestriction are not evaluated — only the restriction's
// base datatype is checked — a deliberate scope simplification recorded in
// DESIGN.md.
func literalInRange(lit ontology.Literal, dr ontology.DataRange) bool {
	switch d := dr.(type) {
	case ontology.DatatypeRange:
		dt := lit.Datatype
		if dt == "" {
			dt = ontology.XSDString
		}
		return dt == d.IRI
	case ontology.DataIntersectionOf:
		for _, op := range d.Operands {
			if !literalInRange(lit, op) {
				return false
			}
		}
		return true
	case ontology.DataUnionOf:
		for _, op := range d.Operands {
			if literalInRange(lit, op) {
				return true
			}
		}
		return false
	case ontology.DataComplementOf:
		return !literalInRange(lit, d.Operand)
	case ontology.DataOneOf:
		for _, l := range d.Literals {
			if l == lit {
				return true
			}
		}
		return false
	case ontology.DatatypeRestriction:
		return literalInRange(lit, ontology.DatatypeRange{IRI: d.Datatype})
	default:
		return true
	}
}
