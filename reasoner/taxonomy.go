package reasoner

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/anusornc/owl2-rs/ontology"
)

// Taxonomy holds the classified hierarchy after transitive reduction:
// direct parent/child adjacency computed from the tableau's pairwise
// IsSubsumedBy calls.
type Taxonomy struct {
	Classes        []ConceptID
	DirectParents  map[ConceptID][]ConceptID
	DirectChildren map[ConceptID][]ConceptID
}

// buildTaxonomy reduces a subsumption predicate to direct edges;
// subsumed(i, j) is true iff classes[i] is subsumed by classes[j].
func buildTaxonomy(classes []ConceptID, subsumed func(i, j int) bool) *Taxonomy {
	n := len(classes)
	tax := &Taxonomy{
		Classes:        classes,
		DirectParents:  make(map[ConceptID][]ConceptID, n),
		DirectChildren: make(map[ConceptID][]ConceptID, n),
	}
	for i := 0; i < n; i++ {
		var candidates []int
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if subsumed(i, j) {
				candidates = append(candidates, j)
			}
		}
		var direct []ConceptID
		for _, b := range candidates {
			isDirect := true
			for _, s := range candidates {
				if s == b {
					continue
				}
				if subsumed(s, b) {
					isDirect = false
					break
				}
			}
			if isDirect {
				direct = append(direct, classes[b])
			}
		}
		tax.DirectParents[classes[i]] = direct
		for _, p := range direct {
			tax.DirectChildren[p] = append(tax.DirectChildren[p], classes[i])
		}
	}
	return tax
}

// Classify computes the complete class hierarchy by pairwise subsumption
// checking (O(|K|²) reductions to consistency) followed by transitive
// reduction to direct parent/child edges. Runs single-threaded;
// ClassifyParallel (parallel.go) fans the pairwise checks out across a
// worker pool. Per the ex-falso-quodlibet rule, an inconsistent ontology
// short-circuits to an empty hierarchy instead of running the (otherwise
// vacuously all-true) pairwise subsumption matrix.
func (r *Reasoner) Classify(ctx context.Context) (*Taxonomy, *SymbolTable, error) {
	if consistent, err := r.IsConsistent(ctx); err != nil {
		return nil, nil, err
	} else if !consistent {
		return &Taxonomy{DirectParents: map[ConceptID][]ConceptID{}, DirectChildren: map[ConceptID][]ConceptID{}}, NewSymbolTable(), nil
	}
	return r.classifyWithSubsumed(ctx, r.pairwiseSubsumed)
}

func (r *Reasoner) classifyWithSubsumed(ctx context.Context, subsumed func(ctx context.Context, st *SymbolTable, classes []ConceptID) (func(i, j int) bool, error)) (*Taxonomy, *SymbolTable, error) {
	st := NewSymbolTable()
	for _, iri := range r.ont.NamedClasses() {
		st.Intern(iri)
	}
	classes := st.IDs()
	fn, err := subsumed(ctx, st, classes)
	if err != nil {
		return nil, nil, err
	}
	return buildTaxonomy(classes, fn), st, nil
}

func (r *Reasoner) pairwiseSubsumed(ctx context.Context, st *SymbolTable, classes []ConceptID) (func(i, j int) bool, error) {
	n := len(classes)
	matrix := make([][]bool, n)
	for i := range matrix {
		matrix[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				matrix[i][j] = true
				continue
			}
			sub := ontology.ClassAtom{IRI: st.Name(classes[i])}
			super := ontology.ClassAtom{IRI: st.Name(classes[j])}
			ok, err := r.IsSubsumedBy(ctx, sub, super)
			if err != nil {
				return nil, err
			}
			matrix[i][j] = ok
		}
	}
	return func(i, j int) bool { return matrix[i][j] }, nil
}

// IndividualTypes is the result of realize for one individual: the
// complete set of classes it necessarily belongs to, and the subset with
// no named subclass in the set also present (the "most specific" types).
type IndividualTypes struct {
	Individual    ontology.Individual
	All           []ontology.IRI
	MostSpecific  []ontology.IRI
}

// Realize computes, for every named individual asserted in the ontology,
// the set of classes it is an instance of and the most-specific subset of
// that set — per-individual instance checks followed by most-specific
// filtering. An inconsistent ontology short-circuits to an empty result,
// per the ex-falso-quodlibet rule (every instance check would otherwise
// vacuously succeed).
func (r *Reasoner) Realize(ctx context.Context) ([]IndividualTypes, error) {
	if consistent, err := r.IsConsistent(ctx); err != nil {
		return nil, err
	} else if !consistent {
		return nil, nil
	}
	classesIRIs := r.ont.NamedClasses()
	individuals := r.ont.Individuals()
	out := make([]IndividualTypes, 0, len(individuals))
	for _, ind := range individuals {
		if ind.IsAnonymous() {
			continue
		}
		types, err := r.instanceTypes(ctx, ind, classesIRIs)
		if err != nil {
			return nil, err
		}
		out = append(out, types)
	}
	return out, nil
}

func (r *Reasoner) instanceTypes(ctx context.Context, ind ontology.Individual, classes []ontology.IRI) (IndividualTypes, error) {
	var all []ontology.IRI
	for _, c := range classes {
		ok, err := r.IsInstanceOf(ctx, ind, ontology.ClassAtom{IRI: c})
		if err != nil {
			return IndividualTypes{}, err
		}
		if ok {
			all = append(all, c)
		}
	}
	mostSpecific := make([]ontology.IRI, 0, len(all))
	for _, c := range all {
		specific := true
		for _, other := range all {
			if other == c {
				continue
			}
			subsumed, err := r.IsSubsumedBy(ctx, ontology.ClassAtom{IRI: other}, ontology.ClassAtom{IRI: c})
			if err != nil {
				return IndividualTypes{}, err
			}
			if subsumed {
				// other is a subclass of c (more specific), so c is not.
				specific = false
				break
			}
		}
		if specific {
			mostSpecific = append(mostSpecific, c)
		}
	}
	return IndividualTypes{Individual: ind, All: all, MostSpecific: mostSpecific}, nil
}

// --- JSON output shapes ---

type ClassifiedConcept struct {
	IRI            string   `json:"iri"`
	DirectParents  []string `json:"direct_parents"`
	DirectChildren []string `json:"direct_children,omitempty"`
}

type ClassificationStats struct {
	ClassCount           int   `json:"class_count"`
	InferredSubsumptions int   `json:"inferred_subsumptions"`
	ClassifyTimeMs       int64 `json:"classify_time_ms"`
}

type ClassifiedHierarchy struct {
	Concepts []ClassifiedConcept `json:"concepts"`
	Stats    ClassificationStats `json:"stats"`
}

// ToJSON converts a Taxonomy into the flat JSON shape the CLI and HTTP
// façade both serialize.
func (tax *Taxonomy) ToJSON(st *SymbolTable, elapsed time.Duration) *ClassifiedHierarchy {
	result := &ClassifiedHierarchy{
		Stats: ClassificationStats{
			ClassCount:     len(tax.Classes),
			ClassifyTimeMs: elapsed.Milliseconds(),
		},
	}
	inferred := 0
	for _, c := range tax.Classes {
		inferred += len(tax.DirectParents[c])
	}
	result.Stats.InferredSubsumptions = inferred
	for _, c := range tax.Classes {
		cc := ClassifiedConcept{IRI: string(st.Name(c))}
		for _, p := range tax.DirectParents[c] {
			cc.DirectParents = append(cc.DirectParents, string(st.Name(p)))
		}
		for _, ch := range tax.DirectChildren[c] {
			cc.DirectChildren = append(cc.DirectChildren, string(st.Name(ch)))
		}
		result.Concepts = append(result.Concepts, cc)
	}
	return result
}

// WriteClassifiedJSON writes the classified hierarchy as JSON.
func WriteClassifiedJSON(w io.Writer, hierarchy *ClassifiedHierarchy) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(hierarchy)
}
