package reasoner

import (
	"context"
	"runtime"

	"github.com/anusornc/owl2-rs/ontology"
	"golang.org/x/sync/errgroup"
)

// workerCount resolves the configured worker bound, defaulting to
// GOMAXPROCS.
func (r *Reasoner) workerCount() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ClassifyParallel fans the O(|K|²) pairwise subsumption matrix out
// across goroutines: each cell gets its own goroutine, bounded by an
// errgroup, each building its own completion graph (a fresh *engine per
// call, never shared) since tableau state cannot be shared across
// goroutines.
func (r *Reasoner) ClassifyParallel(ctx context.Context) (*Taxonomy, *SymbolTable, error) {
	if consistent, err := r.IsConsistent(ctx); err != nil {
		return nil, nil, err
	} else if !consistent {
		return &Taxonomy{DirectParents: map[ConceptID][]ConceptID{}, DirectChildren: map[ConceptID][]ConceptID{}}, NewSymbolTable(), nil
	}
	return r.classifyWithSubsumed(ctx, r.pairwiseSubsumedParallel)
}

func (r *Reasoner) pairwiseSubsumedParallel(ctx context.Context, st *SymbolTable, classes []ConceptID) (func(i, j int) bool, error) {
	n := len(classes)
	matrix := make([][]bool, n)
	for i := range matrix {
		matrix[i] = make([]bool, n)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workerCount())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			i, j := i, j
			if i == j {
				matrix[i][j] = true
				continue
			}
			g.Go(func() error {
				sub := ontology.ClassAtom{IRI: st.Name(classes[i])}
				super := ontology.ClassAtom{IRI: st.Name(classes[j])}
				ok, err := r.IsSubsumedBy(gctx, sub, super)
				if err != nil {
					return err
				}
				matrix[i][j] = ok
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return func(i, j int) bool { return matrix[i][j] }, nil
}

// RealizeParallel fans realize's per-individual instance checks out the
// same way, one goroutine per individual bounded by the worker pool.
func (r *Reasoner) RealizeParallel(ctx context.Context) ([]IndividualTypes, error) {
	if consistent, err := r.IsConsistent(ctx); err != nil {
		return nil, err
	} else if !consistent {
		return nil, nil
	}
	classesIRIs := r.ont.NamedClasses()
	var individuals []ontology.Individual
	for _, ind := range r.ont.Individuals() {
		if !ind.IsAnonymous() {
			individuals = append(individuals, ind)
		}
	}
	out := make([]IndividualTypes, len(individuals))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workerCount())
	for i, ind := range individuals {
		i, ind := i, ind
		g.Go(func() error {
			types, err := r.instanceTypes(gctx, ind, classesIRIs)
			if err != nil {
				return err
			}
			out[i] = types
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
