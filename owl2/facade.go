// Package owl2 is the public entry point for the reasoner: load an
// ontology, ask the five reasoning services, or check profile
// conformance, all without callers needing to touch the ontology,
// reasoner, or profile packages directly. Grounded on
// _examples/original_source/src/api.rs, which plays the same role for
// the Rust crate (load_ontology, is_consistent, classify, ...) — this
// keeps the same service names but returns plain Go errors instead of
// api.rs's Owl2RsError enum variants.
package owl2

import (
	"context"
	"os"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/anusornc/owl2-rs/profile"
	"github.com/anusornc/owl2-rs/reasoner"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Engine wraps a parsed ontology with the reasoner and configuration
// needed to answer every service in one place, so a caller only needs
// to parse once and then issue a series of queries against it.
type Engine struct {
	Ontology *ontology.Ontology
	reasoner *reasoner.Reasoner
	logger   *zap.Logger
}

// LoadFromString parses functional-syntax text and builds an Engine over
// it, precomputing the TBox/RBox once so every subsequent service call
// reuses them.
func LoadFromString(input string, cfg reasoner.Config, logger *zap.Logger) (*Engine, error) {
	ont, err := ontology.ParseFunctional(input)
	if err != nil {
		return nil, errors.Wrap(err, "loading ontology")
	}
	return newEngine(ont, cfg, logger), nil
}

// LoadFromFile reads path and parses it as functional-syntax text.
func LoadFromFile(path string, cfg reasoner.Config, logger *zap.Logger) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return LoadFromString(string(data), cfg, logger)
}

func newEngine(ont *ontology.Ontology, cfg reasoner.Config, logger *zap.Logger) *Engine {
	return &Engine{Ontology: ont, reasoner: reasoner.New(ont, cfg, logger), logger: logger}
}

// IsConsistent reports whether the loaded ontology has a model.
func (e *Engine) IsConsistent(ctx context.Context) (bool, error) {
	return e.reasoner.IsConsistent(ctx)
}

// IsSubsumedBy reports whether sub is necessarily a subclass of super,
// both given as class IRIs.
func (e *Engine) IsSubsumedBy(ctx context.Context, sub, super ontology.IRI) (bool, error) {
	return e.reasoner.IsSubsumedBy(ctx, ontology.ClassAtom{IRI: sub}, ontology.ClassAtom{IRI: super})
}

// IsInstanceOf reports whether individual necessarily belongs to class.
func (e *Engine) IsInstanceOf(ctx context.Context, individual ontology.Individual, class ontology.IRI) (bool, error) {
	return e.reasoner.IsInstanceOf(ctx, individual, ontology.ClassAtom{IRI: class})
}

// Classify computes the complete subsumption hierarchy over every named
// class in the ontology, single-threaded.
func (e *Engine) Classify(ctx context.Context) (*reasoner.Taxonomy, *reasoner.SymbolTable, error) {
	return e.reasoner.Classify(ctx)
}

// ClassifyParallel is Classify fanned out across a worker pool.
func (e *Engine) ClassifyParallel(ctx context.Context) (*reasoner.Taxonomy, *reasoner.SymbolTable, error) {
	return e.reasoner.ClassifyParallel(ctx)
}

// Realize computes, for every named individual, the set of classes it
// necessarily belongs to and the most-specific subset of that set.
func (e *Engine) Realize(ctx context.Context) ([]reasoner.IndividualTypes, error) {
	return e.reasoner.Realize(ctx)
}

// RealizeParallel is Realize fanned out across a worker pool.
func (e *Engine) RealizeParallel(ctx context.Context) ([]reasoner.IndividualTypes, error) {
	return e.reasoner.RealizeParallel(ctx)
}

// CheckProfile runs the structural EL/QL/RL conformance check against
// the loaded ontology. This is a syntactic check over the axiom tree —
// it never invokes the tableau.
func (e *Engine) CheckProfile(p profile.Profile) profile.Result {
	return profile.Check(e.Ontology, p)
}
