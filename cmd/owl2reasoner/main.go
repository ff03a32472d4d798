// Command owl2reasoner is the batch CLI front end for the reasoner: parse
// an ontology, then dispatch across all five reasoning services plus
// profile checking, selected with a -service flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/anusornc/owl2-rs/owl2"
	"github.com/anusornc/owl2-rs/profile"
	"github.com/anusornc/owl2-rs/reasoner"
	"go.uber.org/zap"
)

func main() {
	input := flag.String("input", "", "Path to an OWL 2 functional-syntax ontology file")
	output := flag.String("output", "", "Path to output JSON file (default: stdout)")
	service := flag.String("service", "consistency", "Service to run: consistency, subsumption, instance-of, classify, realize, profile")
	sub := flag.String("sub", "", "Subclass IRI (subsumption service)")
	super := flag.String("super", "", "Superclass IRI (subsumption service)")
	individual := flag.String("individual", "", "Individual name (instance-of service)")
	class := flag.String("class", "", "Class IRI (instance-of service)")
	profileName := flag.String("profile", "EL", "Profile to check: EL, QL, RL (profile service)")
	parallel := flag.Bool("parallel", false, "Use the parallel classify/realize implementation")
	pretty := flag.Bool("pretty", false, "Pretty-print JSON output")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: owl2reasoner -input <file> -service <name> [flags]")
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Parsing %s...\n", *input)
	start := time.Now()
	eng, err := owl2.LoadFromString(string(data), reasoner.DefaultConfig(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Parsed %d axioms in %v\n", len(eng.Ontology.Axioms), time.Since(start))

	ctx := context.Background()
	var result any

	switch *service {
	case "consistency":
		ok, err := eng.IsConsistent(ctx)
		exitOnErr(err)
		result = map[string]bool{"consistent": ok}
	case "subsumption":
		if *sub == "" || *super == "" {
			fmt.Fprintln(os.Stderr, "subsumption service requires -sub and -super")
			os.Exit(1)
		}
		ok, err := eng.IsSubsumedBy(ctx, ontology.IRI(*sub), ontology.IRI(*super))
		exitOnErr(err)
		result = map[string]bool{"subsumed": ok}
	case "instance-of":
		if *individual == "" || *class == "" {
			fmt.Fprintln(os.Stderr, "instance-of service requires -individual and -class")
			os.Exit(1)
		}
		ok, err := eng.IsInstanceOf(ctx, ontology.NamedIndividual(ontology.IRI(*individual)), ontology.IRI(*class))
		exitOnErr(err)
		result = map[string]bool{"instance_of": ok}
	case "classify":
		classifyStart := time.Now()
		var tax *reasoner.Taxonomy
		var st *reasoner.SymbolTable
		if *parallel {
			tax, st, err = eng.ClassifyParallel(ctx)
		} else {
			tax, st, err = eng.Classify(ctx)
		}
		exitOnErr(err)
		result = tax.ToJSON(st, time.Since(classifyStart))
	case "realize":
		var types []reasoner.IndividualTypes
		if *parallel {
			types, err = eng.RealizeParallel(ctx)
		} else {
			types, err = eng.Realize(ctx)
		}
		exitOnErr(err)
		result = types
	case "profile":
		p, err := parseProfile(*profileName)
		exitOnErr(err)
		result = eng.CheckProfile(p)
	default:
		fmt.Fprintf(os.Stderr, "unknown service %q\n", *service)
		os.Exit(1)
	}

	if err := writeResult(result, *output, *pretty); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func parseProfile(name string) (profile.Profile, error) {
	switch name {
	case "EL":
		return profile.EL, nil
	case "QL":
		return profile.QL, nil
	case "RL":
		return profile.RL, nil
	default:
		return 0, fmt.Errorf("unknown profile %q", name)
	}
}

func exitOnErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
