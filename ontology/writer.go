package ontology

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const writerBufferSize = 256 * 1024 // 256 KB

// WriteFunctional serializes the ontology back to OWL 2 Functional-Style
// Syntax text. Parsing the output reproduces an Ontology equal in meaning
// to the original; it is not guaranteed to be byte-identical to
// hand-written input (whitespace/comments are not preserved).
func WriteFunctional(ont *Ontology, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	fmt.Fprint(bw, "Ontology(")
	if ont.IRI != "" {
		fmt.Fprintf(bw, "<%s>", ont.IRI)
	}
	for _, imp := range ont.DirectImports {
		fmt.Fprintf(bw, "\nImport(<%s>)", imp)
	}
	for _, ax := range ont.Axioms {
		fmt.Fprintf(bw, "\n%s", ax.String())
	}
	fmt.Fprint(bw, "\n)\n")
	return bw.Flush()
}

// WriteFunctionalFile writes the ontology's functional-syntax form to path.
func WriteFunctionalFile(ont *Ontology, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteFunctional(ont, f)
}

// jsonOntology is the JSON-friendly shadow of an Ontology: axioms carry no
// Go type information once decoded through the interface, so the output
// form holds each axiom only as its functional-syntax string (no kind
// tag), good enough for inspection and for feeding other tooling but not
// meant to be read back in (parser.go reads functional syntax only).
type jsonOntology struct {
	IRI           IRI      `json:"iri,omitempty"`
	DirectImports []IRI    `json:"direct_imports,omitempty"`
	Axioms        []string `json:"axioms"`
}

func toJSONOntology(ont *Ontology) jsonOntology {
	axs := make([]string, len(ont.Axioms))
	for i, ax := range ont.Axioms {
		axs[i] = ax.String()
	}
	return jsonOntology{IRI: ont.IRI, DirectImports: ont.DirectImports, Axioms: axs}
}

// WriteJSON writes the ontology as JSON to the given writer.
func WriteJSON(ont *Ontology, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toJSONOntology(ont)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteJSONFile writes the ontology as JSON to the given file path.
func WriteJSONFile(ont *Ontology, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(ont, f)
}

// WriteJSONPretty writes indented JSON to the given writer.
func WriteJSONPretty(ont *Ontology, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSONOntology(ont)); err != nil {
		return err
	}
	return bw.Flush()
}
