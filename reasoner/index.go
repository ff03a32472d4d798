package reasoner

import "github.com/anusornc/owl2-rs/ontology"

// ConceptID is an integer identifier for a named class, used by classify
// for its O(|K|²) bookkeeping (the pairwise subsumption matrix, direct-
// parent and direct-child lists) instead of carrying IRIs around.
// Realize works on class IRIs directly.
type ConceptID uint32

const (
	// Top and Bottom are always interned first, at these fixed IDs.
	Top    ConceptID = 0
	Bottom ConceptID = 1
)

// SymbolTable interns class IRIs to small dense integers, the same way a
// bytecode compiler interns identifiers, so classify can use dense
// arrays instead of map lookups keyed by IRI.
type SymbolTable struct {
	classToID map[ontology.IRI]ConceptID
	idToClass []ontology.IRI
}

func NewSymbolTable() *SymbolTable {
	classes := make([]ontology.IRI, 2, 256)
	classes[Top] = ontology.Top.IRI
	classes[Bottom] = ontology.Bottom.IRI
	st := &SymbolTable{
		classToID: make(map[ontology.IRI]ConceptID, 256),
		idToClass: classes,
	}
	st.classToID[ontology.Top.IRI] = Top
	st.classToID[ontology.Bottom.IRI] = Bottom
	return st
}

// Intern returns the ConceptID for the given class IRI, creating one if
// this is the first time it has been seen.
func (st *SymbolTable) Intern(iri ontology.IRI) ConceptID {
	if id, ok := st.classToID[iri]; ok {
		return id
	}
	id := ConceptID(len(st.idToClass))
	st.classToID[iri] = id
	st.idToClass = append(st.idToClass, iri)
	return id
}

func (st *SymbolTable) Count() int { return len(st.idToClass) }

// Name returns the class IRI for a ConceptID.
func (st *SymbolTable) Name(id ConceptID) ontology.IRI {
	if int(id) < len(st.idToClass) {
		return st.idToClass[id]
	}
	return ""
}

// IDs returns every interned ConceptID except Top and Bottom, in interning
// order — the working set classify iterates over.
func (st *SymbolTable) IDs() []ConceptID {
	ids := make([]ConceptID, 0, len(st.idToClass)-2)
	for i := 2; i < len(st.idToClass); i++ {
		ids = append(ids, ConceptID(i))
	}
	return ids
}
