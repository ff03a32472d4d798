package reasoner

import "github.com/anusornc/owl2-rs/ontology"

// tbox holds the internalized general concept inclusions: every class
// axiom folded into a flat list of disjunctions, with GCIs added as an
// extra obligation on every node rather than looked up by concept ID,
// plus the normalized role box.
type tbox struct {
	gcis           []ontology.ClassExpression // each ¬C ⊔ D, already in NNF
	roles          *roleBox
	keys           []ontology.HasKey
	functionalData map[string]bool // data property IRI string -> functional

	dataSuperOf  map[string]map[string]bool        // data-property key -> super closure (incl. self)
	dataDomain   map[string]ontology.ClassExpression
	dataRange    map[string]ontology.DataRange
	dataDisjoint [][2]string // pairs of data-property keys declared disjoint
	objDisjoint  [][2]string // pairs of object-property atomic keys declared disjoint
}

// roleBox is the normalized form of every object-property axiom:
// hierarchy closure (who subsumes whom), characteristic flags per atomic
// property, declared inverse pairs, and property chains, covering the
// full set of OWL 2 role characteristics. atoms records, for every atomic
// key this roleBox has seen, the actual property expression it came from,
// so rules that only hold a key string (reflexive self-edges, declared
// inverses) can reconstruct the real property instead of re-wrapping the
// key string itself as a bogus IRI.
type roleBox struct {
	superOf     map[string]map[string]bool // atomic role key -> set of super-role keys (incl. itself)
	transitive  map[string]bool
	symmetric   map[string]bool
	reflexive   map[string]bool
	irreflexive map[string]bool
	functional  map[string]bool
	invFunc     map[string]bool
	asymmetric  map[string]bool
	inverseOf   map[string]string
	atoms       map[string]ontology.ObjectPropertyExpression
	chains      []chainRule
}

type chainRule struct {
	props []ontology.ObjectPropertyExpression
	super ontology.ObjectPropertyExpression
}

func newRoleBox() *roleBox {
	return &roleBox{
		superOf:     make(map[string]map[string]bool),
		transitive:  make(map[string]bool),
		symmetric:   make(map[string]bool),
		reflexive:   make(map[string]bool),
		irreflexive: make(map[string]bool),
		functional:  make(map[string]bool),
		invFunc:     make(map[string]bool),
		asymmetric:  make(map[string]bool),
		inverseOf:   make(map[string]string),
		atoms:       make(map[string]ontology.ObjectPropertyExpression),
	}
}

func atomicKey(pe ontology.ObjectPropertyExpression) string {
	switch p := pe.(type) {
	case ontology.ObjectProperty:
		return p.String()
	case ontology.InverseObjectProperty:
		return "Inverse:" + p.Property.String()
	default:
		return pe.String()
	}
}

// register records pe under its atomic key so a later rule can look the
// real property expression back up by key, and returns that key.
func (rb *roleBox) register(pe ontology.ObjectPropertyExpression) string {
	k := atomicKey(pe)
	if _, ok := rb.atoms[k]; !ok {
		rb.atoms[k] = pe
	}
	return k
}

// atom returns the property expression registered under key, falling back
// to a plain ObjectProperty built from the key only if nothing was ever
// registered under it (should not happen for any key this roleBox itself
// produced).
func (rb *roleBox) atom(key string) ontology.ObjectPropertyExpression {
	if pe, ok := rb.atoms[key]; ok {
		return pe
	}
	return ontology.ObjectProperty{IRI: ontology.IRI(key)}
}

func (rb *roleBox) addSuper(sub, super ontology.ObjectPropertyExpression) {
	sk, pk := rb.register(sub), rb.register(super)
	if rb.superOf[sk] == nil {
		rb.superOf[sk] = map[string]bool{sk: true}
	}
	rb.superOf[sk][pk] = true
}

// closeHierarchy computes the transitive closure of direct sub/super role
// declarations, a simple relaxation pass sufficient for the small role
// hierarchies ontologies actually declare.
func (rb *roleBox) closeHierarchy() {
	changed := true
	for changed {
		changed = false
		for k, supers := range rb.superOf {
			for s := range supers {
				if s == k {
					continue
				}
				if more, ok := rb.superOf[s]; ok {
					for ms := range more {
						if !supers[ms] {
							supers[ms] = true
							changed = true
						}
					}
				}
			}
		}
	}
}

// supers returns every super-role key of pe (including pe's own key),
// after hierarchy closure.
func (rb *roleBox) supers(pe ontology.ObjectPropertyExpression) map[string]bool {
	k := atomicKey(pe)
	if s, ok := rb.superOf[k]; ok {
		return s
	}
	return map[string]bool{k: true}
}

// buildTBox folds the ontology's class and object-property axioms into a
// flat GCI list and a normalized role box.
func buildTBox(ont *ontology.Ontology) *tbox {
	tb := &tbox{
		roles:          newRoleBox(),
		functionalData: make(map[string]bool),
		dataSuperOf:    make(map[string]map[string]bool),
		dataDomain:     make(map[string]ontology.ClassExpression),
		dataRange:      make(map[string]ontology.DataRange),
	}
	for _, ax := range ont.Axioms {
		switch a := ax.(type) {
		case ontology.SubClassOf:
			tb.gcis = append(tb.gcis, gci(a.Sub, a.Super))
		case ontology.EquivalentClasses:
			for i := range a.Classes {
				j := (i + 1) % len(a.Classes)
				tb.gcis = append(tb.gcis, gci(a.Classes[i], a.Classes[j]))
			}
		case ontology.DisjointClasses:
			for i := 0; i < len(a.Classes); i++ {
				for j := i + 1; j < len(a.Classes); j++ {
					tb.gcis = append(tb.gcis, ontology.ObjectUnionOf{
						Operands: []ontology.ClassExpression{negate(a.Classes[i]), negate(a.Classes[j])},
					})
				}
			}
		case ontology.DisjointUnion:
			tb.gcis = append(tb.gcis, gci(a.Class, ontology.ObjectUnionOf{Operands: a.Disjoints}))
			tb.gcis = append(tb.gcis, gci(ontology.ObjectUnionOf{Operands: a.Disjoints}, a.Class))
			for i := 0; i < len(a.Disjoints); i++ {
				for j := i + 1; j < len(a.Disjoints); j++ {
					tb.gcis = append(tb.gcis, ontology.ObjectUnionOf{
						Operands: []ontology.ClassExpression{negate(a.Disjoints[i]), negate(a.Disjoints[j])},
					})
				}
			}
		case ontology.HasKey:
			tb.keys = append(tb.keys, a)
		case ontology.SubObjectPropertyOf:
			if chain, ok := a.Sub.(ontology.ObjectPropertyChain); ok {
				tb.roles.register(a.Super)
				tb.roles.chains = append(tb.roles.chains, chainRule{props: chain.Properties, super: a.Super})
				continue
			}
			tb.roles.addSuper(a.Sub, a.Super)
		case ontology.EquivalentObjectProperties:
			for i := range a.Properties {
				j := (i + 1) % len(a.Properties)
				tb.roles.addSuper(a.Properties[i], a.Properties[j])
				tb.roles.addSuper(a.Properties[j], a.Properties[i])
			}
		case ontology.InverseObjectProperties:
			tb.roles.inverseOf[tb.roles.register(a.First)] = tb.roles.register(a.Second)
			tb.roles.inverseOf[tb.roles.register(a.Second)] = tb.roles.register(a.First)
		case ontology.TransitiveObjectProperty:
			tb.roles.transitive[tb.roles.register(a.Property)] = true
		case ontology.SymmetricObjectProperty:
			tb.roles.symmetric[tb.roles.register(a.Property)] = true
		case ontology.ReflexiveObjectProperty:
			tb.roles.reflexive[tb.roles.register(a.Property)] = true
		case ontology.IrreflexiveObjectProperty:
			tb.roles.irreflexive[tb.roles.register(a.Property)] = true
		case ontology.FunctionalObjectProperty:
			tb.roles.functional[tb.roles.register(a.Property)] = true
		case ontology.InverseFunctionalObjectProperty:
			tb.roles.invFunc[tb.roles.register(a.Property)] = true
		case ontology.AsymmetricObjectProperty:
			tb.roles.asymmetric[tb.roles.register(a.Property)] = true
		case ontology.DisjointObjectProperties:
			for i := 0; i < len(a.Properties); i++ {
				for j := i + 1; j < len(a.Properties); j++ {
					tb.objDisjoint = append(tb.objDisjoint, [2]string{
						tb.roles.register(a.Properties[i]), tb.roles.register(a.Properties[j]),
					})
				}
			}
		case ontology.ObjectPropertyDomain:
			tb.gcis = append(tb.gcis, gci(ontology.ObjectSomeValuesFrom{Property: a.Property, Filler: ontology.Top}, a.Domain))
		case ontology.ObjectPropertyRange:
			tb.gcis = append(tb.gcis, gci(ontology.Top, ontology.ObjectAllValuesFrom{Property: a.Property, Filler: a.Range}))
		case ontology.FunctionalDataProperty:
			tb.functionalData[a.Property.String()] = true
		case ontology.SubDataPropertyOf:
			tb.addDataSuper(a.Sub.String(), a.Super.String())
		case ontology.EquivalentDataProperties:
			for i := range a.Properties {
				j := (i + 1) % len(a.Properties)
				tb.addDataSuper(a.Properties[i].String(), a.Properties[j].String())
				tb.addDataSuper(a.Properties[j].String(), a.Properties[i].String())
			}
		case ontology.DisjointDataProperties:
			for i := 0; i < len(a.Properties); i++ {
				for j := i + 1; j < len(a.Properties); j++ {
					tb.dataDisjoint = append(tb.dataDisjoint, [2]string{a.Properties[i].String(), a.Properties[j].String()})
				}
			}
		case ontology.DataPropertyDomain:
			tb.dataDomain[a.Property.String()] = toNNF(a.Domain)
		case ontology.DataPropertyRange:
			tb.dataRange[a.Property.String()] = a.Range
		}
	}
	tb.roles.closeHierarchy()
	tb.closeDataHierarchy()
	return tb
}

// addDataSuper records that sub is a (possibly equivalent, i.e.
// bidirectional) sub-property of super, mirroring roleBox.addSuper for the
// separate data-property hierarchy.
func (tb *tbox) addDataSuper(sub, super string) {
	if tb.dataSuperOf[sub] == nil {
		tb.dataSuperOf[sub] = map[string]bool{sub: true}
	}
	tb.dataSuperOf[sub][super] = true
}

// closeDataHierarchy computes the transitive closure of the data-property
// sub-property declarations, the data-property analogue of
// roleBox.closeHierarchy.
func (tb *tbox) closeDataHierarchy() {
	changed := true
	for changed {
		changed = false
		for k, supers := range tb.dataSuperOf {
			for s := range supers {
				if s == k {
					continue
				}
				if more, ok := tb.dataSuperOf[s]; ok {
					for ms := range more {
						if !supers[ms] {
							supers[ms] = true
							changed = true
						}
					}
				}
			}
		}
	}
}

// dataSupers returns every super-property key of key (including key
// itself) after hierarchy closure, the data-property analogue of
// roleBox.supers.
func (tb *tbox) dataSupers(key string) map[string]bool {
	if s, ok := tb.dataSuperOf[key]; ok {
		return s
	}
	return map[string]bool{key: true}
}

// gci builds the NNF disjunction ¬Sub ⊔ Super corresponding to
// SubClassOf(Sub, Super).
func gci(sub, super ontology.ClassExpression) ontology.ClassExpression {
	return ontology.ObjectUnionOf{Operands: []ontology.ClassExpression{negate(sub), toNNF(super)}}
}
