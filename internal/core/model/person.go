package model

import "strings"

// Sex is the recorded sex of a Person, normalized at ingestion time.
type Sex string

const (
	Female  Sex = "F"
	Male    Sex = "M"
	Unknown Sex = "U"
)

// ParseSex normalizes a raw sex token. Recognized tokens (case-insensitive)
// are "f"/"female" and "m"/"male"; everything else, including the empty
// string, maps to Unknown.
func ParseSex(raw string) Sex {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "f", "female":
		return Female
	case "m", "male":
		return Male
	default:
		return Unknown
	}
}

// Person is a single individual in a pedigree. FatherID/MotherID are empty
// when the parent is absent; a Person with neither parent set is a founder.
type Person struct {
	Ind      string `json:"ind"`
	Sex      Sex    `json:"sex"`
	FatherID string `json:"father,omitempty"`
	MotherID string `json:"mother,omitempty"`
}

// Founder reports whether the person has no recorded parents.
func (p *Person) Founder() bool {
	return p.FatherID == "" && p.MotherID == ""
}

// EdgeKind is the relation subtype of a parent edge. IsChild is the generic
// child-to-parent relation; IsFather and IsMother are its role refinements.
type EdgeKind string

const (
	IsChild  EdgeKind = "is_child"
	IsFather EdgeKind = "is_father"
	IsMother EdgeKind = "is_mother"
)

// ParentEdge is a directed child-to-parent relation.
type ParentEdge struct {
	Kind     EdgeKind `json:"kind"`
	ChildID  string   `json:"child"`
	ParentID string   `json:"parent"`
}

// PedigreeRecord owns the full set of Persons for one pedigree. Persons are
// keyed by identifier; insertion order is preserved for stable iteration and
// serialization.
type PedigreeRecord struct {
	persons map[string]*Person
	order   []string
}

func NewPedigreeRecord() *PedigreeRecord {
	return &PedigreeRecord{persons: make(map[string]*Person)}
}

// Add inserts a person, replacing any existing person with the same id.
func (r *PedigreeRecord) Add(p *Person) {
	if _, ok := r.persons[p.Ind]; !ok {
		r.order = append(r.order, p.Ind)
	}
	r.persons[p.Ind] = p
}

// Get returns the person with the given id, or nil.
func (r *PedigreeRecord) Get(ind string) *Person {
	return r.persons[ind]
}

// Has reports whether a person with the given id exists.
func (r *PedigreeRecord) Has(ind string) bool {
	_, ok := r.persons[ind]
	return ok
}

// Len returns the number of persons in the record.
func (r *PedigreeRecord) Len() int {
	return len(r.order)
}

// Inds returns all person ids in insertion order. The returned slice is a
// copy and safe to retain.
func (r *PedigreeRecord) Inds() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Edges materializes the refined parent edges (is_father, is_mother) from
// the parent references, in insertion order, mother edge before father edge
// per person. Each refined edge implies one generic is_child relation.
func (r *PedigreeRecord) Edges() []ParentEdge {
	var edges []ParentEdge
	for _, ind := range r.order {
		p := r.persons[ind]
		if p.MotherID != "" {
			edges = append(edges, ParentEdge{Kind: IsMother, ChildID: p.Ind, ParentID: p.MotherID})
		}
		if p.FatherID != "" {
			edges = append(edges, ParentEdge{Kind: IsFather, ChildID: p.Ind, ParentID: p.FatherID})
		}
	}
	return edges
}

// Genealogy is a boundary-truncated induced sub-pedigree: the probands that
// seeded its reconstruction plus all their ancestors. Immutable after
// construction apart from serialization.
type Genealogy struct {
	PedigreeRecord
	Probands []string
}

func NewGenealogy(probands []string) *Genealogy {
	g := &Genealogy{
		PedigreeRecord: PedigreeRecord{persons: make(map[string]*Person)},
		Probands:       make([]string, len(probands)),
	}
	copy(g.Probands, probands)
	return g
}
