package model

// Stats summarizes a pedigree: node counts by category and edge counts by
// relation subtype. ChildEdges counts the generic is_child relations, one
// per recorded parent link, so it always equals FatherEdges + MotherEdges.
type Stats struct {
	Persons     int `json:"persons"`
	Females     int `json:"females"`
	Males       int `json:"males"`
	Founders    int `json:"founders"`
	Leaves      int `json:"leaves"`
	ChildEdges  int `json:"is_child"`
	FatherEdges int `json:"is_father"`
	MotherEdges int `json:"is_mother"`
}

// ComputeStats derives statistics from a record. Pure function, no side
// effects; shared by load-time and post-reconstruction reporting.
func ComputeStats(r *PedigreeRecord) Stats {
	var s Stats
	s.Persons = r.Len()

	isParent := make(map[string]bool)
	for _, ind := range r.Inds() {
		p := r.Get(ind)
		switch p.Sex {
		case Female:
			s.Females++
		case Male:
			s.Males++
		}
		if p.Founder() {
			s.Founders++
		}
		if p.FatherID != "" {
			s.FatherEdges++
			isParent[p.FatherID] = true
		}
		if p.MotherID != "" {
			s.MotherEdges++
			isParent[p.MotherID] = true
		}
	}
	s.ChildEdges = s.FatherEdges + s.MotherEdges

	for _, ind := range r.Inds() {
		if !isParent[ind] {
			s.Leaves++
		}
	}
	return s
}
