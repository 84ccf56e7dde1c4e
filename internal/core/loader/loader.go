// Package loader parses flat tabular pedigree descriptions into validated
// in-memory pedigree records.
package loader

import (
	"sort"

	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
)

// DefaultNAID is the conventional placeholder id for an absent parent.
const DefaultNAID = "0"

// Row is one validated input row of the tabular pedigree contract.
type Row struct {
	Ind    string `json:"ind"`
	Father string `json:"father"`
	Mother string `json:"mother"`
	Sex    string `json:"sex"`
}

// Loader builds PedigreeRecords from rows. NAID is the parent id treated as
// "absent" in addition to the empty string.
type Loader struct {
	NAID   string
	logger *zap.SugaredLogger
}

func New(naID string, logger *zap.SugaredLogger) *Loader {
	if naID == "" {
		naID = DefaultNAID
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{NAID: naID, logger: logger}
}

// Load validates rows and constructs a PedigreeRecord. It fails on the first
// duplicate id, dangling parent reference, sex/role conflict, or cycle, with
// the offending id attached. On success it also returns summary statistics.
func (l *Loader) Load(rows []Row) (*model.PedigreeRecord, model.Stats, error) {
	record := model.NewPedigreeRecord()

	for _, row := range rows {
		if record.Has(row.Ind) {
			return nil, model.Stats{}, model.NewValidationError(row.Ind, model.ErrDuplicateIdentifier)
		}
		record.Add(&model.Person{
			Ind:      row.Ind,
			Sex:      model.ParseSex(row.Sex),
			FatherID: l.normalizeParent(row.Father),
			MotherID: l.normalizeParent(row.Mother),
		})
	}

	if err := l.validateParents(record); err != nil {
		return nil, model.Stats{}, err
	}
	if err := checkAcyclic(record); err != nil {
		return nil, model.Stats{}, err
	}

	stats := model.ComputeStats(record)
	l.logger.Infow("pedigree loaded",
		"persons", stats.Persons,
		"females", stats.Females,
		"males", stats.Males,
		"founders", stats.Founders,
		"leaves", stats.Leaves,
		"is_child", stats.ChildEdges,
		"is_father", stats.FatherEdges,
		"is_mother", stats.MotherEdges,
	)
	return record, stats, nil
}

func (l *Loader) normalizeParent(id string) string {
	if id == "" || id == l.NAID {
		return ""
	}
	return id
}

// validateParents checks every parent reference for existence and sex/role
// consistency. Unknown sex is compatible with either role.
func (l *Loader) validateParents(record *model.PedigreeRecord) error {
	for _, ind := range record.Inds() {
		p := record.Get(ind)
		if p.FatherID != "" {
			father := record.Get(p.FatherID)
			if father == nil {
				return model.NewValidationError(p.FatherID, model.ErrDanglingParentReference)
			}
			if father.Sex == model.Female {
				return model.NewValidationError(father.Ind, model.ErrInconsistentParentSex)
			}
		}
		if p.MotherID != "" {
			mother := record.Get(p.MotherID)
			if mother == nil {
				return model.NewValidationError(p.MotherID, model.ErrDanglingParentReference)
			}
			if mother.Sex == model.Male {
				return model.NewValidationError(mother.Ind, model.ErrInconsistentParentSex)
			}
		}
	}
	return nil
}

// checkAcyclic runs Kahn's topological elimination over the child-to-parent
// relation. Any individual left standing is on or behind a cycle; the
// smallest such id is reported.
func checkAcyclic(record *model.PedigreeRecord) error {
	// indegree counts how many children reference each person as a parent.
	indegree := make(map[string]int, record.Len())
	for _, ind := range record.Inds() {
		indegree[ind] = 0
	}
	for _, e := range record.Edges() {
		indegree[e.ParentID]++
	}

	var queue []string
	for _, ind := range record.Inds() {
		if indegree[ind] == 0 {
			queue = append(queue, ind)
		}
	}

	removed := 0
	for len(queue) > 0 {
		ind := queue[0]
		queue = queue[1:]
		removed++

		p := record.Get(ind)
		for _, parent := range []string{p.MotherID, p.FatherID} {
			if parent == "" {
				continue
			}
			indegree[parent]--
			if indegree[parent] == 0 {
				queue = append(queue, parent)
			}
		}
	}

	if removed == record.Len() {
		return nil
	}

	var remaining []string
	for ind, deg := range indegree {
		if deg > 0 {
			remaining = append(remaining, ind)
		}
	}
	sort.Strings(remaining)
	return model.NewValidationError(remaining[0], model.ErrCyclicPedigree)
}
