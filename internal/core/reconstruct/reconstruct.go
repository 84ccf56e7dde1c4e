// Package reconstruct builds minimal sub-genealogies: the probands plus all
// their ancestors, re-induced as a self-consistent pedigree.
package reconstruct

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
	"github.com/olavurmortensen/pedgraph/internal/core/traversal"
)

// Reconstructor derives Genealogies from a source pedigree.
type Reconstructor struct {
	logger *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) *Reconstructor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Reconstructor{logger: logger}
}

// Reconstruct computes the genealogy of the probands within source using an
// in-memory ancestor traversal.
func (r *Reconstructor) Reconstruct(ctx context.Context, probands []string, source *model.PedigreeRecord) (*model.Genealogy, error) {
	return r.ReconstructFrom(ctx, probands, source, traversal.NewInMemory(source, r.logger))
}

// ReconstructFrom is Reconstruct with an explicit ancestor source, so the
// closure can instead be delegated to a backing graph store. Every proband
// must exist in source; the resulting Genealogy contains copies of the
// member Persons, with parent references to non-members cleared so that a
// person whose true parent falls outside the member set becomes a founder.
func (r *Reconstructor) ReconstructFrom(ctx context.Context, probands []string, source *model.PedigreeRecord, anc traversal.AncestorSource) (*model.Genealogy, error) {
	for _, ind := range probands {
		if !source.Has(ind) {
			return nil, model.NewValidationError(ind, model.ErrUnknownProband)
		}
	}

	ancestors, err := anc.AncestorsOf(ctx, probands)
	if err != nil {
		return nil, err
	}

	members := make(map[string]bool, len(probands)+len(ancestors))
	for _, ind := range probands {
		members[ind] = true
	}
	for _, ind := range ancestors {
		members[ind] = true
	}

	sortedProbands := make([]string, len(probands))
	copy(sortedProbands, probands)
	sort.Strings(sortedProbands)

	gen := model.NewGenealogy(sortedProbands)
	// Source insertion order keeps serialization stable across runs.
	for _, ind := range source.Inds() {
		if !members[ind] {
			continue
		}
		p := source.Get(ind)
		member := &model.Person{Ind: p.Ind, Sex: p.Sex}
		if members[p.FatherID] {
			member.FatherID = p.FatherID
		}
		if members[p.MotherID] {
			member.MotherID = p.MotherID
		}
		gen.Add(member)
	}

	r.logger.Infow("genealogy reconstructed",
		"probands", len(probands),
		"ancestors", len(ancestors),
		"individuals", gen.Len(),
	)
	return gen, nil
}
