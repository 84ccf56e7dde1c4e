// Package core ties the pedigree loader, the graph store adapter and the
// genealogy reconstructor together into the operations the service exposes.
package core

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core/loader"
	"github.com/olavurmortensen/pedgraph/internal/core/model"
	"github.com/olavurmortensen/pedgraph/internal/core/reconstruct"
	"github.com/olavurmortensen/pedgraph/internal/core/traversal"
	"github.com/olavurmortensen/pedgraph/internal/store"
)

type Service struct {
	Adapter       *store.Adapter
	Loader        *loader.Loader
	Reconstructor *reconstruct.Reconstructor
	logger        *zap.SugaredLogger
}

func NewService(adapter *store.Adapter, naID string, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		Adapter:       adapter,
		Loader:        loader.New(naID, logger),
		Reconstructor: reconstruct.New(logger),
		logger:        logger,
	}
}

// BuildIndices bootstraps database constraints and indices.
func (s *Service) BuildIndices(ctx context.Context) error {
	return s.Adapter.Driver.BuildIndices(ctx)
}

// LoadResult is the outcome of a successful load: summary statistics plus
// the operation id the persisted batch was tagged with.
type LoadResult struct {
	Stats model.Stats `json:"stats"`
	OpID  string      `json:"op_id"`
}

// BuildFromRows validates rows into a pedigree record and persists it.
// Validation failures abort before anything is written.
func (s *Service) BuildFromRows(ctx context.Context, rows []loader.Row) (*LoadResult, error) {
	record, stats, err := s.Loader.Load(rows)
	if err != nil {
		return nil, err
	}
	opID, err := s.Adapter.PersistRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Stats: stats, OpID: opID}, nil
}

// BuildFromCSV reads the tabular pedigree format and loads it.
func (s *Service) BuildFromCSV(ctx context.Context, r io.Reader) (*LoadResult, error) {
	rows, err := loader.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return s.BuildFromRows(ctx, rows)
}

// Reconstruct builds the genealogy of the probands from the persisted
// pedigree: ancestor closure by store query, member records fetched back,
// then the induced sub-pedigree assembled in memory. A proband with no node
// in the store fails with ErrUnknownProband.
func (s *Service) Reconstruct(ctx context.Context, probands []string) (*model.Genealogy, model.Stats, error) {
	ancestors, err := s.Adapter.AncestorsOf(ctx, probands)
	if err != nil {
		return nil, model.Stats{}, err
	}

	members := make([]string, len(probands), len(probands)+len(ancestors))
	copy(members, probands)
	seen := make(map[string]bool, len(probands))
	for _, ind := range probands {
		seen[ind] = true
	}
	for _, ind := range ancestors {
		if !seen[ind] {
			members = append(members, ind)
		}
	}

	source, err := s.Adapter.FetchRecord(ctx, members)
	if err != nil {
		return nil, model.Stats{}, err
	}

	gen, err := s.Reconstructor.ReconstructFrom(ctx, probands, source, traversal.Fixed(ancestors))
	if err != nil {
		return nil, model.Stats{}, err
	}
	return gen, model.ComputeStats(&gen.PedigreeRecord), nil
}

// ReconstructLocal is the in-memory variant operating on an already loaded
// record, bypassing the store entirely. Both variants produce identical
// genealogies for the same pedigree.
func (s *Service) ReconstructLocal(ctx context.Context, probands []string, source *model.PedigreeRecord) (*model.Genealogy, model.Stats, error) {
	gen, err := s.Reconstructor.Reconstruct(ctx, probands, source)
	if err != nil {
		return nil, model.Stats{}, err
	}
	return gen, model.ComputeStats(&gen.PedigreeRecord), nil
}

// Stats reports pedigree statistics from the store.
func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	return s.Adapter.Stats(ctx)
}

// DescendantCounts reports, per individual, the number of distinct
// descendants in the persisted pedigree.
func (s *Service) DescendantCounts(ctx context.Context) (map[string]int64, error) {
	return s.Adapter.DescendantCounts(ctx)
}
