// Package store translates pedigree records into graph-database writes and
// graph-database queries back into pedigree records. Store failures are
// surfaced to the caller as-is; retry policy belongs above this layer.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
	"github.com/olavurmortensen/pedgraph/internal/driver"
)

const DefaultBatchSize = 1000

// Adapter persists PedigreeRecords into a backing graph database and
// answers ancestor and statistics queries against it. It implements
// traversal.AncestorSource.
type Adapter struct {
	Driver    driver.GraphDriver
	BatchSize int
	logger    *zap.SugaredLogger
}

func NewAdapter(d driver.GraphDriver, batchSize int, logger *zap.SugaredLogger) *Adapter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Adapter{Driver: d, BatchSize: batchSize, logger: logger}
}

// PersistRecord writes all persons and parent edges of a validated record,
// batched to bound request count, then refreshes the founder and leaf
// labels. Each load is tagged with an operation id for traceability.
// Returns the operation id.
func (a *Adapter) PersistRecord(ctx context.Context, record *model.PedigreeRecord) (string, error) {
	opID := uuid.New().String()
	log := a.logger.With("op_id", opID)

	var personRows []interface{}
	for _, ind := range record.Inds() {
		p := record.Get(ind)
		personRows = append(personRows, map[string]interface{}{
			"ind": p.Ind,
			"sex": string(p.Sex),
		})
	}

	var fatherRows, motherRows []interface{}
	for _, e := range record.Edges() {
		row := map[string]interface{}{"child": e.ChildID, "parent": e.ParentID}
		if e.Kind == model.IsFather {
			fatherRows = append(fatherRows, row)
		} else {
			motherRows = append(motherRows, row)
		}
	}

	if err := a.runBatched(ctx, driver.SavePersonsQuery, personRows, map[string]interface{}{"batch": opID}); err != nil {
		return "", fmt.Errorf("failed to persist persons: %w", err)
	}
	if err := a.runBatched(ctx, driver.SaveFatherEdgesQuery, fatherRows, nil); err != nil {
		return "", fmt.Errorf("failed to persist father edges: %w", err)
	}
	if err := a.runBatched(ctx, driver.SaveMotherEdgesQuery, motherRows, nil); err != nil {
		return "", fmt.Errorf("failed to persist mother edges: %w", err)
	}

	for _, q := range []string{driver.LabelFoundersQuery, driver.LabelLeavesQuery} {
		if _, err := a.Driver.ExecuteQuery(ctx, q, nil); err != nil {
			return "", fmt.Errorf("failed to refresh labels: %w", err)
		}
	}

	log.Infow("pedigree persisted",
		"persons", len(personRows),
		"father_edges", len(fatherRows),
		"mother_edges", len(motherRows),
	)
	return opID, nil
}

func (a *Adapter) runBatched(ctx context.Context, query string, rows []interface{}, extra map[string]interface{}) error {
	for start := 0; start < len(rows); start += a.BatchSize {
		end := start + a.BatchSize
		if end > len(rows) {
			end = len(rows)
		}
		params := map[string]interface{}{"rows": rows[start:end]}
		for k, v := range extra {
			params[k] = v
		}
		if _, err := a.Driver.ExecuteQuery(ctx, query, params); err != nil {
			return err
		}
	}
	return nil
}

// AncestorsOf delegates the ancestor closure to the graph database. The
// result is sorted, matching the in-memory traversal for the same pedigree.
func (a *Adapter) AncestorsOf(ctx context.Context, seeds []string) ([]string, error) {
	result, err := a.Driver.ExecuteQuery(ctx, driver.AncestorsQuery, map[string]interface{}{"inds": seeds})
	if err != nil {
		return nil, fmt.Errorf("ancestor query failed: %w", err)
	}

	var ancestors []string
	for _, rec := range result.Records {
		ind, _ := rec.Get("ind")
		if s, ok := ind.(string); ok {
			ancestors = append(ancestors, s)
		}
	}
	sort.Strings(ancestors)
	return ancestors, nil
}

// FetchRecord rebuilds the pedigree sub-record for the given ids from the
// store. Parent references outside inds are kept; callers wanting a
// boundary-truncated view apply reconstruction on top.
func (a *Adapter) FetchRecord(ctx context.Context, inds []string) (*model.PedigreeRecord, error) {
	result, err := a.Driver.ExecuteQuery(ctx, driver.RecordsQuery, map[string]interface{}{"inds": inds})
	if err != nil {
		return nil, fmt.Errorf("record query failed: %w", err)
	}

	record := model.NewPedigreeRecord()
	for _, rec := range result.Records {
		ind, _ := rec.Get("ind")
		sex, _ := rec.Get("sex")
		father, _ := rec.Get("father")
		mother, _ := rec.Get("mother")

		p := &model.Person{Ind: asString(ind), Sex: model.ParseSex(asString(sex))}
		p.FatherID = asString(father)
		p.MotherID = asString(mother)
		record.Add(p)
	}
	return record, nil
}

// DescendantCounts returns, for every person in the store, the number of
// distinct descendants reachable through is_child relations.
func (a *Adapter) DescendantCounts(ctx context.Context) (map[string]int64, error) {
	result, err := a.Driver.ExecuteQuery(ctx, driver.DescendantCountsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("descendant count query failed: %w", err)
	}

	counts := make(map[string]int64, len(result.Records))
	for _, rec := range result.Records {
		ind, _ := rec.Get("ind")
		n, _ := rec.Get("descendants")
		if s, ok := ind.(string); ok {
			counts[s], _ = n.(int64)
		}
	}
	return counts, nil
}

// Stats computes pedigree statistics from the store, mirroring
// model.ComputeStats for persisted data.
func (a *Adapter) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats

	nodes, err := a.Driver.ExecuteQuery(ctx, driver.NodeStatsQuery, nil)
	if err != nil {
		return stats, fmt.Errorf("node stats query failed: %w", err)
	}
	if len(nodes.Records) > 0 {
		m := nodes.Records[0].AsMap()
		stats.Persons = asInt(m["persons"])
		stats.Females = asInt(m["females"])
		stats.Males = asInt(m["males"])
		stats.Founders = asInt(m["founders"])
		stats.Leaves = asInt(m["leaves"])
	}

	edges, err := a.Driver.ExecuteQuery(ctx, driver.EdgeStatsQuery, nil)
	if err != nil {
		return stats, fmt.Errorf("edge stats query failed: %w", err)
	}
	if len(edges.Records) > 0 {
		m := edges.Records[0].AsMap()
		stats.ChildEdges = asInt(m["is_child"])
		stats.FatherEdges = asInt(m["is_father"])
		stats.MotherEdges = asInt(m["is_mother"])
	}

	return stats, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	n, _ := v.(int64)
	return int(n)
}
