package store

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
	"github.com/olavurmortensen/pedgraph/internal/driver"
)

type executedQuery struct {
	query  string
	params map[string]interface{}
}

// fakeDriver records executed queries and replays canned results.
type fakeDriver struct {
	executed []executedQuery
	results  map[string]neo4j.EagerResult
}

func (f *fakeDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	f.executed = append(f.executed, executedQuery{query: query, params: params})
	return f.results[query], nil
}

func (f *fakeDriver) BuildIndices(ctx context.Context) error { return nil }
func (f *fakeDriver) Close(ctx context.Context) error        { return nil }

func record(keys []string, values []interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func trioRecord() *model.PedigreeRecord {
	r := model.NewPedigreeRecord()
	r.Add(&model.Person{Ind: "1", Sex: model.Male})
	r.Add(&model.Person{Ind: "2", Sex: model.Female})
	r.Add(&model.Person{Ind: "3", Sex: model.Female, FatherID: "1", MotherID: "2"})
	return r
}

func TestPersistRecord_BatchesRows(t *testing.T) {
	fake := &fakeDriver{}
	adapter := NewAdapter(fake, 2, nil)

	opID, err := adapter.PersistRecord(context.Background(), trioRecord())
	require.NoError(t, err)
	assert.NotEmpty(t, opID)

	var personBatches, fatherBatches, motherBatches, labels int
	for _, ex := range fake.executed {
		switch ex.query {
		case driver.SavePersonsQuery:
			personBatches++
			assert.Equal(t, opID, ex.params["batch"])
		case driver.SaveFatherEdgesQuery:
			fatherBatches++
		case driver.SaveMotherEdgesQuery:
			motherBatches++
		case driver.LabelFoundersQuery, driver.LabelLeavesQuery:
			labels++
		}
	}

	// 3 persons at batch size 2 means two person batches.
	assert.Equal(t, 2, personBatches)
	assert.Equal(t, 1, fatherBatches)
	assert.Equal(t, 1, motherBatches)
	assert.Equal(t, 2, labels)
}

func TestAncestorsOf_SortedResult(t *testing.T) {
	fake := &fakeDriver{results: map[string]neo4j.EagerResult{
		driver.AncestorsQuery: {Records: []*neo4j.Record{
			record([]string{"ind"}, []interface{}{"2"}),
			record([]string{"ind"}, []interface{}{"1"}),
		}},
	}}
	adapter := NewAdapter(fake, 0, nil)

	ancestors, err := adapter.AncestorsOf(context.Background(), []string{"3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ancestors)
}

func TestFetchRecord_NullParentsBecomeAbsent(t *testing.T) {
	keys := []string{"ind", "father", "mother", "sex"}
	fake := &fakeDriver{results: map[string]neo4j.EagerResult{
		driver.RecordsQuery: {Records: []*neo4j.Record{
			record(keys, []interface{}{"1", nil, nil, "M"}),
			record(keys, []interface{}{"3", "1", nil, "F"}),
		}},
	}}
	adapter := NewAdapter(fake, 0, nil)

	rec, err := adapter.FetchRecord(context.Background(), []string{"1", "3"})
	require.NoError(t, err)
	require.Equal(t, 2, rec.Len())
	assert.True(t, rec.Get("1").Founder())
	assert.Equal(t, "1", rec.Get("3").FatherID)
	assert.Empty(t, rec.Get("3").MotherID)
}

func TestStats_FromStoreQueries(t *testing.T) {
	fake := &fakeDriver{results: map[string]neo4j.EagerResult{
		driver.NodeStatsQuery: {Records: []*neo4j.Record{record(
			[]string{"persons", "females", "males", "founders", "leaves"},
			[]interface{}{int64(3), int64(2), int64(1), int64(2), int64(1)},
		)}},
		driver.EdgeStatsQuery: {Records: []*neo4j.Record{record(
			[]string{"is_child", "is_father", "is_mother"},
			[]interface{}{int64(2), int64(1), int64(1)},
		)}},
	}}
	adapter := NewAdapter(fake, 0, nil)

	stats, err := adapter.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Stats{
		Persons: 3, Females: 2, Males: 1, Founders: 2, Leaves: 1,
		ChildEdges: 2, FatherEdges: 1, MotherEdges: 1,
	}, stats)
}

func TestDescendantCounts(t *testing.T) {
	keys := []string{"ind", "descendants"}
	fake := &fakeDriver{results: map[string]neo4j.EagerResult{
		driver.DescendantCountsQuery: {Records: []*neo4j.Record{
			record(keys, []interface{}{"1", int64(1)}),
			record(keys, []interface{}{"3", int64(0)}),
		}},
	}}
	adapter := NewAdapter(fake, 0, nil)

	counts, err := adapter.DescendantCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"1": 1, "3": 0}, counts)
}
