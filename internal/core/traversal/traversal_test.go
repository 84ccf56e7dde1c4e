package traversal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
)

func trioRecord() *model.PedigreeRecord {
	r := model.NewPedigreeRecord()
	r.Add(&model.Person{Ind: "1", Sex: model.Male})
	r.Add(&model.Person{Ind: "2", Sex: model.Female})
	r.Add(&model.Person{Ind: "3", Sex: model.Female, FatherID: "1", MotherID: "2"})
	return r
}

func TestAncestorsOf_Trio(t *testing.T) {
	anc, err := NewInMemory(trioRecord(), nil).AncestorsOf(context.Background(), []string{"3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, anc)
}

func TestAncestorsOf_FounderHasNoAncestors(t *testing.T) {
	anc, err := NewInMemory(trioRecord(), nil).AncestorsOf(context.Background(), []string{"1"})
	require.NoError(t, err)
	assert.Empty(t, anc)
}

func TestAncestorsOf_DiamondVisitedOnce(t *testing.T) {
	// 4's parents are half-siblings 2 and 3, who share father 1.
	r := model.NewPedigreeRecord()
	r.Add(&model.Person{Ind: "1", Sex: model.Male})
	r.Add(&model.Person{Ind: "2", Sex: model.Male, FatherID: "1"})
	r.Add(&model.Person{Ind: "3", Sex: model.Female, FatherID: "1"})
	r.Add(&model.Person{Ind: "4", Sex: model.Female, FatherID: "2", MotherID: "3"})

	anc, err := NewInMemory(r, nil).AncestorsOf(context.Background(), []string{"4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, anc)
}

func TestAncestorsOf_SeedThatIsAlsoAncestorIsIncluded(t *testing.T) {
	anc, err := NewInMemory(trioRecord(), nil).AncestorsOf(context.Background(), []string{"3", "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, anc)
}

func TestAncestorsOf_MultipleSeedsShareAncestors(t *testing.T) {
	r := trioRecord()
	r.Add(&model.Person{Ind: "4", Sex: model.Male, FatherID: "1", MotherID: "2"})

	anc, err := NewInMemory(r, nil).AncestorsOf(context.Background(), []string{"3", "4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, anc)
}

func TestAncestorsOf_UnknownSeed(t *testing.T) {
	_, err := NewInMemory(trioRecord(), nil).AncestorsOf(context.Background(), []string{"99"})
	assert.ErrorIs(t, err, model.ErrUnknownProband)
}

func TestAncestorsOf_CycleDetectedNotLooped(t *testing.T) {
	// Crafted unvalidated data: A and B are each other's fathers.
	r := model.NewPedigreeRecord()
	r.Add(&model.Person{Ind: "A", Sex: model.Male, FatherID: "B"})
	r.Add(&model.Person{Ind: "B", Sex: model.Male, FatherID: "A"})

	_, err := NewInMemory(r, nil).AncestorsOf(context.Background(), []string{"A"})
	assert.ErrorIs(t, err, model.ErrCyclicPedigree)
}

func TestFixed_ReturnsClosureAsGiven(t *testing.T) {
	anc, err := Fixed{"1", "2"}.AncestorsOf(context.Background(), []string{"3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, anc)
}
