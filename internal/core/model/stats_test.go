package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_TrioPedigree(t *testing.T) {
	r := NewPedigreeRecord()
	r.Add(&Person{Ind: "1", Sex: Male})
	r.Add(&Person{Ind: "2", Sex: Female})
	r.Add(&Person{Ind: "3", Sex: Female, FatherID: "1", MotherID: "2"})

	s := ComputeStats(r)

	assert.Equal(t, 3, s.Persons)
	assert.Equal(t, 2, s.Females)
	assert.Equal(t, 1, s.Males)
	assert.Equal(t, 2, s.Founders)
	assert.Equal(t, 1, s.Leaves)
	assert.Equal(t, 1, s.FatherEdges)
	assert.Equal(t, 1, s.MotherEdges)
	assert.Equal(t, 2, s.ChildEdges)
}

func TestComputeStats_ChildEdgesAreFatherPlusMother(t *testing.T) {
	r := NewPedigreeRecord()
	r.Add(&Person{Ind: "a", Sex: Male})
	r.Add(&Person{Ind: "b", Sex: Female, FatherID: "a"})
	r.Add(&Person{Ind: "c", Sex: Unknown, MotherID: "b"})

	s := ComputeStats(r)

	assert.Equal(t, 1, s.FatherEdges)
	assert.Equal(t, 1, s.MotherEdges)
	assert.Equal(t, s.FatherEdges+s.MotherEdges, s.ChildEdges)
	// a and b are parents, only c is a leaf.
	assert.Equal(t, 1, s.Leaves)
}

func TestEdges_MotherBeforeFatherPerPerson(t *testing.T) {
	r := NewPedigreeRecord()
	r.Add(&Person{Ind: "1", Sex: Male})
	r.Add(&Person{Ind: "2", Sex: Female})
	r.Add(&Person{Ind: "3", Sex: Female, FatherID: "1", MotherID: "2"})

	edges := r.Edges()

	assert.Len(t, edges, 2)
	assert.Equal(t, ParentEdge{Kind: IsMother, ChildID: "3", ParentID: "2"}, edges[0])
	assert.Equal(t, ParentEdge{Kind: IsFather, ChildID: "3", ParentID: "1"}, edges[1])
}

func TestParseSex(t *testing.T) {
	assert.Equal(t, Female, ParseSex("F"))
	assert.Equal(t, Female, ParseSex("female"))
	assert.Equal(t, Male, ParseSex(" M "))
	assert.Equal(t, Male, ParseSex("Male"))
	assert.Equal(t, Unknown, ParseSex(""))
	assert.Equal(t, Unknown, ParseSex("0"))
	assert.Equal(t, Unknown, ParseSex("hermaphrodite"))
}
