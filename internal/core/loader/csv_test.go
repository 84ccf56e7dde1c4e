package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_Basic(t *testing.T) {
	in := "ind,father,mother,sex\n1,,,M\n2,,,F\n3,1,2,F\n"

	rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Ind: "3", Father: "1", Mother: "2", Sex: "F"}, rows[2])
}

func TestReadCSV_TrimsWhitespaceAndIgnoresExtraColumns(t *testing.T) {
	in := "ind,father,mother,sex,phenotype\n 1 , , , M ,affected\n"

	rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Row{Ind: "1", Sex: "M"}, rows[0])
}

func TestReadCSV_HeaderOrderIndependent(t *testing.T) {
	in := "sex,ind,mother,father\nM,1,,\nF,3,2,1\nF,2,,\n"

	rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Row{Ind: "3", Father: "1", Mother: "2", Sex: "F"}, rows[1])
}

func TestReadCSV_MissingColumn(t *testing.T) {
	in := "ind,father,sex\n1,,M\n"

	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mother")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("ind,father,mother,sex\n"))
	assert.Error(t, err)
}
