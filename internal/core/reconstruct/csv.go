package reconstruct

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
)

// WriteCSV serializes a genealogy to the tabular pedigree format, one row
// per person in record order with absent parents written as empty fields.
// Loading the output back yields the same person and edge sets.
func WriteCSV(w io.Writer, gen *model.Genealogy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ind", "father", "mother", "sex"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, ind := range gen.Inds() {
		p := gen.Get(ind)
		if err := cw.Write([]string{p.Ind, p.FatherID, p.MotherID, string(p.Sex)}); err != nil {
			return fmt.Errorf("failed to write CSV row for ind %q: %w", ind, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
