package importer

import (
	"fmt"

	"github.com/mstgnz/dbm"
)

// Mismatch describes one column whose introspected source shape
// disagrees with the existing local table, grounded in
// schema.SchemaComparer/Difference (scaled down to this engine's flat
// column model — no indexes or constraints to diff).
type Mismatch struct {
	Column      string
	Description string
}

// compareColumns diffs source (freshly introspected) against local
// (an existing table's current schema, if any). It never blocks the
// import: mismatches are reported, not fatal (§4.16).
func compareColumns(source []SourceColumn, local *dbm.Table) []Mismatch {
	if local == nil {
		return nil
	}
	var mismatches []Mismatch
	for _, sc := range source {
		idx, found := local.ColumnIndex(sc.Name)
		if !found {
			mismatches = append(mismatches, Mismatch{
				Column:      sc.Name,
				Description: fmt.Sprintf("column %q not present locally, will be skipped", sc.Name),
			})
			continue
		}
		want := mapColumnType(sc.SourceType)
		got := local.Columns[idx].Type
		if want != got {
			mismatches = append(mismatches, Mismatch{
				Column: sc.Name,
				Description: fmt.Sprintf("column %q is %s locally, source reports %s (%s)",
					sc.Name, got, want, sc.SourceType),
			})
		}
	}
	return mismatches
}
