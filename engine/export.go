package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/export"
)

// execExport implements EXPORT <table> AS <MYSQL|POSTGRES|SQLITE>
// (§4.16). The result's single-column payload carries the rendered
// text as one cell.
func execExport(db *dbm.Database, rest string) Result {
	upper := strings.ToUpper(rest)
	asAt := strings.Index(upper, " AS ")
	if asAt < 0 {
		return fail("Missing AS clause")
	}
	tableName := strings.TrimSpace(rest[:asAt])
	dialectName := strings.TrimSpace(rest[asAt+len(" AS "):])

	t := db.Table(tableName)
	if t == nil {
		return fail(fmt.Sprintf("Table '%s' not found", tableName))
	}

	dialect, known := export.ParseDialect(dialectName)
	if !known {
		return fail(fmt.Sprintf("Unknown dialect '%s'", dialectName))
	}

	text, err := export.Render(t, dialect)
	if err != nil {
		return fail(err.Error())
	}

	header := []ResultHeader{{Name: "SQL", Type: dbm.TextType}}
	return rowsResult(header, [][]string{{text}}, fmt.Sprintf("Exported table '%s' as %s", t.Name, dialect))
}
