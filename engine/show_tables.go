package engine

import (
	"fmt"
	"strconv"

	"github.com/mstgnz/dbm"
)

// execShowTables implements SHOW TABLES (§4.10).
func execShowTables(db *dbm.Database) Result {
	header := []ResultHeader{
		{Name: "Table", Type: dbm.TextType},
		{Name: "Columns", Type: dbm.IntType},
		{Name: "Rows", Type: dbm.IntType},
	}
	rows := make([][]string, 0, len(db.Tables))
	for _, t := range db.Tables {
		rows = append(rows, []string{
			t.Name,
			strconv.Itoa(len(t.Columns)),
			strconv.Itoa(t.VisibleRowCount()),
		})
	}
	return rowsResult(header, rows, fmt.Sprintf("%d table(s)", len(rows)))
}
