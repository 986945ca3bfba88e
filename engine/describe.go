package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execDescribe implements DESCRIBE <table> / DESC <table> (§4.11).
func execDescribe(db *dbm.Database, rest string) Result {
	name := strings.TrimSpace(rest)
	t := db.Table(name)
	if t == nil {
		return fail(fmt.Sprintf("Table '%s' not found", name))
	}

	header := []ResultHeader{
		{Name: "Column", Type: dbm.TextType},
		{Name: "Type", Type: dbm.TextType},
		{Name: "Nullable", Type: dbm.TextType},
		{Name: "PK", Type: dbm.TextType},
	}
	rows := make([][]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		rows = append(rows, []string{c.Name, c.Type.String(), yesNo(c.Nullable), yesNo(c.PrimaryKey)})
	}
	return rowsResult(header, rows, fmt.Sprintf("%d column(s)", len(rows)))
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
