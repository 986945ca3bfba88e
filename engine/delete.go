package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execDelete implements DELETE FROM <table> [WHERE <predicate>]
// (§4.9). Matching rows are tombstoned, not removed.
func execDelete(db *dbm.Database, rest string) Result {
	tableName, whereClause := splitWhere(rest)
	tableName = strings.TrimSpace(tableName)

	t := db.Table(tableName)
	if t == nil {
		return fail(fmt.Sprintf("Table '%s' not found", tableName))
	}

	var pred predicate
	havePred := false
	if whereClause != "" {
		pred, havePred = parseWhere(whereClause)
	}

	n := 0
	for i := range t.Rows {
		row := &t.Rows[i]
		if row.Deleted {
			continue
		}
		if havePred && !pred.matches(t, *row) {
			continue
		}
		row.Deleted = true
		n++
	}

	return ok(fmt.Sprintf("%d row(s) deleted", n), n)
}
