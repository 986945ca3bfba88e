package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execUpdate implements UPDATE <table> SET <col>=<value>[, ...]
// [WHERE <predicate>] (§4.8).
func execUpdate(db *dbm.Database, rest string) Result {
	upper := strings.ToUpper(rest)
	setAt := strings.Index(upper, "SET")
	if setAt < 0 {
		return fail("Missing SET clause")
	}
	tableName := strings.TrimSpace(rest[:setAt])
	tail := strings.TrimSpace(rest[setAt+len("SET"):])

	assignPart, whereClause := splitWhere(tail)

	t := db.Table(tableName)
	if t == nil {
		return fail(fmt.Sprintf("Table '%s' not found", tableName))
	}

	assignments := splitTopLevel(assignPart, ',')
	type assignment struct {
		col int
		val dbm.Value
	}
	var applied []assignment
	for _, a := range assignments {
		eq := strings.IndexByte(a, '=')
		if eq < 0 {
			return fail(fmt.Sprintf("Malformed SET assignment '%s'", a))
		}
		colName := strings.TrimSpace(a[:eq])
		rawVal := strings.TrimSpace(a[eq+1:])

		idx, found := t.ColumnIndex(colName)
		if !found {
			// Unknown column in SET: silently ignored, per §4.8.
			continue
		}
		var v dbm.Value
		if strings.EqualFold(rawVal, "NULL") && !isQuoted(rawVal) {
			v = dbm.NullValue()
		} else {
			v = dbm.ParseLiteral(unquote(rawVal), t.Columns[idx].Type)
		}
		applied = append(applied, assignment{col: idx, val: v})
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
		for _, a := range applied {
			row.Values[a.col] = a.val
		}
		n++
	}

	return ok(fmt.Sprintf("%d row(s) updated", n), n)
}
