package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execInsert implements INSERT INTO <table> [( <col_list> )] VALUES
// ( <value_list> ) (§4.6).
func execInsert(db *dbm.Database, rest string) Result {
	upper := strings.ToUpper(rest)
	valuesAt := strings.Index(upper, "VALUES")
	if valuesAt < 0 {
		return fail("Missing VALUES clause")
	}

	head := strings.TrimSpace(rest[:valuesAt])
	tail := strings.TrimSpace(rest[valuesAt+len("VALUES"):])

	valList, found := splitParen(tail)
	if !found {
		return fail("Missing value list")
	}

	var tableName string
	var colList string
	var hasColList bool
	if paren := strings.IndexByte(head, '('); paren >= 0 {
		tableName = strings.TrimSpace(head[:paren])
		var perr bool
		colList, perr = splitParen(head)
		hasColList = perr
	} else {
		tableName = strings.TrimSpace(head)
	}
	if tableName == "" {
		return fail("Missing table name")
	}

	t := db.Table(tableName)
	if t == nil {
		return fail(fmt.Sprintf("Table '%s' not found", tableName))
	}

	var targetCols []int
	if hasColList {
		names := splitTopLevel(colList, ',')
		targetCols = make([]int, 0, len(names))
		for _, n := range names {
			idx, ok := t.ColumnIndex(strings.TrimSpace(n))
			if !ok {
				return fail(fmt.Sprintf("Unknown column '%s'", n))
			}
			targetCols = append(targetCols, idx)
		}
	} else {
		targetCols = make([]int, len(t.Columns))
		for i := range t.Columns {
			targetCols[i] = i
		}
	}

	rawValues := splitTopLevel(valList, ',')
	if len(rawValues) != len(targetCols) {
		return fail("Value count does not match column count")
	}

	vals := make([]dbm.Value, len(t.Columns))
	for i := range vals {
		vals[i] = dbm.NullValue()
	}
	for i, raw := range rawValues {
		col := t.Columns[targetCols[i]]
		raw = strings.TrimSpace(raw)
		if strings.EqualFold(raw, "NULL") && !isQuoted(raw) {
			vals[targetCols[i]] = dbm.NullValue()
			continue
		}
		vals[targetCols[i]] = dbm.ParseLiteral(unquote(raw), col.Type)
	}

	t.AppendRow(vals)
	return ok("1 row(s) inserted", 1)
}

// isQuoted reports whether s is wrapped in matching quotes, used to
// distinguish the unquoted NULL keyword from the quoted string "NULL"
// (§4.6: "the literal NULL (case-insensitive, unquoted) inserts a null").
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '\'' || first == '"') && first == last
}
