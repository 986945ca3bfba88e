package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execSelect implements SELECT <col_list|*> FROM <table> [WHERE
// <predicate>] (§4.7).
func execSelect(db *dbm.Database, rest string) Result {
	upper := strings.ToUpper(rest)
	fromAt := strings.Index(upper, "FROM")
	if fromAt < 0 {
		return fail("Missing FROM clause")
	}
	colPart := strings.TrimSpace(rest[:fromAt])
	tail := strings.TrimSpace(rest[fromAt+len("FROM"):])

	tableName, whereClause := splitWhere(tail)
	tableName = strings.TrimSpace(tableName)

	t := db.Table(tableName)
	if t == nil {
		return fail(fmt.Sprintf("Table '%s' not found", tableName))
	}

	colIdx, header, perr := resolveProjection(t, colPart)
	if perr != "" {
		return fail(perr)
	}

	var pred predicate
	havePred := false
	if whereClause != "" {
		pred, havePred = parseWhere(whereClause)
	}

	var rows [][]string
	for _, row := range t.Rows {
		if row.Deleted {
			continue
		}
		if havePred && !pred.matches(t, row) {
			continue
		}
		cells := make([]string, len(colIdx))
		for i, ci := range colIdx {
			cells[i] = row.Values[ci].Format()
		}
		rows = append(rows, cells)
	}

	return rowsResult(header, rows, fmt.Sprintf("%d row(s) returned", len(rows)))
}

// resolveProjection maps a SELECT column list (or "*") to the source
// column indices and a result header copied from the schema (§4.7).
func resolveProjection(t *dbm.Table, colPart string) ([]int, []ResultHeader, string) {
	if strings.TrimSpace(colPart) == "*" {
		idx := make([]int, len(t.Columns))
		header := make([]ResultHeader, len(t.Columns))
		for i, c := range t.Columns {
			idx[i] = i
			header[i] = ResultHeader{Name: c.Name, Type: c.Type}
		}
		return idx, header, ""
	}

	names := splitTopLevel(colPart, ',')
	idx := make([]int, 0, len(names))
	header := make([]ResultHeader, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		ci, ok := t.ColumnIndex(n)
		if !ok {
			return nil, nil, fmt.Sprintf("Unknown column '%s'", n)
		}
		idx = append(idx, ci)
		header = append(header, ResultHeader{Name: t.Columns[ci].Name, Type: t.Columns[ci].Type})
	}
	return idx, header, ""
}

// splitWhere separates a "<table> [WHERE <predicate>]" tail into the
// table name and the predicate text (empty if no WHERE is present).
func splitWhere(tail string) (table string, where string) {
	upper := strings.ToUpper(tail)
	if idx := strings.Index(upper, "WHERE"); idx >= 0 {
		return tail[:idx], strings.TrimSpace(tail[idx+len("WHERE"):])
	}
	return tail, ""
}
