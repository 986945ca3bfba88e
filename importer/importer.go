package importer

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// Report summarizes one Import call's outcome (§4.16).
type Report struct {
	TableCreated bool
	RowsImported int
	Mismatches   []Mismatch
}

// Import introspects table's schema from a live source database,
// reconciles it against db's existing local table of the same name
// (creating one if absent), and streams every source row through the
// ordinary row-append path. The source connection is opened and
// closed within this single call (§5, §4.16).
func Import(db *dbm.Database, dialect Dialect, dsn, table string) (Report, error) {
	conn, err := connect(dialect, dsn)
	if err != nil {
		return Report{}, err
	}
	defer conn.Close()

	sourceCols, err := introspectColumns(conn, dialect, table)
	if err != nil {
		return Report{}, err
	}

	var report Report
	local := db.Table(table)
	if local == nil {
		columns := make([]dbm.Column, len(sourceCols))
		for i, sc := range sourceCols {
			columns[i] = sc.toColumn()
		}
		local = dbm.NewTable(table, columns)
		db.AddTable(local)
		report.TableCreated = true
	} else {
		report.Mismatches = compareColumns(sourceCols, local)
	}

	n, err := streamRows(conn, table, local)
	if err != nil {
		return report, err
	}
	report.RowsImported = n
	return report, nil
}

// streamRows runs SELECT * FROM table against conn and appends each
// result row to local via the ordinary row-append path (§4.16: "the
// ordinary INSERT path").
func streamRows(conn *sql.DB, table string, local *dbm.Table) (int, error) {
	rows, err := conn.Query("SELECT * FROM " + quoteTableName(table))
	if err != nil {
		return 0, fmt.Errorf("select from source table %q: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	n := 0
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return n, fmt.Errorf("scan source row: %w", err)
		}

		vals := make([]dbm.Value, len(local.Columns))
		for i := range vals {
			vals[i] = dbm.NullValue()
		}
		for i, name := range cols {
			idx, found := local.ColumnIndex(name)
			if !found {
				continue
			}
			vals[idx] = nativeToValue(raw[i], local.Columns[idx].Type)
		}
		local.AppendRow(vals)
		n++
	}
	return n, rows.Err()
}

// nativeToValue converts a database/sql-scanned native Go value into
// a dbm.Value of the destination column type.
func nativeToValue(raw interface{}, t dbm.ColumnType) dbm.Value {
	if raw == nil {
		return dbm.NullValue()
	}
	switch v := raw.(type) {
	case []byte:
		return dbm.ParseLiteral(string(v), t)
	case string:
		return dbm.ParseLiteral(v, t)
	case int64:
		if t == dbm.IntType {
			return dbm.IntValue(v)
		}
		return dbm.ParseLiteral(fmt.Sprintf("%d", v), t)
	case float64:
		if t == dbm.FloatType {
			return dbm.FloatValue(v)
		}
		return dbm.ParseLiteral(fmt.Sprintf("%v", v), t)
	case bool:
		if t == dbm.BoolType {
			return dbm.BoolValue(v)
		}
		return dbm.ParseLiteral(fmt.Sprintf("%v", v), t)
	default:
		return dbm.ParseLiteral(fmt.Sprintf("%v", v), t)
	}
}

func quoteTableName(table string) string {
	if strings.ContainsAny(table, " \"'`;") {
		return `"` + table + `"`
	}
	return table
}
