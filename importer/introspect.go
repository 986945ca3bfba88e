package importer

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// SourceColumn is one column as introspected from
// information_schema.columns, grounded in
// db.SchemaManager.GetSchemaInfo's query.
type SourceColumn struct {
	Name       string
	SourceType string
	Nullable   bool
}

// introspectColumns queries information_schema.columns for table's
// columns, in ordinal order. Both MySQL and PostgreSQL expose this
// view with the same column names used here; only the placeholder
// syntax differs between the two drivers.
func introspectColumns(conn *sql.DB, d Dialect, table string) ([]SourceColumn, error) {
	placeholder := "?"
	if d == PostgreSQL {
		placeholder = "$1"
	}
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_name = ` + placeholder + `
		ORDER BY ordinal_position
	`
	rows, err := conn.Query(query, table)
	if err != nil {
		return nil, fmt.Errorf("introspect table %q: %w", table, err)
	}
	defer rows.Close()

	var cols []SourceColumn
	for rows.Next() {
		var name, dataType, isNullable string
		if err := rows.Scan(&name, &dataType, &isNullable); err != nil {
			return nil, fmt.Errorf("scan column metadata: %w", err)
		}
		cols = append(cols, SourceColumn{
			Name:       name,
			SourceType: dataType,
			Nullable:   strings.EqualFold(isNullable, "YES"),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %q not found or has no columns", table)
	}
	return cols, nil
}

// mapColumnType maps a source SQL type family to one of this
// engine's four column types (§4.16): INT for integer families,
// FLOAT for floating/decimal families, BOOL for boolean, TEXT for
// everything else.
func mapColumnType(sourceType string) dbm.ColumnType {
	t := strings.ToLower(sourceType)
	switch {
	case strings.Contains(t, "int"):
		return dbm.IntType
	case strings.Contains(t, "float"), strings.Contains(t, "double"),
		strings.Contains(t, "decimal"), strings.Contains(t, "numeric"),
		strings.Contains(t, "real"):
		return dbm.FloatType
	case strings.Contains(t, "bool"):
		return dbm.BoolType
	default:
		return dbm.TextType
	}
}

func (c SourceColumn) toColumn() dbm.Column {
	return dbm.Column{
		Name:     c.Name,
		Type:     mapColumnType(c.SourceType),
		Nullable: c.Nullable,
	}
}
