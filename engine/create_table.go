package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execCreateTable implements CREATE TABLE <name> ( <col_def>, ... )
// (§4.4).
func execCreateTable(db *dbm.Database, rest string) Result {
	nameEnd := strings.IndexByte(rest, '(')
	if nameEnd < 0 {
		return fail("Missing opening parenthesis")
	}
	name := strings.TrimSpace(rest[:nameEnd])
	if name == "" {
		return fail("Missing table name")
	}
	if len(name) > dbm.MaxNameBytes {
		return fail(fmt.Sprintf("Table name '%s' too long (max %d bytes)", name, dbm.MaxNameBytes))
	}
	if _, exists := db.TableIndex(name); exists {
		return fail(fmt.Sprintf("Table '%s' exists", name))
	}
	if len(db.Tables) >= dbm.MaxTables {
		return fail(fmt.Sprintf("Too many tables (max %d)", dbm.MaxTables))
	}

	inner, found := splitParen(rest)
	if !found {
		return fail("Missing closing parenthesis")
	}

	defs := splitTopLevel(inner, ',')
	columns := make([]dbm.Column, 0, len(defs))
	for _, def := range defs {
		def = strings.TrimSpace(def)
		if def == "" {
			continue
		}
		col, cerr := parseColumnDef(def)
		if cerr != "" {
			return fail(cerr)
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return fail("CREATE TABLE requires at least one column")
	}
	if len(columns) > dbm.MaxColumns {
		return fail(fmt.Sprintf("Too many columns (max %d)", dbm.MaxColumns))
	}

	db.AddTable(dbm.NewTable(name, columns))
	return ok(fmt.Sprintf("Table '%s' created (%d cols)", name, len(columns)), 0)
}

// parseColumnDef parses one "<name> <type> [PRIMARY KEY] [NOT NULL]"
// fragment. PRIMARY KEY and NOT NULL may appear in either order;
// presence is detected by case-insensitive substring, per §4.4.
func parseColumnDef(def string) (dbm.Column, string) {
	fields := strings.Fields(def)
	if len(fields) < 2 {
		return dbm.Column{}, fmt.Sprintf("Malformed column definition '%s'", def)
	}
	name := fields[0]
	typeName := fields[1]
	if len(name) > dbm.MaxNameBytes {
		return dbm.Column{}, fmt.Sprintf("Column name '%s' too long (max %d bytes)", name, dbm.MaxNameBytes)
	}

	colType, known := dbm.ParseColumnType(typeName)
	if !known {
		return dbm.Column{}, fmt.Sprintf("Unknown type '%s'", typeName)
	}

	upper := strings.ToUpper(def)
	return dbm.Column{
		Name:       name,
		Type:       colType,
		PrimaryKey: strings.Contains(upper, "PRIMARY KEY"),
		Nullable:   !strings.Contains(upper, "NOT NULL"),
	}, ""
}
