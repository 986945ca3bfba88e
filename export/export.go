// Package export renders a dbm table as another dialect's CREATE
// TABLE + INSERT INTO text (§4.16). It does not connect to any
// database — it only emits text for the caller to use elsewhere.
package export

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// Dialect names a target SQL dialect understood by Render.
type Dialect string

const (
	MySQL      Dialect = "MYSQL"
	PostgreSQL Dialect = "POSTGRES"
	SQLite     Dialect = "SQLITE"
)

// generator is implemented once per dialect, each holding the
// identifier-quoting and type-mapping conventions mysql.MySQL,
// postgres.PostgreSQL, and sqlite.SQLite each encode per-dialect.
type generator interface {
	quote(identifier string) string
	columnType(c dbm.Column) string
	boolLiteral(b bool) string
}

// ParseDialect maps a dialect keyword (case-insensitive) to a
// Dialect. ok is false for an unrecognized keyword.
func ParseDialect(name string) (Dialect, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MYSQL":
		return MySQL, true
	case "POSTGRES", "POSTGRESQL":
		return PostgreSQL, true
	case "SQLITE":
		return SQLite, true
	default:
		return "", false
	}
}

// Render produces the dialect's CREATE TABLE statement for t's schema
// followed by one INSERT INTO statement per non-tombstoned row.
func Render(t *dbm.Table, dialect Dialect) (string, error) {
	g, err := generatorFor(dialect)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(generateTableSQL(t, g))
	out.WriteString("\n")

	for _, row := range t.Rows {
		if row.Deleted {
			continue
		}
		out.WriteString(generateInsertSQL(t, row, g))
		out.WriteString("\n")
	}
	return out.String(), nil
}

func generatorFor(d Dialect) (generator, error) {
	switch d {
	case MySQL:
		return mysqlGenerator{}, nil
	case PostgreSQL:
		return postgresGenerator{}, nil
	case SQLite:
		return sqliteGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", d)
	}
}

// generateTableSQL builds a CREATE TABLE statement the way each
// dialect's own generateTableSQL method does: a builder that writes
// one quoted, typed column definition per line.
func generateTableSQL(t *dbm.Table, g generator) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", g.quote(t.Name))
	for i, c := range t.Columns {
		b.WriteString("    " + g.quote(c.Name) + " " + g.columnType(c))
		if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		if c.PrimaryKey {
			b.WriteString(" PRIMARY KEY")
		}
		if i < len(t.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String()
}

func generateInsertSQL(t *dbm.Table, row dbm.Row, g generator) string {
	names := make([]string, len(t.Columns))
	vals := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = g.quote(c.Name)
		vals[i] = formatLiteral(row.Values[i], c, g)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		g.quote(t.Name), strings.Join(names, ", "), strings.Join(vals, ", "))
}

func formatLiteral(v dbm.Value, c dbm.Column, g generator) string {
	if v.Null {
		return "NULL"
	}
	switch c.Type {
	case dbm.TextType:
		return "'" + strings.ReplaceAll(v.S, "'", "''") + "'"
	case dbm.BoolType:
		return g.boolLiteral(v.B)
	default:
		return v.Format()
	}
}
