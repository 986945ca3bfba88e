package export

import "github.com/mstgnz/dbm"

// sqliteGenerator renders double-quoted identifiers and
// INTEGER/TEXT-affinity types, matching
// sqlite.SQLite.generateTableSQL's conventions.
type sqliteGenerator struct{}

func (sqliteGenerator) quote(identifier string) string {
	return `"` + identifier + `"`
}

func (sqliteGenerator) columnType(c dbm.Column) string {
	switch c.Type {
	case dbm.IntType:
		return "INTEGER"
	case dbm.FloatType:
		return "REAL"
	case dbm.BoolType:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func (sqliteGenerator) boolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
