package export

import "github.com/mstgnz/dbm"

// postgresGenerator renders double-quoted identifiers and
// SERIAL/BOOLEAN types, matching
// postgres.PostgreSQL.generateTableSQL's conventions.
type postgresGenerator struct{}

func (postgresGenerator) quote(identifier string) string {
	return `"` + identifier + `"`
}

func (postgresGenerator) columnType(c dbm.Column) string {
	switch c.Type {
	case dbm.IntType:
		if c.PrimaryKey {
			return "SERIAL"
		}
		return "BIGINT"
	case dbm.FloatType:
		return "DOUBLE PRECISION"
	case dbm.BoolType:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

func (postgresGenerator) boolLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
