package export

import "github.com/mstgnz/dbm"

// mysqlGenerator renders backtick-quoted identifiers and
// AUTO_INCREMENT-flavored INT primary keys, matching
// mysql.MySQL.generateColumnSQL's conventions.
type mysqlGenerator struct{}

func (mysqlGenerator) quote(identifier string) string {
	return "`" + identifier + "`"
}

func (mysqlGenerator) columnType(c dbm.Column) string {
	switch c.Type {
	case dbm.IntType:
		if c.PrimaryKey {
			return "INT AUTO_INCREMENT"
		}
		return "INT"
	case dbm.FloatType:
		return "DOUBLE"
	case dbm.BoolType:
		return "TINYINT(1)"
	default:
		return "VARCHAR(255)"
	}
}

func (mysqlGenerator) boolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
