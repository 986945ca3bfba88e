package dbm

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnType is one of the four scalar types a column may hold.
type ColumnType int

const (
	IntType ColumnType = iota
	FloatType
	TextType
	BoolType
)

// MaxTextBytes bounds a TEXT value's stored content (§4.1); TextValue
// truncates to it. The on-disk string encoding (file.go) is
// length-prefixed and does not itself impose this limit.
const MaxTextBytes = 255

func (t ColumnType) String() string {
	switch t {
	case IntType:
		return "INT"
	case FloatType:
		return "FLOAT"
	case TextType:
		return "TEXT"
	case BoolType:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// ParseColumnType maps a SQL type keyword (case-insensitive) to a
// ColumnType. ok is false for an unrecognized keyword.
func ParseColumnType(name string) (ColumnType, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INT", "INTEGER":
		return IntType, true
	case "FLOAT", "DOUBLE", "REAL":
		return FloatType, true
	case "TEXT", "VARCHAR", "STRING":
		return TextType, true
	case "BOOL", "BOOLEAN":
		return BoolType, true
	default:
		return 0, false
	}
}

// Value is a tagged datum: Null, or a payload whose Kind matches its
// column's ColumnType (invariant I2). Kind is meaningless when Null is
// true.
type Value struct {
	Null bool
	Kind ColumnType
	I    int64
	F    float64
	S    string
	B    bool
}

// NullValue is the canonical null Value.
func NullValue() Value { return Value{Null: true} }

func IntValue(i int64) Value     { return Value{Kind: IntType, I: i} }
func FloatValue(f float64) Value { return Value{Kind: FloatType, F: f} }
func BoolValue(b bool) Value     { return Value{Kind: BoolType, B: b} }

// TextValue truncates s at MaxTextBytes, per §4.1.
func TextValue(s string) Value {
	if len(s) > MaxTextBytes {
		s = s[:MaxTextBytes]
	}
	return Value{Kind: TextType, S: s}
}

// ParseLiteral converts a textual literal into a Value of the given
// column type. Ill-formed numeric literals yield the type's zero value
// rather than an error (§4.1); literal-shape errors are reported at the
// statement-parsing layer, not here.
func ParseLiteral(lit string, t ColumnType) Value {
	switch t {
	case IntType:
		n, err := strconv.ParseInt(strings.TrimSpace(lit), 10, 64)
		if err != nil {
			n = 0
		}
		return IntValue(n)
	case FloatType:
		f, err := strconv.ParseFloat(strings.TrimSpace(lit), 64)
		if err != nil {
			f = 0
		}
		return FloatValue(f)
	case BoolType:
		trimmed := strings.TrimSpace(lit)
		return BoolValue(strings.EqualFold(trimmed, "true") || trimmed == "1")
	default: // TextType
		return TextValue(lit)
	}
}

// Format renders v in its canonical textual form: NULL, an unpadded
// integer, a 6-significant-digit float, "true"/"false", or the raw text.
func (v Value) Format() string {
	if v.Null {
		return "NULL"
	}
	switch v.Kind {
	case IntType:
		return strconv.FormatInt(v.I, 10)
	case FloatType:
		return strconv.FormatFloat(v.F, 'g', 6, 64)
	case BoolType:
		if v.B {
			return "true"
		}
		return "false"
	default:
		return v.S
	}
}

func (v Value) String() string { return fmt.Sprintf("Value(%s)", v.Format()) }
