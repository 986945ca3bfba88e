package engine

import (
	"strings"

	"github.com/mstgnz/dbm"
)

// predicateKind discriminates the two WHERE forms (§4.13).
type predicateKind int

const (
	predIsNull predicateKind = iota
	predIsNotNull
	predCompare
	predNever // unparseable clause: matches no row
)

// compareOp is one of the seven comparison operators.
type compareOp string

const (
	opEq compareOp = "="
	opNe compareOp = "!="
	opLt compareOp = "<"
	opGt compareOp = ">"
	opLe compareOp = "<="
	opGe compareOp = ">="
)

// predicate is the single condition a WHERE clause may carry (§4.13,
// "preserve this ceiling" per the design notes — no AND/OR).
type predicate struct {
	kind   predicateKind
	column string
	op     compareOp
	lit    string
}

// parseWhere parses the text following WHERE (not including the
// keyword itself). It never fails: an unparseable clause degrades to
// a predicate that matches nothing, since the surrounding statement
// grammar is responsible for detecting a missing WHERE entirely.
func parseWhere(clause string) (predicate, bool) {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return predicate{}, false
	}

	// Longer match first: "IS NOT NULL" before "IS NULL".
	if idx := findFold(clause, " IS NOT NULL"); idx >= 0 {
		return predicate{kind: predIsNotNull, column: strings.TrimSpace(clause[:idx])}, true
	}
	if idx := findFold(clause, " IS NULL"); idx >= 0 {
		return predicate{kind: predIsNull, column: strings.TrimSpace(clause[:idx])}, true
	}

	// Two-character operators must be tried before their single-character
	// prefixes to avoid e.g. "<=" being split as "<" then "=...".
	for _, op := range []compareOp{opLe, opGe, opNe, "<>", opEq, opLt, opGt} {
		if idx := strings.Index(clause, string(op)); idx >= 0 {
			col := strings.TrimSpace(clause[:idx])
			lit := unquote(strings.TrimSpace(clause[idx+len(op):]))
			resolved := op
			if op == "<>" {
				resolved = opNe
			}
			return predicate{kind: predCompare, column: col, op: resolved, lit: lit}, true
		}
	}
	return predicate{kind: predNever}, true
}

// findFold returns the index of the first case-insensitive occurrence
// of sub in s, or -1.
func findFold(s, sub string) int {
	upper := strings.ToUpper(s)
	return strings.Index(upper, strings.ToUpper(sub))
}

// matches evaluates p against row given the table's schema (§4.13).
// A column not found in the schema makes the predicate false.
func (p predicate) matches(t *dbm.Table, row dbm.Row) bool {
	if p.kind == predNever {
		return false
	}
	idx, found := t.ColumnIndex(p.column)
	if !found {
		return false
	}
	v := row.Values[idx]

	switch p.kind {
	case predIsNull:
		return v.Null
	case predIsNotNull:
		return !v.Null
	default:
		if v.Null {
			return false
		}
		return compareValue(v, t.Columns[idx].Type, p.lit, p.op)
	}
}

// compareValue parses lit into col's type and maps the ordering sign
// against v to op's semantics (§4.13).
func compareValue(v dbm.Value, col dbm.ColumnType, lit string, op compareOp) bool {
	lv := dbm.ParseLiteral(lit, col)
	sign := orderingSign(v, lv, col)

	switch op {
	case opEq:
		return sign == 0
	case opNe:
		return sign != 0
	case opLt:
		return sign < 0
	case opGt:
		return sign > 0
	case opLe:
		return sign <= 0
	case opGe:
		return sign >= 0
	default:
		return false
	}
}

// orderingSign returns -1, 0, or 1 comparing a against b, both of
// column type col: numeric ordering for INT/FLOAT, case-insensitive
// lexicographic for TEXT, false < true for BOOL (§4.13).
func orderingSign(a, b dbm.Value, col dbm.ColumnType) int {
	switch col {
	case dbm.IntType:
		return sign64(a.I, b.I)
	case dbm.FloatType:
		switch {
		case a.F < b.F:
			return -1
		case a.F > b.F:
			return 1
		default:
			return 0
		}
	case dbm.BoolType:
		return sign64(boolRank(a.B), boolRank(b.B))
	default:
		return strings.Compare(strings.ToLower(a.S), strings.ToLower(b.S))
	}
}

func sign64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolRank(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
