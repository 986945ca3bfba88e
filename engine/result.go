// Package engine implements the SQL dispatcher, statement parsers, and
// WHERE predicate evaluator that drive a *dbm.Database.
package engine

import "github.com/mstgnz/dbm"

// ResultHeader names one projected column and the type it was read
// from, copied from the source schema at query time (§4.14).
type ResultHeader struct {
	Name string
	Type dbm.ColumnType
}

// Result is the uniformly-shaped value every dispatched statement
// returns: an ok flag, a human-readable message, an affected-row
// count, and an optional tabular payload for statements that project
// rows (§4.14). A result with Header == nil carries no payload.
type Result struct {
	OK       bool
	Message  string
	Affected int
	Header   []ResultHeader
	Rows     [][]string
}

// ok builds a successful, payload-less result (used by every mutating
// handler on success).
func ok(message string, affected int) Result {
	return Result{OK: true, Message: message, Affected: affected}
}

// fail builds an unsuccessful result. No payload is ever attached to a
// failed result (§4.14).
func fail(message string) Result {
	return Result{OK: false, Message: message}
}

// rowsResult builds a successful, tabular result (used by SELECT,
// SHOW TABLES, DESCRIBE, EXPORT).
func rowsResult(header []ResultHeader, rows [][]string, message string) Result {
	return Result{OK: true, Message: message, Affected: len(rows), Header: header, Rows: rows}
}
