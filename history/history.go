// Package history keeps a bounded, in-memory log of executed
// mutating statements, adapted from migration.Migration/MigrationManager's
// applied-change tracking. It is purely observational: nothing here
// replays or consults past statements, preserving the "no
// multi-statement transactions" non-goal.
package history

import "time"

// Record is one logged statement, analogous to a Migration
// (ID/Name/Version/Status/AppliedAt), narrowed to what a single
// db_exec call produces.
type Record struct {
	Seq      int64
	Stmt     string
	Status   string
	Affected int
	At       time.Time
}

// DefaultCapacity bounds the ring when Log is built with NewLog(0).
const DefaultCapacity = 1000

// Log is a fixed-capacity ring of Records: once full, appending drops
// the oldest entry.
type Log struct {
	capacity int
	next     int64
	records  []Record
}

// NewLog creates a Log holding at most capacity records. A
// non-positive capacity falls back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Append records one statement's outcome, stamped at.
func (l *Log) Append(stmt, status string, affected int, at time.Time) Record {
	l.next++
	rec := Record{Seq: l.next, Stmt: stmt, Status: status, Affected: affected, At: at}
	l.records = append(l.records, rec)
	if len(l.records) > l.capacity {
		l.records = l.records[len(l.records)-l.capacity:]
	}
	return rec
}

// Records returns every record currently retained, oldest first.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports how many records are currently retained.
func (l *Log) Len() int {
	return len(l.records)
}
