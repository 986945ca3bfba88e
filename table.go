package dbm

import "strings"

// MaxNameBytes bounds a table or column name (§3).
const MaxNameBytes = 63

// MaxColumns bounds the number of columns in a table (§3).
const MaxColumns = 32

// initialRowCapacity is the starting backing-array size for a new
// table's row list (§4.4); Go's append already doubles capacity as
// needed, so this is only an initial hint, not a hard ceiling.
const initialRowCapacity = 16

// Column is one column's metadata. The PK flag is stored but never
// enforced (§3).
type Column struct {
	Name       string
	Type       ColumnType
	Nullable   bool
	PrimaryKey bool
}

// Row is a fixed-width record: one Value per column of its table, plus
// a tombstone flag. Rows never move between tables and are never
// reordered; a tombstoned row keeps its slot until VACUUM (§3, I4).
type Row struct {
	Values  []Value
	Deleted bool
}

// Table is an ordered column list plus an ordered, possibly-tombstoned
// row list, and a monotonically increasing id counter (I6).
type Table struct {
	Name    string
	Columns []Column
	Rows    []Row
	NextID  int64
}

// NewTable creates an empty table with the given name and columns.
func NewTable(name string, columns []Column) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
		Rows:    make([]Row, 0, initialRowCapacity),
	}
}

// ColumnIndex returns the index of the column named name (case-insensitive)
// and true, or (-1, false) if no such column exists (I3).
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// AppendRow appends a new, non-deleted row holding vals (one per
// column, in column order) and increments NextID (§4.6, I6). It returns
// the new row's index.
func (t *Table) AppendRow(vals []Value) int {
	t.Rows = append(t.Rows, Row{Values: vals})
	t.NextID++
	return len(t.Rows) - 1
}

// VisibleRowCount returns the number of non-tombstoned rows (I4).
func (t *Table) VisibleRowCount() int {
	n := 0
	for _, r := range t.Rows {
		if !r.Deleted {
			n++
		}
	}
	return n
}

// Vacuum rewrites Rows to drop every tombstoned entry, returning the
// number of rows purged. NextID is left unchanged (§4.12).
func (t *Table) Vacuum() int {
	kept := t.Rows[:0]
	purged := 0
	for _, r := range t.Rows {
		if r.Deleted {
			purged++
			continue
		}
		kept = append(kept, r)
	}
	t.Rows = kept
	return purged
}
