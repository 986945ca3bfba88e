package dbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleColumns() []Column {
	return []Column{
		{Name: "id", Type: IntType, PrimaryKey: true},
		{Name: "name", Type: TextType, Nullable: true},
	}
}

func TestNewTable(t *testing.T) {
	tbl := NewTable("users", sampleColumns())
	assert.Equal(t, "users", tbl.Name)
	assert.Len(t, tbl.Columns, 2)
	assert.Equal(t, 0, len(tbl.Rows))
	assert.Equal(t, int64(0), tbl.NextID)
}

func TestTable_ColumnIndex(t *testing.T) {
	tbl := NewTable("users", sampleColumns())

	idx, ok := tbl.ColumnIndex("NAME")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = tbl.ColumnIndex("missing")
	assert.False(t, ok)
}

func TestTable_AppendRow(t *testing.T) {
	tbl := NewTable("users", sampleColumns())

	i1 := tbl.AppendRow([]Value{IntValue(1), TextValue("alice")})
	i2 := tbl.AppendRow([]Value{IntValue(2), TextValue("bob")})

	assert.Equal(t, 0, i1)
	assert.Equal(t, 1, i2)
	assert.Equal(t, int64(2), tbl.NextID)
	assert.Equal(t, 2, tbl.VisibleRowCount())
}

func TestTable_VisibleRowCount_ExcludesTombstones(t *testing.T) {
	tbl := NewTable("users", sampleColumns())
	tbl.AppendRow([]Value{IntValue(1), TextValue("alice")})
	tbl.AppendRow([]Value{IntValue(2), TextValue("bob")})
	tbl.Rows[0].Deleted = true

	assert.Equal(t, 1, tbl.VisibleRowCount())
}

func TestTable_Vacuum(t *testing.T) {
	tbl := NewTable("users", sampleColumns())
	tbl.AppendRow([]Value{IntValue(1), TextValue("alice")})
	tbl.AppendRow([]Value{IntValue(2), TextValue("bob")})
	tbl.AppendRow([]Value{IntValue(3), TextValue("carol")})
	tbl.Rows[0].Deleted = true
	tbl.Rows[2].Deleted = true

	purged := tbl.Vacuum()

	assert.Equal(t, 2, purged)
	assert.Len(t, tbl.Rows, 1)
	assert.Equal(t, "bob", tbl.Rows[0].Values[1].S)
	// NextID is unaffected by compaction.
	assert.Equal(t, int64(3), tbl.NextID)
}

func TestTable_Vacuum_NoTombstones(t *testing.T) {
	tbl := NewTable("users", sampleColumns())
	tbl.AppendRow([]Value{IntValue(1), TextValue("alice")})

	purged := tbl.Vacuum()

	assert.Equal(t, 0, purged)
	assert.Len(t, tbl.Rows, 1)
}
