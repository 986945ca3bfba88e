package dbm

import (
	"os"
	"path/filepath"
	"testing"

	dberr "github.com/mstgnz/dbm/err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NonexistentPathYieldsEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.dbm")

	db, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "fresh", db.Header.Name)
	assert.Empty(t, db.Tables)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dbm")

	db := newEmpty(path)
	tbl := NewTable("users", []Column{
		{Name: "id", Type: IntType, PrimaryKey: true},
		{Name: "name", Type: TextType, Nullable: true},
		{Name: "balance", Type: FloatType},
		{Name: "active", Type: BoolType},
	})
	tbl.AppendRow([]Value{IntValue(1), TextValue("alice"), FloatValue(10.5), BoolValue(true)})
	tbl.AppendRow([]Value{IntValue(2), NullValue(), FloatValue(0), BoolValue(false)})
	tbl.Rows[1].Deleted = true
	db.AddTable(tbl)

	require.NoError(t, db.Save())

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, db.Header.Magic, loaded.Header.Magic)
	assert.Equal(t, db.Header.Version, loaded.Header.Version)
	assert.Equal(t, db.Header.Name, loaded.Header.Name)
	require.Len(t, loaded.Tables, 1)

	got := loaded.Tables[0]
	assert.Equal(t, "users", got.Name)
	assert.Equal(t, int64(2), got.NextID)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "alice", got.Rows[0].Values[1].S)
	assert.False(t, got.Rows[0].Deleted)
	assert.True(t, got.Rows[1].Values[1].Null)
	assert.True(t, got.Rows[1].Deleted)
}

func TestLoad_BadMagicFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.dbm")
	require.NoError(t, os.WriteFile(path, []byte("not a dbm file at all"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, dberr.IsFormatError(err))
}

func TestLoad_TruncatedFileStopsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.dbm")

	db := newEmpty(path)
	tbl := NewTable("users", []Column{{Name: "id", Type: IntType}})
	tbl.AppendRow([]Value{IntValue(1)})
	tbl.AppendRow([]Value{IntValue(2)})
	db.AddTable(tbl)
	require.NoError(t, db.Save())

	full, ferr := os.ReadFile(path)
	require.NoError(t, ferr)
	// Cut off partway through the table's row data; the header and
	// column metadata survive intact.
	truncated := full[:len(full)-3]
	require.NoError(t, os.WriteFile(path, truncated, 0o644))

	loaded, err := Load(path)

	require.NoError(t, err)
	require.Len(t, loaded.Tables, 1)
	assert.Equal(t, "users", loaded.Tables[0].Name)
	assert.LessOrEqual(t, len(loaded.Tables[0].Rows), 2)
}
