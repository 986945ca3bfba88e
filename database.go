package dbm

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxTables bounds the number of tables a Database may hold (§3).
const MaxTables = 64

// Magic identifies a dbm file: "BGMD" read little-endian (§6).
const Magic uint32 = 0x444D4742

// FormatVersion is the on-disk format version this package writes. Load
// stores the version it finds in Header.Version and does not reject
// other values.
const FormatVersion uint32 = 1

// Header is the fixed leading portion of a dbm file.
type Header struct {
	Magic     uint32
	Version   uint32
	Name      string
	CreatedAt time.Time
}

// Database owns an ordered list of tables and the path it is persisted
// to. All mutation goes through a single, non-reentrant handle; the
// caller must serialize calls (§5).
type Database struct {
	Header Header
	Tables []*Table
	Path   string
}

// nameFromPath derives a database name from a file path's stem, the
// way opening a nonexistent path seeds Header.Name (§6).
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// newEmpty builds a freshly-initialized, empty database for path.
func newEmpty(path string) *Database {
	return &Database{
		Header: Header{
			Magic:     Magic,
			Version:   FormatVersion,
			Name:      nameFromPath(path),
			CreatedAt: time.Now(),
		},
		Path: path,
	}
}

// TableIndex returns the index of the table named name (case-insensitive)
// and true, or (-1, false) if none exists (I3).
func (d *Database) TableIndex(name string) (int, bool) {
	for i, t := range d.Tables {
		if strings.EqualFold(t.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// Table returns the table named name, or nil.
func (d *Database) Table(name string) *Table {
	if i, ok := d.TableIndex(name); ok {
		return d.Tables[i]
	}
	return nil
}

// AddTable appends t, which must not already be present under any name
// collision; callers are expected to have checked TableIndex first.
func (d *Database) AddTable(t *Table) {
	d.Tables = append(d.Tables, t)
}

// DropTable removes the table named name, shifting later tables down to
// keep the list contiguous. It reports whether a table was removed.
func (d *Database) DropTable(name string) bool {
	i, ok := d.TableIndex(name)
	if !ok {
		return false
	}
	d.Tables = append(d.Tables[:i], d.Tables[i+1:]...)
	return true
}
