package dbm

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"time"

	"github.com/mstgnz/dbm/err"
)

// On-disk layout (§4.2, redesigned per the Design Notes to be
// length-prefixed and explicitly little-endian rather than embedding a
// fixed 256-byte buffer per text cell):
//
//	header:   magic u32 | version u32 | name (str) | createdAt i64 (unix nanos) | ntables u32
//	table:    name (str) | ncols u32 | cols[ncols] | nrows u32 | nextID i64 | rows[nrows]
//	col:      name (str) | type u8 | nullable u8 | pk u8
//	row:      deleted u8 | cells[ncols]
//	cell:     null u8 | payload (absent if null)
//	payload:  INT -> i64 | FLOAT -> f64 bits | BOOL -> u8 | TEXT -> str
//	str:      len u16 | len bytes of UTF-8
//
// A short read at any point during a table's rows truncates that table
// (keeping whatever rows were read) and stops reading further tables,
// per §4.2; the database returned from Load reflects everything read
// up to that point.

// Save performs a full, synchronous rewrite of d to d.Path (§4.2, I5).
func (d *Database) Save() error {
	f, ferr := os.Create(d.Path)
	if ferr != nil {
		return err.New(err.ErrTypeIO, "failed to open database file for write", ferr).WithContext("path", d.Path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if werr := writeHeader(w, d.Header, len(d.Tables)); werr != nil {
		return err.New(err.ErrTypeIO, "failed to write database header", werr)
	}
	for _, t := range d.Tables {
		if werr := writeTable(w, t); werr != nil {
			return err.New(err.ErrTypeIO, "failed to write table", werr).WithContext("table", t.Name)
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return err.New(err.ErrTypeIO, "failed to flush database file", ferr)
	}
	return nil
}

// Load reads path into a *Database. A nonexistent path yields a fresh,
// empty database (no error). A present file with a bad magic number
// fails with an ErrTypeFormat error (§6, §7).
func Load(path string) (*Database, error) {
	f, ferr := os.Open(path)
	if os.IsNotExist(ferr) {
		return newEmpty(path), nil
	}
	if ferr != nil {
		return nil, err.New(err.ErrTypeIO, "failed to open database file", ferr).WithContext("path", path)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	hdr, ntables, herr := readHeader(r)
	if herr != nil {
		if herr == errBadMagic {
			return nil, err.New(err.ErrTypeFormat, "bad magic number", herr).WithContext("path", path)
		}
		return nil, err.New(err.ErrTypeFormat, "truncated database header", herr).WithContext("path", path)
	}

	db := &Database{Header: hdr, Path: path}
	for i := 0; i < ntables; i++ {
		t, truncated, terr := readTable(r)
		if terr != nil {
			// Could not even read the table's name: nothing more to recover.
			break
		}
		if t != nil {
			db.AddTable(t)
		}
		if truncated {
			break
		}
	}
	return db, nil
}

type sentinelErr string

func (s sentinelErr) Error() string { return string(s) }

var errBadMagic error = sentinelErr("bad magic number")

func writeHeader(w *bufio.Writer, h Header, ntables int) error {
	if e := writeU32(w, h.Magic); e != nil {
		return e
	}
	if e := writeU32(w, h.Version); e != nil {
		return e
	}
	if e := writeString(w, h.Name); e != nil {
		return e
	}
	if e := writeI64(w, h.CreatedAt.UnixNano()); e != nil {
		return e
	}
	return writeU32(w, uint32(ntables))
}

func readHeader(r *bufio.Reader) (Header, int, error) {
	magic, e := readU32(r)
	if e != nil {
		return Header{}, 0, e
	}
	if magic != Magic {
		return Header{}, 0, errBadMagic
	}
	version, e := readU32(r)
	if e != nil {
		return Header{}, 0, e
	}
	name, e := readString(r)
	if e != nil {
		return Header{}, 0, e
	}
	nanos, e := readI64(r)
	if e != nil {
		return Header{}, 0, e
	}
	ntables, e := readU32(r)
	if e != nil {
		return Header{}, 0, e
	}
	return Header{
		Magic:     magic,
		Version:   version,
		Name:      name,
		CreatedAt: time.Unix(0, nanos),
	}, int(ntables), nil
}

func writeTable(w *bufio.Writer, t *Table) error {
	if e := writeString(w, t.Name); e != nil {
		return e
	}
	if e := writeU32(w, uint32(len(t.Columns))); e != nil {
		return e
	}
	for _, c := range t.Columns {
		if e := writeColumn(w, c); e != nil {
			return e
		}
	}
	if e := writeU32(w, uint32(len(t.Rows))); e != nil {
		return e
	}
	if e := writeI64(w, t.NextID); e != nil {
		return e
	}
	for _, row := range t.Rows {
		if e := writeRow(w, t.Columns, row); e != nil {
			return e
		}
	}
	return nil
}

// readTable reads one table. truncated reports whether a short read
// was hit while reading its rows (the table is still returned with
// whatever rows were read so far, per §4.2).
func readTable(r *bufio.Reader) (*Table, bool, error) {
	name, e := readString(r)
	if e != nil {
		return nil, false, e
	}
	ncols, e := readU32(r)
	if e != nil {
		return nil, true, nil
	}
	cols := make([]Column, 0, ncols)
	for i := uint32(0); i < ncols; i++ {
		c, e := readColumn(r)
		if e != nil {
			return &Table{Name: name, Columns: cols}, true, nil
		}
		cols = append(cols, c)
	}
	nrows, e := readU32(r)
	if e != nil {
		return &Table{Name: name, Columns: cols}, true, nil
	}
	nextID, e := readI64(r)
	if e != nil {
		return &Table{Name: name, Columns: cols}, true, nil
	}
	tbl := &Table{Name: name, Columns: cols, NextID: nextID, Rows: make([]Row, 0, nrows)}
	for i := uint32(0); i < nrows; i++ {
		row, e := readRow(r, cols)
		if e != nil {
			return tbl, true, nil
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, false, nil
}

func writeColumn(w *bufio.Writer, c Column) error {
	if e := writeString(w, c.Name); e != nil {
		return e
	}
	if e := writeU8(w, uint8(c.Type)); e != nil {
		return e
	}
	if e := writeU8(w, boolByte(c.Nullable)); e != nil {
		return e
	}
	return writeU8(w, boolByte(c.PrimaryKey))
}

func readColumn(r *bufio.Reader) (Column, error) {
	name, e := readString(r)
	if e != nil {
		return Column{}, e
	}
	typ, e := readU8(r)
	if e != nil {
		return Column{}, e
	}
	nullable, e := readU8(r)
	if e != nil {
		return Column{}, e
	}
	pk, e := readU8(r)
	if e != nil {
		return Column{}, e
	}
	return Column{Name: name, Type: ColumnType(typ), Nullable: nullable != 0, PrimaryKey: pk != 0}, nil
}

func writeRow(w *bufio.Writer, cols []Column, row Row) error {
	if e := writeU8(w, boolByte(row.Deleted)); e != nil {
		return e
	}
	for i, c := range cols {
		v := NullValue()
		if i < len(row.Values) {
			v = row.Values[i]
		}
		if e := writeCell(w, c.Type, v); e != nil {
			return e
		}
	}
	return nil
}

func readRow(r *bufio.Reader, cols []Column) (Row, error) {
	deleted, e := readU8(r)
	if e != nil {
		return Row{}, e
	}
	vals := make([]Value, len(cols))
	for i, c := range cols {
		v, e := readCell(r, c.Type)
		if e != nil {
			return Row{}, e
		}
		vals[i] = v
	}
	return Row{Values: vals, Deleted: deleted != 0}, nil
}

func writeCell(w *bufio.Writer, t ColumnType, v Value) error {
	if v.Null {
		return writeU8(w, 1)
	}
	if e := writeU8(w, 0); e != nil {
		return e
	}
	switch t {
	case IntType:
		return writeI64(w, v.I)
	case FloatType:
		return writeU64(w, math.Float64bits(v.F))
	case BoolType:
		return writeU8(w, boolByte(v.B))
	default:
		return writeString(w, v.S)
	}
}

func readCell(r *bufio.Reader, t ColumnType) (Value, error) {
	isNull, e := readU8(r)
	if e != nil {
		return Value{}, e
	}
	if isNull != 0 {
		return NullValue(), nil
	}
	switch t {
	case IntType:
		i, e := readI64(r)
		if e != nil {
			return Value{}, e
		}
		return IntValue(i), nil
	case FloatType:
		bits, e := readU64(r)
		if e != nil {
			return Value{}, e
		}
		return FloatValue(math.Float64frombits(bits)), nil
	case BoolType:
		b, e := readU8(r)
		if e != nil {
			return Value{}, e
		}
		return BoolValue(b != 0), nil
	default:
		s, e := readString(r)
		if e != nil {
			return Value{}, e
		}
		return TextValue(s), nil
	}
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// --- primitive little-endian read/write helpers ---

func writeU8(w *bufio.Writer, v uint8) error  { return w.WriteByte(v) }
func readU8(r *bufio.Reader) (uint8, error)   { return r.ReadByte() }

func writeU32(w *bufio.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readU32(r *bufio.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeU64(w *bufio.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readU64(r *bufio.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeI64(w *bufio.Writer, v int64) error { return writeU64(w, uint64(v)) }
func readI64(r *bufio.Reader) (int64, error) {
	u, err := readU64(r)
	return int64(u), err
}

func writeString(w *bufio.Writer, s string) error {
	if len(s) > 1<<16-1 {
		s = s[:1<<16-1]
	}
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(s)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.WriteString(s)
	return err
}

func readString(r *bufio.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.LittleEndian.Uint16(lenBuf[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
