package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/history"
	"github.com/mstgnz/dbm/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *dbm.Database {
	path := filepath.Join(t.TempDir(), "scenario.dbm")
	db, err := dbm.Open(path)
	require.NoError(t, err)
	return db
}

// TestScenarios_S1_S7 walks spec.md's §8 concrete scenarios end to end.
func TestScenarios_S1_S7(t *testing.T) {
	db := newDB(t)

	// S1
	res := Exec(db, "CREATE TABLE users (id INT PRIMARY KEY, name TEXT NOT NULL, age INT, active BOOL);")
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "Table 'users' created (4 cols)", res.Message)

	// S2
	res = Exec(db, "INSERT INTO users VALUES (1, 'Alice', 30, true);")
	require.True(t, res.OK, res.Message)

	res = Exec(db, "SELECT name, age FROM users WHERE age > 25;")
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "1 row(s) returned", res.Message)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"Alice", "30"}, res.Rows[0])

	// S3
	res = Exec(db, "INSERT INTO users (id, name) VALUES (2, 'Bob');")
	require.True(t, res.OK, res.Message)

	res = Exec(db, "SELECT * FROM users WHERE age IS NULL;")
	require.True(t, res.OK, res.Message)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"2", "Bob", "NULL", "NULL"}, res.Rows[0])

	// S4
	res = Exec(db, "UPDATE users SET active=false WHERE name='Alice';")
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "1 row(s) updated", res.Message)

	res = Exec(db, "SELECT active FROM users WHERE id=1;")
	require.True(t, res.OK, res.Message)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"false"}, res.Rows[0])

	// S5
	res = Exec(db, "DELETE FROM users WHERE age IS NULL;")
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "1 row(s) deleted", res.Message)

	res = Exec(db, "SHOW TABLES;")
	require.True(t, res.OK, res.Message)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"users", "4", "1"}, res.Rows[0])

	// S6
	res = Exec(db, "VACUUM;")
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "VACUUM: purged 1 row(s)", res.Message)

	res = Exec(db, "SHOW TABLES;")
	require.True(t, res.OK, res.Message)
	assert.Equal(t, []string{"users", "4", "1"}, res.Rows[0])

	// S7
	res = Exec(db, "SELECT * FROM missing;")
	assert.False(t, res.OK)
	assert.Equal(t, "Table 'missing' not found", res.Message)
}

func TestDropTable(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (id INT);")

	res := Exec(db, "DROP TABLE t;")
	assert.True(t, res.OK)

	res = Exec(db, "DROP TABLE t;")
	assert.False(t, res.OK)
	assert.Equal(t, "Table 't' not found", res.Message)
}

func TestDescribe(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (id INT PRIMARY KEY, name TEXT NOT NULL);")

	res := Exec(db, "DESCRIBE t;")
	require.True(t, res.OK)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"id", "INT", "YES", "YES"}, res.Rows[0])
	assert.Equal(t, []string{"name", "TEXT", "NO", "NO"}, res.Rows[1])

	res = Exec(db, "DESC t;")
	require.True(t, res.OK)
	assert.Len(t, res.Rows, 2)
}

func TestUpdate_UnknownColumnSilentlyIgnored(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (id INT);")
	Exec(db, "INSERT INTO t VALUES (1);")

	res := Exec(db, "UPDATE t SET bogus=5, id=2;")
	require.True(t, res.OK)
	assert.Equal(t, "1 row(s) updated", res.Message)

	res = Exec(db, "SELECT id FROM t;")
	require.True(t, res.OK)
	assert.Equal(t, []string{"2"}, res.Rows[0])
}

// P7: <> equals !=
func TestPredicate_NotEqualAliases(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (id INT);")
	Exec(db, "INSERT INTO t VALUES (5);")

	a := Exec(db, "SELECT id FROM t WHERE id <> 5;")
	b := Exec(db, "SELECT id FROM t WHERE id != 5;")
	assert.Equal(t, a.Rows, b.Rows)
}

// P6: case-insensitivity of names and keywords.
func TestCaseInsensitivity(t *testing.T) {
	db := newDB(t)
	res := Exec(db, "create table Users (Id int);")
	require.True(t, res.OK)

	res = Exec(db, "insert into USERS values (1);")
	require.True(t, res.OK)

	res = Exec(db, "select ID from users;")
	require.True(t, res.OK)
	assert.Equal(t, []string{"1"}, res.Rows[0])
}

// P5: type coercion at write.
func TestInsert_CoercesStringIntoIntColumn(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (n INT);")

	res := Exec(db, "INSERT INTO t VALUES (not-a-number);")
	require.True(t, res.OK)

	res = Exec(db, "SELECT n FROM t;")
	require.True(t, res.OK)
	assert.Equal(t, []string{"0"}, res.Rows[0])
}

// P3: VACUUM idempotence.
func TestVacuum_Idempotent(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (id INT);")
	Exec(db, "INSERT INTO t VALUES (1);")
	Exec(db, "DELETE FROM t WHERE id=1;")

	first := Exec(db, "VACUUM;")
	assert.Equal(t, "VACUUM: purged 1 row(s)", first.Message)

	second := Exec(db, "VACUUM;")
	assert.Equal(t, "VACUUM: purged 0 row(s)", second.Message)
}

func TestUnknownCommand(t *testing.T) {
	db := newDB(t)
	res := Exec(db, "FROBNICATE everything;")
	assert.False(t, res.OK)
	assert.Equal(t, "Unknown command", res.Message)
}

func TestEmptyInput(t *testing.T) {
	db := newDB(t)
	res := Exec(db, "   ;  ")
	assert.True(t, res.OK)
}

func TestCreateTable_DuplicateName(t *testing.T) {
	db := newDB(t)
	Exec(db, "CREATE TABLE t (id INT);")
	res := Exec(db, "CREATE TABLE t (id INT);")
	assert.False(t, res.OK)
	assert.Equal(t, "Table 't' exists", res.Message)
}

func TestCreateTable_UnknownType(t *testing.T) {
	db := newDB(t)
	res := Exec(db, "CREATE TABLE t (id DATE);")
	assert.False(t, res.OK)
	assert.Equal(t, "Unknown type 'DATE'", res.Message)
}

// Mutating statements persist; SELECT does not disturb the file.
func TestSelect_DoesNotMutateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.dbm")
	db, err := dbm.Open(path)
	require.NoError(t, err)
	Exec(db, "CREATE TABLE t (id INT);")

	before, err := os.Stat(path)
	require.NoError(t, err)

	Exec(db, "SELECT * FROM t;")

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestRunScript(t *testing.T) {
	db := newDB(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "seed.sql")
	content := "-- seed script\n" +
		"CREATE TABLE t (id INT);\n" +
		"/* bulk load */\n" +
		"INSERT INTO t VALUES (1);\n" +
		"INSERT INTO t VALUES (2);\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o644))

	results, err := RunScript(db, script)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.OK, r.Message)
	}

	res := Exec(db, "SELECT * FROM t;")
	assert.Equal(t, "2 row(s) returned", res.Message)
}

func TestDispatch_RecordsHistoryAndMetricsOnlyForMutations(t *testing.T) {
	db := newDB(t)
	hist := history.NewLog(0)
	metrics := monitoring.NewMetricsCollector()
	hooks := Hooks{History: hist, Metrics: metrics}

	Dispatch(db, "CREATE TABLE t (id INT);", hooks)
	Dispatch(db, "SELECT * FROM t;", hooks)
	Dispatch(db, "SELECT * FROM missing;", hooks)

	assert.Equal(t, int64(3), metrics.Executed())
	assert.Equal(t, int64(1), metrics.Failed())
	// Only the CREATE TABLE mutated; SELECT never appears in history.
	require.Len(t, hist.Records(), 1)
	assert.Equal(t, "CREATE TABLE t (id INT)", hist.Records()[0].Stmt)
}

func TestShowHistory(t *testing.T) {
	db := newDB(t)
	hist := history.NewLog(0)
	hooks := Hooks{History: hist}

	Dispatch(db, "CREATE TABLE t (id INT);", hooks)
	Dispatch(db, "INSERT INTO t VALUES (1);", hooks)

	res := Dispatch(db, "SHOW HISTORY;", hooks)
	require.True(t, res.OK)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "INSERT INTO t VALUES (1)", res.Rows[1][1])
}

func TestShowHistory_NilLog(t *testing.T) {
	db := newDB(t)
	res := Exec(db, "SHOW HISTORY;")
	assert.True(t, res.OK)
	assert.Empty(t, res.Rows)
}

func TestRunScript_StopsAtFirstFailure(t *testing.T) {
	db := newDB(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "bad.sql")
	content := "CREATE TABLE t (id INT);\nINSERT INTO missing VALUES (1);\nCREATE TABLE t2 (id INT);\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o644))

	results, err := RunScript(db, script)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)

	assert.Nil(t, db.Table("t2"))
}
