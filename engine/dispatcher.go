package engine

import (
	"strings"
	"time"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/history"
	"github.com/mstgnz/dbm/logger"
	"github.com/mstgnz/dbm/monitoring"
)

// MaxInputBytes bounds a single statement, per spec.md §6.
const MaxInputBytes = 4096

// Hooks are the ambient observers the di.Runtime wires around every
// dispatched statement (§4.15): a logger for one DEBUG-per-call plus
// WARN-on-failure, a bounded exec history, and exec-duration metrics.
// All fields are nil-safe; a zero Hooks performs no observation.
type Hooks struct {
	Log     *logger.Logger
	History *history.Log
	Metrics *monitoring.MetricsCollector
}

// Exec normalizes input, dispatches it to the matching handler, and —
// on a successful mutating statement — persists db before returning
// (§4.3). This is the primary entry point; Dispatch is the
// observable, hook-driven variant the di.Runtime wires up.
func Exec(db *dbm.Database, input string) Result {
	return Dispatch(db, input, Hooks{})
}

// Dispatch is Exec with ambient observation attached (§4.15).
func Dispatch(db *dbm.Database, input string, hooks Hooks) Result {
	start := time.Now()
	stmt := normalize(input)

	if hooks.Log != nil {
		hooks.Log.Debug("dispatching statement", map[string]interface{}{"stmt": stmt})
	}

	res := route(db, stmt, hooks)
	if res.OK && isMutating(stmt) {
		if serr := db.Save(); serr != nil {
			res = fail("failed to persist database: " + serr.Error())
		}
	}

	if hooks.Log != nil && !res.OK {
		hooks.Log.Warn("statement failed", map[string]interface{}{"stmt": stmt, "message": res.Message})
	}
	if hooks.Metrics != nil {
		hooks.Metrics.RecordExec(res.OK, time.Since(start))
	}
	if hooks.History != nil && res.OK && isMutating(stmt) {
		status := "OK"
		hooks.History.Append(stmt, status, res.Affected, time.Now())
	}
	return res
}

// normalize trims input, strips a single trailing ';', and trims
// again (§4.3).
func normalize(input string) string {
	s := strings.TrimSpace(input)
	if len(s) > MaxInputBytes {
		s = s[:MaxInputBytes]
	}
	s = strings.TrimSuffix(s, ";")
	return strings.TrimSpace(s)
}

func route(db *dbm.Database, stmt string, hooks Hooks) Result {
	if stmt == "" {
		return ok("", 0)
	}

	switch {
	case hasPrefixFold(stmt, "CREATE TABLE"):
		return execCreateTable(db, trimPrefixFold(stmt, "CREATE TABLE"))
	case hasPrefixFold(stmt, "DROP TABLE"):
		return execDropTable(db, trimPrefixFold(stmt, "DROP TABLE"))
	case hasPrefixFold(stmt, "INSERT INTO"):
		return execInsert(db, trimPrefixFold(stmt, "INSERT INTO"))
	case hasPrefixFold(stmt, "SELECT"):
		return execSelect(db, trimPrefixFold(stmt, "SELECT"))
	case hasPrefixFold(stmt, "UPDATE"):
		return execUpdate(db, trimPrefixFold(stmt, "UPDATE"))
	case hasPrefixFold(stmt, "DELETE FROM"):
		return execDelete(db, trimPrefixFold(stmt, "DELETE FROM"))
	case hasPrefixFold(stmt, "SHOW HISTORY"):
		return execShowHistory(hooks.History)
	case hasPrefixFold(stmt, "SHOW TABLES"):
		return execShowTables(db)
	case hasPrefixFold(stmt, "DESCRIBE"):
		return execDescribe(db, trimPrefixFold(stmt, "DESCRIBE"))
	case hasPrefixFold(stmt, "DESC"):
		return execDescribe(db, trimPrefixFold(stmt, "DESC"))
	case hasPrefixFold(stmt, "VACUUM"):
		return execVacuum(db)
	case hasPrefixFold(stmt, "EXPORT"):
		return execExport(db, trimPrefixFold(stmt, "EXPORT"))
	case hasPrefixFold(stmt, "IMPORT"):
		return execImport(db, trimPrefixFold(stmt, "IMPORT"))
	default:
		return fail("Unknown command")
	}
}

// isMutating reports whether stmt (already normalized) triggers a save
// on success (§4.3): every handler except SELECT, SHOW, DESCRIBE and
// EXPORT. Empty input is a no-op and does not count as mutating.
func isMutating(stmt string) bool {
	switch {
	case stmt == "",
		hasPrefixFold(stmt, "SELECT"),
		hasPrefixFold(stmt, "SHOW TABLES"),
		hasPrefixFold(stmt, "SHOW HISTORY"),
		hasPrefixFold(stmt, "DESCRIBE"),
		hasPrefixFold(stmt, "DESC"),
		hasPrefixFold(stmt, "EXPORT"):
		return false
	default:
		return true
	}
}
