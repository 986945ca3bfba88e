package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
)

// execDropTable implements DROP TABLE <name> (§4.5).
func execDropTable(db *dbm.Database, rest string) Result {
	name := strings.TrimSpace(rest)
	if name == "" {
		return fail("Missing table name")
	}
	if !db.DropTable(name) {
		return fail(fmt.Sprintf("Table '%s' not found", name))
	}
	return ok(fmt.Sprintf("Table '%s' dropped", name), 0)
}
