package engine

import (
	"fmt"

	"github.com/mstgnz/dbm"
)

// execVacuum implements VACUUM (§4.12): per table, drop tombstoned
// rows. next_id is left unchanged.
func execVacuum(db *dbm.Database) Result {
	total := 0
	for _, t := range db.Tables {
		total += t.Vacuum()
	}
	return ok(fmt.Sprintf("VACUUM: purged %d row(s)", total), total)
}
