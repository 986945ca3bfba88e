package engine

import (
	"fmt"
	"strconv"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/history"
)

// execShowHistory implements SHOW HISTORY (§4.15), surfacing the
// history package's bounded log of applied mutating statements. A nil
// log (history not wired by the caller) yields an empty result rather
// than an error.
func execShowHistory(log *history.Log) Result {
	header := []ResultHeader{
		{Name: "Seq", Type: dbm.IntType},
		{Name: "Statement", Type: dbm.TextType},
		{Name: "Status", Type: dbm.TextType},
		{Name: "Affected", Type: dbm.IntType},
		{Name: "At", Type: dbm.TextType},
	}
	if log == nil {
		return rowsResult(header, nil, "0 row(s) returned")
	}

	records := log.Records()
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.Seq, 10),
			r.Stmt,
			r.Status,
			strconv.Itoa(r.Affected),
			r.At.Format("2006-01-02 15:04:05"),
		})
	}
	return rowsResult(header, rows, fmt.Sprintf("%d row(s) returned", len(rows)))
}
