package monitoring

import "github.com/mstgnz/dbm/logger"

// TombstoneRatio is deleted rows over total row slots for one table's
// row buffer (I4): deleted rows remain in the slice until VACUUM, which
// brings the ratio back to 0. Inserting rows lowers it.
func TombstoneRatio(totalRows, deletedRows int) float64 {
	if totalRows == 0 {
		return 0
	}
	return float64(deletedRows) / float64(totalRows)
}

// AlertManager watches per-table tombstone ratios and logs a warning
// once a table crosses Threshold, suggesting VACUUM. Adapted from
// AlertManager's notification channels (email, Slack), replaced here
// with the ambient logger since this engine has no outbound network
// collaborators to notify through.
type AlertManager struct {
	Threshold float64
	log       *logger.Logger
	alerted   map[string]bool
}

// NewAlertManager creates an AlertManager that logs through log once a
// table's tombstone ratio exceeds threshold (e.g. 0.5 for 50%).
func NewAlertManager(log *logger.Logger, threshold float64) *AlertManager {
	return &AlertManager{Threshold: threshold, log: log, alerted: make(map[string]bool)}
}

// Check inspects one table's row counts and logs a WARN the first
// time its tombstone ratio crosses the threshold. Subsequent calls
// stay quiet until Reset clears the table's alerted state (typically
// called after VACUUM).
func (a *AlertManager) Check(table string, totalRows, deletedRows int) {
	ratio := TombstoneRatio(totalRows, deletedRows)
	if ratio <= a.Threshold {
		return
	}
	if a.alerted[table] {
		return
	}
	a.alerted[table] = true
	if a.log != nil {
		a.log.Warn("tombstone ratio exceeds threshold, consider VACUUM", map[string]interface{}{
			"table":     table,
			"ratio":     ratio,
			"threshold": a.Threshold,
		})
	}
}

// Reset clears table's alerted state, so the next threshold crossing
// logs again.
func (a *AlertManager) Reset(table string) {
	delete(a.alerted, table)
}
