package engine

import (
	"fmt"
	"strings"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/importer"
)

// execImport implements IMPORT <table> FROM <MYSQL|POSTGRES> <dsn>
// (§4.16).
func execImport(db *dbm.Database, rest string) Result {
	fields := strings.Fields(rest)
	fromAt := -1
	for i, f := range fields {
		if strings.EqualFold(f, "FROM") {
			fromAt = i
			break
		}
	}
	if fromAt < 0 || fromAt == 0 || fromAt+2 >= len(fields) {
		return fail("Missing FROM <dialect> <dsn> clause")
	}

	table := strings.Join(fields[:fromAt], " ")
	dialectName := fields[fromAt+1]
	dsn := strings.Join(fields[fromAt+2:], " ")

	dialect, known := importer.ParseDialect(dialectName)
	if !known {
		return fail(fmt.Sprintf("Unknown dialect '%s'", dialectName))
	}

	report, err := importer.Import(db, dialect, dsn, table)
	if err != nil {
		return fail(err.Error())
	}

	msg := fmt.Sprintf("Imported %d row(s) into '%s'", report.RowsImported, table)
	if report.TableCreated {
		msg += " (table created)"
	}
	if len(report.Mismatches) > 0 {
		descs := make([]string, len(report.Mismatches))
		for i, m := range report.Mismatches {
			descs[i] = m.Description
		}
		msg += "; schema mismatches: " + strings.Join(descs, "; ")
	}
	return ok(msg, report.RowsImported)
}
