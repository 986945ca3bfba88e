package engine

import (
	"os"
	"regexp"
	"strings"

	"github.com/mstgnz/dbm"
)

var (
	lineCommentRE  = regexp.MustCompile(`--[^\n]*`)
	blockCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// stripComments removes `--` and `/* */` comments, the way
// convert.removeSQLComments does (§4.16).
func stripComments(content string) string {
	content = lineCommentRE.ReplaceAllString(content, "")
	content = blockCommentRE.ReplaceAllString(content, "")
	return content
}

// splitStatements splits content into individual statements on a
// trailing ';', dropping any that are blank after trimming.
func splitStatements(content string) []string {
	raw := strings.Split(content, ";")
	var stmts []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// RunScript reads a .sql file, strips comments, splits it into
// statements, and feeds each through Exec in order, stopping at the
// first statement whose result is ok=false (§4.16). It returns every
// result produced up to and including that point.
func RunScript(db *dbm.Database, path string) ([]Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stmts := splitStatements(stripComments(string(content)))
	results := make([]Result, 0, len(stmts))
	for _, stmt := range stmts {
		res := Exec(db, stmt)
		results = append(results, res)
		if !res.OK {
			break
		}
	}
	return results, nil
}
