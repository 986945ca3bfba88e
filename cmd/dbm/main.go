// Command dbm is the interactive shell collaborator around the engine
// package: line reading, prompting, and tabular printing live here,
// thin wrappers around di.Build and engine.Dispatch the way
// cmd/sqlmapper's main.go stays thin around the sqlmapper parsers.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/di"
	"github.com/mstgnz/dbm/engine"
	"github.com/mstgnz/dbm/logger"
)

var quitWords = map[string]bool{"quit": true, "exit": true}

func main() {
	path := flag.String("path", "", "database file path")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error, fatal)")
	logFormat := flag.String("log-format", "text", "log format (text, json)")
	logFile := flag.String("log-file", "", "rotating log file path (optional)")
	tombstoneAlert := flag.Float64("tombstone-alert", 0.5, "tombstone ratio that triggers a VACUUM warning")
	script := flag.String("script", "", "run statements from a .sql file and exit")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: dbm -path <file> [-script <file>] [-log-level L] [-log-format F] [-log-file F] [-tombstone-alert N]")
		os.Exit(1)
	}

	rt, err := di.Build(di.Config{
		Path:             dbm.WithExtension(*path),
		LogLevel:         logger.ParseLevel(*logLevel),
		LogFormat:        parseFormat(*logFormat),
		LogFile:          *logFile,
		TombstoneAlertAt: *tombstoneAlert,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", *path, err)
		os.Exit(1)
	}
	defer rt.Close()

	hooks := engine.Hooks{Log: rt.Log, History: rt.History, Metrics: rt.Metrics}

	if *script != "" {
		runScriptAndExit(rt, hooks, *script)
		return
	}

	runShell(os.Stdin, os.Stdout, rt, hooks)
}

func parseFormat(name string) logger.Format {
	if strings.EqualFold(name, "json") {
		return logger.JSON
	}
	return logger.Text
}

func runScriptAndExit(rt *di.Runtime, hooks engine.Hooks, path string) {
	results, err := engine.RunScript(rt.DB, path)
	for _, r := range results {
		printResult(os.Stdout, r)
		checkTombstones(rt, r)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "script failed: %v\n", err)
		os.Exit(1)
	}
}

// runShell implements the interactive loop described by the
// collaborator contract: accumulate lines until a ';' terminator or a
// one-line command is seen, then dispatch.
func runShell(in io.Reader, out io.Writer, rt *di.Runtime, hooks engine.Hooks) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder
	prompt := "db> "

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if buf.Len() == 0 && quitWords[strings.ToLower(trimmed)] {
			return
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		if isComplete(trimmed, buf.String()) {
			stmt := buf.String()
			buf.Reset()
			res := engine.Dispatch(rt.DB, stmt, hooks)
			printResult(out, res)
			checkTombstones(rt, res)
			prompt = "db> "
		} else {
			prompt = "... "
		}
		fmt.Fprint(out, prompt)
	}
}

// isComplete reports whether the accumulated buffer should be
// dispatched: a trailing ';' on the just-read line, or a recognized
// one-line command with no terminator required.
func isComplete(lastLine, whole string) bool {
	if strings.HasSuffix(strings.TrimSpace(lastLine), ";") {
		return true
	}
	upper := strings.ToUpper(strings.TrimSpace(whole))
	switch {
	case strings.HasPrefix(upper, "SHOW"),
		strings.HasPrefix(upper, "VACUUM"),
		strings.HasPrefix(upper, "DESC"):
		return true
	default:
		return false
	}
}

func checkTombstones(rt *di.Runtime, res engine.Result) {
	if rt.Alerts == nil || !res.OK {
		return
	}
	for _, t := range rt.DB.Tables {
		total := len(t.Rows)
		deleted := total - t.VisibleRowCount()
		rt.Alerts.Check(t.Name, total, deleted)
	}
}

// printResult renders a Result as an ASCII box table when it carries
// rows, or a single status line otherwise.
func printResult(out io.Writer, res engine.Result) {
	if !res.OK {
		fmt.Fprintf(out, "ERROR: %s\n", res.Message)
		return
	}
	if len(res.Header) == 0 {
		fmt.Fprintln(out, res.Message)
		return
	}

	widths := make([]int, len(res.Header))
	for i, h := range res.Header {
		widths[i] = len(h.Name)
	}
	for _, row := range res.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	border := buildBorder(widths)
	fmt.Fprintln(out, border)
	fmt.Fprintln(out, buildRow(headerNames(res.Header), widths))
	fmt.Fprintln(out, border)
	for _, row := range res.Rows {
		fmt.Fprintln(out, buildRow(row, widths))
	}
	fmt.Fprintln(out, border)
	fmt.Fprintln(out, res.Message)
}

func headerNames(header []engine.ResultHeader) []string {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = h.Name
	}
	return names
}

func buildBorder(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteByte('+')
	return b.String()
}

func buildRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		b.WriteByte(' ')
	}
	b.WriteByte('|')
	return b.String()
}
