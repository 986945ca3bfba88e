/*
Package dbm implements a small single-file relational database engine: a
command processor that accepts a minimal SQL dialect, keeps a set of typed
tables in memory, persists the whole database to one binary file on disk,
and returns uniformly-shaped result sets to its caller.

Basic Usage:

	d, err := dbm.Open("accounts.dbm")
	if err != nil {
		// handle error
	}
	defer d.Close()

	res := engine.Exec(d, "CREATE TABLE users (id INT PRIMARY KEY, name TEXT NOT NULL)")
	if !res.OK {
		// res.Message describes what went wrong
	}

	res = engine.Exec(d, "SELECT * FROM users")
	for _, row := range res.Rows {
		fmt.Println(row)
	}

Scope:

This package is not a client/server database: there are no transactions,
no indexes, no joins, and no concurrent access. The caller must serialize
calls against a given *Database. Every mutating statement triggers a
full, synchronous rewrite of the backing file before the call returns.

Subpackages:

  - engine: the SQL dispatcher, statement parsers, and WHERE predicate
    evaluator that drive a *Database (kept separate so the data model
    here stays free of parsing concerns).
  - export: renders a table as MySQL/PostgreSQL/SQLite DDL+DML text.
  - importer: populates a local table from a live MySQL or PostgreSQL
    database.
  - history: an in-memory, bounded log of applied mutating statements.
  - monitoring: exec counters and tombstone-ratio alerting.
  - logger, err: ambient structured logging and typed errors.
*/
package dbm
