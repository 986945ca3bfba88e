// Package di wires together a database handle and its ambient
// collaborators at a single construction site, adapted from
// di.Container's reflection-based registry. The service set here is
// small and fixed, so the generic registry is traded for a concrete
// constructor (§4.15).
package di

import (
	"fmt"
	"os"

	"github.com/mstgnz/dbm"
	"github.com/mstgnz/dbm/history"
	"github.com/mstgnz/dbm/logger"
	"github.com/mstgnz/dbm/monitoring"
)

// Config configures Build. A zero Config is valid: it opens the
// database with a stdout text logger, a 1000-entry history ring, and
// a 50% tombstone-alert threshold.
type Config struct {
	Path             string
	LogLevel         logger.Level
	LogFormat        logger.Format
	LogFile          string
	HistoryCapacity  int
	TombstoneAlertAt float64
}

// Runtime bundles a database handle with the ambient collaborators
// the engine dispatcher observes through (§4.15).
type Runtime struct {
	DB      *dbm.Database
	Log     *logger.Logger
	Metrics *monitoring.MetricsCollector
	Alerts  *monitoring.AlertManager
	History *history.Log
}

// Build opens the database at cfg.Path and constructs its ambient
// collaborators at a single construction site (§4.15).
func Build(cfg Config) (*Runtime, error) {
	db, err := dbm.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	outputs := []logger.Output{{
		Writer:    os.Stdout,
		Formatter: formatterFor(cfg.LogFormat),
	}}
	if cfg.LogFile != "" {
		rw, rerr := monitoring.RotatingWriter(cfg.LogFile, 10, 5, 28, true)
		if rerr != nil {
			return nil, fmt.Errorf("open log file: %w", rerr)
		}
		outputs = append(outputs, logger.Output{Writer: rw, Formatter: formatterFor(cfg.LogFormat)})
	}
	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Outputs: outputs,
		Context: map[string]interface{}{"component": "dbm"},
	})

	threshold := cfg.TombstoneAlertAt
	if threshold == 0 {
		threshold = 0.5
	}

	return &Runtime{
		DB:      db,
		Log:     log,
		Metrics: monitoring.NewMetricsCollector(),
		Alerts:  monitoring.NewAlertManager(log, threshold),
		History: history.NewLog(cfg.HistoryCapacity),
	}, nil
}

func formatterFor(f logger.Format) logger.Formatter {
	if f == logger.JSON {
		return &logger.JSONFormatter{TimeFormat: "2006-01-02T15:04:05Z07:00"}
	}
	return &logger.TextFormatter{TimeFormat: "2006-01-02 15:04:05"}
}

// Close releases the database handle held by Runtime, saving any
// pending mutations (mirrors dbm.Database.Close).
func (r *Runtime) Close() error {
	return r.DB.Close()
}
