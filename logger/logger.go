// Package logger provides a small leveled, pluggable-output logger used
// throughout the engine and its import/export commands. It is deliberately
// generic: di.Build attaches a "component" context field rather than
// this package knowing anything about tables or statements.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level is a log severity.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Format selects how entries are rendered.
type Format int

const (
	Text Format = iota
	JSON
)

// Output pairs a writer with the formatter used to render entries to it.
type Output struct {
	Writer    io.Writer
	Formatter Formatter
}

// Formatter renders a single Entry.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter renders "time [LEVEL] [caller] message k=v ..." lines.
type TextFormatter struct {
	TimeFormat string
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	timeStr := entry.Timestamp.Format(f.TimeFormat)

	var fieldsStr string
	for k, v := range entry.Fields {
		fieldsStr += fmt.Sprintf(" %s=%v", k, v)
	}

	var callerInfo string
	if entry.Caller != "" {
		callerInfo = fmt.Sprintf(" [%s]", entry.Caller)
	}

	line := fmt.Sprintf("%s [%s]%s %s%s\n", timeStr, entry.Level, callerInfo, entry.Message, fieldsStr)
	if entry.StackTrace != "" {
		line += entry.StackTrace + "\n"
	}
	return []byte(line), nil
}

// JSONFormatter renders each entry as one JSON object per line.
type JSONFormatter struct {
	TimeFormat string
}

func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimeFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	if entry.Caller != "" {
		data["caller"] = entry.Caller
	}
	if len(entry.Fields) > 0 {
		data["fields"] = entry.Fields
	}
	if entry.StackTrace != "" {
		data["stack_trace"] = entry.StackTrace
	}
	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Entry is one rendered log record.
type Entry struct {
	Timestamp  time.Time
	Level      Level
	Message    string
	Fields     map[string]interface{}
	Caller     string
	StackTrace string
}

// Logger is a configurable, leveled logger with one or more outputs.
type Logger struct {
	mu        sync.Mutex
	level     Level
	outputs   []Output
	context   map[string]interface{}
	callDepth int
}

// Config configures a new Logger.
type Config struct {
	Level     Level
	Outputs   []Output
	Context   map[string]interface{}
	CallDepth int
}

// New creates a Logger, defaulting to a single stdout text output.
func New(config Config) *Logger {
	if len(config.Outputs) == 0 {
		config.Outputs = []Output{{
			Writer:    os.Stdout,
			Formatter: &TextFormatter{TimeFormat: "2006-01-02 15:04:05"},
		}}
	}
	if config.CallDepth == 0 {
		config.CallDepth = 2
	}
	return &Logger{
		level:     config.Level,
		outputs:   config.Outputs,
		context:   config.Context,
		callDepth: config.CallDepth,
	}
}

func (l *Logger) getCaller() string {
	if pc, file, line, ok := runtime.Caller(l.callDepth); ok {
		return fmt.Sprintf("%s:%d %s", filepath.Base(file), line, filepath.Base(runtime.FuncForPC(pc).Name()))
	}
	return ""
}

func getStack(skip int) string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var trace string
	for {
		frame, more := frames.Next()
		trace += fmt.Sprintf("\n    %s:%d - %s", filepath.Base(frame.File), frame.Line, filepath.Base(frame.Function))
		if !more {
			break
		}
	}
	return trace
}

func (l *Logger) write(level Level, message string, fields map[string]interface{}, includeStack bool) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	allFields := make(map[string]interface{}, len(l.context)+len(fields))
	for k, v := range l.context {
		allFields[k] = v
	}
	for k, v := range fields {
		allFields[k] = v
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    allFields,
		Caller:    l.getCaller(),
	}
	if includeStack {
		entry.StackTrace = getStack(l.callDepth)
	}

	for _, output := range l.outputs {
		if formatted, ferr := output.Formatter.Format(entry); ferr == nil {
			_, _ = output.Writer.Write(formatted)
		}
	}

	if level == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debug(message string, fields map[string]interface{}) { l.write(DEBUG, message, fields, false) }
func (l *Logger) Info(message string, fields map[string]interface{})  { l.write(INFO, message, fields, false) }
func (l *Logger) Warn(message string, fields map[string]interface{})  { l.write(WARN, message, fields, false) }
func (l *Logger) Error(message string, fields map[string]interface{}) { l.write(ERROR, message, fields, true) }
func (l *Logger) Fatal(message string, fields map[string]interface{}) { l.write(FATAL, message, fields, true) }

// WithContext returns a child Logger that merges context into l's context
// on every subsequent entry. Used to tag entries with a "component" name
// (e.g. "engine", "importer") without threading a field through every call.
func (l *Logger) WithContext(context map[string]interface{}) *Logger {
	child := &Logger{
		level:     l.level,
		outputs:   l.outputs,
		callDepth: l.callDepth,
		context:   make(map[string]interface{}, len(l.context)+len(context)),
	}
	for k, v := range l.context {
		child.context[k] = v
	}
	for k, v := range context {
		child.context[k] = v
	}
	return child
}

// AddOutput appends an additional output, e.g. a rotating file writer.
func (l *Logger) AddOutput(output Output) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = append(l.outputs, output)
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// ParseLevel maps a case-insensitive level name to a Level, defaulting to INFO.
func ParseLevel(name string) Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return DEBUG
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}
