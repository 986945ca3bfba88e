package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{
		Level: INFO,
		Outputs: []Output{{
			Writer:    &buf,
			Formatter: &TextFormatter{TimeFormat: "2006-01-02"},
		}},
	})

	l.Info("table created", map[string]interface{}{"table": "users"})

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "table created")
	assert.Contains(t, out, "table=users")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{
		Level:   WARN,
		Outputs: []Output{{Writer: &buf, Formatter: &TextFormatter{TimeFormat: "15:04:05"}}},
	})

	l.Debug("should not appear", nil)
	l.Info("should not appear either", nil)
	assert.Empty(t, buf.String())

	l.Warn("should appear", nil)
	assert.Contains(t, buf.String(), "should appear")
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{
		Outputs: []Output{{Writer: &buf, Formatter: &JSONFormatter{TimeFormat: "2006"}}},
	})

	l.Info("ready", nil)
	assert.True(t, strings.Contains(buf.String(), `"message":"ready"`))
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{
		Outputs: []Output{{Writer: &buf, Formatter: &TextFormatter{TimeFormat: "15:04:05"}}},
	})

	child := l.WithContext(map[string]interface{}{"component": "engine"})
	child.Info("dispatched", nil)

	assert.Contains(t, buf.String(), "component=engine")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("WARN"))
	assert.Equal(t, INFO, ParseLevel("whatever"))
}
