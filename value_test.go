package dbm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColumnType(t *testing.T) {
	cases := []struct {
		in   string
		want ColumnType
		ok   bool
	}{
		{"int", IntType, true},
		{"INTEGER", IntType, true},
		{" Float ", FloatType, true},
		{"double", FloatType, true},
		{"real", FloatType, true},
		{"text", TextType, true},
		{"varchar", TextType, true},
		{"string", TextType, true},
		{"bool", BoolType, true},
		{"BOOLEAN", BoolType, true},
		{"date", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseColumnType(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		if c.ok {
			assert.Equal(t, c.want, got, c.in)
		}
	}
}

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "INT", IntType.String())
	assert.Equal(t, "FLOAT", FloatType.String())
	assert.Equal(t, "TEXT", TextType.String())
	assert.Equal(t, "BOOL", BoolType.String())
	assert.Equal(t, "UNKNOWN", ColumnType(99).String())
}

func TestNullValue(t *testing.T) {
	v := NullValue()
	assert.True(t, v.Null)
	assert.Equal(t, "NULL", v.Format())
}

func TestTextValue_Truncates(t *testing.T) {
	long := strings.Repeat("a", MaxTextBytes+50)
	v := TextValue(long)
	assert.Len(t, v.S, MaxTextBytes)
	assert.False(t, v.Null)
	assert.Equal(t, TextType, v.Kind)
}

func TestValue_Format(t *testing.T) {
	assert.Equal(t, "42", IntValue(42).Format())
	assert.Equal(t, "-7", IntValue(-7).Format())
	assert.Equal(t, "3.5", FloatValue(3.5).Format())
	assert.Equal(t, "true", BoolValue(true).Format())
	assert.Equal(t, "false", BoolValue(false).Format())
	assert.Equal(t, "hello", TextValue("hello").Format())
	assert.Equal(t, "NULL", NullValue().Format())
}

func TestValue_Format_ZeroValuesDisambiguatedByKind(t *testing.T) {
	// Zero-valued payloads of different kinds must still format distinctly.
	assert.Equal(t, "0", IntValue(0).Format())
	assert.Equal(t, "0", FloatValue(0).Format())
	assert.Equal(t, "false", BoolValue(false).Format())
	assert.Equal(t, "", TextValue("").Format())
}

func TestParseLiteral(t *testing.T) {
	assert.Equal(t, IntValue(42), ParseLiteral("42", IntType))
	assert.Equal(t, IntValue(0), ParseLiteral("not-a-number", IntType))
	assert.Equal(t, FloatValue(1.5), ParseLiteral("1.5", FloatType))
	assert.Equal(t, FloatValue(0), ParseLiteral("bogus", FloatType))
	assert.Equal(t, BoolValue(true), ParseLiteral("true", BoolType))
	assert.Equal(t, BoolValue(true), ParseLiteral("1", BoolType))
	assert.Equal(t, BoolValue(false), ParseLiteral("anything-else", BoolType))
	assert.Equal(t, TextValue("hi there"), ParseLiteral("hi there", TextType))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "Value(42)", IntValue(42).String())
}
