package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"integral number", Number(8), "8"},
		{"negative integral", Number(-3), "-3"},
		{"fraction", Number(3.5), "3.5"},
		{"large number", Number(1e20), "1e+20"},
		{"text", Text("hello world"), "hello world"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"null", Null(), "null"},
		{"zero value", Value{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValueRepr(t *testing.T) {
	assert.Equal(t, `"big"`, Text("big").Repr())
	assert.Equal(t, "2", Number(2).Repr())
	assert.Equal(t, "null", Null().Repr())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Null().Truthy())
	assert.False(t, Number(0).Truthy())
	assert.False(t, Text("").Truthy())
	assert.False(t, Bool(false).Truthy())

	assert.True(t, Number(-1).Truthy())
	assert.True(t, Number(math.NaN()).Truthy())
	assert.True(t, Text("0").Truthy())
	assert.True(t, Bool(true).Truthy())
}

func TestEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Text("1")))
	assert.True(t, Null().Equal(Null()))
	assert.False(t, Bool(true).Equal(Bool(false)))
}

func TestAccessors(t *testing.T) {
	n, ok := Number(4).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	_, ok = Text("x").AsNumber()
	assert.False(t, ok)

	s, ok := Text("x").AsText()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, "number", Number(1).Kind().String())
	assert.True(t, Null().IsNull())
}
