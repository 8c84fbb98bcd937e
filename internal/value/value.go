package value

import (
	"math"
	"strconv"
)

// Kind identifies which member of the Value union is populated
type Kind int

const (
	NullKind Kind = iota
	NumberKind
	TextKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	case BoolKind:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a runtime value of a Layer program. The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

func Null() Value { return Value{} }

func Number(n float64) Value { return Value{kind: NumberKind, num: n} }

func Text(s string) Value { return Value{kind: TextKind, text: s} }

func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullKind }

// AsNumber returns the numeric payload; ok is false for other kinds.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == NumberKind }

func (v Value) AsText() (string, bool) { return v.text, v.kind == TextKind }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == BoolKind }

// Truthy reports whether the value passes a conditional jump. Null, false,
// zero and the empty string are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case NumberKind:
		return v.num != 0
	case TextKind:
		return v.text != ""
	case BoolKind:
		return v.b
	default:
		return false
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NumberKind:
		return v.num == other.num
	case TextKind:
		return v.text == other.text
	case BoolKind:
		return v.b == other.b
	default:
		return true
	}
}

// String renders the value the way write() prints it.
func (v Value) String() string {
	switch v.kind {
	case NumberKind:
		return FormatNumber(v.num)
	case TextKind:
		return v.text
	case BoolKind:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// Repr renders the value for IR dumps; text is quoted.
func (v Value) Repr() string {
	if v.kind == TextKind {
		return strconv.Quote(v.text)
	}
	return v.String()
}

// FormatNumber prints integral numbers without a fractional part.
func FormatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
