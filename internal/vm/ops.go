package vm

import (
	"math"

	"layer/internal/ir"
	"layer/internal/value"
)

var arithVerbs = [...]string{ir.Add: "add", ir.Sub: "subtract", ir.Mul: "multiply", ir.Div: "divide", ir.Pow: "exponentiate"}

// arith applies op to two values. Numbers combine numerically; + also joins
// two texts. Every other pairing is a type mismatch.
func arith(op ir.ArithOp, left, right value.Value) (value.Value, error) {
	if op == ir.Add {
		if l, ok := left.AsText(); ok {
			if r, ok := right.AsText(); ok {
				return value.Text(l + r), nil
			}
		}
	}

	l, lok := left.AsNumber()
	r, rok := right.AsNumber()
	if !lok || !rok {
		return value.Null(), newError(ErrTypeMismatch, "cannot %s %s and %s",
			arithVerbs[op], left.Kind(), right.Kind())
	}

	switch op {
	case ir.Add:
		return value.Number(l + r), nil
	case ir.Sub:
		return value.Number(l - r), nil
	case ir.Mul:
		return value.Number(l * r), nil
	case ir.Div:
		if r == 0 {
			return value.Null(), newError(ErrDivisionByZero, "%s / 0", value.FormatNumber(l))
		}
		return value.Number(l / r), nil
	case ir.Pow:
		return value.Number(math.Pow(l, r)), nil
	}

	return value.Null(), newError(ErrTypeMismatch, "unknown operator %s", op)
}

// compare evaluates op over two values of the same kind. Numbers and texts
// are ordered; booleans and nulls only support equality.
func compare(op ir.CmpOp, left, right value.Value) (bool, error) {
	if left.Kind() != right.Kind() {
		return false, newError(ErrTypeMismatch, "cannot compare %s %s %s",
			left.Kind(), op.Symbol(), right.Kind())
	}

	switch op {
	case ir.Eq:
		return left.Equal(right), nil
	case ir.Ne:
		return !left.Equal(right), nil
	}

	var c int
	switch left.Kind() {
	case value.NumberKind:
		l, _ := left.AsNumber()
		r, _ := right.AsNumber()
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		case l != r:
			// NaN is unordered
			return false, nil
		}
	case value.TextKind:
		l, _ := left.AsText()
		r, _ := right.AsText()
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		}
	default:
		return false, newError(ErrTypeMismatch, "%s values are not ordered", left.Kind())
	}

	switch op {
	case ir.Lt:
		return c < 0, nil
	case ir.Le:
		return c <= 0, nil
	case ir.Gt:
		return c > 0, nil
	case ir.Ge:
		return c >= 0, nil
	}
	return false, newError(ErrTypeMismatch, "unknown comparison %s", op)
}
