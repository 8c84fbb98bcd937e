package vm

import (
	"errors"
	"fmt"

	"layer/internal/ir"
)

var (
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrStepLimitExceeded = errors.New("step limit exceeded")
	ErrHalted            = errors.New("halted by observer")

	// ErrUndefinedRegister means a temp was read before being written. Code
	// from the generator never does this.
	ErrUndefinedRegister = errors.New("undefined register")
)

// RuntimeError is a failure during Run, tagged with where it happened
type RuntimeError struct {
	Err    error
	PC     int
	Instr  ir.Instruction
	Detail string
}

func newError(err error, format string, args ...any) *RuntimeError {
	return &RuntimeError{Err: err, PC: -1, Detail: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Instr != nil {
		msg += fmt.Sprintf(" (pc %d: %s)", e.PC, e.Instr)
	}
	return msg
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
