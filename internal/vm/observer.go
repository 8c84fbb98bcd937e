package vm

import (
	"fmt"
	"io"

	"layer/internal/ir"
)

// Observer watches execution one instruction at a time. OnStep is called
// synchronously before the instruction runs; returning false halts the run
// with ErrHalted.
type Observer interface {
	OnStep(event StepEvent) bool
}

// StepEvent describes the instruction about to execute.
type StepEvent struct {
	// Step counts executed instructions in this run, starting at 0.
	Step int

	PC    int
	Instr ir.Instruction
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(StepEvent) bool

func (f ObserverFunc) OnStep(event StepEvent) bool { return f(event) }

// NoOpObserver is an Observer that does nothing.
type NoOpObserver struct{}

func (NoOpObserver) OnStep(StepEvent) bool { return true }

var _ Observer = NoOpObserver{}

// TraceObserver prints every step to a writer.
type TraceObserver struct {
	w io.Writer
}

func NewTraceObserver(w io.Writer) *TraceObserver {
	return &TraceObserver{w: w}
}

func (t *TraceObserver) OnStep(event StepEvent) bool {
	fmt.Fprintf(t.w, "[%6d] %4d  %s\n", event.Step, event.PC, event.Instr)
	return true
}
