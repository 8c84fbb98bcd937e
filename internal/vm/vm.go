package vm

import (
	"errors"
	"io"
	"maps"
	"os"

	"github.com/tliron/commonlog"

	"layer/internal/ir"
	"layer/internal/value"
)

// VM executes a linear IR sequence. Variables live in the environment and
// temps in the register file; both are private to one VM and cleared at the
// start of every Run.
type VM struct {
	code   []ir.Instruction
	labels map[string]int

	out       *lineWriter
	fileOut   *lineWriter
	stepLimit int
	observer  Observer
	log       commonlog.Logger

	pc    int
	next  int
	steps int
	env   map[string]value.Value
	regs  map[ir.Temp]value.Value
}

// New prepares seq for execution. It fails if a label is defined twice or a
// jump names a label that does not exist.
func New(seq []ir.Instruction, options ...Option) (*VM, error) {
	labels, err := ir.ResolveLabels(seq)
	if err != nil {
		return nil, err
	}

	vm := &VM{
		code:   seq,
		labels: labels,
		log:    commonlog.GetLogger("layer.vm"),
	}
	for _, opt := range options {
		opt(vm)
	}
	if vm.out == nil {
		vm.out = newLineWriter(os.Stdout)
	}
	if vm.fileOut == nil {
		vm.fileOut = newLineWriter(vm.out.w)
	}

	return vm, nil
}

// Execute runs seq once with w as the output sink.
func Execute(seq []ir.Instruction, w io.Writer, options ...Option) error {
	vm, err := New(seq, append([]Option{WithOutput(w)}, options...)...)
	if err != nil {
		return err
	}
	return vm.Run()
}

// Run executes from the first instruction until control runs past the last
// one. A runtime error stops execution; the line being built by the failing
// write statement is discarded.
func (vm *VM) Run() error {
	vm.reset()

	for vm.pc < len(vm.code) {
		inst := vm.code[vm.pc]

		if vm.stepLimit > 0 && vm.steps >= vm.stepLimit {
			return vm.fail(newError(ErrStepLimitExceeded, "limit is %d", vm.stepLimit), inst)
		}
		if vm.observer != nil && !vm.observer.OnStep(StepEvent{Step: vm.steps, PC: vm.pc, Instr: inst}) {
			return vm.fail(newError(ErrHalted, ""), inst)
		}

		vm.next = vm.pc + 1
		if err := inst.Accept(vm); err != nil {
			return vm.fail(err, inst)
		}
		vm.pc = vm.next
		vm.steps++
	}

	vm.log.Debugf("run finished after %d steps", vm.steps)
	return nil
}

func (vm *VM) reset() {
	vm.pc = 0
	vm.steps = 0
	vm.env = make(map[string]value.Value)
	vm.regs = make(map[ir.Temp]value.Value)
	vm.out.discard()
	vm.fileOut.discard()
}

func (vm *VM) fail(err error, inst ir.Instruction) error {
	vm.out.discard()
	vm.fileOut.discard()

	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		rerr = &RuntimeError{Err: err}
	}
	rerr.PC = vm.pc
	rerr.Instr = inst

	vm.log.Debugf("run failed after %d steps: %s", vm.steps, rerr)
	return rerr
}

// Env returns a copy of the variables after the last Run
func (vm *VM) Env() map[string]value.Value {
	return maps.Clone(vm.env)
}

// Registers returns a copy of the register file after the last Run
func (vm *VM) Registers() map[ir.Temp]value.Value {
	return maps.Clone(vm.regs)
}

// Steps returns the number of instructions executed by the last Run
func (vm *VM) Steps() int {
	return vm.steps
}

func (vm *VM) read(t ir.Temp) (value.Value, error) {
	v, ok := vm.regs[t]
	if !ok {
		return value.Null(), newError(ErrUndefinedRegister, "%s", t)
	}
	return v, nil
}

func (vm *VM) stream(s ir.Stream) *lineWriter {
	if s == ir.File {
		return vm.fileOut
	}
	return vm.out
}

func (vm *VM) jump(label string) {
	// labels were resolved in New
	vm.next = vm.labels[label]
}

func (vm *VM) VisitLoadConst(i *ir.LoadConst) error {
	vm.regs[i.Dest] = i.Value
	return nil
}

func (vm *VM) VisitLoadVar(i *ir.LoadVar) error {
	v, ok := vm.env[i.Name]
	if !ok {
		return newError(ErrUndefinedVariable, "%s", i.Name)
	}
	vm.regs[i.Dest] = v
	return nil
}

func (vm *VM) VisitBinaryOp(i *ir.BinaryOp) error {
	left, err := vm.read(i.Left)
	if err != nil {
		return err
	}
	right, err := vm.read(i.Right)
	if err != nil {
		return err
	}

	result, err := arith(i.Op, left, right)
	if err != nil {
		return err
	}
	vm.regs[i.Dest] = result
	return nil
}

func (vm *VM) VisitCompare(i *ir.Compare) error {
	left, err := vm.read(i.Left)
	if err != nil {
		return err
	}
	right, err := vm.read(i.Right)
	if err != nil {
		return err
	}

	result, err := compare(i.Op, left, right)
	if err != nil {
		return err
	}
	vm.regs[i.Dest] = value.Bool(result)
	return nil
}

func (vm *VM) VisitStoreVar(i *ir.StoreVar) error {
	v, err := vm.read(i.Source)
	if err != nil {
		return err
	}
	vm.env[i.Name] = v
	return nil
}

func (vm *VM) VisitCallWrite(i *ir.CallWrite) error {
	v, err := vm.read(i.Source)
	if err != nil {
		return err
	}
	vm.stream(i.Stream).append(v.String())
	return nil
}

func (vm *VM) VisitPrintNewline(i *ir.PrintNewline) error {
	return vm.stream(i.Stream).flush()
}

func (vm *VM) VisitLabel(*ir.Label) error {
	return nil
}

func (vm *VM) VisitJump(i *ir.Jump) error {
	vm.jump(i.Label)
	return nil
}

func (vm *VM) VisitJumpIfFalse(i *ir.JumpIfFalse) error {
	ok, err := vm.test(i.Cond)
	if err != nil {
		return err
	}
	if !ok {
		vm.jump(i.Label)
	}
	return nil
}

func (vm *VM) test(cond ir.Condition) (bool, error) {
	left, err := vm.read(cond.Left)
	if err != nil {
		return false, err
	}
	if !cond.IsCompare {
		return left.Truthy(), nil
	}

	right, err := vm.read(cond.Right)
	if err != nil {
		return false, err
	}
	return compare(cond.Op, left, right)
}
