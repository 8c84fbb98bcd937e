package vm

import (
	"io"

	"github.com/tliron/commonlog"
)

// Option is a configuration function for a VM.
type Option func(*VM)

// WithOutput sets the sink for write(). The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(vm *VM) {
		vm.out = newLineWriter(w)
	}
}

// WithFileOutput sets the sink for fwrite(). When unset, fwrite shares the
// write() sink.
func WithFileOutput(w io.Writer) Option {
	return func(vm *VM) {
		vm.fileOut = newLineWriter(w)
	}
}

// WithStepLimit bounds the number of instructions a Run may execute. Zero
// means unlimited.
func WithStepLimit(limit int) Option {
	return func(vm *VM) {
		vm.stepLimit = limit
	}
}

// WithObserver sets an observer that is called before every instruction.
func WithObserver(observer Observer) Option {
	return func(vm *VM) {
		vm.observer = observer
	}
}

// WithLogger replaces the package logger.
func WithLogger(logger commonlog.Logger) Option {
	return func(vm *VM) {
		vm.log = logger
	}
}
