package compiler

import (
	stderrors "errors"

	"layer/internal/errors"
	"layer/internal/ir"
	"layer/internal/parser"
	"layer/internal/vm"
)

var sentinelCodes = []struct {
	err  error
	code string
}{
	{ir.ErrUnsupportedConstruct, errors.ErrorUnsupportedConstruct},
	{ir.ErrDuplicateLabel, errors.ErrorDuplicateLabel},
	{ir.ErrUnresolvedLabel, errors.ErrorUnresolvedLabel},
	{ir.ErrMalformedSequence, errors.ErrorMalformedSequence},
	{vm.ErrTypeMismatch, errors.ErrorTypeMismatch},
	{vm.ErrDivisionByZero, errors.ErrorDivisionByZero},
	{vm.ErrUndefinedVariable, errors.ErrorUndefinedVariable},
	{vm.ErrUndefinedRegister, errors.ErrorUndefinedRegister},
	{vm.ErrStepLimitExceeded, errors.ErrorStepLimitExceeded},
	{vm.ErrHalted, errors.ErrorHalted},
}

// Diagnostics converts a pipeline error into displayable compiler errors.
// It returns nil for nil and for errors that did not come from a stage.
func Diagnostics(err error) []errors.CompilerError {
	var serr *StageError
	if !stderrors.As(err, &serr) {
		return nil
	}

	switch serr.Stage {
	case StageParse:
		var perr *parser.ParseError
		if stderrors.As(serr.Err, &perr) {
			return []errors.CompilerError{errors.SyntaxError(perr.Message, perr.Position)}
		}

	case StageCheck:
		if errs := errors.Collect(serr.Err); len(errs) > 0 {
			return errs
		}
	}

	code := errors.ErrorUnsupportedConstruct
	if serr.Stage == StageExecute {
		code = errors.ErrorRuntime
	}
	for _, sc := range sentinelCodes {
		if stderrors.Is(serr.Err, sc.err) {
			code = sc.code
			break
		}
	}

	message := serr.Err.Error()
	var frame *errors.Frame
	var rerr *vm.RuntimeError
	if stderrors.As(serr.Err, &rerr) && rerr.Instr != nil {
		// pc and instruction move into the frame
		message = rerr.Err.Error()
		if rerr.Detail != "" {
			message += ": " + rerr.Detail
		}
		frame = &errors.Frame{PC: rerr.PC, Instr: rerr.Instr.String()}
	}

	return []errors.CompilerError{errors.RuntimeError(code, message, frame)}
}
