package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"layer/internal/compiler"
	lerrors "layer/internal/errors"
)

// errReported marks an error whose diagnostics were already printed.
var errReported = errors.New("errors reported")

// reportError prints diagnostics for a failed stage and returns errReported.
// Errors that carry no diagnostics are returned unchanged.
func reportError(w io.Writer, name, source string, err error) error {
	diags := compiler.Diagnostics(err)
	if len(diags) == 0 {
		return err
	}

	reporter := lerrors.NewErrorReporter(name, source)
	fmt.Fprint(w, reporter.FormatErrors(diags))

	heading := "Compilation failed"
	var stageErr *compiler.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case compiler.StageParse:
			heading = "Parsing failed"
		case compiler.StageCheck:
			heading = fmt.Sprintf("Check failed with %d error(s)", len(diags))
		case compiler.StageExecute:
			heading = "Execution failed"
		}
	}
	color.New(color.FgRed).Fprintln(w, heading)

	return errReported
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
