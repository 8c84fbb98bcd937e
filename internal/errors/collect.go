package errors

import (
	stderrors "errors"

	"github.com/hashicorp/go-multierror"
)

// Collect flattens err into the compiler errors it carries. Multierrors are
// expanded in order; anything that is not a CompilerError is dropped.
func Collect(err error) []CompilerError {
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if stderrors.As(err, &merr) {
		var out []CompilerError
		for _, e := range merr.Errors {
			out = append(out, Collect(e)...)
		}
		return out
	}

	var cerr CompilerError
	if stderrors.As(err, &cerr) {
		return []CompilerError{cerr}
	}

	return nil
}
