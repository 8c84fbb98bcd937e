package ir

import "errors"

var (
	// ErrUnsupportedConstruct is returned for AST nodes the generator cannot
	// lower. Checked programs never trigger it.
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	ErrDuplicateLabel  = errors.New("duplicate label")
	ErrUnresolvedLabel = errors.New("unresolved label")

	// ErrMalformedSequence reports a broken temp discipline found by Validate
	ErrMalformedSequence = errors.New("malformed instruction sequence")
)
