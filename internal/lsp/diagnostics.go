package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"layer/internal/errors"
)

// ConvertCompilerErrors transforms compiler errors into LSP diagnostics.
// Positions are converted from 1-based to 0-based.
func ConvertCompilerErrors(errs []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, err := range errs {
		line := uint32(max(err.Position.Line-1, 0))
		start := uint32(max(err.Position.Column-1, 0))
		length := uint32(max(err.Length, 1))

		message := err.Message
		for _, s := range err.Suggestions {
			message += "\nhelp: " + s.Message
		}
		if err.HelpText != "" {
			message += "\nhelp: " + err.HelpText
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + length},
			},
			Severity: ptrSeverity(severity(err.Level)),
			Code:     &protocol.IntegerOrString{Value: err.Code},
			Source:   ptrString(source(err.Code)),
			Message:  message,
		})
	}

	return diagnostics
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func source(code string) string {
	if errors.GetErrorCategory(code) == "Syntax" {
		return "layer-parser"
	}
	return "layer-semantic"
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
