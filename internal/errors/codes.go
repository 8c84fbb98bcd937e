package errors

// Error codes for the Layer toolchain.
//
// Error code ranges:
// E0001-E0099: Syntax errors
// E0100-E0199: Semantic analysis errors
// E0200-E0299: Internal compiler errors (IR generation and validation)
// E0300-E0399: Runtime errors raised by the virtual machine

const (
	// E0001: Source could not be tokenized or parsed
	ErrorSyntax = "E0001"

	// E0101: Identifier read without a visible declaration
	ErrorUndeclaredIdentifier = "E0101"

	// E0102: Name declared twice, or shadowing an outer declaration
	ErrorDuplicateDeclaration = "E0102"

	// E0103: ivar declared without an initializer
	ErrorMissingInitializer = "E0103"

	// E0104: Assignment to a name that was never declared
	ErrorAssignUndeclared = "E0104"

	// E0105: cvar read before any value was assigned
	ErrorUninitializedRead = "E0105"

	// E0106: Assignment to an ivar
	ErrorAssignImmutable = "E0106"

	// E0201: AST node the IR generator cannot lower
	ErrorUnsupportedConstruct = "E0201"

	// E0202: Two labels with the same name
	ErrorDuplicateLabel = "E0202"

	// E0203: Jump to a label that does not exist
	ErrorUnresolvedLabel = "E0203"

	// E0204: Temp written twice or read before it is written
	ErrorMalformedSequence = "E0204"

	// E0300: Runtime failure outside the language rules, such as a failed write
	ErrorRuntime = "E0300"

	// E0301: Operator applied to incompatible value kinds
	ErrorTypeMismatch = "E0301"

	// E0302: Division by numeric zero
	ErrorDivisionByZero = "E0302"

	// E0303: Variable read before it was stored
	ErrorUndefinedVariable = "E0303"

	// E0304: Temp read before it was written
	ErrorUndefinedRegister = "E0304"

	// E0305: Execution exceeded the configured step limit
	ErrorStepLimitExceeded = "E0305"

	// E0306: Execution stopped by an observer
	ErrorHalted = "E0306"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Source text does not match the Layer grammar"
	case ErrorUndeclaredIdentifier:
		return "Identifier is used but not declared in any enclosing scope"
	case ErrorDuplicateDeclaration:
		return "Name is already declared in this or an enclosing scope"
	case ErrorMissingInitializer:
		return "ivar declarations require an initial value"
	case ErrorAssignUndeclared:
		return "Assignment target is not declared"
	case ErrorUninitializedRead:
		return "cvar is read before any value is assigned"
	case ErrorAssignImmutable:
		return "ivar cannot be reassigned"
	case ErrorUnsupportedConstruct:
		return "Construct cannot be lowered to IR"
	case ErrorDuplicateLabel:
		return "Label is defined more than once"
	case ErrorUnresolvedLabel:
		return "Jump target label is not defined"
	case ErrorMalformedSequence:
		return "Instruction sequence breaks the single-assignment rule for temps"
	case ErrorRuntime:
		return "Program could not continue running"
	case ErrorTypeMismatch:
		return "Operator does not accept these value kinds"
	case ErrorDivisionByZero:
		return "Division by zero"
	case ErrorUndefinedVariable:
		return "Variable has no value at runtime"
	case ErrorUndefinedRegister:
		return "Temporary register read before it was written"
	case ErrorStepLimitExceeded:
		return "Program ran longer than the step limit"
	case ErrorHalted:
		return "Execution was stopped before completion"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Syntax"
	case code >= "E0100" && code < "E0200":
		return "Semantic Analysis"
	case code >= "E0200" && code < "E0300":
		return "Internal"
	case code >= "E0300" && code < "E0400":
		return "Runtime"
	default:
		return "Unknown"
	}
}
