package ir

import (
	"fmt"
	"strings"
)

func (i *LoadConst) String() string {
	return fmt.Sprintf("LOAD_CONST %s -> %s", i.Value.Repr(), i.Dest)
}

func (i *LoadVar) String() string {
	return fmt.Sprintf("LOAD_VAR %s -> %s", i.Name, i.Dest)
}

func (i *BinaryOp) String() string {
	return fmt.Sprintf("%s %s, %s -> %s", i.Op, i.Left, i.Right, i.Dest)
}

func (i *Compare) String() string {
	return fmt.Sprintf("%s %s, %s -> %s", i.Op, i.Left, i.Right, i.Dest)
}

func (i *StoreVar) String() string {
	return fmt.Sprintf("STORE_VAR %s -> %s", i.Source, i.Name)
}

func (i *CallWrite) String() string {
	if i.Stream == File {
		return fmt.Sprintf("CALL_FWRITE %s", i.Source)
	}
	return fmt.Sprintf("CALL_WRITE %s", i.Source)
}

func (i *PrintNewline) String() string {
	if i.Stream == File {
		return "FPRINT_NEWLINE"
	}
	return "PRINT_NEWLINE"
}

func (i *Label) String() string {
	return "LABEL " + i.Name
}

func (i *Jump) String() string {
	return "JUMP " + i.Label
}

func (i *JumpIfFalse) String() string {
	return fmt.Sprintf("JUMP_IF_FALSE %s -> %s", i.Cond, i.Label)
}

// Printer renders instruction sequences for dumps
type Printer struct {
	numbered bool
	output   strings.Builder
}

// NewPrinter creates a printer; numbered prefixes each line with its index
func NewPrinter(numbered bool) *Printer {
	return &Printer{numbered: numbered}
}

// Format returns one instruction per line
func Format(seq []Instruction) string {
	return NewPrinter(false).Print(seq)
}

// FormatNumbered returns one instruction per line prefixed by its pc
func FormatNumbered(seq []Instruction) string {
	return NewPrinter(true).Print(seq)
}

func (p *Printer) Print(seq []Instruction) string {
	p.output.Reset()
	width := len(fmt.Sprintf("%d", max(len(seq)-1, 0)))

	for pc, inst := range seq {
		if p.numbered {
			p.writeLine("%*d  %s", width, pc, inst)
		} else {
			p.writeLine("%s", inst)
		}
	}
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...any) {
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}
