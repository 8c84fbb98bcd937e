package ir

import "fmt"

// Label prefixes used by the generator
const (
	ForStartPrefix   = "FOR_START_"
	ForEndPrefix     = "FOR_END_"
	WhileStartPrefix = "WHILE_START_"
	WhileEndPrefix   = "WHILE_END_"
	IfEndPrefix      = "IF_END_"
)

// TempAllocator hands out fresh temps. Numbering never restarts.
type TempAllocator struct {
	next int
}

func NewTempAllocator() *TempAllocator {
	return &TempAllocator{}
}

func (a *TempAllocator) Next() Temp {
	t := Temp(a.next)
	a.next++
	return t
}

// LabelAllocator hands out fresh label names. All prefixes share one
// counter, so two labels never differ only by prefix and number reuse.
type LabelAllocator struct {
	next int
}

func NewLabelAllocator() *LabelAllocator {
	return &LabelAllocator{}
}

func (a *LabelAllocator) Next(prefix string) string {
	name := fmt.Sprintf("%s%d", prefix, a.next)
	a.next++
	return name
}
