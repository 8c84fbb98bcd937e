package compiler

import (
	"io"

	"github.com/tliron/commonlog"

	"layer/grammar"
	"layer/internal/ast"
	"layer/internal/ir"
	"layer/internal/parser"
	"layer/internal/semantic"
	"layer/internal/vm"
)

var log = commonlog.GetLogger("layer.compiler")

// Config controls compilation and execution
type Config struct {
	// Optimize runs the IR pipeline (dead code elimination) after generation
	Optimize bool

	// Output receives write() lines; FileOutput receives fwrite() lines and
	// falls back to Output when nil
	Output     io.Writer
	FileOutput io.Writer

	// MaxSteps bounds execution; zero is unlimited
	MaxSteps int

	Observer vm.Observer
}

// DefaultConfig optimizes and writes to w
func DefaultConfig(w io.Writer) Config {
	return Config{Optimize: true, Output: w}
}

// Result holds the artifacts of a successful compilation
type Result struct {
	Program *ast.Program

	// IR is the generator output; Code is what the VM runs (IR after the
	// optimization pipeline, or IR itself when optimization is off)
	IR   []ir.Instruction
	Code []ir.Instruction
}

// Tokens runs the lexer only. Lexing errors belong to the parse stage.
func Tokens(name, source string) ([]grammar.Token, error) {
	tokens, err := parser.Tokenize(name, source)
	return tokens, stageError(StageParse, err)
}

// Parse runs the parse stage only
func Parse(name, source string) (*ast.Program, error) {
	program, err := parser.ParseSource(name, source)
	return program, stageError(StageParse, err)
}

// Check parses and checks source
func Check(name, source string) (*ast.Program, error) {
	program, err := Parse(name, source)
	if err != nil {
		return nil, err
	}
	if err := semantic.Check(program); err != nil {
		return program, stageError(StageCheck, err)
	}
	return program, nil
}

// Compile runs every stage up to and including optimization
func Compile(name, source string, optimize bool) (*Result, error) {
	program, err := Check(name, source)
	if err != nil {
		return nil, err
	}

	seq, err := ir.Generate(program)
	if err != nil {
		return nil, stageError(StageGenerate, err)
	}
	if err := ir.Validate(seq); err != nil {
		return nil, stageError(StageGenerate, err)
	}

	result := &Result{Program: program, IR: seq, Code: seq}
	if optimize {
		result.Code = ir.NewPipeline().Run(seq)
		if err := ir.Validate(result.Code); err != nil {
			return nil, stageError(StageOptimize, err)
		}
	}

	log.Debugf("compiled %s: %d statements, %d instructions, %d after optimization",
		name, len(program.Statements), len(result.IR), len(result.Code))
	return result, nil
}

// Execute runs compiled code with the I/O settings of cfg
func Execute(code []ir.Instruction, cfg Config) error {
	options := []vm.Option{vm.WithStepLimit(cfg.MaxSteps)}
	if cfg.Output != nil {
		options = append(options, vm.WithOutput(cfg.Output))
	}
	if cfg.FileOutput != nil {
		options = append(options, vm.WithFileOutput(cfg.FileOutput))
	}
	if cfg.Observer != nil {
		options = append(options, vm.WithObserver(cfg.Observer))
	}

	machine, err := vm.New(code, options...)
	if err != nil {
		return stageError(StageExecute, err)
	}
	return stageError(StageExecute, machine.Run())
}

// Run compiles and executes source
func Run(name, source string, cfg Config) error {
	result, err := Compile(name, source, cfg.Optimize)
	if err != nil {
		return err
	}
	return Execute(result.Code, cfg)
}
