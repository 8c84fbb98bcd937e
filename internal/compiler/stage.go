package compiler

import "fmt"

// Stage identifies one step of the pipeline
type Stage int

const (
	StageParse Stage = iota
	StageCheck
	StageGenerate
	StageOptimize
	StageExecute
)

var stageNames = [...]string{
	StageParse:    "parse",
	StageCheck:    "check",
	StageGenerate: "generate",
	StageOptimize: "optimize",
	StageExecute:  "execute",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// StageError tags an error with the stage that produced it
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
