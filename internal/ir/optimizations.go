package ir

// Pass is a single IR transformation
type Pass interface {
	Name() string
	Description() string
	// Apply returns the transformed sequence and whether anything changed.
	// The input slice is not modified.
	Apply(seq []Instruction) ([]Instruction, bool)
}

// Pipeline runs passes in the order they were added
type Pipeline struct {
	passes []Pass
}

// NewPipeline creates a pipeline with the default passes. Dead code
// elimination is the only optimization Layer performs.
func NewPipeline() *Pipeline {
	pipeline := &Pipeline{}
	pipeline.AddPass(&DeadCodeElimination{})
	return pipeline
}

// AddPass appends a pass to the pipeline
func (p *Pipeline) AddPass(pass Pass) {
	p.passes = append(p.passes, pass)
}

// Passes returns the configured passes in run order
func (p *Pipeline) Passes() []Pass {
	return p.passes
}

// Run applies every pass to seq
func (p *Pipeline) Run(seq []Instruction) []Instruction {
	log.Debugf("running %d optimization passes on %d instructions", len(p.passes), len(seq))

	for _, pass := range p.passes {
		before := len(seq)
		out, changed := pass.Apply(seq)
		if changed {
			log.Debugf("%s: %d -> %d instructions", pass.Name(), before, len(out))
		} else {
			log.Debugf("%s: no changes", pass.Name())
		}
		seq = out
	}

	return seq
}

// DeadCodeElimination removes value-producing instructions whose results
// are never read
type DeadCodeElimination struct{}

func (dce *DeadCodeElimination) Name() string {
	return "Dead Code Elimination"
}

func (dce *DeadCodeElimination) Description() string {
	return "Removes instructions whose target temp is never read"
}

func (dce *DeadCodeElimination) Apply(seq []Instruction) ([]Instruction, bool) {
	out := EliminateDeadCode(seq)
	return out, len(out) != len(seq)
}

// EliminateDeadCode returns seq without the instructions that produce an
// unread temp and have no side effects. Relative order is kept. Rounds are
// repeated until nothing is removed, so dead chains disappear entirely and
// the result is a fixed point.
func EliminateDeadCode(seq []Instruction) []Instruction {
	out := append([]Instruction(nil), seq...)
	for {
		next := eliminateDeadInstructions(out)
		if len(next) == len(out) {
			return next
		}
		out = next
	}
}

// eliminateDeadInstructions performs one forward seeding pass followed by
// one backward keep pass.
func eliminateDeadInstructions(seq []Instruction) []Instruction {
	used := make(map[Temp]bool)
	for _, inst := range seq {
		markUsed(inst, used)
	}

	keep := make([]bool, len(seq))
	kept := 0
	for i := len(seq) - 1; i >= 0; i-- {
		inst := seq[i]
		if shouldKeepInstruction(inst, used) {
			keep[i] = true
			kept++
			markUsed(inst, used)
		}
	}

	out := make([]Instruction, 0, kept)
	for i, inst := range seq {
		if keep[i] {
			out = append(out, inst)
		}
	}
	return out
}

func markUsed(inst Instruction, used map[Temp]bool) {
	for _, t := range inst.Operands() {
		used[t] = true
	}
}

func shouldKeepInstruction(inst Instruction, used map[Temp]bool) bool {
	if inst.HasSideEffects() {
		return true
	}
	t, ok := inst.Target()
	return ok && used[t]
}
