package ir

import "fmt"

// ResolveLabels maps every label name to its index in seq. It fails on
// duplicate labels and on jumps whose target does not exist.
func ResolveLabels(seq []Instruction) (map[string]int, error) {
	labels := make(map[string]int)
	for pc, inst := range seq {
		if l, ok := inst.(*Label); ok {
			if prev, exists := labels[l.Name]; exists {
				return nil, fmt.Errorf("%w: %s at %d and %d", ErrDuplicateLabel, l.Name, prev, pc)
			}
			labels[l.Name] = pc
		}
	}

	for pc, inst := range seq {
		target, ok := jumpTarget(inst)
		if !ok {
			continue
		}
		if _, exists := labels[target]; !exists {
			return nil, fmt.Errorf("%w: %s referenced at %d", ErrUnresolvedLabel, target, pc)
		}
	}

	return labels, nil
}

func jumpTarget(inst Instruction) (string, bool) {
	switch i := inst.(type) {
	case *Jump:
		return i.Label, true
	case *JumpIfFalse:
		return i.Label, true
	}
	return "", false
}

// Validate checks the structural rules of a generated sequence: labels are
// unique and resolvable, each temp is written once, and every temp is
// written before it is first read in program order.
func Validate(seq []Instruction) error {
	if _, err := ResolveLabels(seq); err != nil {
		return err
	}

	defined := make(map[Temp]int)
	for pc, inst := range seq {
		for _, t := range inst.Operands() {
			if _, ok := defined[t]; !ok {
				return fmt.Errorf("%w: %s read at %d before it is written", ErrMalformedSequence, t, pc)
			}
		}
		if t, ok := inst.Target(); ok {
			if prev, exists := defined[t]; exists {
				return fmt.Errorf("%w: %s written at %d and %d", ErrMalformedSequence, t, prev, pc)
			}
			defined[t] = pc
		}
	}

	return nil
}
