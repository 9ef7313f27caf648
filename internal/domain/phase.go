package domain

import "fmt"

// phaseLabels names the phases produced by the decomposition step.
var phaseLabels = map[int]string{
	0: "Phase 0 - Foundation",
	1: "Phase 1 - Core Architecture",
	2: "Phase 2 - Feature Documentation",
	3: "Phase 3 - Developer Experience",
	4: "Phase 4 - Validation & Polish",
}

// PhaseLabel returns the human-readable label for a phase number. Phases
// outside the known table get a generic "Phase N" label.
func PhaseLabel(phase int) string {
	if label, ok := phaseLabels[phase]; ok {
		return label
	}
	return fmt.Sprintf("Phase %d", phase)
}

// KnownPhase reports whether the phase has a dedicated label.
func KnownPhase(phase int) bool {
	_, ok := phaseLabels[phase]
	return ok
}
