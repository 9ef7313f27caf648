package taskfile

import (
	"sort"

	"github.com/alexanderramin/epicsync/internal/domain"
)

// PhaseGroup holds the epics sharing a phase number, in file order.
type PhaseGroup struct {
	Number int
	Label  string
	Epics  []*domain.Epic
}

// Hours sums the durations of the epics in the phase.
func (g PhaseGroup) Hours() int {
	total := 0
	for _, e := range g.Epics {
		total = domain.AddCapped(total, e.Duration)
	}
	return total
}

// WaveGroup lists the epic names scheduled in one execution wave.
type WaveGroup struct {
	Number int
	Epics  []string
}

// Summary is the aggregated view of all parsed task files.
type Summary struct {
	Epics            []*domain.Epic
	Phases           []PhaseGroup // ascending phase number
	Waves            []WaveGroup  // ascending wave number
	TotalHours       int
	TotalTasks       int
	TotalTaskMinutes int
}

// Aggregate groups epics by phase and by wave and computes totals. It does no
// I/O and keeps the input order within each group.
func Aggregate(epics []*domain.Epic) *Summary {
	s := &Summary{Epics: epics}

	phaseIdx := make(map[int]int)
	waveIdx := make(map[int]int)

	for _, e := range epics {
		s.TotalHours = domain.AddCapped(s.TotalHours, e.Duration)
		s.TotalTasks += len(e.Tasks)
		s.TotalTaskMinutes = domain.AddCapped(s.TotalTaskMinutes, e.TaskMinutes())

		i, ok := phaseIdx[e.Phase]
		if !ok {
			i = len(s.Phases)
			phaseIdx[e.Phase] = i
			s.Phases = append(s.Phases, PhaseGroup{Number: e.Phase, Label: domain.PhaseLabel(e.Phase)})
		}
		s.Phases[i].Epics = append(s.Phases[i].Epics, e)

		j, ok := waveIdx[e.Wave]
		if !ok {
			j = len(s.Waves)
			waveIdx[e.Wave] = j
			s.Waves = append(s.Waves, WaveGroup{Number: e.Wave})
		}
		s.Waves[j].Epics = append(s.Waves[j].Epics, e.Name)
	}

	sort.SliceStable(s.Phases, func(a, b int) bool { return s.Phases[a].Number < s.Phases[b].Number })
	sort.SliceStable(s.Waves, func(a, b int) bool { return s.Waves[a].Number < s.Waves[b].Number })

	return s
}

// FindEpic returns the first epic with the given name.
func (s *Summary) FindEpic(name string) *domain.Epic {
	for _, e := range s.Epics {
		if e.Name == name {
			return e
		}
	}
	return nil
}
