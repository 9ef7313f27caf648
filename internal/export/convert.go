package export

import (
	"github.com/alexanderramin/epicsync/internal/domain"
	"github.com/alexanderramin/epicsync/internal/taskfile"
	"github.com/google/uuid"
)

// refNamespace scopes epic refs so they never collide with other UUIDv5 users.
var refNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/alexanderramin/epicsync/epic"))

// Space identifies the target space in the project-management tool.
type Space struct {
	Name string
	ID   string
}

// EpicRef returns the deterministic ref of an epic within a space. The same
// space and name always produce the same ref.
func EpicRef(spaceID, epicName string) string {
	return uuid.NewSHA1(refNamespace, []byte(spaceID+"/"+epicName)).String()
}

// Convert builds the sync structure for an aggregated summary.
func Convert(s *taskfile.Summary, space Space) (*SyncStructure, error) {
	fp, err := Fingerprint(s)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]string, len(s.Epics))
	for _, e := range s.Epics {
		if _, ok := refs[e.Name]; !ok {
			refs[e.Name] = EpicRef(space.ID, e.Name)
		}
	}

	phases := make(Phases, 0, len(s.Phases))
	for _, g := range s.Phases {
		epics := make([]EpicExport, 0, len(g.Epics))
		for _, e := range g.Epics {
			epics = append(epics, convertEpic(e, refs))
		}
		phases = append(phases, PhaseExport{
			Number: g.Number,
			Name:   g.Label,
			Epics:  epics,
		})
	}

	return &SyncStructure{
		SpaceName:   space.Name,
		SpaceID:     space.ID,
		Fingerprint: fp,
		Totals: Totals{
			Epics: len(s.Epics),
			Tasks: s.TotalTasks,
			Hours: s.TotalHours,
		},
		Phases: phases,
	}, nil
}

func convertEpic(e *domain.Epic, refs map[string]string) EpicExport {
	tasks := make([]TaskExport, 0, len(e.Tasks))
	for _, t := range e.Tasks {
		tasks = append(tasks, TaskExport{Name: t.Name, Minutes: t.Minutes, Agent: t.Agent})
	}

	depRefs := []string{}
	for _, dep := range e.Dependencies {
		if ref, ok := refs[dep]; ok && dep != e.Name {
			depRefs = append(depRefs, ref)
		}
	}

	return EpicExport{
		Ref:                refs[e.Name],
		Name:               e.Name,
		Description:        e.Description,
		Duration:           e.Duration,
		Priority:           e.Priority,
		Complexity:         e.Complexity,
		Wave:               e.Wave,
		Tasks:              tasks,
		AcceptanceCriteria: nonNil(e.AcceptanceCriteria),
		Dependencies:       nonNil(e.Dependencies),
		DependencyRefs:     depRefs,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
