package taskfile

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/epicsync/internal/domain"
)

// Validate inspects an aggregated summary for problems worth reporting. The
// returned errors are warnings: none of them stops a sync.
func Validate(s *Summary) []error {
	var errs []error

	errs = append(errs, validatePhases(s)...)
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateDependencies(s)...)

	return errs
}

func validatePhases(s *Summary) []error {
	var errs []error
	for _, g := range s.Phases {
		if !domain.KnownPhase(g.Number) {
			for _, e := range g.Epics {
				errs = append(errs, fmt.Errorf("%s: phase %d has no named folder", filepath.Base(e.File), g.Number))
			}
		}
	}
	return errs
}

func validateNames(s *Summary) []error {
	var errs []error
	seen := make(map[string]string)
	for _, e := range s.Epics {
		file := filepath.Base(e.File)
		if prev, ok := seen[e.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: epic name %q already used by %s", file, e.Name, prev))
		} else {
			seen[e.Name] = file
		}
		if len(e.Tasks) == 0 {
			errs = append(errs, fmt.Errorf("%s: epic %q has no tasks", file, e.Name))
		}
	}
	return errs
}

func validateDependencies(s *Summary) []error {
	var errs []error
	for _, e := range s.Epics {
		file := filepath.Base(e.File)
		if e.DependsOn(e.Name) {
			errs = append(errs, fmt.Errorf("%s: epic %q depends on itself", file, e.Name))
		}
		for _, dep := range e.Dependencies {
			if dep == e.Name {
				continue
			}
			target := s.FindEpic(dep)
			switch {
			case target == nil:
				errs = append(errs, fmt.Errorf("%s: dependency %q does not match any epic", file, dep))
			case target.Wave >= e.Wave:
				errs = append(errs, fmt.Errorf("%s: epic %q runs in wave %d but depends on %q in wave %d",
					file, e.Name, e.Wave, dep, target.Wave))
			}
		}
	}
	return errs
}
