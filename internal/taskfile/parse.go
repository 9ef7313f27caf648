package taskfile

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/epicsync/internal/domain"
)

// Parse extracts an Epic from the markdown content of a task file. Every field
// is optional: missing or malformed markers fall back to defaults, so Parse
// never fails.
func Parse(path, content string) *domain.Epic {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	name, ok := firstString(titlePattern, content)
	if !ok {
		name = stem(path)
	}

	phase := domain.IntFromPtrWithDefault(0, firstInt(phasePattern, content))
	if phase == math.MaxInt {
		// The default wave phase+1 would not fit; treat it like any other
		// out-of-range number.
		phase = 0
	}
	priority, _ := firstString(priorityPattern, content)
	complexity, _ := firstString(complexityPattern, content)

	return &domain.Epic{
		File:               path,
		Name:               strings.TrimSpace(name),
		Description:        description(content),
		Phase:              phase,
		Duration:           domain.IntFromPtrWithDefault(0, firstInt(durationPattern, content)),
		Priority:           domain.CoalesceStr(priority, domain.DefaultPriority),
		Complexity:         domain.CoalesceStr(complexity, domain.DefaultComplexity),
		Wave:               domain.IntFromPtrWithDefault(phase+1, firstInt(wavePattern, content)),
		Tasks:              parseTasks(content),
		AcceptanceCriteria: parseCriteria(content),
		Dependencies:       parseDependencies(content),
	}
}

func parseTasks(content string) []domain.Task {
	body, ok := section(content, "Tasks")
	if !ok {
		return []domain.Task{}
	}

	tasks := []domain.Task{}
	for _, m := range taskLinePattern.FindAllStringSubmatch(body, -1) {
		minutes := domain.DefaultTaskMinutes
		if m[2] != "" {
			if n, err := strconv.Atoi(m[2]); err == nil {
				minutes = n
			}
		}
		tasks = append(tasks, domain.Task{
			Name:    strings.TrimSpace(m[1]),
			Minutes: minutes,
			Agent:   domain.CoalesceStr(strings.TrimSpace(m[3]), domain.DefaultAgent),
		})
	}
	return tasks
}

func parseCriteria(content string) []string {
	body, ok := section(content, "Acceptance Criteria")
	if !ok {
		return []string{}
	}

	criteria := []string{}
	for _, m := range checklistLinePattern.FindAllStringSubmatch(body, -1) {
		criteria = append(criteria, m[1])
	}
	return criteria
}

func parseDependencies(content string) []string {
	body, ok := section(content, "Dependencies")
	if !ok {
		return []string{}
	}

	deps := []string{}
	for _, m := range dependsOnPattern.FindAllStringSubmatch(body, -1) {
		deps = append(deps, splitDependencies(m[1])...)
	}
	return deps
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
