package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TaskFile describes the markdown content of a single task file.
type TaskFile struct {
	Title       string
	Phase       *int
	Duration    *int
	Priority    string
	Complexity  string
	Wave        *int
	Description string
	Tasks       []string
	Criteria    []string
	DependsOn   []string
}

// TaskFile options
type TaskFileOption func(*TaskFile)

func WithPhase(n int) TaskFileOption {
	return func(f *TaskFile) {
		f.Phase = &n
	}
}

func WithDuration(hours int) TaskFileOption {
	return func(f *TaskFile) {
		f.Duration = &hours
	}
}

func WithPriority(p string) TaskFileOption {
	return func(f *TaskFile) {
		f.Priority = p
	}
}

func WithComplexity(c string) TaskFileOption {
	return func(f *TaskFile) {
		f.Complexity = c
	}
}

func WithWave(n int) TaskFileOption {
	return func(f *TaskFile) {
		f.Wave = &n
	}
}

func WithDescription(d string) TaskFileOption {
	return func(f *TaskFile) {
		f.Description = d
	}
}

// WithTasks adds raw checklist items, e.g. "Write intro (45m) - Agent: Writer".
func WithTasks(items ...string) TaskFileOption {
	return func(f *TaskFile) {
		f.Tasks = append(f.Tasks, items...)
	}
}

func WithCriteria(items ...string) TaskFileOption {
	return func(f *TaskFile) {
		f.Criteria = append(f.Criteria, items...)
	}
}

func WithDependsOn(names ...string) TaskFileOption {
	return func(f *TaskFile) {
		f.DependsOn = append(f.DependsOn, names...)
	}
}

func NewTaskFile(title string, opts ...TaskFileOption) *TaskFile {
	f := &TaskFile{Title: title}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Markdown renders the file in the layout produced by the decomposition step.
func (f *TaskFile) Markdown() string {
	var b strings.Builder

	if f.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", f.Title)
	}
	if f.Phase != nil {
		fmt.Fprintf(&b, "**Phase**: %d\n", *f.Phase)
	}
	if f.Duration != nil {
		fmt.Fprintf(&b, "**Estimated Duration**: %dh\n", *f.Duration)
	}
	if f.Priority != "" {
		fmt.Fprintf(&b, "**Priority**: %s\n", f.Priority)
	}
	if f.Complexity != "" {
		fmt.Fprintf(&b, "**Complexity**: %s\n", f.Complexity)
	}
	if f.Wave != nil {
		fmt.Fprintf(&b, "**Wave Context**: Scheduled for Wave %d\n", *f.Wave)
	}

	if f.Description != "" {
		fmt.Fprintf(&b, "\n## Epic: %s\n\n%s\n\n**Owner**: docs team\n", f.Title, f.Description)
	}

	writeChecklist(&b, "Tasks", f.Tasks)
	writeChecklist(&b, "Acceptance Criteria", f.Criteria)

	if len(f.DependsOn) > 0 {
		fmt.Fprintf(&b, "\n## Dependencies\n\n- Depends on: %s\n", strings.Join(f.DependsOn, ", "))
	}

	return b.String()
}

func writeChecklist(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- [ ] %s\n", item)
	}
}

// WriteTaskFile writes content to dir/name and returns the path.
func WriteTaskFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write task file %s: %v", path, err)
	}
	return path
}

// NewTaskDir creates a temporary task directory holding the given files,
// keyed by file name.
func NewTaskDir(t *testing.T, files map[string]*TaskFile) string {
	t.Helper()
	dir := t.TempDir()
	for name, f := range files {
		WriteTaskFile(t, dir, name, f.Markdown())
	}
	return dir
}
