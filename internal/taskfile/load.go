package taskfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexanderramin/epicsync/internal/domain"
	"github.com/alexanderramin/epicsync/internal/logging"
	"github.com/charmbracelet/log"
)

// DefaultPattern matches the phase-ordered files written by the decomposition step.
const DefaultPattern = "phase-*.md"

// ErrNoTaskFiles is returned when the task directory holds no matching files.
var ErrNoTaskFiles = errors.New("no task files found")

// Discover returns the files in dir matching pattern, sorted by name.
// A missing directory yields no files rather than an error.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Loader discovers and parses the task files of one directory.
type Loader struct {
	dir     string
	pattern string
	logger  *log.Logger
}

// NewLoader creates a Loader. A nil logger discards all output.
func NewLoader(dir, pattern string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{dir: dir, pattern: pattern, logger: logger}
}

// Load parses every matching file in order. Each file is read in full before
// the next is opened. Returns ErrNoTaskFiles when nothing matches.
func (l *Loader) Load() ([]*domain.Epic, error) {
	files, err := Discover(l.dir, l.pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTaskFiles, l.dir)
	}
	l.logger.Debug("discovered task files", "dir", l.dir, "count", len(files))

	epics := make([]*domain.Epic, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading task file %s: %w", path, err)
		}
		epic := Parse(path, string(data))
		l.logger.Debug("parsed task file",
			"file", filepath.Base(path),
			"epic", epic.Name,
			"phase", epic.Phase,
			"wave", epic.Wave,
			"tasks", len(epic.Tasks))
		epics = append(epics, epic)
	}
	return epics, nil
}
