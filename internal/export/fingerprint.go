package export

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/epicsync/internal/domain"
	"github.com/alexanderramin/epicsync/internal/taskfile"
	"github.com/zeebo/blake3"
)

// canonicalEpic is the hashed form of an epic. The source path is left out so
// that moving the task directory does not change the fingerprint.
type canonicalEpic struct {
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Phase              int           `json:"phase"`
	Duration           int           `json:"duration"`
	Priority           string        `json:"priority"`
	Complexity         string        `json:"complexity"`
	Wave               int           `json:"wave"`
	Tasks              []domain.Task `json:"tasks"`
	AcceptanceCriteria []string      `json:"acceptance_criteria"`
	Dependencies       []string      `json:"dependencies"`
}

// Fingerprint returns the hex BLAKE3 digest of the parsed epics in file
// order. Identical task files give an identical fingerprint.
func Fingerprint(s *taskfile.Summary) (string, error) {
	canonical := make([]canonicalEpic, 0, len(s.Epics))
	for _, e := range s.Epics {
		canonical = append(canonical, canonicalEpic{
			Name:               e.Name,
			Description:        e.Description,
			Phase:              e.Phase,
			Duration:           e.Duration,
			Priority:           e.Priority,
			Complexity:         e.Complexity,
			Wave:               e.Wave,
			Tasks:              e.Tasks,
			AcceptanceCriteria: e.AcceptanceCriteria,
			Dependencies:       e.Dependencies,
		})
	}

	data, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("canonicalize epics: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(data); err != nil {
		return "", fmt.Errorf("hash epics: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
