package export

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// SyncStructure is the JSON document handed to the project-management tool.
type SyncStructure struct {
	SpaceName   string `json:"space_name"`
	SpaceID     string `json:"space_id"`
	Fingerprint string `json:"fingerprint"`
	Totals      Totals `json:"totals"`
	Phases      Phases `json:"phases"`
}

// Totals summarises the whole structure.
type Totals struct {
	Epics int `json:"epics"`
	Tasks int `json:"tasks"`
	Hours int `json:"hours"`
}

// Phases is ordered by phase number and marshals as an object keyed by the
// decimal phase number.
type Phases []PhaseExport

// PhaseExport maps to a folder in the target space.
type PhaseExport struct {
	Number int          `json:"-"`
	Name   string       `json:"name"`
	Epics  []EpicExport `json:"epics"`
}

// EpicExport maps to a list in the target space.
type EpicExport struct {
	Ref                string       `json:"ref"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Duration           int          `json:"duration"`
	Priority           string       `json:"priority"`
	Complexity         string       `json:"complexity"`
	Wave               int          `json:"wave"`
	Tasks              []TaskExport `json:"tasks"`
	AcceptanceCriteria []string     `json:"acceptance_criteria"`
	Dependencies       []string     `json:"dependencies"`
	DependencyRefs     []string     `json:"dependency_refs"`
}

// TaskExport maps to a task inside a list.
type TaskExport struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
	Agent   string `json:"agent"`
}

// MarshalJSON keeps phases in ascending numeric order; a plain map would
// sort "10" before "2".
func (p Phases) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, phase := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.Itoa(phase.Number))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(phase)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal renders the structure indented for reading.
func Marshal(s *SyncStructure) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
