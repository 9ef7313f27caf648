package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/epicsync/internal/domain"
	"github.com/alexanderramin/epicsync/internal/taskfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var testSpace = Space{Name: "Docs Alignment", ID: "90144360426"}

func sampleSummary() *taskfile.Summary {
	setup := &domain.Epic{
		File:       "phase-0-setup.md",
		Name:       "Setup",
		Phase:      0,
		Duration:   4,
		Priority:   "high",
		Complexity: "Simple",
		Wave:       1,
		Tasks: []domain.Task{
			{Name: "Install", Minutes: 30, Agent: "General"},
			{Name: "Configure", Minutes: 45, Agent: "Ops"},
		},
		AcceptanceCriteria: []string{"Builds"},
		Dependencies:       []string{},
	}
	api := &domain.Epic{
		File:               "phase-1-api.md",
		Name:               "API",
		Phase:              1,
		Duration:           6,
		Priority:           "medium",
		Complexity:         "Standard",
		Wave:               2,
		Tasks:              []domain.Task{{Name: "Document", Minutes: 30, Agent: "Writer"}},
		AcceptanceCriteria: []string{},
		Dependencies:       []string{"Setup", "External"},
	}
	extra := &domain.Epic{
		File:       "phase-10-extra.md",
		Name:       "Extra",
		Phase:      10,
		Priority:   "low",
		Complexity: "Standard",
		Wave:       11,
	}
	return taskfile.Aggregate([]*domain.Epic{setup, api, extra})
}

func TestConvert_Structure(t *testing.T) {
	st, err := Convert(sampleSummary(), testSpace)
	require.NoError(t, err)

	assert.Equal(t, "Docs Alignment", st.SpaceName)
	assert.Equal(t, "90144360426", st.SpaceID)
	assert.Equal(t, Totals{Epics: 3, Tasks: 3, Hours: 10}, st.Totals)

	require.Len(t, st.Phases, 3)
	assert.Equal(t, "Phase 0 - Foundation", st.Phases[0].Name)
	assert.Equal(t, "Phase 10", st.Phases[2].Name)

	setup := st.Phases[0].Epics[0]
	assert.Equal(t, EpicRef(testSpace.ID, "Setup"), setup.Ref)
	require.Len(t, setup.Tasks, 2)
	assert.Equal(t, TaskExport{Name: "Configure", Minutes: 45, Agent: "Ops"}, setup.Tasks[1])

	api := st.Phases[1].Epics[0]
	assert.Equal(t, []string{"Setup", "External"}, api.Dependencies)
	assert.Equal(t, []string{setup.Ref}, api.DependencyRefs)
}

func TestEpicRef_Deterministic(t *testing.T) {
	assert.Equal(t, EpicRef("space", "Setup"), EpicRef("space", "Setup"))
	assert.NotEqual(t, EpicRef("space", "Setup"), EpicRef("other", "Setup"))
	assert.NotEqual(t, EpicRef("space", "Setup"), EpicRef("space", "API"))
}

func TestMarshal_PhaseKeysInNumericOrder(t *testing.T) {
	st, err := Convert(sampleSummary(), testSpace)
	require.NoError(t, err)

	data, err := Marshal(st)
	require.NoError(t, err)

	var keys []string
	gjson.GetBytes(data, "phases").ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, []string{"0", "1", "10"}, keys)
	assert.Equal(t, int64(4), gjson.GetBytes(data, "phases.0.epics.0.duration").Int())
	assert.Equal(t, "Phase 10", gjson.GetBytes(data, "phases.10.name").String())
}

func TestMarshal_EmptyListsAreArrays(t *testing.T) {
	st, err := Convert(sampleSummary(), testSpace)
	require.NoError(t, err)

	data, err := Marshal(st)
	require.NoError(t, err)

	extra := gjson.GetBytes(data, "phases.10.epics.0")
	assert.True(t, extra.Get("tasks").IsArray())
	assert.True(t, extra.Get("acceptance_criteria").IsArray())
	assert.True(t, extra.Get("dependencies").IsArray())
	assert.True(t, extra.Get("dependency_refs").IsArray())
}

func TestFingerprint_StableAndSensitive(t *testing.T) {
	a, err := Fingerprint(sampleSummary())
	require.NoError(t, err)
	b, err := Fingerprint(sampleSummary())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	changed := sampleSummary()
	changed.Epics[0].Tasks[0].Minutes = 31
	c, err := Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestFingerprint_IgnoresFilePath(t *testing.T) {
	a, err := Fingerprint(sampleSummary())
	require.NoError(t, err)

	moved := sampleSummary()
	moved.Epics[0].File = "/elsewhere/phase-0-setup.md"
	b, err := Fingerprint(moved)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestValidate_AcceptsConvertedStructure(t *testing.T) {
	st, err := Convert(sampleSummary(), testSpace)
	require.NoError(t, err)
	data, err := Marshal(st)
	require.NoError(t, err)

	assert.NoError(t, Validate(data))
}

func TestValidate_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing space id", `{"space_name":"x","phases":{}}`},
		{"non numeric phase key", `{"space_name":"x","space_id":"1","phases":{"first":{"name":"a","epics":[]}}}`},
		{"negative duration", `{"space_name":"x","space_id":"1","phases":{"0":{"name":"a","epics":[
			{"name":"e","description":"","duration":-1,"priority":"p","complexity":"c","wave":1,
			 "tasks":[],"acceptance_criteria":[],"dependencies":[]}]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidStructure))
		})
	}
}

func TestWriteFile_CreatesDirectory(t *testing.T) {
	st, err := Convert(sampleSummary(), testSpace)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "sync.json")
	require.NoError(t, WriteFile(path, st))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "90144360426", gjson.GetBytes(data, "space_id").String())
	assert.Contains(t, string(data), "\n  \"space_name\"")
}

func TestWriteFile_RejectsEmptySpaceID(t *testing.T) {
	st, err := Convert(sampleSummary(), Space{Name: "x"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sync.json")
	err = WriteFile(path, st)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStructure))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadFile_RejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := ReadFile(path)
	assert.True(t, errors.Is(err, ErrInvalidStructure))
}

func TestQuery(t *testing.T) {
	data := []byte(`{"space_name":"Docs","phases":{"0":{"name":"Phase 0 - Foundation","epics":[{"duration":4}]}}}`)

	out, err := Query(data, "space_name")
	require.NoError(t, err)
	assert.Equal(t, "Docs\n", string(out))

	out, err = Query(data, "phases.0.epics.0.duration")
	require.NoError(t, err)
	assert.Equal(t, "4\n", string(out))

	out, err = Query(data, "phases.0")
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"name\": \"Phase 0 - Foundation\"")

	_, err = Query(data, "phases.3")
	assert.True(t, errors.Is(err, ErrPathNotFound))

	out, err = Query(data, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"space_name\": \"Docs\"")
}
