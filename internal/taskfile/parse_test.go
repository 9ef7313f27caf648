package taskfile

import (
	"math"
	"strconv"
	"testing"

	"github.com/alexanderramin/epicsync/internal/domain"
	"github.com/alexanderramin/epicsync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullTaskFile = `# Authentication Guide

**Phase**: 1
**Estimated Duration**: 6h
**Priority**: high
**Complexity**: Complex
**Wave Context**: Runs after the foundation, Wave 2

## Epic: Authentication Guide

Document the OAuth flow and API key handling
for both transports.

**Goal**: A reader can authenticate in five minutes.

## Tasks

- [ ] Draft OAuth walkthrough (45m) - Agent: Writer
- [ ] Review token refresh section (20m)
- [ ] Add API key examples - Agent: Engineer
- [ ] Proofread
not a task line

## Acceptance Criteria

- [ ] Every endpoint has an auth example
- [ ] Reviewed by security

## Dependencies

- Depends on: Project Setup, Style Guide
- Depends on:  Glossary
`

func TestParse_FullFile(t *testing.T) {
	epic := Parse("tasks/phase-1-auth.md", fullTaskFile)

	assert.Equal(t, "tasks/phase-1-auth.md", epic.File)
	assert.Equal(t, "Authentication Guide", epic.Name)
	assert.Equal(t, 1, epic.Phase)
	assert.Equal(t, 6, epic.Duration)
	assert.Equal(t, "high", epic.Priority)
	assert.Equal(t, "Complex", epic.Complexity)
	assert.Equal(t, 2, epic.Wave)
	assert.Equal(t, "Document the OAuth flow and API key handling\nfor both transports.", epic.Description)

	require.Len(t, epic.Tasks, 4)
	assert.Equal(t, domain.Task{Name: "Draft OAuth walkthrough", Minutes: 45, Agent: "Writer"}, epic.Tasks[0])
	assert.Equal(t, domain.Task{Name: "Review token refresh section", Minutes: 20, Agent: "General"}, epic.Tasks[1])
	assert.Equal(t, domain.Task{Name: "Add API key examples", Minutes: 30, Agent: "Engineer"}, epic.Tasks[2])
	assert.Equal(t, domain.Task{Name: "Proofread", Minutes: 30, Agent: "General"}, epic.Tasks[3])

	assert.Equal(t, []string{"Every endpoint has an auth example", "Reviewed by security"}, epic.AcceptanceCriteria)
	assert.Equal(t, []string{"Project Setup", "Style Guide", "Glossary"}, epic.Dependencies)
}

func TestParse_EmptyFileUsesDefaults(t *testing.T) {
	epic := Parse("/tmp/tasks/phase-0-setup.md", "")

	assert.Equal(t, "phase-0-setup", epic.Name)
	assert.Equal(t, 0, epic.Phase)
	assert.Equal(t, 0, epic.Duration)
	assert.Equal(t, domain.DefaultPriority, epic.Priority)
	assert.Equal(t, domain.DefaultComplexity, epic.Complexity)
	assert.Equal(t, 1, epic.Wave)
	assert.Empty(t, epic.Description)
	assert.NotNil(t, epic.Tasks)
	assert.Empty(t, epic.Tasks)
	assert.NotNil(t, epic.AcceptanceCriteria)
	assert.Empty(t, epic.AcceptanceCriteria)
	assert.NotNil(t, epic.Dependencies)
	assert.Empty(t, epic.Dependencies)
}

func TestParse_WaveDefaultsToPhasePlusOne(t *testing.T) {
	content := testutil.NewTaskFile("Reference Docs", testutil.WithPhase(2)).Markdown()

	epic := Parse("phase-2-ref.md", content)

	assert.Equal(t, 2, epic.Phase)
	assert.Equal(t, 3, epic.Wave)
}

func TestParse_ExplicitWaveOverridesDefault(t *testing.T) {
	content := testutil.NewTaskFile("Reference Docs",
		testutil.WithPhase(2),
		testutil.WithWave(5),
	).Markdown()

	epic := Parse("phase-2-ref.md", content)

	assert.Equal(t, 5, epic.Wave)
}

func TestParse_WaveMarkerMustShareLine(t *testing.T) {
	content := "**Phase**: 1\n**Wave Context**: see below\nWave 4\n"

	epic := Parse("phase-1.md", content)

	assert.Equal(t, 2, epic.Wave)
}

func TestParse_TaskDefaults(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Task
	}{
		{"plain", "Write intro", domain.Task{Name: "Write intro", Minutes: 30, Agent: "General"}},
		{"minutes only", "Write intro (15m)", domain.Task{Name: "Write intro", Minutes: 15, Agent: "General"}},
		{"agent only", "Write intro - Agent: Scribe", domain.Task{Name: "Write intro", Minutes: 30, Agent: "Scribe"}},
		{"both", "Write intro (90m) - Agent: Scribe", domain.Task{Name: "Write intro", Minutes: 90, Agent: "Scribe"}},
		{"minutes not at end", "Write intro (15m) twice", domain.Task{Name: "Write intro (15m) twice", Minutes: 30, Agent: "General"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := testutil.NewTaskFile("Epic", testutil.WithTasks(tt.line)).Markdown()

			epic := Parse("phase-0.md", content)

			require.Len(t, epic.Tasks, 1)
			assert.Equal(t, tt.want, epic.Tasks[0])
		})
	}
}

func TestParse_CheckedItemsAreSkipped(t *testing.T) {
	content := "## Tasks\n\n- [x] Done already\n- [ ] Still open\n"

	epic := Parse("phase-0.md", content)

	require.Len(t, epic.Tasks, 1)
	assert.Equal(t, "Still open", epic.Tasks[0].Name)
}

func TestParse_NoTasksSection(t *testing.T) {
	content := testutil.NewTaskFile("Epic", testutil.WithCriteria("Looks right")).Markdown()

	epic := Parse("phase-0.md", content)

	assert.Empty(t, epic.Tasks)
	assert.Equal(t, []string{"Looks right"}, epic.AcceptanceCriteria)
}

func TestParse_TasksSectionStopsAtNextHeading(t *testing.T) {
	content := testutil.NewTaskFile("Epic",
		testutil.WithTasks("Only task"),
		testutil.WithCriteria("Not a task"),
	).Markdown()

	epic := Parse("phase-0.md", content)

	require.Len(t, epic.Tasks, 1)
	assert.Equal(t, "Only task", epic.Tasks[0].Name)
}

func TestParse_DependenciesTrimmed(t *testing.T) {
	content := "## Dependencies\n\n- Depends on: A,  B ,C,\n"

	epic := Parse("phase-0.md", content)

	assert.Equal(t, []string{"A", "B", "C", ""}, epic.Dependencies)
}

func TestParse_EpicNameTrimmed(t *testing.T) {
	epic := Parse("phase-0.md", "# Write docs  \n")

	assert.Equal(t, "Write docs", epic.Name)
}

func TestParse_EmptyDependencyTokensKept(t *testing.T) {
	content := "## Dependencies\n\n- Depends on: A,,B\n"

	epic := Parse("phase-0.md", content)

	assert.Equal(t, []string{"A", "", "B"}, epic.Dependencies)
}

func TestParse_UnicodeMarkerWords(t *testing.T) {
	content := "**Priority**: Élevée\n**Complexity**: Très\n"

	epic := Parse("phase-0.md", content)

	assert.Equal(t, "Élevée", epic.Priority)
	assert.Equal(t, "Très", epic.Complexity)
}

func TestParse_DependsOnOutsideSectionIgnored(t *testing.T) {
	content := "# Epic\n\n- Depends on: Stray\n\n## Tasks\n\n- [ ] One\n"

	epic := Parse("phase-0.md", content)

	assert.Empty(t, epic.Dependencies)
}

func TestParse_DescriptionRunsToEndWithoutBoldLabel(t *testing.T) {
	content := "# Epic\n\n## Epic: Epic\n\nFirst paragraph.\n\nSecond paragraph.\n"

	epic := Parse("phase-0.md", content)

	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", epic.Description)
}

func TestParse_CRLFLineEndings(t *testing.T) {
	content := "# Windows Epic\r\n\r\n**Phase**: 3\r\n\r\n## Tasks\r\n\r\n- [ ] Convert (10m) - Agent: Ops\r\n"

	epic := Parse("phase-3.md", content)

	assert.Equal(t, "Windows Epic", epic.Name)
	assert.Equal(t, 3, epic.Phase)
	require.Len(t, epic.Tasks, 1)
	assert.Equal(t, domain.Task{Name: "Convert", Minutes: 10, Agent: "Ops"}, epic.Tasks[0])
}

func TestParse_CarriageReturnLineEndings(t *testing.T) {
	content := "# T\r\r**Wave Context**: Wave 4\r**Phase**: 2\r"

	epic := Parse("phase-2.md", content)

	assert.Equal(t, "T", epic.Name)
	assert.Equal(t, 2, epic.Phase)
	assert.Equal(t, 4, epic.Wave)
}

func TestParse_FirstMarkerWins(t *testing.T) {
	content := "**Priority**: low\n**Priority**: high\n**Estimated Duration**: 3h\n**Estimated Duration**: 9h\n"

	epic := Parse("phase-0.md", content)

	assert.Equal(t, "low", epic.Priority)
	assert.Equal(t, 3, epic.Duration)
}

func TestParse_OverflowingNumberFallsBack(t *testing.T) {
	content := "**Estimated Duration**: 99999999999999999999999h\n"

	epic := Parse("phase-0.md", content)

	assert.Equal(t, 0, epic.Duration)
}

func TestParse_MaxIntPhaseFallsBack(t *testing.T) {
	content := "**Phase**: " + strconv.Itoa(math.MaxInt) + "\n"

	epic := Parse("phase-x.md", content)

	assert.Equal(t, 0, epic.Phase)
	assert.Equal(t, 1, epic.Wave)
}
