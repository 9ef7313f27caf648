package formatter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/epicsync/internal/domain"
	"github.com/alexanderramin/epicsync/internal/taskfile"
)

// FormatFound renders the discovery line.
func FormatFound(n int) string {
	return fmt.Sprintf("📋 Found %s\n", Plural(n, "task file"))
}

// FormatNoTaskFiles renders the guidance shown when discovery finds nothing.
func FormatNoTaskFiles(dir string) string {
	return StyleRed.Render("❌ No task files found in "+dir) + "\n" +
		"Run /ultra-decompose first to create task files\n"
}

// FormatSummaryBox renders the space and totals card.
func FormatSummaryBox(spaceName string, s *taskfile.Summary) string {
	totals := fmt.Sprintf("%s, %s, ~%dh",
		Plural(len(s.Epics), "epic"), Plural(s.TotalTasks, "task"), s.TotalHours)

	lines := []string{
		labelLine("SPACE", 8, Bold(spaceName)),
		labelLine("TOTAL", 8, totals),
		labelLine("TASKS", 8, FormatMinutes(s.TotalTaskMinutes)+Dim(" estimated across checklist items")),
	}
	return RenderBox("Structure ready", strings.Join(lines, "\n")) + "\n"
}

// EpicDetail renders the per-epic badge: duration, task count, priority,
// complexity and wave.
func EpicDetail(e *domain.Epic) string {
	return fmt.Sprintf("%dh · %s · %s · %s · wave %d",
		e.Duration, Plural(len(e.Tasks), "task"), e.Priority, e.Complexity, e.Wave)
}

// FormatStructure renders phases as folders and their epics as lists.
func FormatStructure(s *taskfile.Summary) string {
	var items []TreeItem
	for _, g := range s.Phases {
		items = append(items, TreeItem{
			Icon:   "📁",
			Title:  "Folder: " + g.Label,
			Detail: fmt.Sprintf("%dh", g.Hours()),
		})
		for i, e := range g.Epics {
			items = append(items, TreeItem{
				Title:  "List: " + PriorityStyle(e.Priority).Render(e.Name),
				Level:  1,
				IsLast: i == len(g.Epics)-1,
				Detail: EpicDetail(e),
			})
		}
	}
	return Header("Structure") + "\n" + RenderTree(items)
}

// FormatWarnings renders validation warnings, or nothing when there are none.
func FormatWarnings(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Warnings (%d)", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString(StyleYellow.Render("  ⚠ ") + err.Error() + "\n")
	}
	return b.String()
}

// FormatSaved renders where the structure went. A dry run names the path it
// would have written.
func FormatSaved(path string, dryRun bool) string {
	if dryRun {
		return Dim("Dry run: structure not written to "+path) + "\n"
	}
	return fmt.Sprintf("📄 Structure saved to: %s\n", path)
}

// FormatWaves renders epic names grouped by execution wave.
func FormatWaves(waves []taskfile.WaveGroup) string {
	var b strings.Builder
	b.WriteString(Header("Execution Waves") + "\n")
	for _, w := range waves {
		b.WriteString(StylePurple.Render(fmt.Sprintf("Wave %d:", w.Number)) + "\n")
		for _, name := range w.Epics {
			b.WriteString("  - " + name + "\n")
		}
	}
	return b.String()
}

// FormatNextSteps renders the three follow-up instructions.
func FormatNextSteps(outputPath string) string {
	steps := []string{
		"Review structure: cat " + outputPath,
		"Create ClickUp structure manually or via ClickUp MCP tools",
		"Run /ultra-marathon to start execution",
	}
	var b strings.Builder
	b.WriteString(Header("Next Steps") + "\n")
	for i, step := range steps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return b.String()
}

// FormatEpicTable renders one row per parsed file for the validate command.
func FormatEpicTable(s *taskfile.Summary) string {
	cols := []Column{
		{Title: "FILE"},
		{Title: "EPIC"},
		{Title: "PHASE", Right: true},
		{Title: "WAVE", Right: true},
		{Title: "HOURS", Right: true},
		{Title: "TASKS", Right: true},
		{Title: "DEPS", Right: true},
	}
	rows := make([][]string, 0, len(s.Epics))
	for _, e := range s.Epics {
		rows = append(rows, []string{
			Dim(filepath.Base(e.File)),
			e.Name,
			strconv.Itoa(e.Phase),
			strconv.Itoa(e.Wave),
			strconv.Itoa(e.Duration),
			strconv.Itoa(len(e.Tasks)),
			strconv.Itoa(len(e.Dependencies)),
		})
	}
	return RenderTable(cols, rows)
}
