package domain

// Defaults applied when a task file omits a field.
const (
	DefaultPriority    = "medium"
	DefaultComplexity  = "Standard"
	DefaultTaskMinutes = 30
	DefaultAgent       = "General"
)

// Epic is the parsed content of a single task file. It is built once by the
// parser and never mutated afterwards.
type Epic struct {
	File               string
	Name               string
	Description        string
	Phase              int
	Duration           int // hours
	Priority           string
	Complexity         string
	Wave               int
	Tasks              []Task
	AcceptanceCriteria []string
	Dependencies       []string
}

// Task is a checklist item of an epic.
type Task struct {
	Name    string
	Minutes int
	Agent   string
}

// TaskMinutes sums the estimated minutes of all tasks in the epic.
func (e *Epic) TaskMinutes() int {
	total := 0
	for _, t := range e.Tasks {
		total = AddCapped(total, t.Minutes)
	}
	return total
}

// DependsOn reports whether name is listed as a dependency of the epic.
func (e *Epic) DependsOn(name string) bool {
	for _, d := range e.Dependencies {
		if d == name {
			return true
		}
	}
	return false
}
