package record

import (
	"fmt"
	"strings"
)

// Status is a task's workflow state. Stored and displayed capitalized,
// compared case-insensitively.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Is compares two statuses ignoring case.
func (s Status) Is(other Status) bool {
	return strings.EqualFold(string(s), string(other))
}

// Done reports whether the task has been finished.
func (s Status) Done() bool {
	return s.Is(StatusDone)
}

// StatusForAlias resolves user input like "todo" or "in progress" to the
// canonical status.
func StatusForAlias(alias string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(alias)) {
	case "todo", "to-do", "open":
		return StatusTodo, nil
	case "inprogress", "in progress", "in-progress", "doing":
		return StatusInProgress, nil
	case "done", "complete", "completed", "finished":
		return StatusDone, nil
	}
	return "", fmt.Errorf("unknown status %q", alias)
}

// Priority ranks a task. Stored capitalized, compared case-insensitively.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// PriorityForAlias resolves user input like "high" or "2" to a priority.
func PriorityForAlias(alias string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(alias)) {
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", alias)
}
