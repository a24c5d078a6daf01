package aggregate

import (
	"fmt"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

// CapState describes where usage stands relative to the weekly cap.
type CapState int

const (
	// CapUnset means no cap is configured (cap <= 0).
	CapUnset CapState = iota
	// CapRemaining means usage is within the cap; Minutes holds what is left.
	CapRemaining
	// CapOver means usage exceeded the cap; Minutes holds the overage.
	CapOver
)

// Level selects the notification channel a cap status is reported on.
type Level int

const (
	// LevelRoutine statuses are ordinary, non-interrupting updates.
	LevelRoutine Level = iota
	// LevelUrgent statuses demand immediate attention (over budget).
	LevelUrgent
)

// CapReport is the outcome of checking usage against the weekly cap.
type CapReport struct {
	State   CapState
	Level   Level
	Minutes int
}

// CapStatus compares used minutes against the configured weekly cap.
// A cap of zero or less reports CapUnset. Otherwise the report carries the
// remaining minutes, or the overage flagged urgent once the cap is blown.
func CapStatus(capMinutes, usedMinutes int) CapReport {
	if capMinutes <= 0 {
		return CapReport{State: CapUnset, Level: LevelRoutine}
	}
	remaining := capMinutes - usedMinutes
	if remaining >= 0 {
		return CapReport{State: CapRemaining, Level: LevelRoutine, Minutes: remaining}
	}
	return CapReport{State: CapOver, Level: LevelUrgent, Minutes: -remaining}
}

// Text renders the report the way the dashboard announces it.
func (c CapReport) Text() string {
	switch c.State {
	case CapRemaining:
		return fmt.Sprintf("Remaining: %s", timeutil.FormatMinutes(c.Minutes))
	case CapOver:
		return fmt.Sprintf("Over by %s", timeutil.FormatMinutes(c.Minutes))
	}
	return "No weekly cap set"
}
