package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnitMinutes and UnitHours are the two display units a user can pick for
// durations. Storage is always minutes.
const (
	UnitMinutes = "minutes"
	UnitHours   = "hours"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
)

// ParseMinutes parses a duration entered by the user and returns whole
// minutes. A bare number ("480") is taken as minutes; otherwise unit
// segments are accepted ("8h", "1h30m", "1w").
func ParseMinutes(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("duration required")
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("duration must not be negative")
		}
		return int(math.Round(v)), nil
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseFloat(matches[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value * float64(base))
		remaining = remaining[len(matches[0]):]
	}

	return int(math.Round(total.Minutes())), nil
}

// FormatMinutes renders minutes the way the board and dashboard display
// durations: "45 m", "2 h", or "2 h 30 m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes >= 60 {
		h := minutes / 60
		m := minutes % 60
		if m == 0 {
			return fmt.Sprintf("%d h", h)
		}
		return fmt.Sprintf("%d h %d m", h, m)
	}
	return fmt.Sprintf("%d m", minutes)
}

// FormatForUnit renders minutes in the user's configured display unit.
// Hours divide by 60 and keep two decimals; the stored value stays in
// minutes either way.
func FormatForUnit(minutes int, unit string) string {
	if unit == UnitHours {
		return fmt.Sprintf("%.2f h", float64(minutes)/60)
	}
	return fmt.Sprintf("%d m", minutes)
}

// FormatRemaining renders the time left until an event's instant, for
// example "2d 3h 12m remaining". Past instants read "Event has passed".
func FormatRemaining(instant, now time.Time) string {
	diff := instant.Sub(now)
	if diff < 0 {
		return "Event has passed"
	}

	totalMinutes := int(diff.Minutes())
	days := totalMinutes / (60 * 24)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))

	return strings.Join(parts, " ") + " remaining"
}
