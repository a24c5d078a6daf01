// Package validate checks planner record fields against the structural
// rules the planner accepts. Every rule is a fixed pattern; validation is
// stateless and pure.
package validate

import (
	"regexp"
	"strings"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// Result is the outcome of validating a single field.
type Result struct {
	Valid   bool
	Message string
}

// Strategy validates fields and whole records. The CLI and the TUI take a
// Strategy at construction so alternate rule sets can be swapped in; Rules
// is the default.
type Strategy interface {
	Field(name, value string) Result
	Record(r *record.Record) []string
}

var (
	// Title: at least one non-space character, no leading/trailing spaces.
	titlePattern = regexp.MustCompile(`^\S(?:.*\S)?$`)
	// Duration: non-negative number, at most two decimal places.
	durationPattern = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	// Date: strict YYYY-MM-DD.
	datePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	// Tag: letters, spaces, and single hyphens only.
	tagPattern = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	// Time: 24-hour HH:MM.
	timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	// Word runs, used by the duplicate-word check. RE2 has no
	// backreferences, so repetition is detected by comparing neighbors.
	wordPattern = regexp.MustCompile(`\w+`)
)

var patterns = map[string]*regexp.Regexp{
	"title":    titlePattern,
	"duration": durationPattern,
	"date":     datePattern,
	"tag":      tagPattern,
	"category": tagPattern,
	"time":     timePattern,
}

var messages = map[string]string{
	"title":    "Title cannot have leading or trailing spaces",
	"duration": "Duration must be a valid number (e.g., 60 or 1.5)",
	"date":     "Date must be in YYYY-MM-DD format",
	"tag":      "Tag can only contain letters, spaces, and hyphens",
	"category": "Tag can only contain letters, spaces, and hyphens",
	"time":     "Time must be in HH:MM format (00-23 hours)",
}

// Rules is the canonical pattern-based validation strategy.
type Rules struct{}

// Field validates a single named field. Unknown field names pass, matching
// the permissive behavior callers rely on for optional inputs.
func (Rules) Field(name, value string) Result {
	pattern, ok := patterns[name]
	if !ok {
		return Result{Valid: true}
	}
	if pattern.MatchString(value) {
		return Result{Valid: true}
	}
	return Result{Valid: false, Message: messages[name]}
}

// HasDuplicateWords reports whether text contains an immediately repeated
// word, ignoring case ("Math Math").
func HasDuplicateWords(text string) bool {
	words := wordPattern.FindAllString(text, -1)
	for i := 1; i < len(words); i++ {
		if strings.EqualFold(words[i-1], words[i]) {
			return true
		}
	}
	return false
}

// Record validates every required field for the record's type and returns
// all failure messages, not just the first. An empty slice means the
// record is acceptable.
func (v Rules) Record(r *record.Record) []string {
	var errs []string

	if res := v.Field("title", r.Title); !res.Valid {
		errs = append(errs, res.Message)
	} else if HasDuplicateWords(r.Title) {
		errs = append(errs, "Title contains duplicate words")
	}

	if res := v.Field("tag", r.TagOrDefault()); !res.Valid {
		errs = append(errs, res.Message)
	}

	switch r.Type {
	case record.TypeTask:
		if res := v.Field("date", r.DueDate); !res.Valid {
			errs = append(errs, "Due date must be in YYYY-MM-DD format")
		}
		if r.Duration != nil {
			if *r.Duration < 0 {
				errs = append(errs, messages["duration"])
			}
		}
	case record.TypeEvent:
		if res := v.Field("date", r.Date); !res.Valid {
			errs = append(errs, res.Message)
		}
		if res := v.Field("time", r.Time); !res.Valid {
			errs = append(errs, res.Message)
		}
	default:
		errs = append(errs, "Record type must be task or event")
	}

	return errs
}
