// Package search compiles user patterns into matchers and filters the
// record set by title and tag. A malformed pattern never reaches the user
// as an error; it simply produces no matcher.
package search

import (
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// Matcher tests records against a compiled search pattern.
type Matcher struct {
	re *regexp.Regexp
}

// Compile turns a user pattern into a Matcher. Matching is
// case-insensitive unless the pattern says otherwise. An empty or
// syntactically invalid pattern yields nil: empty means "show everything",
// invalid means "leave the view unchanged".
func Compile(pattern string) *Matcher {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}
	return &Matcher{re: re}
}

// Match reports whether the record's title or tag matches the pattern.
func (m *Matcher) Match(r *record.Record) bool {
	if m == nil || m.re == nil || r == nil {
		return false
	}
	return m.re.MatchString(r.Title) || m.re.MatchString(r.TagOrDefault())
}

// MatchString tests a single text against the pattern.
func (m *Matcher) MatchString(text string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(text)
}

var highlight = color.New(color.FgBlack, color.BgYellow).SprintFunc()

// Highlight returns a copy of text with every matched span wrapped for
// terminal emphasis. The input is never modified, so clearing highlights
// is just re-rendering the original text.
func (m *Matcher) Highlight(text string) string {
	if m == nil || m.re == nil {
		return text
	}
	return m.re.ReplaceAllStringFunc(text, func(match string) string {
		return highlight(match)
	})
}

// Result is the outcome of filtering a record set.
type Result struct {
	Records []*record.Record
	IDs     map[string]bool
}

// Contains reports whether the record id matched.
func (r Result) Contains(id string) bool {
	return r.IDs[id]
}

// Filter keeps the records whose title or tag matches. A nil matcher keeps
// everything, which is how an empty search box clears filtering.
func Filter(records []*record.Record, m *Matcher) Result {
	res := Result{IDs: make(map[string]bool)}
	if m == nil {
		res.Records = records
		for _, r := range records {
			if r != nil {
				res.IDs[r.ID] = true
			}
		}
		return res
	}
	for _, r := range records {
		if m.Match(r) {
			res.Records = append(res.Records, r)
			res.IDs[r.ID] = true
		}
	}
	return res
}
