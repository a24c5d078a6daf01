package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/search"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

// PrettyPrint renders planner views to the terminal.
type PrettyPrint struct {
	ShowID bool
	// Matcher, when set, wraps matched spans in search highlighting.
	Matcher *search.Matcher
}

var spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// TitleWithCount prints a column heading with its record count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

// Column prints one board column's records.
func (pp *PrettyPrint) Column(records ...*record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range records {
		row := pp.row(r)
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(r.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) row(r *record.Record) []interface{} {
	title := r.Title
	tag := r.TagOrDefault()
	if pp.Matcher != nil {
		title = pp.Matcher.Highlight(title)
		tag = pp.Matcher.Highlight(tag)
	}

	switch r.Type {
	case record.TypeTask:
		return []interface{}{
			"task",
			title,
			"due " + r.DueDate,
			string(r.Status),
			string(r.Priority),
			timeutil.FormatMinutes(r.DurationMinutes()),
			tag,
		}
	case record.TypeEvent:
		return []interface{}{
			"event",
			title,
			r.Date + " " + r.Time,
			"",
			"",
			timeutil.FormatMinutes(r.DurationMinutes()),
			tag,
		}
	}
	return []interface{}{string(r.Type), title, "", "", "", "", tag}
}

// Board prints the full three-column view.
func (pp *PrettyPrint) Board(b classify.Board) {
	fmt.Println("")
	for _, bucket := range classify.Buckets() {
		pp.TitleWithCount(bucket.String(), b.Count(bucket))
		pp.Column(b.Columns[bucket]...)
	}
}
