package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/aggregate"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

// trendBarScale is how many minutes one bar cell represents.
const trendBarScale = 30

// Dashboard prints the derived statistics view: totals, top tag, the
// trailing daily trend, and the weekly cap status. An over-budget cap is
// announced on stderr in alert styling; routine statuses print normally.
func (pp *PrettyPrint) Dashboard(d app.Dashboard) {
	fmt.Println("")
	pp.Title("Dashboard")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Tasks", fmt.Sprintf("%d", d.TaskCount))
	tbl.AddRow("Events", fmt.Sprintf("%d", d.EventCount))
	tbl.AddRow("Total duration", timeutil.FormatForUnit(d.TotalDuration, d.Unit))
	tbl.AddRow("Top tag", d.TopTag)
	_, _ = fmt.Fprintln(color.Output, tbl)

	fmt.Println("")
	pp.Title("Last 7 days")
	pp.Trend(d.Trend)

	fmt.Println("")
	pp.CapStatus(d.Cap)
}

// Trend prints the daily duration series as a bar per day.
func (pp *PrettyPrint) Trend(series []aggregate.DayTotal) {
	bar := color.New(color.FgBlue)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, day := range series {
		cells := day.Minutes / trendBarScale
		if day.Minutes > 0 && cells == 0 {
			cells = 1
		}
		tbl.AddRow(
			day.Day.Format("Mon"),
			faint.Sprint(day.Key()),
			bar.Sprint(strings.Repeat("█", cells)),
			timeutil.FormatMinutes(day.Minutes),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// CapStatus announces the weekly cap state. The over-budget state goes to
// stderr bold red so it interrupts; everything else is a routine status.
func (pp *PrettyPrint) CapStatus(report aggregate.CapReport) {
	if report.Level == aggregate.LevelUrgent {
		alert := color.New(color.FgRed, color.Bold)
		_, _ = alert.Fprintf(os.Stderr, "%s\n", report.Text())
		return
	}
	status := color.New(color.FgGreen)
	if report.State == aggregate.CapUnset {
		status = color.New(color.Faint)
	}
	_, _ = status.Fprintln(color.Output, report.Text())
}
