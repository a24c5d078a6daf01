// Package board renders the live three-column planner view. Records are
// re-classified against the clock on a minute tick and on every store
// change notification, so the columns stay correct as time passes and as
// other planner processes write to the same store.
package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/aggregate"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/search"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

// reclassifyEvery is how often the board re-buckets records even when
// nothing changed, so a task due today eventually slides to Completed.
const reclassifyEvery = time.Minute

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	columnStyle = lipgloss.NewStyle().Padding(0, 2, 0, 0)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	urgentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type tickMsg time.Time

type storeMsg struct {
	event store.Event
	ok    bool
}

type loadedMsg struct {
	records []*record.Record
	cap     int
	err     error
}

// Model is the live board's Bubble Tea model.
type Model struct {
	persistence store.Persistence
	watch       <-chan store.Event

	records []*record.Record
	board   classify.Board
	capMin  int

	pattern string
	matcher *search.Matcher
	input   textinput.Model
	typing  bool

	width  int
	height int
	err    error
}

// New builds the board model and starts the store watcher.
func New(ctx context.Context, p store.Persistence) (Model, error) {
	watch, err := p.Watch(ctx)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "search title or tag"
	input.Prompt = "/"
	input.CharLimit = 80

	return Model{
		persistence: p,
		watch:       watch,
		input:       input,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.load(),
		tick(),
		waitForStore(m.watch),
	)
}

func (m Model) load() tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return loadedMsg{
			records: p.List(ctx),
			cap:     p.CapMinutes(),
		}
	}
}

func tick() tea.Cmd {
	return tea.Tick(reclassifyEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForStore(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		return storeMsg{event: ev, ok: ok}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		// Time moved on; re-bucket the same records against the new now.
		m.rebucket()
		return m, tick()

	case storeMsg:
		if !msg.ok {
			// Watcher closed; keep the last known view.
			return m, nil
		}
		return m, tea.Batch(m.load(), waitForStore(m.watch))

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.capMin = msg.cap
		m.rebucket()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		switch msg.Type {
		case tea.KeyEsc:
			m.typing = false
			m.input.Blur()
			m.input.SetValue("")
			m.pattern = ""
			m.matcher = nil
			m.rebucket()
			return m, nil
		case tea.KeyEnter:
			m.typing = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.applyPattern(m.input.Value())
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.typing = true
		m.input.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.load()
	}
	return m, nil
}

// applyPattern recompiles the search pattern. A malformed pattern keeps
// the previous matcher so the view does not jump around mid-keystroke.
func (m *Model) applyPattern(pattern string) {
	m.pattern = pattern
	matcher := search.Compile(pattern)
	if matcher == nil && strings.TrimSpace(pattern) != "" {
		return
	}
	m.matcher = matcher
	m.rebucket()
}

func (m *Model) rebucket() {
	result := search.Filter(m.records, m.matcher)
	m.board = classify.Group(result.Records, time.Now())
}

func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}

	columns := make([]string, 0, 3)
	for _, bucket := range classify.Buckets() {
		columns = append(columns, m.column(bucket))
	}

	b := strings.Builder{}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) column(bucket classify.Bucket) string {
	records := m.board.Columns[bucket]

	b := strings.Builder{}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", bucket, len(records))))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString(faintStyle.Render("none"))
		b.WriteString("\n")
	}
	for _, r := range records {
		b.WriteString(m.line(r, bucket))
		b.WriteString("\n")
	}
	return columnStyle.Render(b.String())
}

func (m Model) line(r *record.Record, bucket classify.Bucket) string {
	title := r.Title
	tag := r.TagOrDefault()
	if m.matcher != nil {
		title = m.matcher.Highlight(title)
		tag = m.matcher.Highlight(tag)
	}

	switch r.Type {
	case record.TypeTask:
		return fmt.Sprintf("%s  %s  %s  %s", title, faintStyle.Render("due "+r.DueDate), r.Status, faintStyle.Render(tag))
	case record.TypeEvent:
		when := r.Date + " " + r.Time
		if bucket != classify.Completed {
			if instant, ok := r.Instant(time.Local); ok {
				when = when + " · " + timeutil.FormatRemaining(instant, time.Now())
			}
		}
		return fmt.Sprintf("%s  %s  %s", title, faintStyle.Render(when), faintStyle.Render(tag))
	}
	return title
}

func (m Model) footer() string {
	used := aggregate.TotalDuration(m.records)
	report := aggregate.CapStatus(m.capMin, used)

	capLine := report.Text()
	switch report.Level {
	case aggregate.LevelUrgent:
		capLine = urgentStyle.Render(capLine)
	default:
		if report.State == aggregate.CapRemaining {
			capLine = okStyle.Render(capLine)
		} else {
			capLine = faintStyle.Render(capLine)
		}
	}

	help := faintStyle.Render("/ search · r refresh · q quit")
	if m.typing {
		return m.input.View() + "\n" + capLine + "\n" + help
	}
	if m.pattern != "" {
		return faintStyle.Render("filter: "+m.pattern) + "\n" + capLine + "\n" + help
	}
	return capLine + "\n" + help
}
