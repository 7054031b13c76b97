package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/models"
	"github.com/josephgoksu/todowing/store"
)

// TaskMode is which half of the screen has focus.
type TaskMode int

const (
	ModeInput TaskMode = iota
	ModeList
)

// Input field indexes.
const (
	fieldText = iota
	fieldDate
	fieldTime
	fieldCount
)

// InputErrorDuration is how long the text box stays red after an empty submit.
const InputErrorDuration = time.Second

// MsgClearInputError resets the error border on the text box.
type MsgClearInputError struct{}

// TaskModel is the interactive to-do screen.
type TaskModel struct {
	Store *tasklist.Store
	Slots store.Slots

	Theme    Theme
	styles   Styles
	Mode     TaskMode
	Filter   models.Filter
	Priority models.Priority
	Cursor   int

	Inputs []textinput.Model
	focus  int

	InputError bool
	Status     string
	Err        error

	Width  int
	Height int

	now func() time.Time
}

// NewTaskModel builds the screen over an opened store. slots receives the
// dark mode flag when the theme is toggled.
func NewTaskModel(st *tasklist.Store, slots store.Slots, theme Theme, now func() time.Time) TaskModel {
	if now == nil {
		now = time.Now
	}
	ts := now()

	text := textinput.New()
	text.Placeholder = "What needs to be done?"
	text.CharLimit = 280
	text.Prompt = ""
	text.Focus()

	date := textinput.New()
	date.Placeholder = models.DueDateLayout
	date.CharLimit = len(models.DueDateLayout)
	date.Prompt = ""
	date.SetValue(ts.Format(models.DueDateLayout))

	clock := textinput.New()
	clock.Placeholder = models.DueTimeLayout
	clock.CharLimit = len(models.DueTimeLayout)
	clock.Prompt = ""
	clock.SetValue(ts.Format(models.DueTimeLayout))

	return TaskModel{
		Store:    st,
		Slots:    slots,
		Theme:    theme,
		styles:   theme.Styles(),
		Mode:     ModeInput,
		Filter:   models.FilterAll,
		Priority: models.PriorityMedium,
		Inputs:   []textinput.Model{text, date, clock},
		now:      now,
	}
}

func (m TaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Visible returns the tasks shown under the current filter.
func (m TaskModel) Visible() []models.Task {
	return m.Store.List(m.Filter)
}

func (m TaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Inputs[fieldText].Width = max(msg.Width-10, 20)
		return m, nil

	case MsgClearInputError:
		m.InputError = false
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.Mode == ModeInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m TaskModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyTab:
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case tea.KeyShiftTab:
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case tea.KeyEsc:
		m.Mode = ModeList
		m.blurAll()
		m.clampCursor()
		return m, nil
	case tea.KeyCtrlP:
		m.Priority = nextPriority(m.Priority)
		return m, nil
	}

	var cmd tea.Cmd
	m.Inputs[m.focus], cmd = m.Inputs[m.focus].Update(msg)
	return m, cmd
}

func (m TaskModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.Visible()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a", "i":
		m.Mode = ModeInput
		m.setFocus(fieldText)
		return m, textinput.Blink
	case "j", "down":
		if m.Cursor < len(visible)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case " ", "x", "enter":
		if len(visible) > 0 {
			m.Status, m.Err = "", nil
			if _, err := m.Store.ToggleComplete(visible[m.Cursor].ID); err != nil {
				m.Err = err
			}
			m.clampCursor()
		}
	case "d", "delete", "backspace":
		if len(visible) > 0 {
			m.Status, m.Err = "", nil
			if _, err := m.Store.Delete(visible[m.Cursor].ID); err != nil {
				m.Err = err
			}
			m.clampCursor()
		}
	case "f":
		m.Filter = nextFilter(m.Filter)
		m.clampCursor()
	case "1", "2", "3":
		m.Filter = models.Filters[msg.String()[0]-'1']
		m.clampCursor()
	case "p":
		m.Priority = nextPriority(m.Priority)
	case "C":
		n, err := m.Store.ClearCompleted()
		m.Err = err
		if err == nil {
			m.Status = fmt.Sprintf("Cleared %d completed", n)
		}
		m.clampCursor()
	case "t":
		m.toggleDarkMode()
	case "c":
		m.Theme.Palette = m.Theme.Palette.Next()
		m.styles = m.Theme.Styles()
		m.Status = "Palette: " + m.Theme.Palette.Name
	}
	return m, nil
}

// submit adds the task typed in the inputs. Blank text flashes the box red
// instead of adding anything.
func (m TaskModel) submit() (tea.Model, tea.Cmd) {
	text := m.Inputs[fieldText].Value()
	if strings.TrimSpace(text) == "" {
		m.InputError = true
		return m, tea.Tick(InputErrorDuration, func(time.Time) tea.Msg { return MsgClearInputError{} })
	}

	m.Status, m.Err = "", nil
	task, err := m.Store.Add(text, m.Priority, m.Inputs[fieldDate].Value(), m.Inputs[fieldTime].Value())
	if err != nil {
		if errors.Is(err, tasklist.ErrEmptyText) {
			m.InputError = true
		}
		m.Err = err
		return m, nil
	}
	m.Inputs[fieldText].SetValue("")
	m.setFocus(fieldText)
	m.Status = "Added " + Truncate(task.Text, 40)
	return m, nil
}

func (m *TaskModel) toggleDarkMode() {
	dark := !m.Theme.Dark
	if m.Slots != nil {
		if err := tasklist.SaveDarkMode(m.Slots, dark); err != nil {
			m.Err = err
			return
		}
	}
	m.Theme.Dark = dark
	m.styles = m.Theme.Styles()
	m.Status = "Theme: " + m.Theme.ModeName()
}

func (m *TaskModel) setFocus(i int) {
	m.focus = i
	for j := range m.Inputs {
		if j == i {
			m.Inputs[j].Focus()
		} else {
			m.Inputs[j].Blur()
		}
	}
}

func (m *TaskModel) blurAll() {
	for j := range m.Inputs {
		m.Inputs[j].Blur()
	}
}

func (m *TaskModel) clampCursor() {
	n := len(m.Visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func nextPriority(p models.Priority) models.Priority {
	for i, candidate := range models.Priorities {
		if candidate == p {
			return models.Priorities[(i+1)%len(models.Priorities)]
		}
	}
	return models.PriorityMedium
}

func nextFilter(f models.Filter) models.Filter {
	for i, candidate := range models.Filters {
		if candidate == f {
			return models.Filters[(i+1)%len(models.Filters)]
		}
	}
	return models.FilterAll
}

func (m TaskModel) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("✦ todowing"))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render(m.Theme.ModeName() + " · " + m.Theme.Palette.Name))
	b.WriteString("\n\n")

	// Input row
	box := s.Input
	if m.InputError {
		box = s.InputError
	}
	if m.Width > 0 {
		box = box.Width(max(m.Width-4, 24))
	}
	b.WriteString(box.Render(m.Inputs[fieldText].View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.Muted.Render(" Date "), m.Inputs[fieldDate].View(),
		s.Muted.Render("  Time "), m.Inputs[fieldTime].View(),
		s.Muted.Render("  Priority "), s.Priority(m.Priority).Render(priorityBar+" "+PriorityLabel(m.Priority)),
	))
	b.WriteString("\n\n")

	b.WriteString(RenderFilterTabs(m.Filter, s))
	b.WriteString("\n\n")

	cursor := -1
	if m.Mode == ModeList {
		cursor = m.Cursor
	}
	b.WriteString(RenderTaskList(m.Visible(), m.Filter, s, cursor, m.Width))
	b.WriteString("\n")

	b.WriteString(s.Highlight.Render(StatsLine(m.Store.Stats())))
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(s.Danger.Render("✗ " + m.Err.Error()))
		b.WriteString("\n")
	case m.Status != "":
		b.WriteString(s.Accent.Render(m.Status))
		b.WriteString("\n")
	}

	b.WriteString(s.Muted.Render(m.helpLine()))
	return b.String()
}

func (m TaskModel) helpLine() string {
	if m.Mode == ModeInput {
		return "enter add • tab next field • ctrl+p priority • esc list • ctrl+c quit"
	}
	return "j/k move • space toggle • d delete • f/1-3 filter • p priority • C clear done • t theme • c palette • a add • q quit"
}

// RunTaskUI runs the interactive screen until the user quits.
func RunTaskUI(st *tasklist.Store, slots store.Slots, theme Theme) error {
	p := tea.NewProgram(NewTaskModel(st, slots, theme, nil), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
