package eventedit

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

type submittedMsg struct{ err error }

type actionDoneMsg struct {
	name string
	err  error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusOK = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case actionDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.name, msg.err)
			m.statusOK = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		// Dismissing discards the draft.
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	switch m.focus {
	case fieldCalendar:
		if key.Matches(msg, m.keys.Left) {
			m.cycleCalendar(-1)
			return m, nil
		}
		if key.Matches(msg, m.keys.Right) {
			m.cycleCalendar(1)
			return m, nil
		}

	case fieldAllDay:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Submit) {
			m.draft.SetAllDay(!m.draft.AllDay())
			return m, nil
		}

	case fieldRecurring:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Submit) {
			m.draft.SetRecurring(!m.draft.Recurring())
			return m, nil
		}

	case fieldDays:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.days.MoveLeft()
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.days.MoveRight()
			return m, nil
		case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Submit):
			m.draft.ToggleDay(m.days.Current())
			return m, nil
		}

	case fieldTask:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Submit) {
			m.draft.SetIsTask(!m.draft.IsTask())
			return m, nil
		}

	case fieldComplete:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Submit) {
			_, done := m.draft.Completion().Done()
			m.draft.SetCompletion(!done)
			return m, nil
		}

	case fieldSave:
		if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Toggle) {
			return m.submitCmd()
		}

	case fieldOpen:
		if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Toggle) {
			open := m.open
			return m, func() tea.Msg {
				return actionDoneMsg{name: m.t.OpenNote, err: open(context.Background())}
			}
		}

	case fieldDelete:
		if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Toggle) {
			deleteFn := m.deleteFn
			return m, func() tea.Msg {
				return actionDoneMsg{name: m.t.DeleteEvent, err: deleteFn(context.Background())}
			}
		}
	}

	// Everything else goes to the focused text input.
	if in := m.activeInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m.syncDraft()
		return m, cmd
	}
	return m, nil
}

// moveFocus advances focus through the currently visible fields.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	fields := m.visibleFields()
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)

	if in := m.activeInput(); in != nil {
		in.Blur()
	}
	m.focus = fields[pos]
	if in := m.activeInput(); in != nil {
		in.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// cycleCalendar moves the calendar selection across enabled choices only.
func (m *Model) cycleCalendar(delta int) {
	choices := m.draft.Choices()
	if len(choices) == 0 {
		return
	}
	pos := 0
	for i, c := range choices {
		if c.Index == m.draft.CalendarIndex() {
			pos = i
			break
		}
	}
	for range choices {
		pos = (pos + delta + len(choices)) % len(choices)
		if !choices[pos].Disabled {
			if err := m.draft.SetCalendarIndex(choices[pos].Index); err == nil {
				return
			}
		}
	}
}

// submitCmd validates the required fields and kicks off the asynchronous
// submission.
func (m Model) submitCmd() (tea.Model, tea.Cmd) {
	if m.draft.Submitting() {
		return m, nil
	}
	m.syncDraft()
	if missing := m.missingRequired(); missing != "" {
		m.status = fmt.Sprintf("%s: required", missing)
		m.statusOK = false
		return m, nil
	}

	draft := m.draft
	submit := m.submit
	return m, func() tea.Msg {
		return submittedMsg{err: draft.Submit(context.Background(), submit)}
	}
}

// Event exposes the draft's current normalization, mainly for tests.
func (m Model) Event() calendar.Event {
	return m.draft.Event()
}
