package eventedit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-calendar/internal/tui/theme"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.t.SaveEvent
	if m.draft.Editing() {
		title = m.draft.Title()
	}
	b.WriteString(theme.Header.Render("  "+title+"  ") + "\n\n")

	for _, f := range m.visibleFields() {
		b.WriteString(m.renderField(f) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusOK {
			b.WriteString(theme.Message.Render(m.status) + "\n")
		} else {
			b.WriteString(theme.Warning.Render(m.status) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) cursorFor(f fieldID) string {
	if m.focus == f {
		return theme.Selected.Render("▶") + " "
	}
	return "  "
}

func (m Model) renderField(f fieldID) string {
	switch f {
	case fieldTitle:
		return m.cursorFor(f) + m.titleInput.View()

	case fieldCalendar:
		return m.cursorFor(f) + m.renderCalendarPicker()

	case fieldDate:
		label := "Date"
		if m.draft.Recurring() {
			label = m.t.StartsRecur
		}
		return m.cursorFor(f) + fmt.Sprintf("%s %s", theme.Dim.Render(label), m.dateInput.View())

	case fieldStartTime:
		return m.cursorFor(f) + fmt.Sprintf("%s %s", theme.Dim.Render("From"), m.startTimeInput.View())

	case fieldEndTime:
		return m.cursorFor(f) + fmt.Sprintf("%s %s", theme.Dim.Render("To"), m.endTimeInput.View())

	case fieldAllDay:
		return m.cursorFor(f) + checkbox(m.t.AllDayEvent, m.draft.AllDay())

	case fieldRecurring:
		return m.cursorFor(f) + checkbox(m.t.RecurringEvent, m.draft.Recurring())

	case fieldDays:
		return m.cursorFor(f) + m.days.View(m.draft.DaysOfWeek(), m.t, m.focus == fieldDays)

	case fieldEndRecur:
		return m.cursorFor(f) + fmt.Sprintf("%s %s", theme.Dim.Render(m.t.StopsRecur), m.endRecurInput.View())

	case fieldTask:
		return m.cursorFor(f) + checkbox(m.t.TaskEvent, m.draft.IsTask())

	case fieldComplete:
		_, done := m.draft.Completion().Done()
		return m.cursorFor(f) + checkbox(m.t.Complete, done)

	case fieldSave:
		label := m.t.SaveEvent
		if m.draft.Submitting() {
			return m.cursorFor(f) + theme.Dim.Render("["+label+"]")
		}
		if m.focus == f {
			return m.cursorFor(f) + theme.Selected.Render("["+label+"]")
		}
		return m.cursorFor(f) + "[" + label + "]"

	case fieldOpen:
		return m.cursorFor(f) + "[" + m.t.OpenNote + "]"

	case fieldDelete:
		return m.cursorFor(f) + theme.Error.Render("["+m.t.DeleteEvent+"]")
	}
	return ""
}

func (m Model) renderCalendarPicker() string {
	choices := m.draft.Choices()
	if len(choices) == 0 {
		return theme.Dim.Render("(no editable calendars)")
	}

	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		label := c.Label
		switch {
		case c.Index == m.draft.CalendarIndex():
			label = theme.Selected.Render(" " + label + " ")
		case c.Disabled:
			label = theme.Dim.Strikethrough(true).Render(" " + label + " ")
		default:
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func checkbox(label string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, label)
}
