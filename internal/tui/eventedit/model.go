// Package eventedit hosts the event editor TUI. It is a thin shell around
// calendar.EventDraft: every keystroke lands in the draft, and submission
// goes through the draft's normalization.
package eventedit

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
	"github.com/mattsolo1/grove-calendar/pkg/i18n"
)

type fieldID int

const (
	fieldTitle fieldID = iota
	fieldCalendar
	fieldDate
	fieldStartTime
	fieldEndTime
	fieldAllDay
	fieldRecurring
	fieldDays
	fieldEndRecur
	fieldTask
	fieldComplete
	fieldSave
	fieldOpen
	fieldDelete
)

// Options configures an editor instance. Open and Delete are optional
// capabilities; their affordances are rendered only when supplied.
type Options struct {
	Draft  *calendar.EventDraft
	Submit calendar.EventSubmitFunc
	Open   func(context.Context) error
	Delete func(context.Context) error
	Locale string
}

// Model is the bubbletea model for the event editor.
type Model struct {
	draft    *calendar.EventDraft
	submit   calendar.EventSubmitFunc
	open     func(context.Context) error
	deleteFn func(context.Context) error
	t        i18n.Translations
	keys     KeyMap
	help     help.Model

	titleInput     textinput.Model
	dateInput      textinput.Model
	startTimeInput textinput.Model
	endTimeInput   textinput.Model
	endRecurInput  textinput.Model

	days     daySelect
	focus    fieldID
	width    int
	height   int
	status   string
	statusOK bool
	quitting bool
}

// New builds the editor model. The title input receives focus immediately.
func New(opts Options) Model {
	d := opts.Draft

	title := textinput.New()
	title.Placeholder = ""
	title.CharLimit = 200
	title.SetValue(d.Title())
	title.Focus()

	date := newDateInput(d.Date())
	endRecur := newDateInput(d.EndRecur())

	start := newTimeInput(d.StartTime())
	end := newTimeInput(d.EndTime())

	t := i18n.Resolve(opts.Locale)
	title.Placeholder = t.AddTitle

	return Model{
		draft:          d,
		submit:         opts.Submit,
		open:           opts.Open,
		deleteFn:       opts.Delete,
		t:              t,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		titleInput:     title,
		dateInput:      date,
		startTimeInput: start,
		endTimeInput:   end,
		endRecurInput:  endRecur,
		focus:          fieldTitle,
	}
}

func newDateInput(value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = 10
	in.Width = 12
	in.SetValue(value)
	return in
}

func newTimeInput(value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = "HH:MM"
	in.CharLimit = 5
	in.Width = 7
	in.SetValue(value)
	return in
}

// Init places input focus on the title field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// visibleFields returns the focusable fields for the draft's current state,
// in render order.
func (m Model) visibleFields() []fieldID {
	fields := []fieldID{fieldTitle, fieldCalendar}
	if !m.draft.Recurring() {
		fields = append(fields, fieldDate)
	}
	if !m.draft.AllDay() {
		fields = append(fields, fieldStartTime, fieldEndTime)
	}
	fields = append(fields, fieldAllDay, fieldRecurring)
	if m.draft.Recurring() {
		fields = append(fields, fieldDays, fieldDate, fieldEndRecur)
	}
	fields = append(fields, fieldTask)
	if m.draft.IsTask() {
		fields = append(fields, fieldComplete)
	}
	fields = append(fields, fieldSave)
	if m.open != nil {
		fields = append(fields, fieldOpen)
	}
	if m.deleteFn != nil {
		fields = append(fields, fieldDelete)
	}
	return fields
}

// activeInput returns the textinput behind the focused field, if any.
func (m *Model) activeInput() *textinput.Model {
	switch m.focus {
	case fieldTitle:
		return &m.titleInput
	case fieldDate:
		return &m.dateInput
	case fieldStartTime:
		return &m.startTimeInput
	case fieldEndTime:
		return &m.endTimeInput
	case fieldEndRecur:
		return &m.endRecurInput
	}
	return nil
}

// syncDraft pushes the text inputs into the draft so the draft is always
// the single source of truth at submit time.
func (m *Model) syncDraft() {
	m.draft.SetTitle(m.titleInput.Value())
	m.draft.SetDate(m.dateInput.Value())
	m.draft.SetStartTime(m.startTimeInput.Value())
	m.draft.SetEndTime(m.endTimeInput.Value())
	m.draft.SetEndRecur(m.endRecurInput.Value())
}

// missingRequired names the first required field without a value, or "".
// Requiredness tracks the visible variant: the date only when the event is
// not recurring, the times only when it is not all-day.
func (m Model) missingRequired() string {
	if m.titleInput.Value() == "" {
		return m.t.AddTitle
	}
	if !m.draft.Recurring() && m.dateInput.Value() == "" {
		return "date"
	}
	if !m.draft.AllDay() {
		if m.startTimeInput.Value() == "" || m.endTimeInput.Value() == "" {
			return "time"
		}
	}
	return ""
}
