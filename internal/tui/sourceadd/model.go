// Package sourceadd hosts the calendar source editor TUI. It renders exactly
// one input group per required field of the draft's variant, in the order
// the capability table lists them, followed by the submit control.
package sourceadd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-calendar/internal/tui/theme"
	"github.com/mattsolo1/grove-calendar/pkg/calendar"
	"github.com/mattsolo1/grove-calendar/pkg/i18n"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "dismiss")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Left, k.Right}, {k.Submit, k.Quit}}
}

// Options configures a source editor instance.
type Options struct {
	Draft      *calendar.SourceDraft
	Discoverer calendar.Discoverer
	Submit     calendar.SourceSubmitFunc
	Locale     string
}

type submittedMsg struct{ err error }

// Model is the bubbletea model for the source editor.
type Model struct {
	draft  *calendar.SourceDraft
	disc   calendar.Discoverer
	submit calendar.SourceSubmitFunc
	t      i18n.Translations
	keys   keyMap
	help   help.Model

	fields []calendar.Field
	inputs map[calendar.Field]*textinput.Model
	// choiceCursor tracks the selection in choice fields; -1 is the
	// placeholder that forces an explicit pick.
	choiceCursor map[calendar.Field]int

	focus    int // index into fields; len(fields) is the submit control
	notice   string
	quitting bool

	// Err carries a failed non-caldav submission out of the program.
	Err error
}

// New builds the editor over a seeded draft.
func New(opts Options) Model {
	t := i18n.Resolve(opts.Locale)
	fields := opts.Draft.Fields()

	inputs := make(map[calendar.Field]*textinput.Model)
	cursors := make(map[calendar.Field]int)
	for _, f := range fields {
		if isChoice(opts.Draft, f) {
			cursors[f] = -1
			continue
		}
		in := textinput.New()
		_, desc := t.FieldLabel(f)
		in.Placeholder = desc
		in.CharLimit = 300
		in.Width = 40
		in.SetValue(opts.Draft.Source().FieldValue(f))
		if f == calendar.FieldPassword {
			in.EchoMode = textinput.EchoPassword
		}
		inputs[f] = &in
	}
	if len(fields) > 0 {
		if in, ok := inputs[fields[0]]; ok {
			in.Focus()
		}
	}

	return Model{
		draft:        opts.Draft,
		disc:         opts.Discoverer,
		submit:       opts.Submit,
		t:            t,
		keys:         defaultKeyMap(),
		help:         help.New(),
		fields:       fields,
		inputs:       inputs,
		choiceCursor: cursors,
	}
}

// isChoice reports whether a field is picked from candidates instead of
// typed. The heading degrades to free text when the template has none.
func isChoice(d *calendar.SourceDraft, f calendar.Field) bool {
	switch f {
	case calendar.FieldDirectory:
		return true
	case calendar.FieldHeading:
		return len(d.Headings()) > 0
	}
	return false
}

func (m Model) candidates(f calendar.Field) []string {
	switch f {
	case calendar.FieldDirectory:
		return m.draft.Directories()
	case calendar.FieldHeading:
		return m.draft.Headings()
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Quitted reports whether the editor has finished, letting a host embed the
// model and swallow its quit command instead of exiting the program.
func (m Model) Quitted() bool { return m.quitting }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		if msg.err != nil {
			if m.draft.Type() == calendar.SourceCalDAV {
				// Surface the failure as a transient notice and keep the
				// draft for a retry.
				m.notice = msg.err.Error()
				return m, nil
			}
			m.Err = msg.err
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
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus == len(m.fields) {
		if key.Matches(msg, m.keys.Submit) {
			return m.submitCmd()
		}
		return m, nil
	}

	f := m.fields[m.focus]
	if isChoice(m.draft, f) {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.cycleChoice(f, -1)
		case key.Matches(msg, m.keys.Right):
			m.cycleChoice(f, 1)
		}
		return m, nil
	}

	in := m.inputs[f]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.draft.SetField(f, in.Value())
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus < len(m.fields) {
		if in, ok := m.inputs[m.fields[m.focus]]; ok {
			in.Blur()
		}
	}
	m.focus = (m.focus + delta + len(m.fields) + 1) % (len(m.fields) + 1)
	if m.focus < len(m.fields) {
		if in, ok := m.inputs[m.fields[m.focus]]; ok {
			in.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *Model) cycleChoice(f calendar.Field, delta int) {
	options := m.candidates(f)
	if len(options) == 0 {
		return
	}
	cursor := m.choiceCursor[f] + delta
	if cursor < 0 {
		cursor = len(options) - 1
	}
	if cursor >= len(options) {
		cursor = 0
	}
	m.choiceCursor[f] = cursor
	m.draft.SetField(f, options[cursor])
}

func (m Model) submitCmd() (tea.Model, tea.Cmd) {
	if m.draft.Submitting() || !m.draft.Complete() {
		return m, nil
	}
	m.notice = ""

	draft := m.draft
	disc := m.disc
	submit := m.submit
	return m, func() tea.Msg {
		return submittedMsg{err: draft.Submit(context.Background(), disc, submit)}
	}
}

// submitLabel picks the control label: the import wording for caldav, the
// add wording otherwise, switching to the in-progress form while a
// submission is in flight.
func (m Model) submitLabel() string {
	caldav := m.draft.Type() == calendar.SourceCalDAV
	if m.draft.Submitting() {
		if caldav {
			return m.t.ImportingCalendars
		}
		return m.t.AddingCalendar
	}
	if caldav {
		return m.t.ImportCalendars
	}
	return m.t.AddCalendar
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Header.Render("  "+m.t.AddCalendar+": "+m.t.SourceTypeLabel(m.draft.Type())+"  ") + "\n\n")

	for i, f := range m.fields {
		b.WriteString(m.renderField(i, f) + "\n")
	}
	b.WriteString("\n" + m.renderSubmit() + "\n")

	if m.notice != "" {
		b.WriteString("\n" + theme.Warning.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderField(i int, f calendar.Field) string {
	cursor := "  "
	if m.focus == i {
		cursor = theme.Selected.Render("▶") + " "
	}
	name, _ := m.t.FieldLabel(f)

	if isChoice(m.draft, f) {
		value := m.draft.Source().FieldValue(f)
		if value == "" {
			placeholder := m.t.ChooseDirectory
			if f == calendar.FieldHeading {
				placeholder = m.t.ChooseHeading
			}
			value = theme.Dim.Render("‹ " + placeholder + " ›")
		} else {
			value = "‹ " + value + " ›"
		}
		return fmt.Sprintf("%s%s %s", cursor, theme.Dim.Render(name+":"), value)
	}

	return fmt.Sprintf("%s%s %s", cursor, theme.Dim.Render(name+":"), m.inputs[f].View())
}

func (m Model) renderSubmit() string {
	cursor := "  "
	if m.focus == len(m.fields) {
		cursor = theme.Selected.Render("▶") + " "
	}
	label := "[" + m.submitLabel() + "]"
	switch {
	case m.draft.Submitting(), !m.draft.Complete():
		return cursor + theme.Dim.Render(label)
	case m.focus == len(m.fields):
		return cursor + theme.Selected.Render(label)
	}
	return cursor + label
}
