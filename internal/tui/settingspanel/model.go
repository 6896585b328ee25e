// Package settingspanel hosts the settings TUI: the global preference
// controls, the configured source list, and the launcher for the source
// editor.
package settingspanel

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-calendar/internal/tui/sourceadd"
	"github.com/mattsolo1/grove-calendar/internal/tui/theme"
	"github.com/mattsolo1/grove-calendar/pkg/calendar"
	"github.com/mattsolo1/grove-calendar/pkg/i18n"
	"github.com/mattsolo1/grove-calendar/pkg/settings"
)

type mode int

const (
	modePanel mode = iota
	modeTypePicker
	modeAdd
)

// row indices for the panel's focusable controls, top to bottom.
const (
	rowDesktopView = iota
	rowMobileView
	rowFirstDay
	rowTimeFormat
	rowClickToCreate
	rowLocale
	rowAddSource
	rowSources
	rowCount
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Delete  key.Binding
	Default key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous option")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove source")),
		Default: key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "set default calendar")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Delete, k.Default, k.Quit},
	}
}

// typeItem implements list.Item for the source type picker.
type typeItem struct {
	typ   calendar.SourceType
	label string
}

func (i typeItem) FilterValue() string { return i.label }
func (i typeItem) Title() string       { return i.label }
func (i typeItem) Description() string { return string(i.typ) }

// Options configures the panel.
type Options struct {
	Store *settings.Store
	// Discoverer backs caldav imports launched from the panel.
	Discoverer calendar.Discoverer
	// Directories are all vault folders that could host a local source;
	// the panel subtracts the ones already in use.
	Directories []string
	// Headings are the candidate daily-note headings.
	Headings []string
}

// Model is the bubbletea model for the settings panel.
type Model struct {
	store *settings.Store
	disc  calendar.Discoverer
	dirs  []string
	heads []string

	// The label table is resolved once at construction; a locale change
	// made through the panel's own control takes effect on next open.
	t    i18n.Translations
	keys keyMap
	help help.Model

	mode     mode
	focus    int
	sources  table.Model
	typeList list.Model
	add      sourceadd.Model

	width    int
	height   int
	status   string
	quitting bool
}

// New builds the panel over a loaded store.
func New(opts Options) Model {
	t := i18n.Resolve(opts.Store.Settings().Locale)

	items := make([]list.Item, len(calendar.SourceTypes))
	for i, typ := range calendar.SourceTypes {
		items[i] = typeItem{typ: typ, label: t.SourceTypeLabel(typ)}
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	typeList := list.New(items, delegate, 40, 12)
	typeList.Title = t.AddCalendar
	typeList.SetShowHelp(false)
	typeList.SetFilteringEnabled(false)
	typeList.Styles.Title = theme.Header

	m := Model{
		store:    opts.Store,
		disc:     opts.Discoverer,
		dirs:     opts.Directories,
		heads:    opts.Headings,
		t:        t,
		keys:     defaultKeyMap(),
		help:     help.New(),
		typeList: typeList,
	}
	m.sources = m.buildSourceTable()
	return m
}

func (m Model) buildSourceTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "TYPE", Width: 10},
		{Title: "NAME", Width: 30},
		{Title: "COLOR", Width: 9},
	}

	cfg := m.store.Settings()
	rows := make([]table.Row, len(cfg.CalendarSources))
	for i, src := range cfg.CalendarSources {
		def := " "
		if i == cfg.DefaultCalendar {
			def = "*"
		}
		rows[i] = table.Row{def, string(src.Type), sourceLabel(src), src.Color}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(theme.LightText).
		Background(theme.SelectedBackground).
		Bold(false)
	tbl.SetStyles(s)
	return tbl
}

func sourceLabel(src calendar.Source) string {
	if src.Name != "" {
		return src.Name
	}
	switch src.Type {
	case calendar.SourceLocal:
		return src.Directory
	case calendar.SourceDailyNote:
		return src.Heading
	}
	return src.URL
}

func (m Model) Init() tea.Cmd {
	return nil
}

// persist runs a store mutation and routes any failure to the status line.
func (m *Model) persist(op func() error) {
	if err := op(); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	} else {
		m.status = ""
	}
}

// openAddEditor seeds a draft for the picked type and embeds the source
// editor. Directories already claimed by local sources are filtered out.
func (m *Model) openAddEditor(typ calendar.SourceType) {
	used := make(map[string]bool)
	for _, dir := range m.store.Settings().UsedLocalDirectories() {
		used[dir] = true
	}
	var free []string
	for _, dir := range m.dirs {
		if !used[dir] {
			free = append(free, dir)
		}
	}

	draft := calendar.NewSourceDraft(calendar.DefaultSource(typ), free, m.heads)
	store := m.store
	m.add = sourceadd.New(sourceadd.Options{
		Draft:      draft,
		Discoverer: m.disc,
		Submit: func(_ context.Context, src calendar.Source) error {
			return store.AddSource(src)
		},
		Locale: m.store.Settings().Locale,
	})
	m.mode = modeAdd
}
