package settingspanel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-calendar/internal/tui/sourceadd"
	"github.com/mattsolo1/grove-calendar/pkg/i18n"
	"github.com/mattsolo1/grove-calendar/pkg/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.typeList.SetSize(size.Width, size.Height-4)
	}

	switch m.mode {
	case modeTypePicker:
		return m.updateTypePicker(msg)
	case modeAdd:
		return m.updateAdd(msg)
	}
	return m.updatePanel(msg)
}

func (m Model) updateTypePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modePanel
			return m, nil
		case "enter":
			if item, ok := m.typeList.SelectedItem().(typeItem); ok {
				m.openAddEditor(item.typ)
			}
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.typeList, cmd = m.typeList.Update(msg)
	return m, cmd
}

// updateAdd forwards messages to the embedded source editor. When the
// editor finishes, its quit command is swallowed and the panel resumes
// with a rebuilt source table.
func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	child, cmd := m.add.Update(msg)
	m.add = child.(sourceadd.Model)
	if m.add.Quitted() {
		m.mode = modePanel
		m.sources = m.buildSourceTable()
		return m, nil
	}
	return m, cmd
}

func (m Model) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveFocus(-1), nil
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveFocus(1), nil
	}

	switch m.focus {
	case rowDesktopView:
		if delta, ok := cycleDelta(keyMsg, m.keys); ok {
			value := cycleView(settings.DesktopViewOptions, m.store.Settings().InitialView.Desktop, delta)
			m.persist(func() error { return m.store.SetDesktopView(value) })
		}

	case rowMobileView:
		if delta, ok := cycleDelta(keyMsg, m.keys); ok {
			value := cycleView(settings.MobileViewOptions, m.store.Settings().InitialView.Mobile, delta)
			m.persist(func() error { return m.store.SetMobileView(value) })
		}

	case rowFirstDay:
		if delta, ok := cycleDelta(keyMsg, m.keys); ok {
			day := (m.store.Settings().FirstDay + delta + 7) % 7
			m.persist(func() error { return m.store.SetFirstDay(day) })
		}

	case rowTimeFormat:
		if isToggle(keyMsg, m.keys) {
			on := !m.store.Settings().TimeFormat24h
			m.persist(func() error { return m.store.SetTimeFormat24h(on) })
		}

	case rowClickToCreate:
		if isToggle(keyMsg, m.keys) {
			on := !m.store.Settings().ClickToCreateEventFromMonthView
			m.persist(func() error { return m.store.SetClickToCreate(on) })
		}

	case rowLocale:
		if delta, ok := cycleDelta(keyMsg, m.keys); ok {
			code := cycleLocale(m.store.Settings().Locale, delta)
			m.persist(func() error { return m.store.SetLocale(code) })
		}

	case rowAddSource:
		if key.Matches(keyMsg, m.keys.Select) {
			m.mode = modeTypePicker
		}

	case rowSources:
		return m.updateSourceTable(keyMsg)
	}

	return m, nil
}

func (m Model) updateSourceTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelectedSource()
		return m, nil

	case key.Matches(msg, m.keys.Default):
		idx := m.sources.Cursor()
		if idx >= 0 && idx < len(m.store.Settings().CalendarSources) {
			m.persist(func() error { return m.store.SetDefaultCalendar(idx) })
			m.sources = m.buildSourceTable()
			m.sources.SetCursor(idx)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.sources, cmd = m.sources.Update(msg)
	return m, cmd
}

func (m *Model) deleteSelectedSource() {
	cfg := m.store.Settings()
	idx := m.sources.Cursor()
	if idx < 0 || idx >= len(cfg.CalendarSources) {
		return
	}

	remaining := append(cfg.CalendarSources[:idx:idx], cfg.CalendarSources[idx+1:]...)
	m.persist(func() error { return m.store.ReplaceSources(remaining) })
	if cfg.DefaultCalendar >= len(remaining) && len(remaining) > 0 {
		m.persist(func() error { return m.store.SetDefaultCalendar(0) })
	}

	m.sources = m.buildSourceTable()
	if idx >= len(remaining) {
		idx = len(remaining) - 1
	}
	if idx >= 0 {
		m.sources.SetCursor(idx)
	}
	if len(remaining) == 0 {
		m.focus = rowAddSource
	}
}

// moveFocus steps the focus through the panel rows, skipping the source
// table when it is empty.
func (m Model) moveFocus(delta int) Model {
	for {
		m.focus = (m.focus + delta + rowCount) % rowCount
		if m.focus == rowSources && len(m.store.Settings().CalendarSources) == 0 {
			continue
		}
		break
	}
	if m.focus == rowSources {
		m.sources.Focus()
	} else {
		m.sources.Blur()
	}
	return m
}

func cycleDelta(msg tea.KeyMsg, keys keyMap) (int, bool) {
	switch {
	case key.Matches(msg, keys.Left):
		return -1, true
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Select):
		return 1, true
	}
	return 0, false
}

func isToggle(msg tea.KeyMsg, keys keyMap) bool {
	return key.Matches(msg, keys.Left) ||
		key.Matches(msg, keys.Right) ||
		key.Matches(msg, keys.Select)
}

func cycleView(options []settings.ViewOption, current string, delta int) string {
	pos := 0
	for i, opt := range options {
		if opt.Value == current {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(options)) % len(options)
	return options[pos].Value
}

func cycleLocale(current string, delta int) string {
	pos := 0
	for i, opt := range i18n.LocaleOptions {
		if opt.Code == current {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(i18n.LocaleOptions)) % len(i18n.LocaleOptions)
	return i18n.LocaleOptions[pos].Code
}
