package settingspanel

import (
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-calendar/internal/tui/theme"
	"github.com/mattsolo1/grove-calendar/pkg/calendar"
	"github.com/mattsolo1/grove-calendar/pkg/i18n"
	"github.com/mattsolo1/grove-calendar/pkg/settings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeTypePicker:
		return m.typeList.View()
	case modeAdd:
		return m.add.View()
	}

	cfg := m.store.Settings()
	var b strings.Builder

	b.WriteString(theme.Header.Render("  "+m.t.CalendarPreferences+"  ") + "\n\n")

	b.WriteString(m.renderOption(rowDesktopView, m.t.DesktopInitialView,
		m.viewLabel(cfg.InitialView.Desktop, settings.DesktopViewOptions)) + "\n")
	b.WriteString(m.renderOption(rowMobileView, m.t.MobileInitialView,
		m.viewLabel(cfg.InitialView.Mobile, settings.MobileViewOptions)) + "\n")
	b.WriteString(m.renderOption(rowFirstDay, m.t.StartingDayOfWeek, m.firstDayLabel(cfg.FirstDay)) + "\n")
	b.WriteString(m.renderToggle(rowTimeFormat, m.t.TimeFormat24h, cfg.TimeFormat24h) + "\n")
	b.WriteString(m.renderToggle(rowClickToCreate, m.t.CreateEventOnClick, cfg.ClickToCreateEventFromMonthView) + "\n")
	b.WriteString(m.renderOption(rowLocale, m.t.Language, localeLabel(cfg.Locale)) + "\n")

	b.WriteString("\n" + theme.Header.Render("  "+m.t.ManageCalendars+"  ") + "\n\n")
	b.WriteString(m.renderButton(rowAddSource, m.t.AddCalendar) + "\n")
	if len(cfg.CalendarSources) > 0 {
		b.WriteString("\n" + m.sources.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + theme.Warning.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) cursorFor(row int) string {
	if m.focus == row {
		return theme.Selected.Render("▶") + " "
	}
	return "  "
}

func (m Model) renderOption(row int, label, value string) string {
	return fmt.Sprintf("%s%s ‹ %s ›", m.cursorFor(row), theme.Dim.Render(label+":"), value)
}

func (m Model) renderToggle(row int, label string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return fmt.Sprintf("%s%s %s", m.cursorFor(row), box, label)
}

func (m Model) renderButton(row int, label string) string {
	text := "[" + label + "]"
	if m.focus == row {
		return m.cursorFor(row) + theme.Selected.Render(text)
	}
	return m.cursorFor(row) + text
}

// viewLabel maps an initial-view value to its translated display label.
func (m Model) viewLabel(value string, options []settings.ViewOption) string {
	for _, opt := range options {
		if opt.Value != value {
			continue
		}
		switch opt.Key {
		case "day":
			return m.t.Day
		case "week":
			return m.t.Week
		case "month":
			return m.t.Month
		case "list":
			return m.t.List
		case "threeDays":
			return m.t.ThreeDays
		}
	}
	return value
}

func (m Model) firstDayLabel(day int) string {
	if day < 0 || day >= len(calendar.Weekdays) {
		return fmt.Sprintf("%d", day)
	}
	return m.t.Weekdays[calendar.Weekdays[day]]
}

func localeLabel(code string) string {
	for _, opt := range i18n.LocaleOptions {
		if opt.Code == code {
			return opt.Label
		}
	}
	return code
}
