package eventedit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-calendar/internal/tui/theme"
	"github.com/mattsolo1/grove-calendar/pkg/calendar"
	"github.com/mattsolo1/grove-calendar/pkg/i18n"
)

// daySelect renders the fixed seven-code day row. The selected set is owned
// by the parent draft; this component only tracks which code the cursor is
// on.
type daySelect struct {
	cursor int
}

var (
	dayOnStyle  = lipgloss.NewStyle().Foreground(theme.LightText).Background(theme.SelectedBackground)
	dayOffStyle = lipgloss.NewStyle().Foreground(theme.MutedText)
)

// Current returns the day code under the cursor.
func (d daySelect) Current() calendar.Weekday {
	return calendar.Weekdays[d.cursor]
}

func (d *daySelect) MoveLeft() {
	d.cursor = (d.cursor + len(calendar.Weekdays) - 1) % len(calendar.Weekdays)
}

func (d *daySelect) MoveRight() {
	d.cursor = (d.cursor + 1) % len(calendar.Weekdays)
}

// View renders the row, marking membership and, when focused, the cursor.
func (d daySelect) View(set []calendar.Weekday, t i18n.Translations, focused bool) string {
	var b strings.Builder
	for i, code := range calendar.Weekdays {
		label := " " + t.WeekdayAbbrevs[code] + " "
		switch {
		case focused && i == d.cursor && calendar.HasWeekday(set, code):
			b.WriteString(dayOnStyle.Underline(true).Render(label))
		case focused && i == d.cursor:
			b.WriteString(dayOffStyle.Underline(true).Render(label))
		case calendar.HasWeekday(set, code):
			b.WriteString(dayOnStyle.Render(label))
		default:
			b.WriteString(dayOffStyle.Render(label))
		}
		b.WriteString(" ")
	}
	return b.String()
}
