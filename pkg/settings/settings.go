// Package settings holds the process-wide configuration record and its
// file-backed store.
package settings

import "github.com/mattsolo1/grove-calendar/pkg/calendar"

// InitialView selects the starting calendar view per device class.
type InitialView struct {
	Desktop string `yaml:"desktop"`
	Mobile  string `yaml:"mobile"`
}

// Settings is the persisted configuration record. Every field has its own
// control in the settings panel and persists independently; there is no
// save-all transaction.
type Settings struct {
	CalendarSources                 []calendar.Source `yaml:"calendarSources"`
	DefaultCalendar                 int               `yaml:"defaultCalendar"`
	FirstDay                        int               `yaml:"firstDay"`
	InitialView                     InitialView       `yaml:"initialView"`
	TimeFormat24h                   bool              `yaml:"timeFormat24h"`
	ClickToCreateEventFromMonthView bool              `yaml:"clickToCreateEventFromMonthView"`
	Locale                          string            `yaml:"locale"`
}

// Default returns the settings used before the user has saved anything.
func Default() Settings {
	return Settings{
		CalendarSources: []calendar.Source{},
		DefaultCalendar: 0,
		FirstDay:        0,
		InitialView: InitialView{
			Desktop: "timeGridWeek",
			Mobile:  "timeGrid3Days",
		},
		TimeFormat24h:                   false,
		ClickToCreateEventFromMonthView: true,
		Locale:                          "en",
	}
}

// ViewOption is one selectable initial view. Key names the label in the
// locale dictionary.
type ViewOption struct {
	Value string
	Key   string
}

// DesktopViewOptions and MobileViewOptions list the initial views offered
// per device class, in display order.
var (
	DesktopViewOptions = []ViewOption{
		{Value: "timeGridDay", Key: "day"},
		{Value: "timeGridWeek", Key: "week"},
		{Value: "dayGridMonth", Key: "month"},
		{Value: "listWeek", Key: "list"},
	}
	MobileViewOptions = []ViewOption{
		{Value: "timeGrid3Days", Key: "threeDays"},
		{Value: "timeGridDay", Key: "day"},
		{Value: "listWeek", Key: "list"},
	}
)

// CalendarOptions adapts the configured sources into the host-calendar list
// consumed by the event editor.
func (s Settings) CalendarOptions() []calendar.CalendarOption {
	opts := make([]calendar.CalendarOption, len(s.CalendarSources))
	for i, src := range s.CalendarSources {
		name := src.Name
		if name == "" {
			switch src.Type {
			case calendar.SourceLocal:
				name = src.Directory
			case calendar.SourceDailyNote:
				name = src.Heading
			default:
				name = src.URL
			}
		}
		opts[i] = calendar.CalendarOption{ID: name, Name: name, Type: src.Type}
	}
	return opts
}

// UsedLocalDirectories returns the directories already claimed by local
// sources. A new local source must not reuse one of these.
func (s Settings) UsedLocalDirectories() []string {
	var dirs []string
	for _, src := range s.CalendarSources {
		if src.Type == calendar.SourceLocal && src.Directory != "" {
			dirs = append(dirs, src.Directory)
		}
	}
	return dirs
}
