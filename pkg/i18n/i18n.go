// Package i18n provides the flat label tables used by the editors and the
// settings panel. Lookup is a pure function of the locale identifier;
// unknown locales resolve to the English table.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

// Translations is one flat key→label table.
type Translations struct {
	// Event editor
	OpenNote       string
	AddTitle       string
	DailyNote      string
	AllDayEvent    string
	RecurringEvent string
	StartsRecur    string
	StopsRecur     string
	TaskEvent      string
	Complete       string
	SaveEvent      string
	DeleteEvent    string

	// Weekday names and the one-character labels on the day selector.
	Weekdays       map[calendar.Weekday]string
	WeekdayAbbrevs map[calendar.Weekday]string

	// Settings panel
	CalendarPreferences    string
	DesktopInitialView     string
	DesktopInitialViewDesc string
	MobileInitialView      string
	MobileInitialViewDesc  string
	StartingDayOfWeek      string
	StartingDayOfWeekDesc  string
	TimeFormat24h          string
	TimeFormat24hDesc      string
	CreateEventOnClick     string
	CreateEventOnClickDesc string
	Language               string
	LanguageDesc           string
	ManageCalendars        string

	// View options
	Day       string
	Week      string
	Month     string
	List      string
	ThreeDays string

	// Source management
	Calendars   string
	AddCalendar string
	FullNote    string
	ICloud      string
	CalDAV      string
	RemoteICS   string

	// Source form
	Directory          string
	DirectoryDesc      string
	ChooseDirectory    string
	Color              string
	ColorDesc          string
	URL                string
	URLDesc            string
	Username           string
	UsernameDesc       string
	Password           string
	PasswordDesc       string
	Heading            string
	HeadingDesc        string
	ChooseHeading      string
	ImportCalendars    string
	ImportingCalendars string
	AddingCalendar     string
}

var en = Translations{
	OpenNote:       "Open Note",
	AddTitle:       "Add title",
	DailyNote:      "Daily Note",
	AllDayEvent:    "All day event",
	RecurringEvent: "Recurring Event",
	StartsRecur:    "Starts recurring",
	StopsRecur:     "and stops recurring",
	TaskEvent:      "Task Event",
	Complete:       "Complete?",
	SaveEvent:      "Save Event",
	DeleteEvent:    "Delete Event",

	Weekdays: map[calendar.Weekday]string{
		calendar.Sunday:    "Sunday",
		calendar.Monday:    "Monday",
		calendar.Tuesday:   "Tuesday",
		calendar.Wednesday: "Wednesday",
		calendar.Thursday:  "Thursday",
		calendar.Friday:    "Friday",
		calendar.Saturday:  "Saturday",
	},
	WeekdayAbbrevs: map[calendar.Weekday]string{
		calendar.Sunday:    "S",
		calendar.Monday:    "M",
		calendar.Tuesday:   "T",
		calendar.Wednesday: "W",
		calendar.Thursday:  "T",
		calendar.Friday:    "F",
		calendar.Saturday:  "S",
	},

	CalendarPreferences:    "Calendar Preferences",
	DesktopInitialView:     "Desktop Initial View",
	DesktopInitialViewDesc: "Choose the initial view range on desktop devices.",
	MobileInitialView:      "Mobile Initial View",
	MobileInitialViewDesc:  "Choose the initial view range on mobile devices.",
	StartingDayOfWeek:      "Starting Day of the Week",
	StartingDayOfWeekDesc:  "Choose what day of the week to start.",
	TimeFormat24h:          "24-hour format",
	TimeFormat24hDesc:      "Display the time in a 24-hour format.",
	CreateEventOnClick:     "Click on a day in month view to create event",
	CreateEventOnClickDesc: "When enabled, clicking on a day in month view will create a new event",
	Language:               "Language",
	LanguageDesc:           "Choose the display language for the calendar.",
	ManageCalendars:        "Manage Calendars",

	Day:       "Day",
	Week:      "Week",
	Month:     "Month",
	List:      "List",
	ThreeDays: "3 Days",

	Calendars:   "Calendars",
	AddCalendar: "Add calendar",
	FullNote:    "Full note",
	ICloud:      "iCloud",
	CalDAV:      "CalDAV",
	RemoteICS:   "Remote (.ics format)",

	Directory:          "Directory",
	DirectoryDesc:      "Directory to store events",
	ChooseDirectory:    "Choose a directory",
	Color:              "Color",
	ColorDesc:          "The color of events on the calendar",
	URL:                "Url",
	URLDesc:            "Url of the server",
	Username:           "Username",
	UsernameDesc:       "Username for the account",
	Password:           "Password",
	PasswordDesc:       "Password for the account",
	Heading:            "Heading",
	HeadingDesc:        "Heading to store events under in the daily note.",
	ChooseHeading:      "Choose a heading",
	ImportCalendars:    "Import Calendars",
	ImportingCalendars: "Importing Calendars",
	AddingCalendar:     "Adding Calendar",
}

var zhCN = Translations{
	OpenNote:       "打开笔记",
	AddTitle:       "添加标题",
	DailyNote:      "日记",
	AllDayEvent:    "全天事件",
	RecurringEvent: "重复事件",
	StartsRecur:    "开始重复",
	StopsRecur:     "停止重复",
	TaskEvent:      "任务事件",
	Complete:       "完成？",
	SaveEvent:      "保存事件",
	DeleteEvent:    "删除事件",

	Weekdays: map[calendar.Weekday]string{
		calendar.Sunday:    "星期日",
		calendar.Monday:    "星期一",
		calendar.Tuesday:   "星期二",
		calendar.Wednesday: "星期三",
		calendar.Thursday:  "星期四",
		calendar.Friday:    "星期五",
		calendar.Saturday:  "星期六",
	},
	WeekdayAbbrevs: map[calendar.Weekday]string{
		calendar.Sunday:    "日",
		calendar.Monday:    "一",
		calendar.Tuesday:   "二",
		calendar.Wednesday: "三",
		calendar.Thursday:  "四",
		calendar.Friday:    "五",
		calendar.Saturday:  "六",
	},

	CalendarPreferences:    "日历偏好设置",
	DesktopInitialView:     "桌面端初始视图",
	DesktopInitialViewDesc: "选择桌面设备上的初始视图范围。",
	MobileInitialView:      "移动端初始视图",
	MobileInitialViewDesc:  "选择移动设备上的初始视图范围。",
	StartingDayOfWeek:      "一周的开始日",
	StartingDayOfWeekDesc:  "选择一周从哪一天开始。",
	TimeFormat24h:          "24小时格式",
	TimeFormat24hDesc:      "以24小时格式显示时间。",
	CreateEventOnClick:     "点击月视图中的日期创建事件",
	CreateEventOnClickDesc: "启用后，点击月视图中的日期将创建新事件",
	Language:               "语言",
	LanguageDesc:           "选择日历的显示语言。",
	ManageCalendars:        "管理日历",

	Day:       "日",
	Week:      "周",
	Month:     "月",
	List:      "列表",
	ThreeDays: "3天",

	Calendars:   "日历",
	AddCalendar: "添加日历",
	FullNote:    "完整笔记",
	ICloud:      "iCloud",
	CalDAV:      "CalDAV",
	RemoteICS:   "远程 (.ics 格式)",

	Directory:          "目录",
	DirectoryDesc:      "存储事件的目录",
	ChooseDirectory:    "选择目录",
	Color:              "颜色",
	ColorDesc:          "日历上事件的颜色",
	URL:                "网址",
	URLDesc:            "服务器的网址",
	Username:           "用户名",
	UsernameDesc:       "账户的用户名",
	Password:           "密码",
	PasswordDesc:       "账户的密码",
	Heading:            "标题",
	HeadingDesc:        "在日记中存储事件的标题。",
	ChooseHeading:      "选择标题",
	ImportCalendars:    "导入日历",
	ImportingCalendars: "正在导入日历",
	AddingCalendar:     "正在添加日历",
}

// supported pairs the translation tables with their language tags. The first
// entry is the matcher's fallback.
var supported = []struct {
	tag   language.Tag
	table Translations
}{
	{language.English, en},
	{language.SimplifiedChinese, zhCN},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	matcher = language.NewMatcher(tags)
}

// Resolve returns the label table for a locale identifier. Identifiers that
// cannot be parsed or matched resolve to English.
func Resolve(locale string) Translations {
	tag, err := language.Parse(locale)
	if err != nil {
		return en
	}
	_, index, _ := matcher.Match(tag)
	return supported[index].table
}

// LocaleOptions lists the locales offered by the language dropdown, in
// display order. Locales without their own table resolve through Resolve's
// fallback.
var LocaleOptions = []struct {
	Code  string
	Label string
}{
	{"en", "English"},
	{"zh-cn", "简体中文"},
	{"zh-tw", "繁體中文"},
	{"ja", "日本語"},
	{"ko", "한국어"},
	{"fr", "Français"},
	{"de", "Deutsch"},
	{"es", "Español"},
	{"it", "Italiano"},
	{"pt", "Português"},
	{"ru", "Русский"},
}

// SourceTypeLabel returns the display label for a source type.
func (t Translations) SourceTypeLabel(typ calendar.SourceType) string {
	switch typ {
	case calendar.SourceLocal:
		return t.FullNote
	case calendar.SourceDailyNote:
		return t.DailyNote
	case calendar.SourceICloud:
		return t.ICloud
	case calendar.SourceCalDAV:
		return t.CalDAV
	case calendar.SourceICal:
		return t.RemoteICS
	}
	return string(typ)
}

// FieldLabel returns the name and description for a source form field.
func (t Translations) FieldLabel(f calendar.Field) (name, desc string) {
	switch f {
	case calendar.FieldColor:
		return t.Color, t.ColorDesc
	case calendar.FieldDirectory:
		return t.Directory, t.DirectoryDesc
	case calendar.FieldHeading:
		return t.Heading, t.HeadingDesc
	case calendar.FieldURL:
		return t.URL, t.URLDesc
	case calendar.FieldUsername:
		return t.Username, t.UsernameDesc
	case calendar.FieldPassword:
		return t.Password, t.PasswordDesc
	}
	return string(f), ""
}
