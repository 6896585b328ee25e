package calendar

// SourceType discriminates the closed set of calendar source shapes.
type SourceType string

const (
	SourceLocal     SourceType = "local"
	SourceDailyNote SourceType = "dailynote"
	SourceICloud    SourceType = "icloud"
	SourceCalDAV    SourceType = "caldav"
	SourceICal      SourceType = "ical"
)

// SourceTypes lists all source types in the order they are offered to the
// user.
var SourceTypes = []SourceType{SourceLocal, SourceDailyNote, SourceICloud, SourceCalDAV, SourceICal}

// Editable reports whether events hosted by this source type can be edited
// directly. Remote sources are read-only from the editor's perspective.
func (t SourceType) Editable() bool {
	return t == SourceLocal || t == SourceDailyNote
}

// Source is one record of the closed calendar source union. The populated
// fields depend on Type; see RequiredFields.
type Source struct {
	Type  SourceType `yaml:"type"`
	Color string     `yaml:"color,omitempty"`

	// Discovered remote calendars carry a display name and the home-set URL
	// they were found under.
	Name    string `yaml:"name,omitempty"`
	HomeURL string `yaml:"homeUrl,omitempty"`

	Directory string `yaml:"directory,omitempty"`
	Heading   string `yaml:"heading,omitempty"`
	URL       string `yaml:"url,omitempty"`
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`
}

// Field names one editable input of a source draft.
type Field string

const (
	FieldColor     Field = "color"
	FieldDirectory Field = "directory"
	FieldHeading   Field = "heading"
	FieldURL       Field = "url"
	FieldUsername  Field = "username"
	FieldPassword  Field = "password"
)

// requiredFields is the per-variant capability table. It drives both which
// inputs the editor renders (in this order) and which values must be
// non-empty before submission. CalDAV has no color field: colors come per
// discovered calendar from the server.
var requiredFields = map[SourceType][]Field{
	SourceLocal:     {FieldColor, FieldDirectory},
	SourceDailyNote: {FieldColor, FieldHeading},
	SourceICloud:    {FieldColor, FieldURL},
	SourceCalDAV:    {FieldURL, FieldUsername, FieldPassword},
	SourceICal:      {FieldColor, FieldURL},
}

// RequiredFields returns the ordered required fields for a source type.
func RequiredFields(t SourceType) []Field {
	return requiredFields[t]
}

// Requires reports whether the variant requires the given field.
func (t SourceType) Requires(f Field) bool {
	for _, rf := range requiredFields[t] {
		if rf == f {
			return true
		}
	}
	return false
}

// FieldValue returns the current value of one field.
func (s Source) FieldValue(f Field) string {
	switch f {
	case FieldColor:
		return s.Color
	case FieldDirectory:
		return s.Directory
	case FieldHeading:
		return s.Heading
	case FieldURL:
		return s.URL
	case FieldUsername:
		return s.Username
	case FieldPassword:
		return s.Password
	}
	return ""
}

// WithField returns a copy of the source with one field replaced. Drafts are
// always replaced wholesale, never mutated in place.
func (s Source) WithField(f Field, value string) Source {
	switch f {
	case FieldColor:
		s.Color = value
	case FieldDirectory:
		s.Directory = value
	case FieldHeading:
		s.Heading = value
	case FieldURL:
		s.URL = value
	case FieldUsername:
		s.Username = value
	case FieldPassword:
		s.Password = value
	}
	return s
}

// defaultPalette provides starting colors for new sources and fallback
// colors for discovered calendars whose server reports none.
var defaultPalette = []string{
	"#2e7d32", "#1565c0", "#c62828", "#6a1b9a", "#ef6c00", "#00838f", "#4e342e",
}

// PaletteColor returns a deterministic palette pick for index i.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return defaultPalette[i%len(defaultPalette)]
}

// DefaultSource is the type-specific template a draft starts from the moment
// a type is chosen.
func DefaultSource(t SourceType) Source {
	s := Source{Type: t}
	if t.Requires(FieldColor) {
		s.Color = defaultPalette[0]
	}
	return s
}
