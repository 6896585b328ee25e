package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

// Store persists the settings record to a yaml file. Every mutation writes
// through immediately. Appends re-read the file first so that two editors
// appending concurrently interleave instead of clobbering each other.
type Store struct {
	mu       sync.Mutex
	path     string
	settings Settings
}

// NewStore creates a store over the given settings file. Call Load before
// reading.
func NewStore(path string) *Store {
	return &Store{path: path, settings: Default()}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the settings file. A missing file yields defaults.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := readFile(s.path)
	if err != nil {
		return err
	}
	if loaded != nil {
		s.settings = *loaded
	}
	return nil
}

func readFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if loaded.CalendarSources == nil {
		loaded.CalendarSources = []calendar.Source{}
	}
	return &loaded, nil
}

// save writes the record atomically. Callers hold the lock.
func (s *Store) save() error {
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current record.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.settings
	out.CalendarSources = append([]calendar.Source(nil), s.settings.CalendarSources...)
	return out
}

// AddSource appends one source and persists the whole list. The file is
// re-read first so appends from another process are not lost.
func (s *Store) AddSource(src calendar.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, err := readFile(s.path); err == nil && current != nil {
		s.settings = *current
	}
	s.settings.CalendarSources = append(s.settings.CalendarSources, src)
	return s.save()
}

// ReplaceSources replaces the entire ordered source list and persists it.
func (s *Store) ReplaceSources(sources []calendar.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.CalendarSources = append([]calendar.Source(nil), sources...)
	if s.settings.CalendarSources == nil {
		s.settings.CalendarSources = []calendar.Source{}
	}
	return s.save()
}

// SetDefaultCalendar persists the default calendar index.
func (s *Store) SetDefaultCalendar(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DefaultCalendar = idx
	return s.save()
}

// SetFirstDay persists the first day of the week (0..6, Sunday first).
func (s *Store) SetFirstDay(day int) error {
	if day < 0 || day > 6 {
		return fmt.Errorf("first day out of range: %d", day)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.FirstDay = day
	return s.save()
}

// SetDesktopView persists the desktop initial view.
func (s *Store) SetDesktopView(view string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.InitialView.Desktop = view
	return s.save()
}

// SetMobileView persists the mobile initial view.
func (s *Store) SetMobileView(view string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.InitialView.Mobile = view
	return s.save()
}

// SetTimeFormat24h persists the 24-hour time flag.
func (s *Store) SetTimeFormat24h(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.TimeFormat24h = on
	return s.save()
}

// SetClickToCreate persists the click-to-create flag.
func (s *Store) SetClickToCreate(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ClickToCreateEventFromMonthView = on
	return s.save()
}

// SetLocale persists the display locale.
func (s *Store) SetLocale(locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Locale = locale
	return s.save()
}
