package settings

import (
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s := newTestStore(t)
	got := s.Settings()

	want := Default()
	if got.InitialView != want.InitialView {
		t.Errorf("initial view = %+v, want %+v", got.InitialView, want.InitialView)
	}
	if !got.ClickToCreateEventFromMonthView {
		t.Error("click-to-create should default on")
	}
	if got.Locale != "en" {
		t.Errorf("locale = %q, want en", got.Locale)
	}
	if got.CalendarSources == nil || len(got.CalendarSources) != 0 {
		t.Errorf("sources = %v, want empty non-nil list", got.CalendarSources)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetFirstDay(1); err != nil {
		t.Fatalf("set first day: %v", err)
	}
	if err := s.SetLocale("zh-cn"); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	if err := s.AddSource(calendar.Source{Type: calendar.SourceLocal, Color: "#2e7d32", Directory: "events"}); err != nil {
		t.Fatalf("add source: %v", err)
	}

	reread := NewStore(s.Path())
	if err := reread.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reread.Settings()

	if got.FirstDay != 1 {
		t.Errorf("first day = %d, want 1", got.FirstDay)
	}
	if got.Locale != "zh-cn" {
		t.Errorf("locale = %q, want zh-cn", got.Locale)
	}
	if len(got.CalendarSources) != 1 || got.CalendarSources[0].Directory != "events" {
		t.Errorf("sources = %+v, want one local source", got.CalendarSources)
	}
}

func TestAddSourceMergesConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	// Two stores over the same file, as two editor instances would have.
	a := NewStore(path)
	b := NewStore(path)
	if err := a.Load(); err != nil {
		t.Fatalf("load a: %v", err)
	}
	if err := b.Load(); err != nil {
		t.Fatalf("load b: %v", err)
	}

	if err := a.AddSource(calendar.Source{Type: calendar.SourceLocal, Color: "#111111", Directory: "one"}); err != nil {
		t.Fatalf("append from a: %v", err)
	}
	if err := b.AddSource(calendar.Source{Type: calendar.SourceICal, Color: "#222222", URL: "https://example.com/c.ics"}); err != nil {
		t.Fatalf("append from b: %v", err)
	}

	final := NewStore(path)
	if err := final.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := final.Settings().CalendarSources
	if len(got) != 2 {
		t.Fatalf("got %d sources, want both appends preserved", len(got))
	}
	if got[0].Directory != "one" || got[1].URL != "https://example.com/c.ics" {
		t.Errorf("unexpected order or content: %+v", got)
	}
}

func TestReplaceSources(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddSource(calendar.Source{Type: calendar.SourceLocal, Color: "#111111", Directory: "old"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	replacement := []calendar.Source{
		{Type: calendar.SourceDailyNote, Color: "#222222", Heading: "Events"},
	}
	if err := s.ReplaceSources(replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := s.Settings().CalendarSources
	if len(got) != 1 || got[0].Type != calendar.SourceDailyNote {
		t.Errorf("sources = %+v, want replacement list only", got)
	}
}

func TestSettersPersistIndependently(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetDesktopView("dayGridMonth"); err != nil {
		t.Fatalf("set desktop view: %v", err)
	}
	if err := s.SetTimeFormat24h(true); err != nil {
		t.Fatalf("set 24h: %v", err)
	}

	reread := NewStore(s.Path())
	if err := reread.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reread.Settings()
	if got.InitialView.Desktop != "dayGridMonth" {
		t.Errorf("desktop view = %q", got.InitialView.Desktop)
	}
	if !got.TimeFormat24h {
		t.Error("24h flag not persisted")
	}
	// Untouched fields keep their defaults.
	if got.InitialView.Mobile != "timeGrid3Days" {
		t.Errorf("mobile view = %q, want default", got.InitialView.Mobile)
	}
}

func TestFirstDayRange(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetFirstDay(7); err == nil {
		t.Error("expected out-of-range first day to be rejected")
	}
}

func TestUsedLocalDirectories(t *testing.T) {
	cfg := Settings{CalendarSources: []calendar.Source{
		{Type: calendar.SourceLocal, Directory: "events"},
		{Type: calendar.SourceICal, URL: "https://example.com/c.ics"},
		{Type: calendar.SourceLocal, Directory: "family"},
	}}

	got := cfg.UsedLocalDirectories()
	if len(got) != 2 || got[0] != "events" || got[1] != "family" {
		t.Errorf("used directories = %v", got)
	}
}
