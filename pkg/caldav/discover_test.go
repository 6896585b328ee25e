package caldav

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/emersion/go-webdav/caldav"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

func TestSourcesFromCalendars(t *testing.T) {
	base, _ := url.Parse("https://caldav.example.com/dav/")
	creds := calendar.Credentials{Type: "basic", Username: "ana", Password: "pw"}

	calendars := []caldav.Calendar{
		{Path: "/cal/home/", Name: "Home", SupportedComponentSet: []string{"VEVENT"}},
		{Path: "/cal/todo/", Name: "Reminders", SupportedComponentSet: []string{"VTODO"}},
		{Path: "/cal/work/", Name: ""},
	}

	got := sourcesFromCalendars(base, "/cal/", calendars, creds)

	if len(got) != 2 {
		t.Fatalf("got %d sources, want 2 (VTODO-only collection skipped)", len(got))
	}

	first := got[0]
	if first.Type != calendar.SourceCalDAV {
		t.Errorf("type = %q", first.Type)
	}
	if first.Name != "Home" {
		t.Errorf("name = %q", first.Name)
	}
	if first.URL != "https://caldav.example.com/cal/home/" {
		t.Errorf("url = %q", first.URL)
	}
	if first.HomeURL != "https://caldav.example.com/cal/" {
		t.Errorf("homeUrl = %q", first.HomeURL)
	}
	if first.Username != "ana" || first.Password != "pw" {
		t.Error("credentials not carried onto discovered source")
	}
	if first.Color == "" {
		t.Error("discovered source has no color")
	}

	second := got[1]
	if second.Name != "work" {
		t.Errorf("unnamed collection should fall back to path base, got %q", second.Name)
	}
	if second.Color == first.Color {
		t.Error("palette should advance per discovered calendar")
	}
}

func TestDiscoverRejectsBadURL(t *testing.T) {
	c := &Client{}
	if _, err := c.Discover(context.Background(), calendar.Credentials{}, "not a url"); err == nil {
		t.Error("expected error for unparseable url")
	}
	if _, err := c.Discover(context.Background(), calendar.Credentials{}, "/relative/only"); err == nil {
		t.Error("expected error for url without host")
	}
}

func TestResolveHref(t *testing.T) {
	base, _ := url.Parse("https://caldav.example.com/dav/")

	tests := []struct {
		href string
		want string
	}{
		{"/principals/ana/", "https://caldav.example.com/principals/ana/"},
		{"calendars/", "https://caldav.example.com/dav/calendars/"},
		{"https://other.example.com/cal/", "https://other.example.com/cal/"},
	}
	for _, tt := range tests {
		if got := resolveHref(base, tt.href); got != tt.want {
			t.Errorf("resolveHref(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}

func TestProbeICS(t *testing.T) {
	body := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"X-WR-CALNAME:Team Calendar",
		"X-APPLE-CALENDAR-COLOR:#FF2968",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	info, err := ProbeICS(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if info.Name != "Team Calendar" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Color != "#FF2968" {
		t.Errorf("color = %q", info.Color)
	}
}

func TestProbeICSHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := ProbeICS(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("expected error for non-200 response")
	}
}
