package caldav

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emersion/go-ical"
)

// CalendarInfo is the display metadata a remote .ics feed advertises about
// itself.
type CalendarInfo struct {
	Name  string
	Color string
}

// ProbeICS fetches a remote .ics feed and reads its advertised display name
// and color, used to prefill a freshly added ical source. Both fields may be
// empty; feeds are not required to carry them.
func ProbeICS(ctx context.Context, client *http.Client, url string) (CalendarInfo, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CalendarInfo{}, fmt.Errorf("build ics request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return CalendarInfo{}, fmt.Errorf("fetch ics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CalendarInfo{}, fmt.Errorf("fetch ics: %s", resp.Status)
	}

	cal, err := ical.NewDecoder(resp.Body).Decode()
	if err != nil {
		return CalendarInfo{}, fmt.Errorf("parse ics: %w", err)
	}

	var info CalendarInfo
	if prop := cal.Props.Get("X-WR-CALNAME"); prop != nil {
		info.Name = prop.Value
	}
	if prop := cal.Props.Get("X-APPLE-CALENDAR-COLOR"); prop != nil {
		info.Color = prop.Value
	}
	return info, nil
}
