// Package caldav turns one set of CalDAV connection credentials into the
// concrete calendar collections behind the endpoint.
package caldav

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

// Client discovers calendars over CalDAV. The zero value is usable.
type Client struct {
	// Transport overrides the underlying round tripper, mainly for tests.
	Transport http.RoundTripper
}

var _ calendar.Discoverer = (*Client)(nil)

// Discover walks principal → calendar home set → calendars and maps each
// collection to a caldav source record. Collections that cannot hold events
// are skipped. The returned order is the server's response order.
func (c *Client) Discover(ctx context.Context, creds calendar.Credentials, rawURL string) ([]calendar.Source, error) {
	base, err := url.Parse(rawURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid caldav url %q", rawURL)
	}

	transport := c.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	httpClient := webdav.HTTPClientWithBasicAuth(
		&http.Client{Transport: transport},
		creds.Username,
		creds.Password,
	)

	client, err := caldav.NewClient(httpClient, rawURL)
	if err != nil {
		return nil, fmt.Errorf("create caldav client: %w", err)
	}

	principal, err := client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("find principal: %w", err)
	}
	homeSet, err := client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("find calendar home set: %w", err)
	}
	calendars, err := client.FindCalendars(ctx, homeSet)
	if err != nil {
		return nil, fmt.Errorf("find calendars: %w", err)
	}

	return sourcesFromCalendars(base, homeSet, calendars, creds), nil
}

// sourcesFromCalendars maps discovered collections to source records. Colors
// come from the default palette: the CalDAV RFCs have no portable color
// property, so each calendar gets a deterministic pick instead.
func sourcesFromCalendars(base *url.URL, homeSet string, calendars []caldav.Calendar, creds calendar.Credentials) []calendar.Source {
	var sources []calendar.Source
	for _, cal := range calendars {
		if !supportsEvents(cal) {
			continue
		}
		name := cal.Name
		if name == "" {
			name = path.Base(cal.Path)
		}
		sources = append(sources, calendar.Source{
			Type:     calendar.SourceCalDAV,
			Name:     name,
			URL:      resolveHref(base, cal.Path),
			HomeURL:  resolveHref(base, homeSet),
			Color:    calendar.PaletteColor(len(sources)),
			Username: creds.Username,
			Password: creds.Password,
		})
	}
	return sources
}

// supportsEvents reports whether a collection can hold VEVENT components.
// Servers that do not advertise a component set are assumed to hold events.
func supportsEvents(cal caldav.Calendar) bool {
	if len(cal.SupportedComponentSet) == 0 {
		return true
	}
	for _, comp := range cal.SupportedComponentSet {
		if comp == "VEVENT" {
			return true
		}
	}
	return false
}

// resolveHref resolves a server-reported href against the user-entered URL.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
