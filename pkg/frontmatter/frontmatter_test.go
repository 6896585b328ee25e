package frontmatter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantEv   *calendar.Event
		wantBody string
		wantErr  bool
	}{
		{
			name: "timed single event",
			content: `---
type: single
title: Standup
allDay: false
startTime: "09:30"
endTime: "10:00"
date: 2024-03-04
---

# Standup

Notes from the meeting.`,
			wantEv: &calendar.Event{
				Type:      calendar.TypeSingle,
				Title:     "Standup",
				StartTime: "09:30",
				EndTime:   "10:00",
				Date:      "2024-03-04",
			},
			wantBody: "\n# Standup\n\nNotes from the meeting.",
		},
		{
			name: "recurring all-day event",
			content: `---
type: recurring
title: Gym
allDay: true
daysOfWeek: [M, W, F]
startRecur: 2024-01-01
---
`,
			wantEv: &calendar.Event{
				Type:       calendar.TypeRecurring,
				Title:      "Gym",
				AllDay:     true,
				DaysOfWeek: []calendar.Weekday{calendar.Monday, calendar.Wednesday, calendar.Friday},
				StartRecur: "2024-01-01",
			},
			wantBody: "",
		},
		{
			name: "completed task",
			content: `---
type: single
title: File taxes
allDay: true
date: 2024-04-10
completed: "2024-04-09T18:00:00Z"
---
`,
			wantEv: &calendar.Event{
				Type:      calendar.TypeSingle,
				Title:     "File taxes",
				AllDay:    true,
				Date:      "2024-04-10",
				Completed: calendar.CompletedAt("2024-04-09T18:00:00Z"),
			},
			wantBody: "",
		},
		{
			name:     "no frontmatter",
			content:  "# Just a note\n\nNot an event.",
			wantEv:   nil,
			wantBody: "# Just a note\n\nNot an event.",
		},
		{
			name: "invalid yaml",
			content: `---
type: single
title: [broken
---

Body`,
			wantEv: nil,
			wantBody: `---
type: single
title: [broken
---

Body`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotEv, gotBody, err := Parse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(gotEv, tt.wantEv) {
				t.Errorf("Parse() gotEv = %+v, want %+v", gotEv, tt.wantEv)
			}
			if gotBody != tt.wantBody {
				t.Errorf("Parse() gotBody = %q, want %q", gotBody, tt.wantBody)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	endDate := "2024-03-05"
	original := calendar.Event{
		Type:      calendar.TypeSingle,
		Title:     "Offsite",
		AllDay:    true,
		Date:      "2024-03-04",
		EndDate:   &endDate,
		Completed: calendar.Incomplete(),
	}
	body := "# Offsite\n\nAgenda TBD."

	content, err := BuildContent(original, body)
	if err != nil {
		t.Fatalf("BuildContent() error = %v", err)
	}

	parsed, parsedBody, err := Parse(content)
	if err != nil {
		t.Fatalf("failed to parse round-trip content: %v", err)
	}
	if parsed == nil {
		t.Fatal("round trip lost the frontmatter")
	}
	if !reflect.DeepEqual(*parsed, original) {
		t.Errorf("round trip event mismatch\noriginal: %+v\nparsed: %+v", original, *parsed)
	}
	if parsedBody != "\n"+body {
		t.Errorf("round trip body mismatch, got %q", parsedBody)
	}
}

func TestRoundTripEmitsClosedShape(t *testing.T) {
	// A recurring event that was once a single event must not leak the
	// single-variant fields into the note.
	ev := calendar.Event{
		Type:       calendar.TypeRecurring,
		Title:      "Review",
		AllDay:     true,
		Date:       "2024-01-01",
		Completed:  calendar.Incomplete(),
		DaysOfWeek: []calendar.Weekday{calendar.Tuesday},
	}

	content, err := BuildContent(ev, "")
	if err != nil {
		t.Fatalf("BuildContent() error = %v", err)
	}

	parsed, _, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed.Date != "" {
		t.Errorf("recurring note carries date %q", parsed.Date)
	}
	if parsed.Completed.IsTask() {
		t.Error("recurring note carries a completion state")
	}
	if len(parsed.DaysOfWeek) != 1 || parsed.DaysOfWeek[0] != calendar.Tuesday {
		t.Errorf("daysOfWeek = %v, want [T]", parsed.DaysOfWeek)
	}
}

func TestUpdateFilePreservesBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event.md")

	ev := calendar.Event{
		Type:   calendar.TypeSingle,
		Title:  "Dentist",
		AllDay: true,
		Date:   "2024-06-01",
	}
	if err := WriteFile(path, ev, "Bring insurance card."); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ev.Date = "2024-06-08"
	if err := UpdateFile(path, ev); err != nil {
		t.Fatalf("UpdateFile() error = %v", err)
	}

	got, body, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got.Date != "2024-06-08" {
		t.Errorf("date = %q, want 2024-06-08", got.Date)
	}
	if body != "\nBring insurance card." {
		t.Errorf("body = %q, want preserved", body)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.md"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
