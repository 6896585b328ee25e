package calendar

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestToggleWeekday(t *testing.T) {
	tests := []struct {
		name string
		set  []Weekday
		code Weekday
		want map[Weekday]bool // expected membership after toggle
	}{
		{
			name: "add to empty set",
			set:  nil,
			code: Monday,
			want: map[Weekday]bool{Monday: true},
		},
		{
			name: "remove sole member",
			set:  []Weekday{Friday},
			code: Friday,
			want: map[Weekday]bool{Friday: false},
		},
		{
			name: "add preserves existing members",
			set:  []Weekday{Tuesday, Thursday},
			code: Saturday,
			want: map[Weekday]bool{Tuesday: true, Thursday: true, Saturday: true},
		},
		{
			name: "remove from middle",
			set:  []Weekday{Monday, Wednesday, Friday},
			code: Wednesday,
			want: map[Weekday]bool{Monday: true, Wednesday: false, Friday: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleWeekday(tt.set, tt.code)
			for code, member := range tt.want {
				if HasWeekday(got, code) != member {
					t.Errorf("membership of %s = %v, want %v", code, !member, member)
				}
			}
		})
	}
}

func TestToggleWeekdayTwiceRestoresMembership(t *testing.T) {
	original := []Weekday{Monday, Wednesday, Friday}

	for _, code := range Weekdays {
		got := ToggleWeekday(ToggleWeekday(original, code), code)
		if len(got) != len(original) {
			t.Fatalf("toggling %s twice changed set size: got %d, want %d", code, len(got), len(original))
		}
		for _, c := range original {
			if !HasWeekday(got, c) {
				t.Errorf("toggling %s twice lost member %s", code, c)
			}
		}
	}
}

func TestTaskCompletionYAML(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		task  bool
		done  bool
		stamp string
	}{
		{name: "null means not a task", in: "completed: null", task: false},
		{name: "false means incomplete task", in: "completed: false", task: true, done: false},
		{
			name:  "timestamp means completed task",
			in:    `completed: "2024-03-01T09:30:00Z"`,
			task:  true,
			done:  true,
			stamp: "2024-03-01T09:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Completed TaskCompletion `yaml:"completed"`
			}
			if err := yaml.Unmarshal([]byte(tt.in), &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if doc.Completed.IsTask() != tt.task {
				t.Errorf("IsTask() = %v, want %v", doc.Completed.IsTask(), tt.task)
			}
			stamp, done := doc.Completed.Done()
			if done != tt.done || stamp != tt.stamp {
				t.Errorf("Done() = (%q, %v), want (%q, %v)", stamp, done, tt.stamp, tt.done)
			}
		})
	}
}

func TestTaskCompletionRejectsTrue(t *testing.T) {
	var doc struct {
		Completed TaskCompletion `yaml:"completed"`
	}
	if err := yaml.Unmarshal([]byte("completed: true"), &doc); err == nil {
		t.Fatal("expected error for completed: true")
	}
}

func TestEventMarshalEmitsClosedShape(t *testing.T) {
	recurring := Event{
		Type:       TypeRecurring,
		Title:      "Standup",
		AllDay:     false,
		StartTime:  "09:00",
		EndTime:    "09:15",
		DaysOfWeek: []Weekday{Monday, Wednesday},
		StartRecur: "2024-01-01",
	}

	out, err := yaml.Marshal(recurring)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, absent := range []string{"date", "endDate", "completed", "endRecur", "startDate"} {
		if _, ok := decoded[absent]; ok {
			t.Errorf("recurring event leaked field %q", absent)
		}
	}
	for _, present := range []string{"type", "title", "allDay", "startTime", "endTime", "daysOfWeek", "startRecur"} {
		if _, ok := decoded[present]; !ok {
			t.Errorf("recurring event missing field %q", present)
		}
	}
}

func TestEventMarshalSingleAlwaysCarriesTaskFields(t *testing.T) {
	single := Event{
		Type:      TypeSingle,
		Title:     "Dentist",
		AllDay:    true,
		Date:      "2024-06-01",
		Completed: NotATask(),
	}

	out, err := yaml.Marshal(single)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := decoded["endDate"]; !ok || v != nil {
		t.Errorf("endDate = %v (present=%v), want explicit null", v, ok)
	}
	if v, ok := decoded["completed"]; !ok || v != nil {
		t.Errorf("completed = %v (present=%v), want explicit null", v, ok)
	}
	if _, ok := decoded["startTime"]; ok {
		t.Error("all-day event leaked startTime")
	}
}

func TestEventMarshalKeepsFieldOrder(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  []string
	}{
		{
			name: "timed single task",
			event: Event{
				Type:      TypeSingle,
				Title:     "Standup",
				StartTime: "09:00",
				EndTime:   "09:15",
				Date:      "2024-03-04",
				Completed: Incomplete(),
			},
			want: []string{"type", "title", "allDay", "startTime", "endTime", "date", "endDate", "completed"},
		},
		{
			name: "all-day recurring",
			event: Event{
				Type:       TypeRecurring,
				Title:      "Gym",
				AllDay:     true,
				DaysOfWeek: []Weekday{Monday},
				StartRecur: "2024-01-01",
				EndRecur:   "2024-12-31",
			},
			want: []string{"type", "title", "allDay", "daysOfWeek", "startRecur", "endRecur"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := yaml.Marshal(tt.event)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var doc yaml.Node
			if err := yaml.Unmarshal(out, &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			mapping := doc.Content[0]

			var keys []string
			for i := 0; i < len(mapping.Content); i += 2 {
				keys = append(keys, mapping.Content[i].Value)
			}

			if len(keys) != len(tt.want) {
				t.Fatalf("keys = %v, want %v", keys, tt.want)
			}
			for i, k := range tt.want {
				if keys[i] != k {
					t.Errorf("key %d = %q, want %q (full order %v)", i, keys[i], k, keys)
				}
			}
		})
	}
}
