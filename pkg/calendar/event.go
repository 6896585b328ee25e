package calendar

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// EventType discriminates the closed set of event shapes.
type EventType string

const (
	TypeSingle    EventType = "single"
	TypeRecurring EventType = "recurring"
	// TypeRRule events pass through the editor read-only; the editor never
	// constructs them.
	TypeRRule EventType = "rrule"
)

// Weekday is a single-letter day code.
type Weekday string

// Day codes in week order, Sunday first.
const (
	Sunday    Weekday = "U"
	Monday    Weekday = "M"
	Tuesday   Weekday = "T"
	Wednesday Weekday = "W"
	Thursday  Weekday = "R"
	Friday    Weekday = "F"
	Saturday  Weekday = "S"
)

// Weekdays lists all day codes in week order.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// HasWeekday reports whether code is a member of set.
func HasWeekday(set []Weekday, code Weekday) bool {
	for _, c := range set {
		if c == code {
			return true
		}
	}
	return false
}

// ToggleWeekday returns set with code removed if present, or prepended if
// absent. Callers must rely on membership only, never on order.
func ToggleWeekday(set []Weekday, code Weekday) []Weekday {
	if HasWeekday(set, code) {
		out := make([]Weekday, 0, len(set)-1)
		for _, c := range set {
			if c != code {
				out = append(out, c)
			}
		}
		return out
	}
	return append([]Weekday{code}, set...)
}

// TaskCompletion is the three-valued completion state of an event:
// not a task at all, a task not yet done, or a task completed at an instant.
// It serializes as null, false, or an ISO-8601 timestamp string.
type TaskCompletion struct {
	task bool
	at   string
}

// NotATask returns the completion state of an event that is not tracked as a task.
func NotATask() TaskCompletion { return TaskCompletion{} }

// Incomplete returns the state of a task that has not been completed.
func Incomplete() TaskCompletion { return TaskCompletion{task: true} }

// CompletedAt returns the state of a task completed at the given timestamp.
func CompletedAt(ts string) TaskCompletion { return TaskCompletion{task: true, at: ts} }

// CompletedNow returns the state of a task completed at the current instant.
func CompletedNow() TaskCompletion {
	return CompletedAt(time.Now().Format(time.RFC3339))
}

// IsTask reports whether the event is tracked as a task.
func (c TaskCompletion) IsTask() bool { return c.task }

// Done returns the completion timestamp and whether the task is complete.
func (c TaskCompletion) Done() (string, bool) { return c.at, c.task && c.at != "" }

func (c TaskCompletion) MarshalYAML() (interface{}, error) {
	switch {
	case !c.task:
		return nil, nil
	case c.at == "":
		return false, nil
	default:
		return c.at, nil
	}
}

func (c *TaskCompletion) UnmarshalYAML(value *yaml.Node) error {
	switch value.Tag {
	case "!!null":
		*c = NotATask()
		return nil
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			return fmt.Errorf("completed: true is not a valid completion state")
		}
		*c = Incomplete()
		return nil
	case "!!str", "!!timestamp":
		*c = CompletedAt(value.Value)
		return nil
	}
	return fmt.Errorf("completed: unexpected yaml node %q", value.Tag)
}

// Event is one record of the closed event union. Exactly one time
// representation is populated: AllDay true with no times, or AllDay false
// with both StartTime and EndTime.
type Event struct {
	Type  EventType `yaml:"type"`
	Title string    `yaml:"title"`

	AllDay    bool   `yaml:"allDay"`
	StartTime string `yaml:"startTime,omitempty"`
	EndTime   string `yaml:"endTime,omitempty"`

	// single
	Date      string         `yaml:"date,omitempty"`
	EndDate   *string        `yaml:"endDate,omitempty"`
	Completed TaskCompletion `yaml:"completed,omitempty"`

	// recurring
	DaysOfWeek []Weekday `yaml:"daysOfWeek,omitempty"`
	StartRecur string    `yaml:"startRecur,omitempty"`
	EndRecur   string    `yaml:"endRecur,omitempty"`

	// rrule
	StartDate string `yaml:"startDate,omitempty"`
}

// MarshalYAML emits exactly the fields of the event's variant, in struct
// field order, so that a serialized event always has one of the closed
// shapes.
func (e Event) MarshalYAML() (interface{}, error) {
	type field struct {
		key   string
		value interface{}
	}

	fields := []field{
		{"type", string(e.Type)},
		{"title", e.Title},
		{"allDay", e.AllDay},
	}
	if !e.AllDay {
		fields = append(fields, field{"startTime", e.StartTime}, field{"endTime", e.EndTime})
	}

	switch e.Type {
	case TypeSingle:
		var endDate interface{}
		if e.EndDate != nil {
			endDate = *e.EndDate
		}
		completed, err := e.Completed.MarshalYAML()
		if err != nil {
			return nil, err
		}
		fields = append(fields,
			field{"date", e.Date},
			field{"endDate", endDate},
			field{"completed", completed},
		)
	case TypeRecurring:
		days := make([]string, len(e.DaysOfWeek))
		for i, d := range e.DaysOfWeek {
			days[i] = string(d)
		}
		fields = append(fields, field{"daysOfWeek", days})
		if e.StartRecur != "" {
			fields = append(fields, field{"startRecur", e.StartRecur})
		}
		if e.EndRecur != "" {
			fields = append(fields, field{"endRecur", e.EndRecur})
		}
	case TypeRRule:
		fields = append(fields, field{"startDate", e.StartDate})
	}

	// Emit a mapping node rather than a map so the keys keep field order.
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		var k, v yaml.Node
		if err := k.Encode(f.key); err != nil {
			return nil, err
		}
		if f.value == nil {
			v = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		} else if err := v.Encode(f.value); err != nil {
			return nil, err
		}
		doc.Content = append(doc.Content, &k, &v)
	}
	return doc, nil
}
