package calendar

import (
	"context"
	"fmt"
	"sync"
)

// CalendarOption is one selectable host calendar for an event.
type CalendarOption struct {
	ID   string
	Name string
	Type SourceType
}

// CalendarChoice is a calendar option as presented by the editor. Disabled
// options are visible but not selectable, which prevents silently moving an
// existing event across calendar types.
type CalendarChoice struct {
	Index    int
	Label    string
	Type     SourceType
	Disabled bool
}

// EventSubmitFunc receives the normalized event and the selected calendar
// index. It is supplied by the caller; the draft never retries a failed
// submission.
type EventSubmitFunc func(ctx context.Context, event Event, calendarIndex int) error

// EventDraft holds the in-progress state of an event being created or
// edited. All variant fields coexist in the draft; the strict tagged shape
// is only constructed at the submit boundary by Event.
type EventDraft struct {
	title      string
	date       string
	endDate    string
	startTime  string
	endTime    string
	allDay     bool
	recurring  bool
	days       []Weekday
	endRecur   string
	isTask     bool
	completion TaskCompletion

	calendars     []CalendarOption
	calendarIndex int

	// editing is true when the draft was seeded from an existing event, in
	// which case the host calendar type is pinned.
	editing  bool
	hostType SourceType

	// submitMu guards submitting, which is read from the render loop while
	// a submission runs on another goroutine.
	submitMu   sync.Mutex
	submitting bool
}

// NewEventDraft builds a draft in create mode when initial is nil, or edit
// mode when seeding from an existing event.
func NewEventDraft(initial *Event, calendars []CalendarOption, defaultCalendarIndex int) *EventDraft {
	d := &EventDraft{
		calendars:     calendars,
		calendarIndex: defaultCalendarIndex,
		completion:    Incomplete(),
	}
	if defaultCalendarIndex >= 0 && defaultCalendarIndex < len(calendars) {
		d.hostType = calendars[defaultCalendarIndex].Type
	}
	if initial == nil {
		return d
	}

	d.editing = true
	d.title = initial.Title
	switch initial.Type {
	case TypeSingle:
		d.date = initial.Date
		if initial.EndDate != nil {
			d.endDate = *initial.EndDate
		}
	case TypeRecurring:
		d.date = initial.StartRecur
		d.recurring = true
		d.days = append([]Weekday(nil), initial.DaysOfWeek...)
		d.endRecur = initial.EndRecur
	case TypeRRule:
		d.date = initial.StartDate
	}
	d.allDay = initial.AllDay
	d.startTime = initial.StartTime
	d.endTime = initial.EndTime
	if initial.Type == TypeSingle && initial.Completed.IsTask() {
		d.isTask = true
		d.completion = initial.Completed
	}
	return d
}

func (d *EventDraft) SetTitle(title string)      { d.title = title }
func (d *EventDraft) SetDate(date string)        { d.date = date }
func (d *EventDraft) SetEndDate(date string)     { d.endDate = date }
func (d *EventDraft) SetStartTime(t string)      { d.startTime = t }
func (d *EventDraft) SetEndTime(t string)        { d.endTime = t }
func (d *EventDraft) SetAllDay(allDay bool)      { d.allDay = allDay }
func (d *EventDraft) SetRecurring(r bool)        { d.recurring = r }
func (d *EventDraft) SetDaysOfWeek(ds []Weekday) { d.days = ds }
func (d *EventDraft) SetEndRecur(date string)    { d.endRecur = date }

// ToggleDay flips membership of a day code in the draft's day set.
func (d *EventDraft) ToggleDay(code Weekday) { d.days = ToggleWeekday(d.days, code) }

// SetIsTask marks the event as tracked (or not tracked) as a task.
func (d *EventDraft) SetIsTask(isTask bool) { d.isTask = isTask }

// SetCompletion records the checkbox state: done completes the task now,
// undone reverts it to incomplete.
func (d *EventDraft) SetCompletion(done bool) {
	if done {
		d.completion = CompletedNow()
	} else {
		d.completion = Incomplete()
	}
}

// SetCompletedAt pins the completion timestamp, used when re-seeding from an
// already-completed task.
func (d *EventDraft) SetCompletedAt(ts string) { d.completion = CompletedAt(ts) }

// SetCalendarIndex selects the host calendar. Disabled choices are rejected.
func (d *EventDraft) SetCalendarIndex(idx int) error {
	for _, c := range d.Choices() {
		if c.Index == idx {
			if c.Disabled {
				return fmt.Errorf("calendar %q cannot host this event", c.Label)
			}
			d.calendarIndex = idx
			return nil
		}
	}
	return fmt.Errorf("no selectable calendar at index %d", idx)
}

func (d *EventDraft) Title() string         { return d.title }
func (d *EventDraft) Date() string          { return d.date }
func (d *EventDraft) EndDate() string       { return d.endDate }
func (d *EventDraft) StartTime() string     { return d.startTime }
func (d *EventDraft) EndTime() string       { return d.endTime }
func (d *EventDraft) AllDay() bool          { return d.allDay }
func (d *EventDraft) Recurring() bool       { return d.recurring }
func (d *EventDraft) DaysOfWeek() []Weekday { return d.days }
func (d *EventDraft) EndRecur() string      { return d.endRecur }
func (d *EventDraft) IsTask() bool          { return d.isTask }
func (d *EventDraft) Editing() bool         { return d.editing }
func (d *EventDraft) CalendarIndex() int    { return d.calendarIndex }

// Submitting reports whether a submission is in flight for this draft.
func (d *EventDraft) Submitting() bool {
	d.submitMu.Lock()
	defer d.submitMu.Unlock()
	return d.submitting
}

// Completion returns the draft's completion state as it would be submitted.
func (d *EventDraft) Completion() TaskCompletion {
	if !d.isTask {
		return NotATask()
	}
	return d.completion
}

// Choices returns the selectable host calendars. Only calendar types that
// hold directly editable events are offered; when editing an existing event,
// options of a different type than the current host are disabled.
func (d *EventDraft) Choices() []CalendarChoice {
	var out []CalendarChoice
	for i, cal := range d.calendars {
		if !cal.Type.Editable() {
			continue
		}
		out = append(out, CalendarChoice{
			Index:    i,
			Label:    cal.Name,
			Type:     cal.Type,
			Disabled: d.editing && cal.Type != d.hostType,
		})
	}
	return out
}

// Event normalizes the draft into one of the closed event shapes. The time
// representation branch is built first, then the discriminant branch; the
// draft itself is never mutated toward the target shape.
func (d *EventDraft) Event() Event {
	e := Event{Title: d.title}

	if d.allDay {
		e.AllDay = true
	} else {
		e.AllDay = false
		e.StartTime = d.startTime // empty string when unset, never absent
		e.EndTime = d.endTime
	}

	if d.recurring {
		e.Type = TypeRecurring
		e.DaysOfWeek = append([]Weekday(nil), d.days...)
		e.StartRecur = d.date // empty string normalizes to unset
		e.EndRecur = d.endRecur
	} else {
		e.Type = TypeSingle
		e.Date = d.date
		if d.endDate != "" {
			endDate := d.endDate
			e.EndDate = &endDate
		}
		e.Completed = d.Completion()
	}
	return e
}

// Submit normalizes the draft and hands it to the caller's submit function
// together with the selected calendar index. At most one submission can be
// in flight per draft, even when Submit is called from concurrent
// goroutines; a call while another submission is in flight is ignored.
func (d *EventDraft) Submit(ctx context.Context, submit EventSubmitFunc) error {
	d.submitMu.Lock()
	if d.submitting {
		d.submitMu.Unlock()
		return nil
	}
	d.submitting = true
	d.submitMu.Unlock()

	defer func() {
		d.submitMu.Lock()
		d.submitting = false
		d.submitMu.Unlock()
	}()
	return submit(ctx, d.Event(), d.calendarIndex)
}
