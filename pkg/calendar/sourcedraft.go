package calendar

import (
	"context"
	"sort"
	"sync"
)

// Credentials authenticate a remote discovery call. Type is always "basic".
type Credentials struct {
	Type     string
	Username string
	Password string
}

// Discoverer exchanges one set of connection credentials for the concrete
// calendar collections behind a CalDAV endpoint.
type Discoverer interface {
	Discover(ctx context.Context, creds Credentials, url string) ([]Source, error)
}

// SourceSubmitFunc receives one finished source record. A CalDAV draft
// invokes it once per discovered calendar.
type SourceSubmitFunc func(ctx context.Context, source Source) error

// SourceDraft holds the in-progress state of a calendar source being
// configured, together with the ambient lookup data the editor offers for
// choice fields.
type SourceDraft struct {
	source      Source
	directories []string
	headings    []string

	// submitMu guards submitting, which is read from the render loop while
	// a submission runs on another goroutine.
	submitMu   sync.Mutex
	submitting bool
}

// NewSourceDraft seeds a draft from a variant template. directories are the
// candidate folders still available for a local source (callers subtract the
// ones already used); headings are the candidates found in the daily-note
// template, possibly empty.
func NewSourceDraft(source Source, directories, headings []string) *SourceDraft {
	dirs := append([]string(nil), directories...)
	sort.Strings(dirs)
	return &SourceDraft{
		source:      source,
		directories: dirs,
		headings:    append([]string(nil), headings...),
	}
}

// Source returns the current partial record.
func (d *SourceDraft) Source() Source { return d.source }

// Type returns the draft's variant.
func (d *SourceDraft) Type() SourceType { return d.source.Type }

// Directories returns the sorted candidate directories.
func (d *SourceDraft) Directories() []string { return d.directories }

// Headings returns the candidate daily-note headings. An empty list means
// the heading is typed freely.
func (d *SourceDraft) Headings() []string { return d.headings }

// Fields returns the ordered inputs the editor renders for this variant.
func (d *SourceDraft) Fields() []Field { return RequiredFields(d.source.Type) }

// SetField replaces the draft with a shallow-merged copy carrying the new
// field value, so listeners never observe partially-applied edits.
func (d *SourceDraft) SetField(f Field, value string) {
	d.source = d.source.WithField(f, value)
}

// Complete reports whether every variant-required field is non-empty, which
// is the structural gate in front of submission.
func (d *SourceDraft) Complete() bool {
	for _, f := range RequiredFields(d.source.Type) {
		if d.source.FieldValue(f) == "" {
			return false
		}
	}
	return true
}

// Submitting reports whether a submission is in flight for this draft.
func (d *SourceDraft) Submitting() bool {
	d.submitMu.Lock()
	defer d.submitMu.Unlock()
	return d.submitting
}

// Submit finalizes the draft. A non-CalDAV draft is cast to its closed shape
// and forwarded to submit exactly once. A CalDAV draft is never submitted
// directly: it is exchanged through the discoverer for zero or more concrete
// records, each forwarded in response order. A discovery failure is returned
// to the caller (for display as a transient notice) with the draft intact
// and the submitting flag reset, so the user can correct and retry.
func (d *SourceDraft) Submit(ctx context.Context, disc Discoverer, submit SourceSubmitFunc) error {
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

	if d.source.Type != SourceCalDAV {
		return submit(ctx, d.source)
	}

	creds := Credentials{
		Type:     "basic",
		Username: d.source.Username,
		Password: d.source.Password,
	}
	sources, err := disc.Discover(ctx, creds, d.source.URL)
	if err != nil {
		return err
	}
	for _, s := range sources {
		if err := submit(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
