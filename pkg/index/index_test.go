package index

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestPutAndResolve(t *testing.T) {
	idx := openTestIndex(t)

	line := 12
	entry := Entry{
		ID:       NewID(),
		Calendar: 0,
		Title:    "Standup",
		Location: Location{Path: "/vault/events/standup.md", Line: &line},
	}
	if err := idx.Put(entry); err != nil {
		t.Fatalf("put: %v", err)
	}

	loc, ok, err := idx.Resolve(entry.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !ok {
		t.Fatal("expected entry to resolve")
	}
	if loc.Path != entry.Location.Path {
		t.Errorf("path = %q, want %q", loc.Path, entry.Location.Path)
	}
	if loc.Line == nil || *loc.Line != line {
		t.Errorf("line = %v, want %d", loc.Line, line)
	}
}

func TestResolveWholeFileEvent(t *testing.T) {
	idx := openTestIndex(t)

	entry := Entry{
		ID:       "evt-1",
		Title:    "Dentist",
		Location: Location{Path: "/vault/events/dentist.md"},
	}
	if err := idx.Put(entry); err != nil {
		t.Fatalf("put: %v", err)
	}

	loc, ok, err := idx.Resolve("evt-1")
	if err != nil || !ok {
		t.Fatalf("resolve: ok=%v err=%v", ok, err)
	}
	if loc.Line != nil {
		t.Errorf("line = %v, want nil for whole-file event", *loc.Line)
	}
}

func TestResolveUnknown(t *testing.T) {
	idx := openTestIndex(t)

	_, ok, err := idx.Resolve("missing")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ok {
		t.Error("unknown id should not resolve")
	}
}

func TestDelete(t *testing.T) {
	idx := openTestIndex(t)

	entry := Entry{ID: "evt-2", Title: "x", Location: Location{Path: "/vault/x.md"}}
	if err := idx.Put(entry); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := idx.Delete("evt-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, ok, _ := idx.Resolve("evt-2")
	if ok {
		t.Error("deleted entry still resolves")
	}
}

func TestByPath(t *testing.T) {
	idx := openTestIndex(t)

	l5, l2 := 5, 2
	entries := []Entry{
		{ID: "a", Title: "later", Location: Location{Path: "/vault/daily.md", Line: &l5}},
		{ID: "b", Title: "earlier", Location: Location{Path: "/vault/daily.md", Line: &l2}},
		{ID: "c", Title: "other", Location: Location{Path: "/vault/other.md"}},
	}
	for _, e := range entries {
		if err := idx.Put(e); err != nil {
			t.Fatalf("put %s: %v", e.ID, err)
		}
	}

	got, err := idx.ByPath("/vault/daily.md")
	if err != nil {
		t.Fatalf("by path: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("ByPath = %+v, want b then a", got)
	}
}

func TestOpenFileForEvent(t *testing.T) {
	idx := openTestIndex(t)

	realFile := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(realFile, []byte("# note"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	line := 3
	if err := idx.Put(Entry{ID: "real", Title: "x", Location: Location{Path: realFile, Line: &line}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := idx.Put(Entry{ID: "gone", Title: "y", Location: Location{Path: filepath.Join(t.TempDir(), "gone.md")}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	t.Run("opens resolvable file", func(t *testing.T) {
		opened := false
		err := OpenFileForEvent(idx, func(path string, l *int) error {
			opened = true
			if path != realFile {
				t.Errorf("path = %q", path)
			}
			if l == nil || *l != line {
				t.Errorf("line = %v, want %d", l, line)
			}
			return nil
		}, "real")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if !opened {
			t.Error("opener not invoked")
		}
	})

	t.Run("unknown event is a hard error", func(t *testing.T) {
		err := OpenFileForEvent(idx, func(string, *int) error { return nil }, "missing")
		if err == nil {
			t.Fatal("expected error for event with no local representation")
		}
	})

	t.Run("vanished file aborts silently", func(t *testing.T) {
		opened := false
		err := OpenFileForEvent(idx, func(string, *int) error {
			opened = true
			return nil
		}, "gone")
		if err != nil {
			t.Fatalf("expected silent abort, got %v", err)
		}
		if opened {
			t.Error("opener invoked for missing file")
		}
	})
}
