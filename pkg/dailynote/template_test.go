package dailynote

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daily.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestHeadings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain headings in order",
			content: "# Morning\n\nnotes\n\n## Events\n\n## Tasks\n",
			want:    []string{"Morning", "Events", "Tasks"},
		},
		{
			name: "frontmatter stripped",
			content: `---
tags: [daily]
---
# Log

## Events
`,
			want: []string{"Log", "Events"},
		},
		{
			name:    "no headings",
			content: "just text\nno structure\n",
			want:    nil,
		},
		{
			name:    "hash without space is not a heading",
			content: "#tag\n# Real Heading\n",
			want:    []string{"Real Heading"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemplate(t, tt.content)
			got, err := Headings(path)
			if err != nil {
				t.Fatalf("Headings: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Headings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeadingsMissingTemplate(t *testing.T) {
	got, err := Headings(filepath.Join(t.TempDir(), "nope.md"))
	if err != nil {
		t.Fatalf("missing template should not error: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestNormalizeTemplatePath(t *testing.T) {
	if got := NormalizeTemplatePath("templates/daily"); got != "templates/daily.md" {
		t.Errorf("got %q", got)
	}
	if got := NormalizeTemplatePath("templates/daily.md"); got != "templates/daily.md" {
		t.Errorf("got %q", got)
	}
	if got := NormalizeTemplatePath(""); got != "" {
		t.Errorf("got %q", got)
	}
}
