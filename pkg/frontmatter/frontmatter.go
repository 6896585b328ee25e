// Package frontmatter reads and writes event notes: markdown files whose
// yaml frontmatter carries the event record and whose body is free text.
package frontmatter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n?(.*)`)

// Parse extracts the event from a note's frontmatter and returns it with the
// body. Content without frontmatter is not an event note.
func Parse(content string) (*calendar.Event, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		return nil, content, nil
	}

	var ev calendar.Event
	if err := yaml.Unmarshal([]byte(matches[1]), &ev); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return &ev, matches[2], nil
}

// Build renders the yaml frontmatter block for an event.
func Build(ev calendar.Event) (string, error) {
	data, err := yaml.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("failed to marshal event: %w", err)
	}
	return "---\n" + string(data) + "---", nil
}

// BuildContent combines an event's frontmatter and a body into a complete
// note document.
func BuildContent(ev calendar.Event, body string) (string, error) {
	block, err := Build(ev)
	if err != nil {
		return "", err
	}
	if body == "" {
		return block + "\n", nil
	}
	if !strings.HasPrefix(body, "\n") {
		return block + "\n\n" + body, nil
	}
	return block + "\n" + body, nil
}

// ReadFile loads an event note from disk. A file without frontmatter yields
// a nil event.
func ReadFile(path string) (*calendar.Event, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return Parse(string(data))
}

// WriteFile persists an event note, replacing any previous content.
func WriteFile(path string, ev calendar.Event, body string) error {
	content, err := BuildContent(ev, body)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// UpdateFile rewrites the frontmatter of an existing note, preserving its
// body. A missing file is created with an empty body.
func UpdateFile(path string, ev calendar.Event) error {
	body := ""
	if data, err := os.ReadFile(path); err == nil {
		_, body, err = Parse(string(data))
		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	return WriteFile(path, ev, body)
}
