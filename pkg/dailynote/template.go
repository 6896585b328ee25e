// Package dailynote extracts the candidate headings a daily-note calendar
// source can store events under.
package dailynote

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)`)
	headingPattern     = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)
)

// NormalizeTemplatePath appends the markdown extension when the configured
// template name omits it.
func NormalizeTemplatePath(template string) string {
	if template == "" {
		return ""
	}
	if !strings.HasSuffix(template, ".md") {
		return template + ".md"
	}
	return template
}

// Headings returns the headings of the daily-note template, in document
// order. A missing template yields no headings, in which case the source
// editor lets the user type a heading freely. Frontmatter is stripped before
// scanning so yaml comments never surface as headings.
func Headings(templatePath string) ([]string, error) {
	if templatePath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(NormalizeTemplatePath(templatePath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read daily note template: %w", err)
	}

	body := string(data)
	if matches := frontmatterPattern.FindStringSubmatch(body); len(matches) == 3 {
		// Reject documents whose frontmatter does not parse rather than
		// scanning through it.
		var fm map[string]interface{}
		if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
			return nil, fmt.Errorf("parse template frontmatter: %w", err)
		}
		body = matches[2]
	}

	var headings []string
	for _, line := range strings.Split(body, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			headings = append(headings, m[2])
		}
	}
	return headings, nil
}
