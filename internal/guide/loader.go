package guide

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour"

	"github.com/mvelders/baedeker/internal/core/styles"
)

// Load discovers every markdown file under contentDir (recursively) and
// parses it into an activity. Files sort by path so the guide order is
// stable across runs.
func Load(contentDir, city string) (*Guide, error) {
	pattern := filepath.Join(contentDir, "**", "*.md")
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob guide content: %w", err)
	}
	sort.Strings(paths)

	g := &Guide{City: city}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		g.Activities = append(g.Activities, parseActivity(path, string(data)))
	}
	return g, nil
}

// parseActivity extracts the title (first heading) and summary (first
// plain paragraph line) from a markdown document.
func parseActivity(path, markdown string) Activity {
	base := filepath.Base(path)
	a := Activity{
		ID:       strings.TrimSuffix(base, filepath.Ext(base)),
		Category: filepath.Base(filepath.Dir(path)),
		Markdown: markdown,
		Path:     path,
	}

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if a.Title == "" {
				a.Title = strings.TrimSpace(strings.TrimLeft(line, "#"))
			}
		default:
			if a.Summary == "" {
				a.Summary = line
			}
		}
		if a.Title != "" && a.Summary != "" {
			break
		}
	}
	if a.Title == "" {
		a.Title = a.ID
	}
	return a
}

// Render renders the activity's markdown for a terminal of the given
// width, using the active theme.
func (a Activity) Render(width int) (string, error) {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	wrapWidth := max(width-4, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	rendered, err := r.Render(a.Markdown)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", a.ID, err)
	}
	return strings.TrimRight(rendered, "\n"), nil
}
