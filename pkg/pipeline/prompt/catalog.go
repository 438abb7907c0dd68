package prompt

import (
	"fmt"
	"strings"
	"sync"

	_ "embed"
)

//go:embed prompts.md
var defaultPromptFile string

// Template names used by the pipeline and report generation.
const (
	SessionExtraction = "session-extraction"
	Classify          = "classify"
	AnalysisDefault   = "analysis-default"
	AnalysisThinking  = "analysis-thinking"
	AnalysisBug       = "analysis-bug"
	DailyReport       = "daily-report"
	WeeklyReport      = "weekly-report"
)

// Catalog holds named system-prompt templates parsed from a markdown file.
// Each `## name` heading starts a template; the body runs to the next heading.
// Placeholders use `{name}` syntax.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewCatalog parses the embedded prompt file.
func NewCatalog() *Catalog {
	c := &Catalog{templates: map[string]string{}}
	c.load(defaultPromptFile)
	return c
}

// NewCatalogFromText parses templates from the given markdown text.
func NewCatalogFromText(text string) *Catalog {
	c := &Catalog{templates: map[string]string{}}
	c.load(text)
	return c
}

func (c *Catalog) load(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A plain regex split would drop the section preceding each `## ` match, so
	// scan heading to heading instead.
	lines := strings.Split(text, "\n")
	var name string
	var body []string
	flush := func() {
		if name != "" {
			c.templates[name] = strings.TrimSpace(strings.Join(body, "\n"))
		}
		body = body[:0]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			flush()
			name = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			continue
		}
		body = append(body, line)
	}
	flush()
}

// Get returns the named template verbatim.
func (c *Catalog) Get(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.templates[name]
	if !ok {
		return "", fmt.Errorf("prompt template not found: %s", name)
	}
	return tpl, nil
}

// Build returns the named template with `{key}` placeholders substituted.
func (c *Catalog) Build(name string, vars map[string]string) (string, error) {
	tpl, err := c.Get(name)
	if err != nil {
		return "", err
	}
	for key, value := range vars {
		tpl = strings.ReplaceAll(tpl, "{"+key+"}", value)
	}
	return tpl, nil
}

// Names lists all loaded template names.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	return names
}
