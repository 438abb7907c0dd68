package prompt

import (
	"strings"
	"testing"
)

func TestCatalogParsesSections(t *testing.T) {
	c := NewCatalogFromText("intro text\n\n## first\nbody one\nline two\n\n## second\nbody two\n")

	got, err := c.Get("first")
	if err != nil {
		t.Fatalf("Get(first): %v", err)
	}
	if got != "body one\nline two" {
		t.Errorf("first = %q", got)
	}

	got, err = c.Get("second")
	if err != nil {
		t.Fatalf("Get(second): %v", err)
	}
	if got != "body two" {
		t.Errorf("second = %q", got)
	}

	if _, err := c.Get("missing"); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestCatalogBuildSubstitutes(t *testing.T) {
	c := NewCatalogFromText("## tpl\nHello {name}, categories:\n{categories}\n")
	got, err := c.Build("tpl", map[string]string{"name": "reviewer", "categories": "A\nB"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got != "Hello reviewer, categories:\nA\nB" {
		t.Errorf("Build = %q", got)
	}
}

func TestEmbeddedCatalogHasPipelineTemplates(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{SessionExtraction, Classify, AnalysisDefault, AnalysisThinking, AnalysisBug, DailyReport} {
		tpl, err := c.Get(name)
		if err != nil {
			t.Fatalf("embedded catalog missing %q: %v", name, err)
		}
		if strings.TrimSpace(tpl) == "" {
			t.Errorf("template %q is empty", name)
		}
	}
}
