// Package prompts holds the templates sent to the LLM by each pipeline step.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"job-recommender/internal/llm"
)

//go:embed prompts.yaml
var defaultCatalog []byte

// Template is a single prompt with its output token budget.
type Template struct {
	MaxTokens int    `yaml:"max_tokens"`
	Template  string `yaml:"template"`
}

// Catalog is the full set of pipeline prompts.
type Catalog struct {
	Summary  Template `yaml:"summary"`
	Gaps     Template `yaml:"gaps"`
	Roadmap  Template `yaml:"roadmap"`
	Keywords Template `yaml:"keywords"`
}

// Default returns the embedded catalog. It panics only if the embedded file is
// malformed, which the package tests rule out.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse prompt catalog: %w", err)
	}
	for name, t := range map[string]Template{
		"summary":  c.Summary,
		"gaps":     c.Gaps,
		"roadmap":  c.Roadmap,
		"keywords": c.Keywords,
	} {
		if strings.TrimSpace(t.Template) == "" {
			return Catalog{}, fmt.Errorf("prompt %q: template is required", name)
		}
		if t.MaxTokens <= 0 {
			return Catalog{}, fmt.Errorf("prompt %q: max_tokens must be positive", name)
		}
	}
	return c, nil
}

// SummaryRequest builds the summarize step request.
func (c Catalog) SummaryRequest(resumeText string) llm.Request {
	return c.Summary.render("{text}", resumeText)
}

// GapsRequest builds the skill-gap step request.
func (c Catalog) GapsRequest(resumeText string) llm.Request {
	return c.Gaps.render("{text}", resumeText)
}

// RoadmapRequest builds the roadmap step request.
func (c Catalog) RoadmapRequest(resumeText string) llm.Request {
	return c.Roadmap.render("{text}", resumeText)
}

// KeywordsRequest builds the keyword derivation request from a summary.
func (c Catalog) KeywordsRequest(summary string) llm.Request {
	return c.Keywords.render("{summary}", summary)
}

func (t Template) render(placeholder, value string) llm.Request {
	return llm.NewRequest(strings.ReplaceAll(t.Template, placeholder, value), t.MaxTokens)
}
