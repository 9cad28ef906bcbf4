package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"job-recommender/internal/analysis"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)
	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func section(title, body string) string {
	return headingStyle.Render(title) + "\n" + bodyStyle.Render(strings.TrimSpace(body)) + "\n"
}

func renderAnalysis(res analysis.Result) string {
	var b strings.Builder
	b.WriteString(section("Resume Summary", res.Summary))
	b.WriteString(section("Skill Gaps", res.SkillGaps))
	b.WriteString(section("Future Roadmap", res.Roadmap))
	return b.String()
}

func renderJobs(rec analysis.Recommendation) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Job Recommendations"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Keywords: " + rec.Keywords))
	b.WriteString("\n")
	switch {
	case rec.SearchFailed():
		b.WriteString(warnStyle.Render("Job search failed: " + rec.SearchErr.Error()))
		b.WriteString("\n")
		return b.String()
	case len(rec.Listings) == 0:
		b.WriteString(mutedStyle.Render("No jobs found."))
		b.WriteString("\n")
		return b.String()
	}
	for i, l := range rec.Listings {
		line := fmt.Sprintf("%2d. %s at %s", i+1, jobTitleStyle.Render(l.Title), l.Company)
		b.WriteString(line + "\n")
		b.WriteString(bodyStyle.Render(mutedStyle.Render(l.Location()+" | "+l.EmploymentType)) + "\n")
		b.WriteString(bodyStyle.Render(l.ApplyLink) + "\n")
	}
	return b.String()
}

type jsonReport struct {
	Summary      string                 `json:"summary,omitempty"`
	Gaps         string                 `json:"gaps,omitempty"`
	Roadmap      string                 `json:"roadmap,omitempty"`
	Keywords     string                 `json:"keywords,omitempty"`
	Jobs         []analysis.JobResponse `json:"jobs,omitempty"`
	SearchFailed bool                   `json:"search_failed,omitempty"`
}

func reportJSON(r analysis.Report, withJobs bool) jsonReport {
	out := jsonReport{Summary: r.Summary, Gaps: r.SkillGaps, Roadmap: r.Roadmap}
	if withJobs {
		out.Keywords = r.Keywords
		out.Jobs = analysis.ToJobResponses(r.Listings)
		out.SearchFailed = r.SearchFailed()
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
