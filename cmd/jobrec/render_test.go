package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-recommender/internal/analysis"
	"job-recommender/internal/jobs"
)

func TestRenderAnalysisIncludesSections(t *testing.T) {
	out := renderAnalysis(analysis.Result{Summary: "S1", SkillGaps: "G1", Roadmap: "R1"})

	for _, want := range []string{"Resume Summary", "S1", "Skill Gaps", "G1", "Future Roadmap", "R1"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderJobs(t *testing.T) {
	out := renderJobs(analysis.Recommendation{
		Keywords: "Go Developer",
		Listings: []jobs.Listing{{Title: "SRE", Company: "Acme", City: "Austin", State: "TX", ApplyLink: "https://x", EmploymentType: "FULLTIME"}},
	})

	assert.Contains(t, out, "Keywords: Go Developer")
	assert.Contains(t, out, "SRE")
	assert.Contains(t, out, "Austin, TX")
	assert.Contains(t, out, "https://x")
}

func TestRenderJobsFailure(t *testing.T) {
	out := renderJobs(analysis.Recommendation{Keywords: "Go", SearchErr: errors.New("upstream down")})

	assert.Contains(t, out, "Job search failed")
	assert.NotContains(t, out, "No jobs found")
}

func TestReportJSONOmitsJobsWhenNotRequested(t *testing.T) {
	var buf bytes.Buffer
	report := analysis.Report{Document: analysis.Document{Result: analysis.Result{Summary: "S"}}}

	require.NoError(t, writeJSON(&buf, reportJSON(report, false)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "S", decoded["summary"])
	_, hasJobs := decoded["jobs"]
	assert.False(t, hasJobs)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"analyze", "keywords", "search"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
