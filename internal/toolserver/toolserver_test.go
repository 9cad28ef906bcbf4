package toolserver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-recommender/internal/analysis"
	"job-recommender/internal/jobs"
	"job-recommender/internal/llm"
)

type recordingCompleter struct {
	prompts []string
	err     error
}

func (r *recordingCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	r.prompts = append(r.prompts, req.Prompt)
	if r.err != nil {
		return "", r.err
	}
	if strings.Contains(req.Prompt, "job titles") {
		return "Data Scientist, ML Engineer, Backend Developer, Extra Term", nil
	}
	return "output", nil
}

type recordingSearcher struct {
	queries []jobs.Query
	res     jobs.Result
}

func (r *recordingSearcher) Search(_ context.Context, q jobs.Query) jobs.Result {
	r.queries = append(r.queries, q)
	return r.res
}

func newTools(c *recordingCompleter, s *recordingSearcher) *Tools {
	return &Tools{Svc: analysis.NewService(c, s, analysis.Options{})}
}

func TestAnalyzeResumeUsesRawText(t *testing.T) {
	c := &recordingCompleter{}
	tools := newTools(c, &recordingSearcher{})

	_, out, err := tools.AnalyzeResume(context.Background(), nil, AnalyzeInput{ResumeText: "RAW RESUME"})

	require.NoError(t, err)
	assert.Equal(t, AnalyzeOutput{Summary: "output", SkillGaps: "output", Roadmap: "output"}, out)
	require.Len(t, c.prompts, 3)
	for _, p := range c.prompts {
		assert.True(t, strings.HasSuffix(p, "RAW RESUME"))
	}
}

func TestAnalyzeResumeRejectsEmpty(t *testing.T) {
	c := &recordingCompleter{}
	tools := newTools(c, &recordingSearcher{})

	_, _, err := tools.AnalyzeResume(context.Background(), nil, AnalyzeInput{ResumeText: " "})

	require.Error(t, err)
	assert.Empty(t, c.prompts)
}

func TestAnalyzeResumeReportsProviderError(t *testing.T) {
	c := &recordingCompleter{err: &llm.ConfigError{Provider: llm.ProviderGroq, Key: "GROQ_API_KEY"}}
	tools := newTools(c, &recordingSearcher{})

	_, _, err := tools.AnalyzeResume(context.Background(), nil, AnalyzeInput{ResumeText: "resume"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestSearchJobsDefaults(t *testing.T) {
	listings := make([]jobs.Listing, 10)
	for i := range listings {
		listings[i] = jobs.Listing{Title: "Go Dev", Company: "Acme", City: "Austin", State: "TX", ApplyLink: "https://x", EmploymentType: "FULLTIME"}
	}
	s := &recordingSearcher{res: jobs.Result{Listings: listings}}
	tools := newTools(&recordingCompleter{}, s)

	_, out, err := tools.SearchJobs(context.Background(), nil, SearchInput{Keywords: "Go Developer"})

	require.NoError(t, err)
	require.Len(t, s.queries, 1)
	assert.Equal(t, "USA", s.queries[0].Location)
	assert.Equal(t, DefaultNumResults, s.queries[0].MaxResults)
	require.Len(t, out.Jobs, 10)
	assert.Equal(t, Job{Title: "Go Dev", Company: "Acme", Location: "Austin, TX", Link: "https://x"}, out.Jobs[0])
	assert.False(t, out.SearchFailed)
}

func TestSearchJobsDegradesFailure(t *testing.T) {
	s := &recordingSearcher{res: jobs.Result{Err: &jobs.SearchError{Source: jobs.SourceJSearch, Err: errors.New("down")}}}
	tools := newTools(&recordingCompleter{}, s)

	_, out, err := tools.SearchJobs(context.Background(), nil, SearchInput{Keywords: "Go", Location: "Berlin", NumResults: 3})

	require.NoError(t, err)
	assert.Empty(t, out.Jobs)
	assert.NotNil(t, out.Jobs)
	assert.True(t, out.SearchFailed)
	assert.Equal(t, "Berlin", s.queries[0].Location)
	assert.Equal(t, 3, s.queries[0].MaxResults)
}

func TestGetJobKeywords(t *testing.T) {
	tools := newTools(&recordingCompleter{}, &recordingSearcher{})

	_, out, err := tools.GetJobKeywords(context.Background(), nil, KeywordsInput{ResumeSummary: "summary"})

	require.NoError(t, err)
	assert.Equal(t, "Data Scientist, ML Engineer, Backend Developer", out.Keywords)
}

func TestNewServerRegistersTools(t *testing.T) {
	server := NewServer(analysis.NewService(&recordingCompleter{}, &recordingSearcher{}, analysis.Options{}))
	assert.NotNil(t, server)
}
