// Package toolserver exposes the analysis pipeline as MCP tools.
package toolserver

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"job-recommender/internal/analysis"
	"job-recommender/internal/jobs"
	"job-recommender/internal/shared/telemetry"
)

const (
	serverName    = "job-recommender"
	serverVersion = "1.0.0"

	// DefaultNumResults is the search_jobs result count when none is given.
	DefaultNumResults = 10
)

// AnalyzeInput is the analyze_resume argument.
type AnalyzeInput struct {
	ResumeText string `json:"resume_text" jsonschema:"full plain text of the resume"`
}

// AnalyzeOutput is the analyze_resume result.
type AnalyzeOutput struct {
	Summary   string `json:"summary"`
	SkillGaps string `json:"skill_gaps"`
	Roadmap   string `json:"roadmap"`
}

// SearchInput is the search_jobs argument.
type SearchInput struct {
	Keywords   string `json:"keywords" jsonschema:"comma separated job titles to search for"`
	Location   string `json:"location,omitempty" jsonschema:"where to search, defaults to USA"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"maximum number of jobs to return, defaults to 10"`
}

// Job is one search_jobs listing.
type Job struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

// SearchOutput is the search_jobs result.
type SearchOutput struct {
	Jobs         []Job `json:"jobs"`
	SearchFailed bool  `json:"search_failed,omitempty"`
}

// KeywordsInput is the get_job_keywords argument.
type KeywordsInput struct {
	ResumeSummary string `json:"resume_summary" jsonschema:"resume summary produced by analyze_resume"`
}

// KeywordsOutput is the get_job_keywords result.
type KeywordsOutput struct {
	Keywords string `json:"keywords"`
}

// Tools binds the MCP tool handlers to a pipeline service.
type Tools struct {
	Svc *analysis.Service
}

// NewServer returns an MCP server with every tool registered.
func NewServer(svc *analysis.Service) *mcp.Server {
	t := &Tools{Svc: svc}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_resume",
		Description: "Analyze resume text and return a summary, skill gaps and a career roadmap.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.AnalyzeResume)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_jobs",
		Description: "Search job listings by keywords and location.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.SearchJobs)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_job_keywords",
		Description: "Suggest up to three job titles to search for, given a resume summary.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.GetJobKeywords)

	return server
}

// Run serves the tools over stdio until ctx is done or the client disconnects.
func Run(ctx context.Context, svc *analysis.Service) error {
	return NewServer(svc).Run(ctx, &mcp.StdioTransport{})
}

// AnalyzeResume handles analyze_resume. The raw resume text feeds all three steps.
func (t *Tools) AnalyzeResume(ctx context.Context, _ *mcp.CallToolRequest, in AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
	if strings.TrimSpace(in.ResumeText) == "" {
		return nil, AnalyzeOutput{}, errors.New("resume_text is required")
	}
	res, err := t.Svc.Analyze(ctx, in.ResumeText)
	if err != nil {
		return nil, AnalyzeOutput{}, toolError("analyze_resume", err)
	}
	return nil, AnalyzeOutput{Summary: res.Summary, SkillGaps: res.SkillGaps, Roadmap: res.Roadmap}, nil
}

// SearchJobs handles search_jobs.
func (t *Tools) SearchJobs(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	if strings.TrimSpace(in.Keywords) == "" {
		return nil, SearchOutput{}, errors.New("keywords is required")
	}
	n := in.NumResults
	if n <= 0 {
		n = DefaultNumResults
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = jobs.DefaultLocation
	}

	res, err := t.Svc.SearchJobs(ctx, jobs.Query{Keywords: in.Keywords, Location: location, MaxResults: n})
	if err != nil {
		return nil, SearchOutput{}, toolError("search_jobs", err)
	}
	listings := res.OrEmpty()
	out := SearchOutput{Jobs: make([]Job, 0, len(listings)), SearchFailed: res.Failed()}
	for _, l := range listings {
		out.Jobs = append(out.Jobs, Job{Title: l.Title, Company: l.Company, Location: l.Location(), Link: l.ApplyLink})
	}
	return nil, out, nil
}

// GetJobKeywords handles get_job_keywords.
func (t *Tools) GetJobKeywords(ctx context.Context, _ *mcp.CallToolRequest, in KeywordsInput) (*mcp.CallToolResult, KeywordsOutput, error) {
	if strings.TrimSpace(in.ResumeSummary) == "" {
		return nil, KeywordsOutput{}, errors.New("resume_summary is required")
	}
	kw, err := t.Svc.Keywords(ctx, in.ResumeSummary)
	if err != nil {
		return nil, KeywordsOutput{}, toolError("get_job_keywords", err)
	}
	return nil, KeywordsOutput{Keywords: kw}, nil
}

func toolError(tool string, err error) error {
	telemetry.Error("tool.failed", map[string]any{"tool": tool, "error": err})
	_, _, msg := analysis.Status(err)
	return errors.New(msg)
}
