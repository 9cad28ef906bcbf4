// Package analysis runs the resume analysis and job recommendation pipeline.
package analysis

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"job-recommender/internal/extract"
	"job-recommender/internal/jobs"
	"job-recommender/internal/llm"
	"job-recommender/internal/prompts"
	"job-recommender/internal/shared/metrics"
	"job-recommender/internal/shared/telemetry"
)

// Options tunes the pipeline.
type Options struct {
	// Parallel runs summary, gaps and roadmap concurrently.
	Parallel bool
	// FailOnSearchError surfaces job search failures instead of degrading
	// them to an empty listing.
	FailOnSearchError bool
	DefaultLocation   string
	MaxResults        int
}

// Service orchestrates extraction, LLM analysis and job search.
type Service struct {
	LLM     llm.Completer
	Jobs    jobs.Searcher
	Prompts prompts.Catalog
	Options Options
}

// NewService constructs a Service with the embedded prompt catalog.
func NewService(completer llm.Completer, searcher jobs.Searcher, opts Options) *Service {
	if strings.TrimSpace(opts.DefaultLocation) == "" {
		opts.DefaultLocation = jobs.DefaultLocation
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	return &Service{LLM: completer, Jobs: searcher, Prompts: prompts.Default(), Options: opts}
}

// AnalyzeDocument extracts the resume text and runs summary, gap and roadmap
// analysis on it.
func (s *Service) AnalyzeDocument(ctx context.Context, up Upload) (Document, error) {
	start := time.Now()
	metrics.IncAnalysisStarted()

	text, err := s.extract(ctx, up)
	if err != nil {
		s.logFailure(ctx, err, start)
		return Document{}, err
	}
	res, err := s.analyze(ctx, text)
	if err != nil {
		s.logFailure(ctx, err, start)
		return Document{}, err
	}

	s.logSuccess(ctx, "analysis.completed", start, map[string]any{
		"file_name":  up.FileName,
		"text_chars": len(text),
	})
	return Document{ResumeText: text, Result: res}, nil
}

// Analyze runs summary, gap and roadmap analysis on already-extracted text.
func (s *Service) Analyze(ctx context.Context, resumeText string) (Result, error) {
	start := time.Now()
	metrics.IncAnalysisStarted()

	if strings.TrimSpace(resumeText) == "" {
		err := &StepError{Step: StepExtract, Err: ErrEmptyDocument}
		s.logFailure(ctx, err, start)
		return Result{}, err
	}
	res, err := s.analyze(ctx, resumeText)
	if err != nil {
		s.logFailure(ctx, err, start)
		return Result{}, err
	}
	s.logSuccess(ctx, "analysis.completed", start, map[string]any{"text_chars": len(resumeText)})
	return res, nil
}

// Keywords derives up to three job-title search terms from a summary.
func (s *Service) Keywords(ctx context.Context, summary string) (string, error) {
	raw, err := s.complete(ctx, StepKeywords, s.Prompts.KeywordsRequest(summary))
	if err != nil {
		return "", err
	}
	return ParseKeywords(raw), nil
}

// SearchJobs runs one job search and applies the configured failure policy:
// a failed search returns an error only when FailOnSearchError is set.
func (s *Service) SearchJobs(ctx context.Context, q jobs.Query) (jobs.Result, error) {
	if strings.TrimSpace(q.Location) == "" {
		q.Location = s.Options.DefaultLocation
	}
	if q.MaxResults <= 0 {
		q.MaxResults = s.Options.MaxResults
	}
	res := s.Jobs.Search(ctx, q)
	if res.Failed() && s.Options.FailOnSearchError {
		return res, &StepError{Step: StepSearch, Err: res.Err}
	}
	return res, nil
}

// Recommend derives keywords from the summary (or the resume text when no
// summary is given) and searches for matching jobs.
func (s *Service) Recommend(ctx context.Context, in RecommendInput) (Recommendation, error) {
	source := in.Summary
	if strings.TrimSpace(source) == "" {
		source = in.ResumeText
	}
	if strings.TrimSpace(source) == "" {
		return Recommendation{}, &StepError{Step: StepKeywords, Err: ErrEmptyDocument}
	}

	keywords, err := s.Keywords(ctx, source)
	if err != nil {
		return Recommendation{}, err
	}
	rec := Recommendation{Keywords: keywords, Listings: []jobs.Listing{}}
	if keywords == "" {
		telemetry.Warn("analysis.no_keywords", map[string]any{"request_id": requestIDFromContext(ctx)})
		return rec, nil
	}

	res, err := s.SearchJobs(ctx, jobs.Query{Keywords: keywords, Location: in.Location, MaxResults: in.MaxResults})
	if err != nil {
		return Recommendation{}, err
	}
	rec.Listings = res.OrEmpty()
	rec.SearchErr = res.Err
	return rec, nil
}

// Run executes the whole pipeline for one uploaded resume.
func (s *Service) Run(ctx context.Context, up Upload, q jobs.Query) (Report, error) {
	doc, err := s.AnalyzeDocument(ctx, up)
	if err != nil {
		return Report{}, err
	}
	rec, err := s.Recommend(ctx, RecommendInput{
		Summary:    doc.Summary,
		ResumeText: doc.ResumeText,
		Location:   q.Location,
		MaxResults: q.MaxResults,
	})
	if err != nil {
		return Report{}, err
	}
	return Report{Document: doc, Recommendation: rec}, nil
}

func (s *Service) extract(ctx context.Context, up Upload) (string, error) {
	text, err := extract.Text(ctx, up.Data, up.MimeType, up.FileName)
	if err != nil {
		return "", &StepError{Step: StepExtract, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &StepError{Step: StepExtract, Err: ErrEmptyDocument}
	}
	return text, nil
}

// analyze feeds the raw resume text to each of the three analysis prompts.
func (s *Service) analyze(ctx context.Context, text string) (Result, error) {
	var res Result
	steps := []struct {
		step Step
		req  llm.Request
		out  *string
	}{
		{StepSummary, s.Prompts.SummaryRequest(text), &res.Summary},
		{StepGaps, s.Prompts.GapsRequest(text), &res.SkillGaps},
		{StepRoadmap, s.Prompts.RoadmapRequest(text), &res.Roadmap},
	}

	if !s.Options.Parallel {
		for _, st := range steps {
			out, err := s.complete(ctx, st.step, st.req)
			if err != nil {
				return Result{}, err
			}
			*st.out = out
		}
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range steps {
		g.Go(func() error {
			out, err := s.complete(gctx, st.step, st.req)
			if err != nil {
				return err
			}
			*st.out = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (s *Service) complete(ctx context.Context, step Step, req llm.Request) (string, error) {
	out, err := s.LLM.Complete(ctx, req)
	if err != nil {
		return "", &StepError{Step: step, Err: err}
	}
	return out, nil
}

func (s *Service) logSuccess(ctx context.Context, msg string, start time.Time, fields map[string]any) {
	elapsed := time.Since(start)
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDuration(elapsed)
	fields["request_id"] = requestIDFromContext(ctx)
	fields["duration_ms"] = elapsed.Milliseconds()
	telemetry.Info(msg, fields)
}

func (s *Service) logFailure(ctx context.Context, err error, start time.Time) {
	step, _ := FailedStep(err)
	metrics.IncAnalysisFailed(string(step))
	telemetry.Error("analysis.failed", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"step":        string(step),
		"error":       err,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}
