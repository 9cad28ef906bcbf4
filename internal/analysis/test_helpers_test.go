package analysis

import (
	"context"
	"strings"
	"sync"

	"job-recommender/internal/jobs"
	"job-recommender/internal/llm"
)

// fakeCompleter answers each pipeline prompt with a canned response and
// records every request it receives.
type fakeCompleter struct {
	mu       sync.Mutex
	requests []llm.Request
	keywords string
	failOn   string
	err      error
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.failOn != "" && strings.Contains(req.Prompt, f.failOn) {
		return "", f.err
	}
	switch {
	case strings.HasPrefix(req.Prompt, "Summarize"):
		return "Python developer with AWS certification.", nil
	case strings.Contains(req.Prompt, "missing skills"):
		return "1. Kubernetes\n2. Terraform", nil
	case strings.Contains(req.Prompt, "career roadmap"):
		return "Learn Kubernetes, then pursue the CKA.", nil
	case strings.Contains(req.Prompt, "job titles"):
		if f.keywords != "" {
			return f.keywords, nil
		}
		return "Python Developer, Backend Engineer, Cloud Engineer, DevOps Engineer", nil
	}
	return "", nil
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeCompleter) promptsContaining(s string) []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []llm.Request
	for _, r := range f.requests {
		if strings.Contains(r.Prompt, s) {
			out = append(out, r)
		}
	}
	return out
}

type fakeSearcher struct {
	mu      sync.Mutex
	queries []jobs.Query
	result  jobs.Result
}

func (f *fakeSearcher) Search(_ context.Context, q jobs.Query) jobs.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	res := f.result
	if q.MaxResults > 0 && len(res.Listings) > q.MaxResults {
		res.Listings = res.Listings[:q.MaxResults]
	}
	return res
}

func sampleListings(n int) []jobs.Listing {
	out := make([]jobs.Listing, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, jobs.Listing{
			Title:          "Python Developer",
			Company:        "Acme",
			City:           "Seattle",
			State:          "WA",
			ApplyLink:      "https://jobs.example/apply",
			EmploymentType: jobs.Sentinel,
		})
	}
	return out
}

func newTestService(c *fakeCompleter, s *fakeSearcher, opts Options) *Service {
	return NewService(c, s, opts)
}
