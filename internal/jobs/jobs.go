// Package jobs searches external job boards and normalizes their records.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Sentinel replaces any attribute an upstream record leaves out.
const Sentinel = "N/A"

// DefaultLocation is searched when a query names no location.
const DefaultLocation = "USA"

// Source identifies the job board behind a Searcher.
type Source string

const (
	SourceJSearch  Source = "jsearch"
	SourceLinkedIn Source = "linkedin"
	SourceNaukri   Source = "naukri"
)

// Query is one job search.
type Query struct {
	Keywords   string
	Location   string
	MaxResults int
}

func (q Query) location() string {
	if loc := strings.TrimSpace(q.Location); loc != "" {
		return loc
	}
	return DefaultLocation
}

// Listing is the normalized view of one upstream job record. Every field holds
// Sentinel when the upstream record omits it.
type Listing struct {
	Title          string
	Company        string
	City           string
	State          string
	ApplyLink      string
	EmploymentType string
}

// Location joins city and state, skipping sentinel parts.
func (l Listing) Location() string {
	var parts []string
	for _, p := range []string{l.City, l.State} {
		if p != "" && p != Sentinel {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Sentinel
	}
	return strings.Join(parts, ", ")
}

// SearchError reports a failed search, as opposed to one with zero matches.
type SearchError struct {
	Source     Source
	StatusCode int
	Err        error
}

func (e *SearchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s job search failed (status %d): %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s job search failed: %v", e.Source, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Result carries the listings of a search, or the reason it failed.
type Result struct {
	Listings []Listing
	Err      error
}

// Failed reports whether the search itself failed.
func (r Result) Failed() bool { return r.Err != nil }

// OrEmpty degrades a failed search to zero listings.
func (r Result) OrEmpty() []Listing {
	if r.Err != nil || r.Listings == nil {
		return []Listing{}
	}
	return r.Listings
}

// Searcher runs a job search. Implementations never panic on upstream
// failures; they report them through Result.Err.
type Searcher interface {
	Search(ctx context.Context, q Query) Result
}

// Options configures New.
type Options struct {
	Source       string
	RapidAPIKey  string
	JSearchHost  string
	JSearchURL   string
	ApifyToken   string
	ApifyBaseURL string
	Timeout      time.Duration
}

// New returns the Searcher for opts.Source, defaulting to JSearch.
func New(opts Options) Searcher {
	switch Source(strings.ToLower(strings.TrimSpace(opts.Source))) {
	case SourceLinkedIn:
		return NewApify(SourceLinkedIn, opts.ApifyBaseURL, opts.ApifyToken, opts.Timeout)
	case SourceNaukri:
		return NewApify(SourceNaukri, opts.ApifyBaseURL, opts.ApifyToken, opts.Timeout)
	default:
		return NewJSearch(opts.JSearchURL, opts.JSearchHost, opts.RapidAPIKey, opts.Timeout)
	}
}

type fieldPaths struct {
	title, company, city, state, link, kind []string
}

func normalize(rec gjson.Result, paths fieldPaths) Listing {
	return Listing{
		Title:          firstString(rec, paths.title),
		Company:        firstString(rec, paths.company),
		City:           firstString(rec, paths.city),
		State:          firstString(rec, paths.state),
		ApplyLink:      firstString(rec, paths.link),
		EmploymentType: firstString(rec, paths.kind),
	}
}

func firstString(rec gjson.Result, paths []string) string {
	for _, p := range paths {
		v := rec.Get(p)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return Sentinel
}

func truncate(records []gjson.Result, max int) []gjson.Result {
	if max > 0 && len(records) > max {
		return records[:max]
	}
	return records
}
