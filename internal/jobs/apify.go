package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"job-recommender/internal/shared/metrics"
	"job-recommender/internal/shared/telemetry"
)

const (
	DefaultApifyBaseURL = "https://api.apify.com"

	linkedInActor = "BHzefUZlZRKWxkTck"
	naukriActor   = "alpcnRV9YI9lYVPWk"

	defaultApifyRows = 60
)

var apifyFields = fieldPaths{
	title:   []string{"title", "jobTitle"},
	company: []string{"companyName", "company"},
	city:    []string{"location", "placeholders.#(type==\"location\").label"},
	state:   []string{"state"},
	link:    []string{"applyUrl", "jobUrl", "jdURL", "url"},
	kind:    []string{"contractType", "employmentType", "jobType"},
}

// Apify runs a job-board scraper actor synchronously and reads its dataset.
type Apify struct {
	http   *resty.Client
	source Source
	actor  string
	token  string
}

// NewApify constructs a LinkedIn or Naukri searcher.
func NewApify(source Source, baseURL, token string, timeout time.Duration) *Apify {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultApifyBaseURL
	}
	actor := linkedInActor
	if source == SourceNaukri {
		actor = naukriActor
	} else {
		source = SourceLinkedIn
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Apify{http: c, source: source, actor: actor, token: strings.TrimSpace(token)}
}

func (a *Apify) runInput(q Query) map[string]any {
	rows := q.MaxResults
	if rows <= 0 {
		rows = defaultApifyRows
	}
	if a.source == SourceNaukri {
		return map[string]any{
			"keyword":    q.Keywords,
			"maxJobs":    rows,
			"freshness":  "all",
			"sortBy":     "relevance",
			"experience": "all",
		}
	}
	return map[string]any{
		"title":    q.Keywords,
		"location": q.location(),
		"rows":     rows,
		"proxy": map[string]any{
			"useApifyProxy":    true,
			"apifyProxyGroups": []string{"RESIDENTIAL"},
		},
	}
}

// Search runs the actor and normalizes its dataset items.
func (a *Apify) Search(ctx context.Context, q Query) Result {
	if a.token == "" {
		return a.fail(0, errors.New("APIFY_API_TOKEN is not set"))
	}

	resp, err := a.http.R().
		SetContext(ctx).
		SetPathParam("actor", a.actor).
		SetQueryParam("token", a.token).
		SetBody(a.runInput(q)).
		Post("/v2/acts/{actor}/run-sync-get-dataset-items")
	if err != nil {
		return a.fail(0, err)
	}
	if !resp.IsSuccess() {
		return a.fail(resp.StatusCode(), fmt.Errorf("unexpected response: %s", strings.TrimSpace(resp.String())))
	}
	root := gjson.ParseBytes(resp.Body())
	if !root.IsArray() {
		return a.fail(resp.StatusCode(), errors.New("dataset items are not a JSON array"))
	}

	records := truncate(root.Array(), q.MaxResults)
	listings := make([]Listing, 0, len(records))
	for _, rec := range records {
		listings = append(listings, normalize(rec, apifyFields))
	}
	metrics.IncJobSearch(string(a.source), outcome(listings))
	return Result{Listings: listings}
}

func (a *Apify) fail(status int, err error) Result {
	metrics.IncJobSearch(string(a.source), "failed")
	telemetry.Warn("jobs.search_failed", map[string]any{
		"source": string(a.source),
		"status": status,
		"error":  err,
	})
	return Result{Err: &SearchError{Source: a.source, StatusCode: status, Err: err}}
}
