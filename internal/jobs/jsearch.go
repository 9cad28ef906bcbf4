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
	DefaultJSearchHost = "jsearch.p.rapidapi.com"
	DefaultJSearchURL  = "https://jsearch.p.rapidapi.com/search"
)

var jsearchFields = fieldPaths{
	title:   []string{"job_title"},
	company: []string{"employer_name"},
	city:    []string{"job_city"},
	state:   []string{"job_state"},
	link:    []string{"job_apply_link"},
	kind:    []string{"job_employment_type"},
}

// JSearch queries the RapidAPI JSearch aggregator.
type JSearch struct {
	http   *resty.Client
	url    string
	host   string
	apiKey string
}

// NewJSearch constructs a JSearch client. Empty url and host use the public API.
func NewJSearch(url, host, apiKey string, timeout time.Duration) *JSearch {
	if strings.TrimSpace(url) == "" {
		url = DefaultJSearchURL
	}
	if strings.TrimSpace(host) == "" {
		host = DefaultJSearchHost
	}
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &JSearch{http: c, url: url, host: host, apiKey: strings.TrimSpace(apiKey)}
}

// Search fetches one page of listings posted in the last month and truncates
// them to q.MaxResults, preserving upstream order.
func (j *JSearch) Search(ctx context.Context, q Query) Result {
	if j.apiKey == "" {
		return j.fail(0, errors.New("RAPIDAPI_KEY is not set"))
	}

	resp, err := j.http.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-key", j.apiKey).
		SetHeader("x-rapidapi-host", j.host).
		SetQueryParams(map[string]string{
			"query":       fmt.Sprintf("%s in %s", q.Keywords, q.location()),
			"page":        "1",
			"num_pages":   "1",
			"date_posted": "month",
		}).
		Get(j.url)
	if err != nil {
		return j.fail(0, err)
	}
	if !resp.IsSuccess() {
		return j.fail(resp.StatusCode(), fmt.Errorf("unexpected response: %s", strings.TrimSpace(resp.String())))
	}
	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return j.fail(resp.StatusCode(), errors.New("response is not valid JSON"))
	}

	if status := gjson.GetBytes(body, "status"); status.Exists() && !strings.EqualFold(status.String(), "OK") {
		return j.fail(resp.StatusCode(), fmt.Errorf("upstream status %q: %s", status.String(), gjson.GetBytes(body, "data.message").String()))
	}
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return j.fail(resp.StatusCode(), errors.New("response data is not a list"))
	}

	records := truncate(data.Array(), q.MaxResults)
	listings := make([]Listing, 0, len(records))
	for _, rec := range records {
		listings = append(listings, normalize(rec, jsearchFields))
	}
	metrics.IncJobSearch(string(SourceJSearch), outcome(listings))
	return Result{Listings: listings}
}

func (j *JSearch) fail(status int, err error) Result {
	serr := &SearchError{Source: SourceJSearch, StatusCode: status, Err: err}
	metrics.IncJobSearch(string(SourceJSearch), "failed")
	telemetry.Warn("jobs.search_failed", map[string]any{
		"source": string(SourceJSearch),
		"status": status,
		"error":  err,
	})
	return Result{Err: serr}
}

func outcome(listings []Listing) string {
	if len(listings) == 0 {
		return "empty"
	}
	return "ok"
}
