package analysis

import "job-recommender/internal/jobs"

// DefaultMaxResults is the job count returned when a caller asks for none.
const DefaultMaxResults = 15

// Upload is one resume file as received from a client.
type Upload struct {
	FileName string
	MimeType string
	Data     []byte
}

// Result holds the three LLM outputs for one resume, verbatim.
type Result struct {
	Summary   string
	SkillGaps string
	Roadmap   string
}

// Document is an extracted resume together with its analysis.
type Document struct {
	ResumeText string
	Result
}

// RecommendInput asks for job recommendations. Summary is preferred; the
// resume text is used when it is empty.
type RecommendInput struct {
	ResumeText string
	Summary    string
	Location   string
	MaxResults int
}

// Recommendation is the outcome of keyword derivation and job search.
// SearchErr is set when the search failed and was degraded to no listings.
type Recommendation struct {
	Keywords  string
	Listings  []jobs.Listing
	SearchErr error
}

// SearchFailed reports whether the listings are empty because the search failed.
func (r Recommendation) SearchFailed() bool { return r.SearchErr != nil }

// Report is a full end-to-end run.
type Report struct {
	Document
	Recommendation
}

const previewRunes = 500

// Preview returns the first 500 characters of text followed by "...".
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewRunes {
		runes = runes[:previewRunes]
	}
	return string(runes) + "..."
}
