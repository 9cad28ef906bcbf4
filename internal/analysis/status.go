package analysis

import (
	"context"
	"errors"
	"net/http"

	"job-recommender/internal/extract"
	"job-recommender/internal/jobs"
	"job-recommender/internal/llm"
)

// Status maps a pipeline error onto an HTTP status, an error code and the
// single message shown to the client.
func Status(err error) (int, string, string) {
	var (
		formatErr  *extract.DocumentFormatError
		unknownErr *llm.UnknownProviderError
		configErr  *llm.ConfigError
		requestErr *llm.RequestError
		searchErr  *jobs.SearchError
	)
	switch {
	case errors.Is(err, ErrEmptyDocument):
		return http.StatusBadRequest, ErrorCodeDocument, "Could not extract text from the document"
	case errors.As(err, &formatErr):
		return http.StatusBadRequest, ErrorCodeDocument, "Could not read the document: " + formatErr.Error()
	case errors.As(err, &unknownErr), errors.As(err, &configErr):
		return http.StatusInternalServerError, ErrorCodeLLMConfig, err.Error()
	case errors.As(err, &searchErr):
		// Job search timeouts also wrap context.DeadlineExceeded.
		return http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusInternalServerError, ErrorCodeLLMTimeout, err.Error()
	case errors.As(err, &requestErr):
		return http.StatusInternalServerError, ErrorCodeLLMRequest, err.Error()
	default:
		return http.StatusInternalServerError, ErrorCodeInternal, "Unexpected server error"
	}
}
