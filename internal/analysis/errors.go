package analysis

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a document yields no text. No LLM call is
// made for such documents.
var ErrEmptyDocument = errors.New("no text could be extracted from the document")

// Step names one stage of the pipeline.
type Step string

const (
	StepExtract  Step = "extract"
	StepSummary  Step = "summary"
	StepGaps     Step = "gaps"
	StepRoadmap  Step = "roadmap"
	StepKeywords Step = "keywords"
	StepSearch   Step = "search"
)

// StepError identifies the pipeline step that failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// FailedStep returns the step that produced err, if any.
func FailedStep(err error) (Step, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}
	return "", false
}

const (
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeDocument     = "DOCUMENT_ERROR"
	ErrorCodeTooLarge     = "PAYLOAD_TOO_LARGE"
	ErrorCodeLLMConfig    = "LLM_CONFIG_ERROR"
	ErrorCodeLLMRequest   = "LLM_REQUEST_ERROR"
	ErrorCodeLLMTimeout   = "LLM_TIMEOUT"
	ErrorCodeSearchFailed = "JOB_SEARCH_FAILED"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)
