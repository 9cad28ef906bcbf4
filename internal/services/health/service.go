package health

// ServiceName is reported by the health endpoint.
const ServiceName = "job-recommender"

// Status is the health payload.
type Status struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	LLMProvider string `json:"llm_provider,omitempty"`
	JobSource   string `json:"job_source,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	provider  string
	jobSource string
}

// NewService constructs a new health service.
func NewService(provider, jobSource string) *Service {
	return &Service{provider: provider, jobSource: jobSource}
}

// Status reports the process as healthy along with the configured backends.
// Upstream APIs are not probed.
func (s *Service) Status() Status {
	return Status{
		Status:      "healthy",
		Service:     ServiceName,
		LLMProvider: s.provider,
		JobSource:   s.jobSource,
	}
}
