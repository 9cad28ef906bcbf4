package analysis

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job-recommender/internal/jobs"
	"job-recommender/internal/shared/server/middleware"
	"job-recommender/internal/shared/server/respond"
	"job-recommender/internal/shared/util"
)

// DefaultMaxUploadBytes bounds /analyze uploads when no limit is configured.
const DefaultMaxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the analysis routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/analyze", h.analyze)
	r.POST("/jobs", h.jobs)
}

type analyzeResponse struct {
	Success    bool   `json:"success"`
	Summary    string `json:"summary"`
	Gaps       string `json:"gaps"`
	Roadmap    string `json:"roadmap"`
	ResumeText string `json:"resume_text"`
}

func (h *Handler) analyze(c *gin.Context) {
	up, status, code, msg := ReadUpload(c, h.MaxUploadBytes)
	if status != 0 {
		respond.Error(c, status, code, msg, nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	doc, err := h.Svc.AnalyzeDocument(ctx, up)
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.OK(c, analyzeResponse{
		Success:    true,
		Summary:    doc.Summary,
		Gaps:       doc.SkillGaps,
		Roadmap:    doc.Roadmap,
		ResumeText: Preview(doc.ResumeText),
	})
}

type jobsRequest struct {
	ResumeText string `json:"resume_text"`
	Summary    string `json:"summary"`
	Location   string `json:"location"`
	NumResults int    `json:"num_results"`
}

// JobResponse is one listing as rendered by the HTTP API.
type JobResponse struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
	Type     string `json:"type"`
}

type jobsResponse struct {
	Success      bool          `json:"success"`
	Keywords     string        `json:"keywords"`
	Jobs         []JobResponse `json:"jobs"`
	SearchFailed bool          `json:"search_failed"`
}

func (h *Handler) jobs(c *gin.Context) {
	var req jobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Summary) == "" && strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "No resume data provided", nil)
		return
	}
	if req.NumResults < 0 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "num_results must not be negative", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	rec, err := h.Svc.Recommend(ctx, RecommendInput{
		ResumeText: req.ResumeText,
		Summary:    req.Summary,
		Location:   req.Location,
		MaxResults: req.NumResults,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("keywords", rec.Keywords)

	respond.OK(c, jobsResponse{
		Success:      true,
		Keywords:     rec.Keywords,
		Jobs:         ToJobResponses(rec.Listings),
		SearchFailed: rec.SearchFailed(),
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if step, ok := FailedStep(err); ok {
		c.Set("step", string(step))
	}
	status, code, msg := Status(err)
	respond.Error(c, status, code, msg, nil)
}

// ToJobResponses converts listings to their API representation.
func ToJobResponses(listings []jobs.Listing) []JobResponse {
	out := make([]JobResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, JobResponse{
			Title:    l.Title,
			Company:  l.Company,
			Location: l.Location(),
			Link:     l.ApplyLink,
			Type:     l.EmploymentType,
		})
	}
	return out
}

// ReadUpload reads the multipart "file" field under a size limit. A non-zero
// status reports why the upload was rejected.
func ReadUpload(c *gin.Context, maxBytes int64) (Upload, int, string, string) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			return Upload{}, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "File is too large"
		}
		return Upload{}, http.StatusBadRequest, ErrorCodeValidation, "No file provided"
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		return Upload{}, http.StatusBadRequest, ErrorCodeValidation, "No file selected"
	}
	if fileHeader.Size > maxBytes {
		return Upload{}, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "File is too large"
	}

	data, err := readFile(fileHeader)
	if err != nil {
		if isTooLarge(err) {
			return Upload{}, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "File is too large"
		}
		return Upload{}, http.StatusBadRequest, ErrorCodeValidation, "unable to read file"
	}

	return Upload{
		FileName: fileName,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	}, 0, "", ""
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
