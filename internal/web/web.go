// Package web serves the server-rendered resume upload UI.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job-recommender/internal/analysis"
	"job-recommender/internal/shared/server/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Handler renders the upload form, the analysis page and the job list.
type Handler struct {
	Svc            *analysis.Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *analysis.Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = analysis.DefaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes installs the templates on r and attaches the UI routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())
	r.GET("/", h.index)
	r.POST("/ui/analyze", h.analyze)
	r.POST("/ui/jobs", h.jobs)
}

type page struct {
	Title        string
	Error        string
	RequestID    string
	Summary      string
	SkillGaps    string
	Roadmap      string
	Location     string
	Keywords     string
	Jobs         []analysis.JobResponse
	SearchFailed bool
}

func (h *Handler) render(c *gin.Context, status int, name string, p page) {
	p.RequestID = middleware.RequestIDFromContext(c)
	c.HTML(status, name, p)
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", page{Title: "Upload"})
}

func (h *Handler) analyze(c *gin.Context) {
	up, status, _, msg := analysis.ReadUpload(c, h.MaxUploadBytes)
	if status != 0 {
		h.render(c, status, "index.html", page{Title: "Upload", Error: msg})
		return
	}

	ctx := analysis.WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	doc, err := h.Svc.AnalyzeDocument(ctx, up)
	if err != nil {
		status, _, msg := analysis.Status(err)
		h.render(c, status, "index.html", page{Title: "Upload", Error: msg})
		return
	}

	h.render(c, http.StatusOK, "analysis.html", page{
		Title:     "Analysis",
		Summary:   doc.Summary,
		SkillGaps: doc.SkillGaps,
		Roadmap:   doc.Roadmap,
		Location:  h.Svc.Options.DefaultLocation,
	})
}

func (h *Handler) jobs(c *gin.Context) {
	summary := strings.TrimSpace(c.PostForm("summary"))
	location := strings.TrimSpace(c.PostForm("location"))
	if summary == "" {
		h.render(c, http.StatusBadRequest, "index.html", page{Title: "Upload", Error: "No resume data provided"})
		return
	}

	ctx := analysis.WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	rec, err := h.Svc.Recommend(ctx, analysis.RecommendInput{Summary: summary, Location: location})
	if err != nil {
		status, _, msg := analysis.Status(err)
		h.render(c, status, "index.html", page{Title: "Upload", Error: msg})
		return
	}
	if location == "" {
		location = h.Svc.Options.DefaultLocation
	}

	h.render(c, http.StatusOK, "jobs.html", page{
		Title:        "Jobs",
		Keywords:     rec.Keywords,
		Location:     location,
		Jobs:         analysis.ToJobResponses(rec.Listings),
		SearchFailed: rec.SearchFailed(),
	})
}
