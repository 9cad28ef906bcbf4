package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration. It is read once at startup and
// passed by value; nothing below cmd/ reads the environment directly.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	MaxUploadBytes  int64

	LLMProvider   string
	LLMModel      string
	GroqAPIKey    string
	OpenAIAPIKey  string
	OllamaHost    string
	LLMTimeout    time.Duration
	LLMMaxRetries int

	JobSource       string
	RapidAPIKey     string
	JSearchHost     string
	ApifyAPIToken   string
	JobsTimeout     time.Duration
	JobsOnFailure   string
	DefaultLocation string

	PipelineParallel bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8000"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		LLMProvider:   strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", "groq"))),
		LLMModel:      getEnv("LLM_MODEL", ""),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		LLMTimeout:    time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		LLMMaxRetries: getEnvInt("LLM_MAX_RETRIES", 0),

		JobSource:       normalizeJobSource(getEnv("JOB_SOURCE", "jsearch")),
		RapidAPIKey:     getEnv("RAPIDAPI_KEY", ""),
		JSearchHost:     getEnv("JSEARCH_HOST", "jsearch.p.rapidapi.com"),
		ApifyAPIToken:   getEnv("APIFY_API_TOKEN", ""),
		JobsTimeout:     time.Duration(getEnvInt("JOBS_TIMEOUT_SECONDS", 30)) * time.Second,
		JobsOnFailure:   normalizeFailurePolicy(getEnv("JOBS_ON_FAILURE", "degrade")),
		DefaultLocation: getEnv("JOBS_DEFAULT_LOCATION", "USA"),

		PipelineParallel: getEnvBool("PIPELINE_PARALLEL", false),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeJobSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "linkedin":
		return "linkedin"
	case "naukri":
		return "naukri"
	default:
		return "jsearch"
	}
}

func normalizeFailurePolicy(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fail", "surface":
		return "fail"
	default:
		return "degrade"
	}
}
