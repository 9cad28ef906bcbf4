package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-recommender/internal/llm"
)

func TestDefaultCatalogBudgets(t *testing.T) {
	c := Default()

	assert.Equal(t, 400, c.SummaryRequest("r").MaxTokens)
	assert.Equal(t, 300, c.GapsRequest("r").MaxTokens)
	assert.Equal(t, 300, c.RoadmapRequest("r").MaxTokens)
	assert.Equal(t, 50, c.KeywordsRequest("s").MaxTokens)
}

func TestRequestsEmbedInput(t *testing.T) {
	c := Default()
	resume := "Jane Doe\nGo engineer, 5 years"

	for _, req := range []llm.Request{c.SummaryRequest(resume), c.GapsRequest(resume), c.RoadmapRequest(resume)} {
		assert.True(t, strings.HasSuffix(req.Prompt, "\n\n"+resume), req.Prompt)
		assert.Equal(t, llm.DefaultTemperature, req.Temperature)
	}

	kw := c.KeywordsRequest("Backend engineer with Go")
	assert.Contains(t, kw.Prompt, "comma-separated list only")
	assert.True(t, strings.HasSuffix(kw.Prompt, "Backend engineer with Go"))
	assert.NotContains(t, kw.Prompt, "{summary}")
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	_, err := Parse([]byte("summary:\n  max_tokens: 10\n  template: x\n"))
	require.Error(t, err)

	_, err = Parse([]byte("summary: [oops"))
	require.Error(t, err)
}
