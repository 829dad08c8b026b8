package messages

import (
	"testing"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParams(t *testing.T) {
	req := BuildParams("claude-3-5-haiku-latest", "hello", models.EvaluationParams)

	assert.Equal(t, "claude-3-5-haiku-latest", string(req.Model))
	assert.Equal(t, int64(8192), req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.InDelta(t, 0.2, req.Temperature.Value, 1e-6)
	assert.Equal(t, int64(40), req.TopK.Value)
	assert.False(t, req.TopP.Valid())
}

func TestBuildParamsProbeDefaults(t *testing.T) {
	req := BuildParams("claude-3-5-haiku-latest", "test", models.GenerationParams{})

	assert.Equal(t, int64(defaultMaxTokens), req.MaxTokens)
	assert.False(t, req.Temperature.Valid())
	assert.False(t, req.TopK.Valid())
}
