package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "Result:\n```\n{\"b\":2}\n```\nbye", `{"b":2}`},
		{"first block wins", "```json\n{\"a\":1}\n```\n```json\n{\"a\":2}\n```", `{"a":1}`},
		{"no fence", "  {\"c\":3}\n", `{"c":3}`},
		{"empty fence", "```json\n```", "```json\n```"},
		{"prose only", " just text ", "just text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}

func TestContainsCodeBlock(t *testing.T) {
	assert.True(t, ContainsCodeBlock("```json\n{}\n```"))
	assert.False(t, ContainsCodeBlock("{}"))
}

func TestParseProviderModel(t *testing.T) {
	provider, model, err := ParseProviderModel("OpenAI:gpt-4o-mini", "gemini")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider)
	assert.Equal(t, "gpt-4o-mini", model)

	provider, model, err = ParseProviderModel(" gemini-1.5-flash ", "gemini")
	require.NoError(t, err)
	assert.Equal(t, "gemini", provider)
	assert.Equal(t, "gemini-1.5-flash", model)

	for _, bad := range []string{"", "openai:", ":gpt-4o", "a:b:c"} {
		_, _, err := ParseProviderModel(bad, "gemini")
		assert.Error(t, err, bad)
	}

	_, _, err = ParseProviderModel("gpt-4o", "")
	assert.Error(t, err)
}
