package utils

import (
	"fmt"
	"strings"
)

// ParseProviderModel parses a model specification in "provider:model" format.
// A bare model name is attributed to defaultProvider when one is given.
//
//	"openai:gpt-4o"        -> ("openai", "gpt-4o")
//	"gemini-1.5-flash"     -> (defaultProvider, "gemini-1.5-flash")
//	"openai:" / ":gpt-4o"  -> error
func ParseProviderModel(spec, defaultProvider string) (provider, model string, err error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return "", "", fmt.Errorf("model specification cannot be empty")
	}

	before, after, found := strings.Cut(trimmed, ":")
	if !found {
		if defaultProvider == "" {
			return "", "", fmt.Errorf("no provider specified in model %q", spec)
		}
		return defaultProvider, trimmed, nil
	}
	if strings.Contains(after, ":") {
		return "", "", fmt.Errorf("model specification %q must contain exactly one colon", spec)
	}

	provider = strings.ToLower(strings.TrimSpace(before))
	model = strings.TrimSpace(after)
	if provider == "" {
		return "", "", fmt.Errorf("provider cannot be empty in %q", spec)
	}
	if model == "" {
		return "", "", fmt.Errorf("model cannot be empty in %q", spec)
	}
	return provider, model, nil
}
