package models

// Defaults for model selection.
const (
	DefaultMaxCandidates = 3
	DefaultProbePrompt   = "test"
)

// DefaultCandidates is the candidate order used when none is configured.
var DefaultCandidates = []string{"gemini:gemini-1.5-flash", "gemini:gemini-2.0-flash"}

// ModelsConfig controls which models are probed and in what order.
type ModelsConfig struct {
	// Candidates are "provider:model" identifiers tried in order. A bare model
	// name is assumed to be a gemini model.
	Candidates    []string `json:"candidates" yaml:"candidates"`
	MaxCandidates int      `json:"max_candidates,omitzero" yaml:"max_candidates"`
	ProbePrompt   string   `json:"probe_prompt,omitzero" yaml:"probe_prompt"`
	// MemoTTLMs keeps the last working candidate at the front of the order
	// for this long. Zero disables it.
	MemoTTLMs int `json:"memo_ttl_ms,omitzero" yaml:"memo_ttl_ms"`
}
