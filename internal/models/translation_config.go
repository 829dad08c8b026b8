package models

// TranslationConfig points at a DeepLX-compatible translation endpoint.
type TranslationConfig struct {
	BaseURL   string     `json:"base_url,omitzero" yaml:"base_url"`
	APIKey    Credential `json:"-" yaml:"api_key"`
	TimeoutMs int        `json:"timeout_ms,omitzero" yaml:"timeout_ms"`
}

// TranslationRequest is the inbound translate payload.
type TranslationRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang,omitempty"`
	TargetLang string `json:"targetLang"`
}

func (r *TranslationRequest) Validate() error {
	return requireFields(map[string]string{
		"text":       r.Text,
		"targetLang": r.TargetLang,
	}, "text", "targetLang")
}

// TranslationResult is returned to the caller.
type TranslationResult struct {
	TranslatedText string `json:"translatedText"`
}
