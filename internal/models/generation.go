package models

// GenerationParams are the sampling settings sent with one live call.
// Zero values mean "provider default".
type GenerationParams struct {
	Temperature     float32
	TopK            int
	TopP            float32
	MaxOutputTokens int
	BlockUnsafe     bool
}

var (
	LetterParams = GenerationParams{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 8192,
		BlockUnsafe:     true,
	}
	EvaluationParams = GenerationParams{
		Temperature:     0.2,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 8192,
	}
	SuggestionParams = GenerationParams{
		Temperature:     0.4,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
)
