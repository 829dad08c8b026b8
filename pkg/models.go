package pkg

import "github.com/Egham-7/cover-letter-ai/internal/models"

type (
	ServerConfig            = models.ServerConfig
	ProviderConfig          = models.ProviderConfig
	ProvidersConfig         = models.ProvidersConfig
	ModelsConfig            = models.ModelsConfig
	CacheConfig             = models.CacheConfig
	TranslationConfig       = models.TranslationConfig
	DatabaseConfig          = models.DatabaseConfig
	RateLimitConfig         = models.RateLimitConfig
	TimeoutConfig           = models.TimeoutConfig
	Credential              = models.Credential
	LetterGenerationRequest = models.LetterGenerationRequest
	LetterEvaluationRequest = models.LetterEvaluationRequest
	FieldSuggestionRequest  = models.FieldSuggestionRequest
	LetterEvaluation        = models.LetterEvaluation
	LetterResponse          = models.LetterResponse
	EvaluationResponse      = models.EvaluationResponse
	SuggestionResponse      = models.SuggestionResponse
	TranslationRequest      = models.TranslationRequest
	TranslationResult       = models.TranslationResult
)
