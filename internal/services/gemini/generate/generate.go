package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/utils/clientcache"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"google.golang.org/genai"
)

var unsafeCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// Generator produces text through the Gemini GenerateContent API.
type Generator struct {
	config      models.ProviderConfig
	clientCache *clientcache.Cache[*genai.Client]
}

// NewGenerator creates a Gemini generator for one provider configuration.
func NewGenerator(config models.ProviderConfig) *Generator {
	return &Generator{
		config:      config,
		clientCache: clientcache.NewCache[*genai.Client](),
	}
}

// Generate sends a single-turn prompt and returns the concatenated text.
func (g *Generator) Generate(ctx context.Context, model, prompt string, params models.GenerationParams) (string, error) {
	client, err := g.client(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), BuildConfig(params))
	if err != nil {
		return "", classify(err)
	}
	return resp.Text(), nil
}

// BuildConfig maps sampling parameters onto a Gemini request config.
func BuildConfig(params models.GenerationParams) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if params.Temperature > 0 {
		config.Temperature = genai.Ptr(params.Temperature)
	}
	if params.TopK > 0 {
		config.TopK = genai.Ptr(float32(params.TopK))
	}
	if params.TopP > 0 {
		config.TopP = genai.Ptr(params.TopP)
	}
	if params.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(params.MaxOutputTokens)
	}
	if params.BlockUnsafe {
		for _, category := range unsafeCategories {
			config.SafetySettings = append(config.SafetySettings, &genai.SafetySetting{
				Category:  category,
				Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
			})
		}
	}
	return config
}

func (g *Generator) client(ctx context.Context) (*genai.Client, error) {
	key := clientcache.ConfigKey(g.config.BaseURL, g.config.APIKey.Value(), g.config.Headers)

	return g.clientCache.GetOrCreate(key, func() (*genai.Client, error) {
		fiberlog.Debugf("Creating new Gemini client (config hash: %s)", key[:8])
		return buildClient(ctx, g.config)
	})
}

func buildClient(ctx context.Context, config models.ProviderConfig) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey.Value(),
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.BaseURL
	}
	if len(config.Headers) > 0 {
		clientConfig.HTTPOptions.Headers = http.Header{}
		for key, value := range config.Headers {
			clientConfig.HTTPOptions.Headers.Set(key, value)
		}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, models.NewProviderError(models.ProviderGemini, "client setup failed",
			errors.Join(models.ErrProviderCallFailure, fmt.Errorf("failed to create Gemini client: %w", err)))
	}
	return client, nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return models.ClassifyProviderStatus(models.ProviderGemini, apiErr.Code, err)
	}
	if strings.Contains(err.Error(), "429") {
		return models.ClassifyProviderStatus(models.ProviderGemini, http.StatusTooManyRequests, err)
	}
	return models.ClassifyProviderStatus(models.ProviderGemini, 0, err)
}
