package completions

import (
	"context"
	"errors"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/utils/clientcache"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/openai/openai-go/v2"
	openaiOption "github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// Generator produces text through the OpenAI Chat Completions API. Any
// OpenAI-compatible endpoint works through base_url.
type Generator struct {
	config      models.ProviderConfig
	clientCache *clientcache.Cache[*openai.Client]
}

// NewGenerator creates an OpenAI generator for one provider configuration.
func NewGenerator(config models.ProviderConfig) *Generator {
	return &Generator{
		config:      config,
		clientCache: clientcache.NewCache[*openai.Client](),
	}
}

func (g *Generator) Generate(ctx context.Context, model, prompt string, params models.GenerationParams) (string, error) {
	client, err := g.client()
	if err != nil {
		return "", err
	}

	resp, err := client.Chat.Completions.New(ctx, BuildParams(model, prompt, params))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", models.ClassifyProviderStatus(models.ProviderOpenAI, apiErr.StatusCode, err)
		}
		return "", models.ClassifyProviderStatus(models.ProviderOpenAI, 0, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildParams maps sampling parameters onto a chat completion request.
// OpenAI has no top_k, so it is dropped.
func BuildParams(model, prompt string, params models.GenerationParams) openai.ChatCompletionNewParams {
	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if params.Temperature > 0 {
		req.Temperature = openai.Float(float64(params.Temperature))
	}
	if params.TopP > 0 {
		req.TopP = openai.Float(float64(params.TopP))
	}
	if params.MaxOutputTokens > 0 {
		req.MaxCompletionTokens = openai.Int(int64(params.MaxOutputTokens))
	}
	return req
}

func (g *Generator) client() (*openai.Client, error) {
	key := clientcache.ConfigKey(g.config.BaseURL, g.config.APIKey.Value(), g.config.Headers)

	return g.clientCache.GetOrCreate(key, func() (*openai.Client, error) {
		fiberlog.Debugf("Creating new OpenAI client (config hash: %s)", key[:8])

		opts := []openaiOption.RequestOption{openaiOption.WithAPIKey(g.config.APIKey.Value())}
		if g.config.BaseURL != "" {
			opts = append(opts, openaiOption.WithBaseURL(g.config.BaseURL))
		}
		for name, value := range g.config.Headers {
			opts = append(opts, openaiOption.WithHeader(name, value))
		}

		client := openai.NewClient(opts...)
		return &client, nil
	})
}
