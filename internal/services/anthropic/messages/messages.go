package messages

import (
	"context"
	"errors"
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/utils/clientcache"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// defaultMaxTokens is used when the caller leaves the budget unset; the
// Messages API requires one.
const defaultMaxTokens = 1024

// Generator produces text through the Anthropic Messages API.
type Generator struct {
	config      models.ProviderConfig
	clientCache *clientcache.Cache[*anthropic.Client]
}

// NewGenerator creates an Anthropic generator for one provider configuration.
func NewGenerator(config models.ProviderConfig) *Generator {
	return &Generator{
		config:      config,
		clientCache: clientcache.NewCache[*anthropic.Client](),
	}
}

func (g *Generator) Generate(ctx context.Context, model, prompt string, params models.GenerationParams) (string, error) {
	client, err := g.client()
	if err != nil {
		return "", err
	}

	message, err := client.Messages.New(ctx, BuildParams(model, prompt, params))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", models.ClassifyProviderStatus(models.ProviderAnthropic, apiErr.StatusCode, err)
		}
		return "", models.ClassifyProviderStatus(models.ProviderAnthropic, 0, err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}

// BuildParams maps sampling parameters onto a Messages request.
func BuildParams(model, prompt string, params models.GenerationParams) anthropic.MessageNewParams {
	maxTokens := int64(params.MaxOutputTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if params.Temperature > 0 {
		req.Temperature = anthropic.Float(float64(params.Temperature))
	}
	if params.TopK > 0 {
		req.TopK = anthropic.Int(int64(params.TopK))
	}
	// Anthropic rejects temperature and top_p together on newer models.
	if params.TopP > 0 && params.Temperature == 0 {
		req.TopP = anthropic.Float(float64(params.TopP))
	}
	return req
}

func (g *Generator) client() (*anthropic.Client, error) {
	key := clientcache.ConfigKey(g.config.BaseURL, g.config.APIKey.Value(), g.config.Headers)

	return g.clientCache.GetOrCreate(key, func() (*anthropic.Client, error) {
		fiberlog.Debugf("Creating new Anthropic client (config hash: %s)", key[:8])

		opts := []option.RequestOption{option.WithAPIKey(g.config.APIKey.Value())}
		if g.config.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(g.config.BaseURL))
		}
		for name, value := range g.config.Headers {
			opts = append(opts, option.WithHeader(name, value))
		}

		client := anthropic.NewClient(opts...)
		return &client, nil
	})
}
