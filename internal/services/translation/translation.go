package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services"
	"github.com/Egham-7/cover-letter-ai/internal/services/metrics"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

const defaultSourceLang = "EN"

type deeplxRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type deeplxResponse struct {
	Code int    `json:"code"`
	Data string `json:"data"`
}

// Service forwards translation requests to a DeepLX-compatible endpoint.
// Results are neither cached nor replaced by a fallback.
type Service struct {
	client *services.Client
}

// NewService returns nil when no endpoint is configured.
func NewService(cfg models.TranslationConfig, timeout time.Duration) *Service {
	if cfg.BaseURL == "" {
		return nil
	}

	clientConfig := services.DefaultClientConfig()
	clientConfig.Timeout = timeout
	clientConfig.Retries = 0
	client := services.NewClient(strings.TrimRight(cfg.BaseURL, "/"), clientConfig)
	if cfg.APIKey.IsSet() {
		client.Headers["Authorization"] = "Bearer " + cfg.APIKey.Value()
	}

	return &Service{client: client}
}

// Translate returns the translated text or models.ErrTranslationFailed.
func (s *Service) Translate(ctx context.Context, req models.TranslationRequest, requestID string) (models.TranslationResult, error) {
	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = defaultSourceLang
	}

	var resp deeplxResponse
	err := s.client.PostJSON(ctx, "", deeplxRequest{
		Text:       req.Text,
		SourceLang: strings.ToUpper(sourceLang),
		TargetLang: strings.ToUpper(req.TargetLang),
	}, &resp)
	if err == nil && (resp.Code != http.StatusOK || resp.Data == "") {
		err = fmt.Errorf("unexpected payload: code=%d, empty=%t", resp.Code, resp.Data == "")
	}
	metrics.Translations.WithLabelValues(metrics.OutcomeOf(err)).Inc()

	if err != nil {
		fiberlog.Errorf("[%s] Translation to %s failed: %v", requestID, req.TargetLang, err)
		return models.TranslationResult{}, fmt.Errorf("%w: %w", models.ErrTranslationFailed, err)
	}

	fiberlog.Infof("[%s] Translated %d chars %s -> %s", requestID, len(req.Text), sourceLang, req.TargetLang)
	return models.TranslationResult{TranslatedText: resp.Data}, nil
}
