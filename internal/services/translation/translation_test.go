package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeepLX(t *testing.T, handler func(in map[string]string) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		status, body := handler(in)
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewServiceRequiresEndpoint(t *testing.T) {
	assert.Nil(t, NewService(models.TranslationConfig{}, time.Second))
}

func TestTranslate(t *testing.T) {
	var seen map[string]string
	srv := newDeepLX(t, func(in map[string]string) (int, any) {
		seen = in
		return http.StatusOK, map[string]any{"code": 200, "data": "Sehr geehrte Damen und Herren"}
	})

	svc := NewService(models.TranslationConfig{BaseURL: srv.URL}, time.Second)
	got, err := svc.Translate(context.Background(), models.TranslationRequest{Text: "Dear Sir or Madam", TargetLang: "de"}, "req-1")
	require.NoError(t, err)

	assert.Equal(t, "Sehr geehrte Damen und Herren", got.TranslatedText)
	assert.Equal(t, map[string]string{"text": "Dear Sir or Madam", "source_lang": "EN", "target_lang": "DE"}, seen)
}

func TestTranslateRejectsBadPayload(t *testing.T) {
	srv := newDeepLX(t, func(map[string]string) (int, any) {
		return http.StatusOK, map[string]any{"code": 429, "data": ""}
	})

	svc := NewService(models.TranslationConfig{BaseURL: srv.URL}, time.Second)
	_, err := svc.Translate(context.Background(), models.TranslationRequest{Text: "Hi", TargetLang: "FR"}, "req-2")
	assert.ErrorIs(t, err, models.ErrTranslationFailed)
}

func TestTranslateSurfacesHTTPErrors(t *testing.T) {
	srv := newDeepLX(t, func(map[string]string) (int, any) {
		return http.StatusUnauthorized, map[string]string{"message": "nope"}
	})

	svc := NewService(models.TranslationConfig{BaseURL: srv.URL}, time.Second)
	_, err := svc.Translate(context.Background(), models.TranslationRequest{Text: "Hi", TargetLang: "FR"}, "req-3")
	assert.ErrorIs(t, err, models.ErrTranslationFailed)
}

func TestTranslateSendsOneRequestOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := newDeepLX(t, func(map[string]string) (int, any) {
		calls.Add(1)
		return http.StatusInternalServerError, map[string]string{"message": "down"}
	})

	svc := NewService(models.TranslationConfig{BaseURL: srv.URL}, time.Second)
	_, err := svc.Translate(context.Background(), models.TranslationRequest{Text: "Hi", TargetLang: "FR"}, "req-4")
	assert.ErrorIs(t, err, models.ErrTranslationFailed)
	assert.Equal(t, int32(1), calls.Load())
}
