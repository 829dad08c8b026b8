package letters

import (
	"context"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/cache"
	"github.com/Egham-7/cover-letter-ai/internal/services/metrics"
	"github.com/Egham-7/cover-letter-ai/internal/services/select_model"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// flow describes one resolution kind.
type flow[T any] struct {
	kind     models.ResolutionKind
	key      string
	fallback func() T
	// predefined short-circuits the live call when it reports ok.
	predefined func() (T, bool)
	live       func(ctx context.Context, h select_model.Handle) (T, error)
}

// resolve runs the shared policy: offline, cache, predefined, credential,
// model selection, live call, store. Any failure or panic degrades to the
// flow's fallback value.
func resolve[T any](ctx context.Context, s *Service, meta models.RequestMeta, f flow[T]) (res models.Resolution[T]) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			fiberlog.Errorf("[%s] 💥 Panic while resolving %s: %v", meta.RequestID, f.kind, r)
			res = degrade(f, models.ReasonInternal)
		}
		s.observe(meta, f.kind, f.key, res.Source, res.Model, res.Reason, time.Since(start))
	}()

	if meta.Offline {
		fiberlog.Debugf("[%s] Offline mode, serving fallback %s", meta.RequestID, f.kind)
		return degrade(f, models.ReasonOffline)
	}

	if v, ok := cache.Lookup[T](ctx, s.cache, f.key); ok {
		fiberlog.Debugf("[%s] 🎯 Cache hit for %s", meta.RequestID, f.kind)
		return models.Resolution[T]{Value: v, Source: models.SourceCache}
	}

	if f.predefined != nil {
		if v, ok := f.predefined(); ok {
			s.store(ctx, meta, f.key, v)
			return models.Resolution[T]{Value: v, Source: models.SourceAPI}
		}
	}

	if !s.selector.HasCredential() {
		fiberlog.Warnf("[%s] No provider credential, using fallback %s", meta.RequestID, f.kind)
		return degrade(f, models.ReasonFor(models.ErrMissingCredential))
	}

	handle, err := s.selector.SelectWorkingModel(ctx, meta.RequestID)
	if err != nil {
		fiberlog.Warnf("[%s] Model selection failed for %s: %v", meta.RequestID, f.kind, err)
		return degrade(f, models.ReasonFor(err))
	}

	v, err := f.live(ctx, handle)
	if err != nil {
		fiberlog.Warnf("[%s] ❌ %s with %s failed: %v", meta.RequestID, f.kind, handle, err)
		return degrade(f, models.ReasonFor(err))
	}

	s.store(ctx, meta, f.key, v)
	fiberlog.Infof("[%s] ✅ Resolved %s with %s", meta.RequestID, f.kind, handle)
	return models.Resolution[T]{Value: v, Source: models.SourceAPI, Model: handle.String()}
}

func degrade[T any](f flow[T], reason models.DegradedReason) models.Resolution[T] {
	return models.Resolution[T]{Value: f.fallback(), Source: models.SourceFallback, Reason: reason}
}

func (s *Service) store(ctx context.Context, meta models.RequestMeta, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		fiberlog.Warnf("[%s] Failed to cache response: %v", meta.RequestID, err)
	}
}

func (s *Service) observe(meta models.RequestMeta, kind models.ResolutionKind, key string, src models.ResponseSource, model string, reason models.DegradedReason, latency time.Duration) {
	metrics.Resolutions.WithLabelValues(string(kind), string(src), string(reason)).Inc()

	if s.recorder == nil {
		return
	}
	s.recorder.Submit(models.RecordResolutionParams{
		RequestID: meta.RequestID,
		Kind:      kind,
		Source:    src,
		Model:     model,
		Reason:    reason,
		CacheKey:  key,
		Latency:   latency,
	})
}
