package select_model

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/metrics"
	"github.com/Egham-7/cover-letter-ai/internal/services/provider"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Handle is a model that answered its probe during this request.
type Handle struct {
	Candidate
	generator provider.Generator
}

// Generate runs prompt against the selected model.
func (h Handle) Generate(ctx context.Context, prompt string, params models.GenerationParams) (string, error) {
	return h.generator.Generate(ctx, h.Model, prompt, params)
}

// Options tunes selection.
type Options struct {
	// MaxCandidates caps how many candidates are probed per request.
	MaxCandidates int
	// MemoTTL keeps the last working candidate first in line for this long.
	// Zero probes from the top every time.
	MemoTTL time.Duration
	// Now is the clock used by the memo.
	Now func() time.Time
}

// Service picks the first candidate model that answers a probe.
type Service struct {
	candidates []Candidate
	registry   *provider.Registry
	prober     Prober
	opts       Options

	mu       sync.Mutex
	lastGood Candidate
	lastAt   time.Time
}

// NewService creates a selector over an ordered candidate list.
func NewService(candidates []Candidate, registry *provider.Registry, prober Prober, opts Options) *Service {
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = models.DefaultMaxCandidates
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		candidates: candidates,
		registry:   registry,
		prober:     prober,
		opts:       opts,
	}
}

// HasCredential reports whether any candidate's provider is configured.
func (s *Service) HasCredential() bool {
	for _, c := range s.candidates {
		if s.registry.HasCredential(c.Provider) {
			return true
		}
	}
	return false
}

// SelectWorkingModel probes candidates in order and returns the first that
// answers. Candidates without credentials are skipped unprobed. It returns
// models.ErrNoModelAvailable when every probe fails or the cap is reached.
func (s *Service) SelectWorkingModel(ctx context.Context, requestID string) (Handle, error) {
	var errs []error
	attempt := 0

	for c := range s.order() {
		if err := ctx.Err(); err != nil {
			return Handle{}, err
		}
		attempt++
		fiberlog.Debugf("[%s] 🔄 Probing candidate [%d/%d]: %s", requestID, attempt, s.opts.MaxCandidates, c)

		err := s.prober.Probe(ctx, c)
		metrics.ModelProbes.WithLabelValues(c.String(), metrics.OutcomeOf(err)).Inc()
		if err != nil {
			fiberlog.Warnf("[%s] ❌ Candidate %s unavailable: %v", requestID, c, err)
			errs = append(errs, err)
			continue
		}

		g, ok := s.registry.Lookup(c.Provider)
		if !ok {
			errs = append(errs, models.ErrMissingCredential)
			continue
		}

		fiberlog.Infof("[%s] ✅ Selected model %s", requestID, c)
		s.remember(c)
		return Handle{Candidate: c, generator: g}, nil
	}

	fiberlog.Warnf("[%s] 💥 No available models after %d probe(s)", requestID, attempt)
	if len(errs) == 0 {
		return Handle{}, models.ErrNoModelAvailable
	}
	return Handle{}, errors.Join(append([]error{models.ErrNoModelAvailable}, errs...)...)
}

// ModelStatus is the probe outcome for one candidate.
type ModelStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusAvailable    = "available"
	StatusUnavailable  = "unavailable"
	StatusNoCredential = "no_credential"
)

// ProbeAll probes every configured candidate, ignoring the cap.
func (s *Service) ProbeAll(ctx context.Context) []ModelStatus {
	statuses := make([]ModelStatus, 0, len(s.candidates))
	for _, c := range s.candidates {
		status := ModelStatus{Name: c.String()}
		switch {
		case !s.registry.HasCredential(c.Provider):
			status.Status = StatusNoCredential
		default:
			if err := s.prober.Probe(ctx, c); err != nil {
				status.Status = StatusUnavailable
				status.Error = err.Error()
			} else {
				status.Status = StatusAvailable
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (s *Service) order() iter.Seq[Candidate] {
	seq := Filter(Ordered(s.candidates), func(c Candidate) bool {
		return s.registry.HasCredential(c.Provider)
	})
	if preferred, ok := s.preferred(); ok {
		seq = Preferring(preferred, seq)
	}
	return Limit(seq, s.opts.MaxCandidates)
}

func (s *Service) preferred() (Candidate, bool) {
	if s.opts.MemoTTL <= 0 {
		return Candidate{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastGood == (Candidate{}) || s.opts.Now().Sub(s.lastAt) > s.opts.MemoTTL {
		return Candidate{}, false
	}
	return s.lastGood, true
}

func (s *Service) remember(c Candidate) {
	if s.opts.MemoTTL <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGood = c
	s.lastAt = s.opts.Now()
}
