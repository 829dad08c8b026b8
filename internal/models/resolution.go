package models

import (
	"context"
	"errors"
)

// ResponseSource tells the caller where a resolved value came from.
type ResponseSource string

const (
	SourceCache    ResponseSource = "cache"
	SourceAPI      ResponseSource = "api"
	SourceFallback ResponseSource = "fallback"
)

// DegradedReason explains why a fallback value was served. It is meant for
// status display only.
type DegradedReason string

const (
	ReasonNone              DegradedReason = ""
	ReasonOffline           DegradedReason = "offline"
	ReasonMissingCredential DegradedReason = "missing_credential"
	ReasonNoModelAvailable  DegradedReason = "no_model_available"
	ReasonRateLimited       DegradedReason = "rate_limited"
	ReasonProviderFailure   DegradedReason = "provider_failure"
	ReasonParseFailure      DegradedReason = "parse_failure"
	ReasonEmptyResponse     DegradedReason = "empty_response"
	ReasonCanceled          DegradedReason = "canceled"
	ReasonInternal          DegradedReason = "internal"
)

// ResolutionKind names the three resolution flows.
type ResolutionKind string

const (
	KindGenerate ResolutionKind = "generate"
	KindEvaluate ResolutionKind = "evaluate"
	KindSuggest  ResolutionKind = "suggest"
)

// Resolution is a resolved value together with its provenance.
type Resolution[T any] struct {
	Value  T
	Source ResponseSource
	Model  string
	Reason DegradedReason
}

// RequestMeta carries per-request signals that are not part of the cache key.
type RequestMeta struct {
	RequestID string
	Offline   bool
}

// ReasonFor maps a resolution failure onto its degradation reason.
func ReasonFor(err error) DegradedReason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrMissingCredential):
		return ReasonMissingCredential
	case errors.Is(err, ErrNoModelAvailable):
		return ReasonNoModelAvailable
	case errors.Is(err, ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, ErrParseFailure):
		return ReasonParseFailure
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	case errors.Is(err, ErrProviderCallFailure), errors.Is(err, ErrModelUnavailable):
		return ReasonProviderFailure
	default:
		return ReasonInternal
	}
}
