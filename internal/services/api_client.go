package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/utils"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/valyala/fasthttp"
)

// Client is a small JSON-over-HTTP client with pooled connections and retries.
type Client struct {
	BaseURL string
	Headers map[string]string
	http    *fasthttp.Client
	config  ClientConfig
}

// ClientConfig holds configuration for the API client
type ClientConfig struct {
	Timeout         time.Duration
	Retries         int
	RetryDelay      time.Duration
	MaxConnsPerHost int
	UserAgent       string
}

// DefaultClientConfig returns the defaults used for outbound calls
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:         10 * time.Second,
		Retries:         2,
		RetryDelay:      250 * time.Millisecond,
		MaxConnsPerHost: 64,
		UserAgent:       "cover-letter-ai/1.0",
	}
}

var (
	// ErrEncodeRequest wraps a request body that could not be marshaled.
	ErrEncodeRequest = errors.New("error marshaling request body")
	// ErrDecodeResponse wraps a 2xx response whose body does not fit the result.
	ErrDecodeResponse = errors.New("error decoding response")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a client rooted at baseURL.
func NewClient(baseURL string, config ClientConfig) *Client {
	return &Client{
		BaseURL: baseURL,
		Headers: map[string]string{},
		config:  config,
		http: &fasthttp.Client{
			Name:                config.UserAgent,
			MaxConnsPerHost:     config.MaxConnsPerHost,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         config.Timeout,
			WriteTimeout:        config.Timeout,
		},
	}
}

// PostJSON sends body as JSON to path and decodes the JSON response into result.
// Network errors and 5xx responses are retried with linear backoff; bodies that
// fail to encode or decode are not.
func (c *Client) PostJSON(ctx context.Context, path string, body, result any) error {
	var lastErr error
	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * c.config.RetryDelay):
			}
		}

		err := c.do(ctx, fasthttp.MethodPost, c.BaseURL+path, body, result)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			break
		}
		fiberlog.Debugf("API client: retrying %s after error: %v", path, err)
	}
	return fmt.Errorf("request failed: %w", lastErr)
}

func (c *Client) do(ctx context.Context, method, url string, body, result any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	if body != nil {
		buf := utils.GetBuffer()
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			utils.PutBuffer(buf)
			return fmt.Errorf("%w: %w", ErrEncodeRequest, err)
		}
		req.SetBody(buf.B)
		utils.PutBuffer(buf)
	}

	deadline := time.Now().Add(c.config.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return &StatusError{StatusCode: status, Body: string(resp.Body())}
	}

	if result != nil {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
		}
	}
	return nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return !errors.Is(err, ErrDecodeResponse) && !errors.Is(err, ErrEncodeRequest)
}
