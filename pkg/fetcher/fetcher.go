// pkg/fetcher/fetcher.go
package fetcher

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config controls the HTTP client behavior of a Fetcher.
type Config struct {
	RequestsPerSecond int
	Burst             int
	Timeout           time.Duration
	UserAgent         string
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	// APIKey, when set, is sent as a Bearer token on every request.
	APIKey string
}

// Fetcher performs rate-limited HTTP GETs with bounded retries.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	config  Config
}

func New(config Config) *Fetcher {
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = 5
	}
	if config.Burst <= 0 {
		config.Burst = config.RequestsPerSecond
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = 1 * time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		config:  config,
	}
}

// Fetch performs a GET against urlStr and returns the response body.
// Responses with status 429 or 5xx are retried with exponential backoff;
// any other non-200 status fails immediately.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := f.calculateBackoff(attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, retryable, err := f.doRequest(ctx, urlStr)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", f.config.MaxRetries+1, lastErr)
}

func (f *Fetcher) doRequest(ctx context.Context, urlStr string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, false, fmt.Errorf("error creating request: %w", err)
	}

	if f.config.UserAgent != "" {
		req.Header.Set("User-Agent", f.config.UserAgent)
	}
	if f.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.config.APIKey)
	}
	req.Header.Set("Accept", "application/json, text/plain, text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, fmt.Errorf("error reading response body: %w", err)
		}
		return b, false, nil

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("retryable status code %d from %s", resp.StatusCode, urlStr)

	default:
		return nil, false, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, urlStr)
	}
}

func (f *Fetcher) calculateBackoff(attempt int) time.Duration {
	backoff := float64(f.config.InitialBackoff)
	max := float64(f.config.MaxBackoff)
	calculated := math.Min(backoff*math.Pow(2, float64(attempt)), max)

	// Jitter of +-20% so retries from concurrent callers spread out.
	jitter := calculated * (0.8 + rand.Float64()*0.4)
	return time.Duration(jitter)
}
