package pricelist

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// FetchConfig controls retry behavior for remote price lists.
type FetchConfig struct {
	MaxRetries       int
	InitialBackoffMs int
	MaxBackoffMs     int
	Timeout          time.Duration
}

// DefaultFetchConfig returns the default fetch configuration.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		MaxRetries:       3,
		InitialBackoffMs: 100,
		MaxBackoffMs:     30000,
		Timeout:          30 * time.Second,
	}
}

// FetchError reports an exhausted fetch, keeping the last status seen so
// callers can distinguish a flaky host from a dead link.
type FetchError struct {
	URL        string
	Attempts   int
	LastStatus int
	LastErr    error
}

func (e *FetchError) Error() string {
	msg := "failed to fetch " + e.URL + " after " + strconv.Itoa(e.Attempts) + " attempts"
	if e.LastStatus != 0 {
		msg += " (HTTP " + strconv.Itoa(e.LastStatus) + ")"
	}
	if e.LastErr != nil {
		msg += ": " + e.LastErr.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.LastErr }

// isRetryableStatus reports whether an HTTP status is worth retrying.
// Retryable: 429, 500-599.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || (status >= 500 && status < 600)
}

// backoff calculates exponential backoff with jitter (0-25%) for an attempt.
func backoff(attempt int, cfg FetchConfig) time.Duration {
	exponential := float64(cfg.InitialBackoffMs) * math.Pow(2.0, float64(attempt))
	capped := math.Min(exponential, float64(cfg.MaxBackoffMs))
	jitter := rand.Float64() * 0.25 * capped
	return time.Duration(capped+jitter) * time.Millisecond
}

// rateLimitBackoff calculates backoff for HTTP 429 responses. Respects a
// numeric Retry-After header when the server sends one, and otherwise backs
// off harder than the standard schedule (3x multiplier instead of 2x).
func rateLimitBackoff(attempt int, cfg FetchConfig, retryAfter string) time.Duration {
	if retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
			return time.Duration(seconds)*time.Second + time.Duration(rand.Intn(1000))*time.Millisecond
		}
	}

	exponential := float64(cfg.InitialBackoffMs) * math.Pow(3.0, float64(attempt))
	capped := math.Min(exponential, float64(cfg.MaxBackoffMs))
	jitter := rand.Float64() * 0.25 * capped
	return time.Duration(capped+jitter) * time.Millisecond
}

// Fetch downloads a remote price list with retries.
func Fetch(url string, cfg FetchConfig) ([]byte, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	var lastStatus int
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", "FieldQuote-PricingService/1.0")
		req.Header.Set("Accept", "*/*")

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			if attempt < cfg.MaxRetries {
				time.Sleep(backoff(attempt, cfg))
				continue
			}
			break
		}

		lastStatus = resp.StatusCode

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			data, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("read response body: %w", err)
			}
			return data, nil
		}

		retryAfter := resp.Header.Get("Retry-After")
		resp.Body.Close()

		if !isRetryableStatus(resp.StatusCode) || attempt == cfg.MaxRetries {
			break
		}

		var delay time.Duration
		if resp.StatusCode == http.StatusTooManyRequests {
			delay = rateLimitBackoff(attempt, cfg, retryAfter)
		} else {
			delay = backoff(attempt, cfg)
		}
		log.Debug().
			Str("url", url).
			Int("status", resp.StatusCode).
			Int("attempt", attempt+1).
			Dur("backoff", delay).
			Msg("Retrying price list fetch")
		time.Sleep(delay)
	}

	return nil, &FetchError{
		URL:        url,
		Attempts:   cfg.MaxRetries + 1,
		LastStatus: lastStatus,
		LastErr:    lastErr,
	}
}
