// Package export sends a parsed document's result bundle to a configured
// collector endpoint, adapted from the teacher's GraphQL CMS uploader down
// to a plain JSON POST sink with bearer-token auth, optional HMAC request
// signing, and retry with exponential backoff.
package export

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"jatimex/internal/config"
	"jatimex/internal/logger"
	"jatimex/internal/tag"
	"jatimex/pkg/utils"
)

// Export errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrExhaustedRetries     = errors.New("export failed after all retry attempts")
)

// Bundle is the serialized unit sent to the collector: the original and
// normalized text plus the tags extracted from it.
type Bundle struct {
	ReferenceText string       `json:"reference_text"`
	ProcessedText string       `json:"processed_text"`
	Tags          []*tag.TIMEX `json:"tags"`
}

// Sink posts Bundles to a configured HTTP endpoint.
type Sink struct {
	httpClient  *http.Client
	endpoint    string
	bearerToken string
	hmacSecret  string
	retry       config.RetryPolicy
	logger      *logger.Logger
	headers     *utils.HTTPHelper
}

// New constructs a Sink from export configuration.
func New(cfg config.ExportConfig, log *logger.Logger) *Sink {
	return &Sink{
		httpClient:  &http.Client{Timeout: cfg.Retry.GetTimeout()},
		endpoint:    cfg.Endpoint,
		bearerToken: cfg.BearerToken,
		hmacSecret:  cfg.HMACSecret,
		retry:       cfg.Retry,
		logger:      log,
		headers:     utils.NewHTTPHelper(),
	}
}

// Send posts bundle to the sink's endpoint, retrying on transport errors
// and non-2xx responses with the configured exponential backoff.
func (s *Sink) Send(bundle Bundle) error {
	body, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}

	var lastErr error

	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		if delay := s.retry.GetRetryDelay(attempt); delay > 0 {
			time.Sleep(delay)
		}

		if err := s.post(body); err != nil {
			lastErr = err
			if s.logger != nil {
				s.logger.Warn(fmt.Sprintf("export attempt %d/%d failed: %v", attempt, s.retry.MaxAttempts, err))
			}

			continue
		}

		return nil
	}

	return fmt.Errorf("%w: %v", ErrExhaustedRetries, lastErr)
}

func (s *Sink) post(body []byte) error {
	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = s.headers.BuildHeaders(nil)

	if s.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.bearerToken)
	}

	if s.hmacSecret != "" {
		req.Header.Set("X-Signature", signHMAC(body, s.hmacSecret))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, resp.StatusCode, string(respBody))
	}

	return nil
}

func signHMAC(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}
