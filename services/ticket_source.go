package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"ticket-board/models"
)

const (
	// Rate limit retry configuration; maxRetries counts the first attempt
	maxRetries              = 2
	defaultRetryWaitSeconds = 5
	maxRetryWaitSeconds     = 60 // Cap at 1 minute to prevent excessive waits

	// Response body truncation for logging and errors
	maxBodyLogLength   = 500 // Max chars to log in debug
	maxBodyErrorLength = 200 // Max chars to include in error messages
)

// TicketSource defines the interface for fetching the ticket snapshot
type TicketSource interface {
	// FetchSnapshot fetches all tickets and users, with ticket statuses normalized
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)
}

// NewTicketSource picks a file source when a snapshot path is configured and the HTTP source otherwise
func NewTicketSource(config *models.Config, logger *zap.Logger) TicketSource {
	if config.Source.SnapshotPath != "" {
		return NewFileTicketSource(config.Source.SnapshotPath, logger)
	}
	return NewHTTPTicketSource(config, logger)
}

// HTTPTicketSource fetches the snapshot from the upstream HTTP endpoint
type HTTPTicketSource struct {
	config  *models.Config
	client  *http.Client
	logger  *zap.Logger
	sleepFn func(time.Duration) <-chan time.Time // Returns a channel for select-based waiting
}

// NewHTTPTicketSource creates a new HTTPTicketSource with production defaults
func NewHTTPTicketSource(config *models.Config, logger *zap.Logger) TicketSource {
	return NewHTTPTicketSourceForTest(config, logger, time.After)
}

// NewHTTPTicketSourceForTest creates a new HTTPTicketSource with a custom sleep function for testing
func NewHTTPTicketSourceForTest(config *models.Config, logger *zap.Logger, sleepFn func(time.Duration) <-chan time.Time) *HTTPTicketSource {
	return &HTTPTicketSource{
		config: config,
		client: &http.Client{
			Timeout: time.Duration(config.Source.TimeoutSeconds) * time.Second,
		},
		logger:  logger,
		sleepFn: sleepFn,
	}
}

// truncateForLogging truncates response body for debug logging
func truncateForLogging(body []byte, maxLen int) string {
	bodyStr := string(body)
	if len(bodyStr) > maxLen {
		return bodyStr[:maxLen] + fmt.Sprintf("... (truncated, total: %d chars)", len(bodyStr))
	}
	return bodyStr
}

// truncateForError truncates response body for error messages
func truncateForError(body []byte) string {
	bodyStr := string(body)
	if len(bodyStr) > maxBodyErrorLength {
		return bodyStr[:maxBodyErrorLength] + fmt.Sprintf("... (truncated, total: %d chars)", len(bodyStr))
	}
	return bodyStr
}

// retryWait works out how long to back off after a 429 response
func (s *HTTPTicketSource) retryWait(resp *http.Response) time.Duration {
	// Default wait time if no header or unparseable
	retrySeconds := defaultRetryWaitSeconds

	if retryAfterHeader := resp.Header.Get("Retry-After"); retryAfterHeader != "" {
		if parsed, err := strconv.Atoi(retryAfterHeader); err == nil {
			// Cap the retry wait time to prevent excessive delays
			if parsed > maxRetryWaitSeconds {
				s.logger.Warn("Retry-After exceeds maximum, capping to max",
					zap.Int("requested_seconds", parsed),
					zap.Int("capped_to_seconds", maxRetryWaitSeconds))
				retrySeconds = maxRetryWaitSeconds
			} else {
				retrySeconds = parsed
			}
		} else {
			s.logger.Warn("Failed to parse Retry-After header, using default wait time",
				zap.String("retry_after", retryAfterHeader),
				zap.Error(err),
				zap.Int("default_seconds", defaultRetryWaitSeconds))
		}
	} else {
		s.logger.Warn("Rate limited without Retry-After header, using default wait time",
			zap.Int("default_seconds", defaultRetryWaitSeconds))
	}

	return time.Duration(retrySeconds) * time.Second
}

// getOnce performs a single GET and returns the response with its body fully read
func (s *HTTPTicketSource) getOnce(ctx context.Context, url string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := s.config.Source.APIToken; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Error("Failed to close response body", zap.Error(closeErr), zap.String("url", url))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, body, nil
}

// getWithRetry fetches url, backing off and retrying once when rate limited
func (s *HTTPTicketSource) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		resp, body, err := s.getOnce(ctx, url)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			s.logger.Debug("Fetched snapshot payload", zap.String("url", url),
				zap.String("body", truncateForLogging(body, maxBodyLogLength)))
			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries:
			wait := s.retryWait(resp)
			s.logger.Info("Rate limited by ticket source, retrying after delay",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("wait_duration", wait))

			select {
			case <-s.sleepFn(wait):
			case <-ctx.Done():
				return nil, fmt.Errorf("gave up waiting to retry %s: %w", url, ctx.Err())
			}

		default:
			return nil, fmt.Errorf("unexpected response from %s: status_code=%d, body=%s",
				url, resp.StatusCode, truncateForError(body))
		}
	}
}

// FetchSnapshot fetches the tickets and users from the upstream endpoint
func (s *HTTPTicketSource) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	body, err := s.getWithRetry(ctx, s.config.Source.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	snapshot, err := DecodeSnapshot(body, SnapshotFormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	s.logger.Info("Fetched ticket snapshot",
		zap.String("url", s.config.Source.BaseURL),
		zap.Int("tickets", len(snapshot.Tickets)),
		zap.Int("users", len(snapshot.Users)))

	return snapshot, nil
}

// FileTicketSource reads the snapshot from a local JSON or YAML file
type FileTicketSource struct {
	path   string
	logger *zap.Logger
}

// NewFileTicketSource creates a new FileTicketSource
func NewFileTicketSource(path string, logger *zap.Logger) *FileTicketSource {
	return &FileTicketSource{
		path:   path,
		logger: logger,
	}
}

// FetchSnapshot reads and decodes the snapshot file
func (s *FileTicketSource) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	snapshot, err := DecodeSnapshot(data, SnapshotFormatForPath(s.path))
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot file %s: %w", s.path, err)
	}

	s.logger.Info("Loaded ticket snapshot",
		zap.String("path", s.path),
		zap.Int("tickets", len(snapshot.Tickets)),
		zap.Int("users", len(snapshot.Users)))

	return snapshot, nil
}
