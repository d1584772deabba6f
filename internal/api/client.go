package api

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/driveaudit/driveaudit/internal/errors"
	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Drive and Sheets services with retry logic
type Client struct {
	drive      *drive.Service
	sheets     *sheets.Service
	maxRetries int
	retryDelay time.Duration
	logger     logging.Logger
}

// NewClient creates a new API client
func NewClient(driveService *drive.Service, sheetsService *sheets.Service, maxRetries int, retryDelayMs int, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Client{
		drive:      driveService,
		sheets:     sheetsService,
		maxRetries: maxRetries,
		retryDelay: time.Duration(retryDelayMs) * time.Millisecond,
		logger:     logger,
	}
}

// NewRequestContext creates a new request context with trace ID
func NewRequestContext(driveID string, requestType types.RequestType) *types.RequestContext {
	return &types.RequestContext{
		DriveID:     driveID,
		RequestType: requestType,
		TraceID:     uuid.New().String(),
	}
}

// ExecuteWithRetry executes an API call with retry logic. Failures are
// classified and returned; the caller aborts the run.
func ExecuteWithRetry[T any](ctx context.Context, client *Client, service string, reqCtx *types.RequestContext, fn func() (T, error)) (T, error) {
	var result T
	var lastErr error

	logger := client.logger.WithTraceID(reqCtx.TraceID)
	logger.Debug("API operation starting",
		logging.F("requestType", reqCtx.RequestType),
		logging.F("service", service),
		logging.F("driveId", reqCtx.DriveID),
	)

	start := time.Now()

	for attempt := 0; attempt <= client.maxRetries; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying API operation",
				logging.F("attempt", attempt),
				logging.F("maxRetries", client.maxRetries),
			)
		}

		result, lastErr = fn()
		if lastErr == nil {
			duration := time.Since(start)
			logger.Debug("API operation completed",
				logging.F("duration_ms", duration.Milliseconds()),
				logging.F("attempts", attempt+1),
			)
			return result, nil
		}

		if !isRetryable(lastErr) {
			duration := time.Since(start)
			logger.Error("API operation failed (non-retryable)",
				logging.F("duration_ms", duration.Milliseconds()),
				logging.F("error", lastErr.Error()),
				logging.F("attempts", attempt+1),
			)
			return result, errors.ClassifyGoogleAPIError(service, lastErr, reqCtx, client.logger)
		}

		if attempt < client.maxRetries {
			delay := calculateBackoff(client.retryDelay, attempt, lastErr)
			logger.Warn("API operation failed (retryable)",
				logging.F("attempt", attempt+1),
				logging.F("delay_ms", delay.Milliseconds()),
				logging.F("error", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	duration := time.Since(start)
	logger.Error("API operation failed after max retries",
		logging.F("duration_ms", duration.Milliseconds()),
		logging.F("attempts", client.maxRetries+1),
		logging.F("error", lastErr.Error()),
	)

	return result, errors.ClassifyGoogleAPIError(service, lastErr, reqCtx, client.logger)
}

// isRetryable checks if an error is retryable
func isRetryable(err error) bool {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}

// calculateBackoff calculates the retry delay with exponential backoff
func calculateBackoff(baseDelay time.Duration, attempt int, err error) time.Duration {
	// Honor Retry-After when the server sends one
	if apiErr, ok := err.(*googleapi.Error); ok {
		retryAfter := apiErr.Header.Get("Retry-After")
		if retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil {
				delay := time.Duration(seconds) * time.Second
				if delay > time.Duration(utils.MaxRetryDelayMs)*time.Millisecond {
					return time.Duration(utils.MaxRetryDelayMs) * time.Millisecond
				}
				return delay
			}
		}
	}

	// Exponential backoff: base * 2^attempt
	delay := baseDelay * time.Duration(math.Pow(2, float64(attempt)))

	if delay > time.Duration(utils.MaxRetryDelayMs)*time.Millisecond {
		delay = time.Duration(utils.MaxRetryDelayMs) * time.Millisecond
	}

	// Jitter of up to a quarter of the delay either way
	jitterRange := delay / 4
	if jitterRange > 0 {
		jitter := time.Duration(rand.Int63n(int64(jitterRange*2))) - jitterRange
		delay = delay + jitter
	}

	if delay < 0 {
		delay = baseDelay
	}

	return delay
}

// Drive returns the underlying Drive service
func (c *Client) Drive() *drive.Service {
	return c.drive
}

// Sheets returns the underlying Sheets service
func (c *Client) Sheets() *sheets.Service {
	return c.sheets
}

// Logger returns the client's logger
func (c *Client) Logger() logging.Logger {
	return c.logger
}
