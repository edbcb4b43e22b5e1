package ai

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// The search error taxonomy. Every failure leaving this package wraps exactly
// one of these sentinels (or is a generic wrapped error when none applies), so
// callers classify with errors.Is instead of matching message text.
var (
	// ErrInvalidAPIKey — the upstream rejected our credentials (401/403).
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrQuotaExceeded — rate limit or quota exhausted (429), after the retry
	// budget ran out.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrNetwork — the endpoint could not be reached at all.
	ErrNetwork = errors.New("network failure")

	// ErrModelUnavailable — the upstream accepted the request but could not
	// serve it (5xx).
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrMalformedResponse — the completion text was not the expected JSON
	// shape.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrContentBlocked — the model refused the request via its content
	// filter. Not retryable: the same prompt will be blocked again.
	ErrContentBlocked = errors.New("content blocked by safety filter")
)

// taxonomy lists the sentinels classify passes through untouched.
var taxonomy = []error{
	ErrInvalidAPIKey,
	ErrQuotaExceeded,
	ErrNetwork,
	ErrModelUnavailable,
	ErrMalformedResponse,
	ErrContentBlocked,
}

// classify maps an arbitrary error from the completion pipeline onto the
// taxonomy above. Classification is typed first — the SDK's APIError carries
// the HTTP status — and falls back to message matching only for transport
// errors that never reached the HTTP layer.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range taxonomy {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "quota"), strings.Contains(msg, "resource exhausted"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"),
		strings.Contains(msg, "connection reset"), strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return fmt.Errorf("travel search failed: %w", err)
}

// isRateLimited reports whether err is a rate-limit response worth retrying.
func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted")
}

// retryInPattern extracts a server-suggested delay like "retry in 22.5s" or
// "retry after 7 seconds" from a rate-limit error message.
var retryInPattern = regexp.MustCompile(`(?i)retry(?:ing)?\s+(?:in|after)\s+([0-9]+(?:\.[0-9]+)?)\s*s`)

// suggestedDelay returns the delay hinted at in err's message, or 0 when the
// message carries no usable hint.
func suggestedDelay(err error) time.Duration {
	m := retryInPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	secs, perr := strconv.ParseFloat(m[1], 64)
	if perr != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
