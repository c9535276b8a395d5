package browser

import (
	"context"
	"errors"
	"strings"
)

// Error kinds the orchestrator distinguishes when logging per-address
// failures. Everything Acquire returns wraps one of these.
var (
	// ErrLoadTimeout means the bidding table marker never appeared within the
	// configured bound.
	ErrLoadTimeout = errors.New("timed out waiting for bidding table")

	// ErrLoadFailed means navigation or the browser itself failed (crash,
	// disconnect, bad address).
	ErrLoadFailed = errors.New("page load failed")

	// ErrElementMissing means the page nominally loaded but an expected node
	// could not be read afterwards.
	ErrElementMissing = errors.New("expected element missing")
)

// classify maps a raw chromedp error onto one of the package error kinds.
// fallback is used when the error carries no recognizable signature.
func classify(err error, fallback error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrLoadTimeout
	case strings.Contains(err.Error(), "could not find node") ||
		strings.Contains(err.Error(), "no nodes found"):
		return ErrElementMissing
	default:
		return fallback
	}
}
