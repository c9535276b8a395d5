package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyDeadline(t *testing.T) {
	err := fmt.Errorf("run: %w", context.DeadlineExceeded)
	got := classify(err, ErrLoadFailed)
	if !errors.Is(got, ErrLoadTimeout) {
		t.Errorf("deadline should classify as timeout, got %v", got)
	}
}

func TestClassifyMissingNode(t *testing.T) {
	err := errors.New(`could not find node "html"`)
	got := classify(err, ErrLoadFailed)
	if !errors.Is(got, ErrElementMissing) {
		t.Errorf("node lookup failure should classify as element missing, got %v", got)
	}
}

func TestClassifyFallback(t *testing.T) {
	err := errors.New("net::ERR_CONNECTION_REFUSED")
	got := classify(err, ErrLoadFailed)
	if !errors.Is(got, ErrLoadFailed) {
		t.Errorf("unrecognized error should use the fallback kind, got %v", got)
	}
}
