package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"ipo-subscription-scraper/config"
	"ipo-subscription-scraper/models"
	"ipo-subscription-scraper/utils"
)

// Session owns the one shared headless-browser tab used for the whole batch.
// It is the only component that mutates browser state; callers must use it
// from a single goroutine.
type Session struct {
	cfg    *config.Config
	logger *utils.Logger
	marker string

	tabCtx      context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewSession launches the browser and returns a ready Session. The marker is
// the caption phrase Acquire waits for before snapshotting a page. A launch
// failure here is fatal to the run — nothing downstream can proceed without
// the automation surface.
func NewSession(cfg *config.Config, logger *utils.Logger, marker string) (*Session, error) {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	logger.Info("[browser] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("incognito", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	// Running an empty task list forces the browser process to start, so a
	// broken Chrome install surfaces here instead of on the first address.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("browser: start: %w", err)
	}

	return &Session{
		cfg:         cfg,
		logger:      logger,
		marker:      marker,
		tabCtx:      tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Acquire navigates the shared tab to the address, scrolls to the bottom to
// force lazy content to render, waits for the marker caption to appear, and
// returns the rendered markup plus the page title. Failures wrap
// ErrLoadTimeout, ErrLoadFailed or ErrElementMissing.
func (s *Session) Acquire(address string) (*models.PageSnapshot, error) {
	navCtx, cancelNav := context.WithTimeout(s.tabCtx, time.Duration(s.cfg.PageTimeoutSec)*time.Second)
	defer cancelNav()

	err := chromedp.Run(navCtx,
		chromedp.Navigate(address),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil),
		chromedp.Sleep(time.Duration(s.cfg.ScrollSettleMs)*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", classify(err, ErrLoadFailed), err)
	}

	markerXPath := fmt.Sprintf(`//caption[contains(text(), %q)]`, s.marker)
	waitCtx, cancelWait := context.WithTimeout(s.tabCtx, time.Duration(s.cfg.MarkerTimeoutSec)*time.Second)
	defer cancelWait()

	if err := chromedp.Run(waitCtx, chromedp.WaitReady(markerXPath, chromedp.BySearch)); err != nil {
		return nil, fmt.Errorf("%w: %v", classify(err, ErrLoadTimeout), err)
	}

	var title, html string
	readCtx, cancelRead := context.WithTimeout(s.tabCtx, 15*time.Second)
	defer cancelRead()

	err = chromedp.Run(readCtx,
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", classify(err, ErrElementMissing), err)
	}

	return &models.PageSnapshot{
		URL:       address,
		Title:     title,
		HTML:      html,
		FetchedAt: time.Now(),
	}, nil
}

// Close shuts the browser down. Safe to call exactly once.
func (s *Session) Close() {
	s.cancelTab()
	s.cancelAlloc()
}

// findChromeBinary locates the Chrome/Chromium binary, preferring the
// configured override.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
