package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ScreenshotDebugger saves per-step debug screenshots
type ScreenshotDebugger struct {
	imagesDir string
	log       *zap.SugaredLogger
}

func NewScreenshotDebugger(debugDir string, log *zap.SugaredLogger) *ScreenshotDebugger {
	dir := filepath.Join(debugDir, "images")
	os.MkdirAll(dir, 0755)
	return &ScreenshotDebugger{
		imagesDir: dir,
		log:       log,
	}
}

// Clear removes screenshots left over from previous runs so the debug
// directory does not grow unbounded.
func (s *ScreenshotDebugger) Clear() {
	entries, err := os.ReadDir(s.imagesDir)
	if err != nil {
		s.log.Warnf("⚠️ Failed to read images directory: %v", err)
		return
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.imagesDir, e.Name())); err != nil {
			s.log.Warnf("⚠️ Failed to remove stale screenshot %s: %v", e.Name(), err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.log.Infof("🧹 Cleared %d stale screenshots", removed)
	}
}

// Capture takes a full-page screenshot named <status>_<name>_<timestamp>.png.
// Status is one of "success", "failure", "warning" or "info". Returns the
// saved path, or "" when the capture failed (never fatal).
func (s *ScreenshotDebugger) Capture(page playwright.Page, name, status string) string {
	if page == nil {
		return ""
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.png", status, name, timestamp)
	path := filepath.Join(s.imagesDir, filename)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.log.Warnf("⚠️ Failed to capture screenshot %s: %v", name, err)
		return ""
	}

	s.log.Infof("📸 Screenshot saved: %s", filename)
	return path
}
