package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ActionTimeoutMs bounds every element wait and click. Exceeding it surfaces
// as a local failure on that action, never a crash of the run.
const ActionTimeoutMs = 10000

const navigationTimeoutMs = 30000

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

type Options struct {
	Headless bool
}

// New starts the playwright driver and launches a Chromium instance tuned
// for unattended container runs.
func New(opts Options) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--window-size=1920,1080",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	return &Manager{pw: pw, browser: b}, nil
}

// NewPage opens a fresh browser context and page with bounded default
// timeouts. One page drives one whole run iteration.
func (m *Manager) NewPage() (playwright.Page, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport:  &playwright.Size{Width: 1920, Height: 1080},
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	page.SetDefaultTimeout(float64(ActionTimeoutMs))
	page.SetDefaultNavigationTimeout(float64(navigationTimeoutMs))
	return page, nil
}

func (m *Manager) Close() {
	if m.browser != nil {
		m.browser.Close()
	}
	if m.pw != nil {
		m.pw.Stop()
	}
}
