// Package naukri drives the job portal through a live playwright page:
// login flows, search scanning, application attempts, profile updates and
// early-access interest sharing. The page handle is owned by the run
// orchestrator and passed in once; the client never shares it.
package naukri

import (
	"strings"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/Barkat444/HireMeMaybe/internal/jobs"
	"github.com/Barkat444/HireMeMaybe/utils"
)

const (
	baseURL        = "https://www.naukri.com"
	loginURL       = baseURL + "/nlogin/login"
	searchPageURL  = baseURL + "/jobs-in-india"
	profileURL     = baseURL + "/mnjuser/profile"
	earlyAccessURL = baseURL + "/mnjuser/recommended-earjobs"
)

type Client struct {
	page  playwright.Page
	log   *zap.SugaredLogger
	shots *utils.ScreenshotDebugger

	// scan counts per criteria: the first scan sorts by relevance, repeated
	// scans for the same criteria sort by date to surface new postings.
	scanCounts map[jobs.Criteria]int
}

func NewClient(page playwright.Page, log *zap.SugaredLogger, shots *utils.ScreenshotDebugger) *Client {
	return &Client{
		page:       page,
		log:        log,
		shots:      shots,
		scanCounts: make(map[jobs.Criteria]int),
	}
}

// slug shortens free text into a safe screenshot name fragment.
func slug(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), "_")
	if len(s) > 20 {
		s = s[:20]
	}
	return s
}
