package naukri

import (
	"context"

	"github.com/playwright-community/playwright-go"

	"github.com/Barkat444/HireMeMaybe/utils"
)

const unsharedButtonSelector = "div.tlc__tuple button.unshared"

// ExpressInterest visits the early-access recommendations and shares
// interest in up to limit roles, reloading the page between clicks so the
// widget re-renders with the just-shared role removed. Returns how many
// were shared; running out of unshared roles before the limit is normal.
func (c *Client) ExpressInterest(ctx context.Context, limit int) int {
	if limit <= 0 {
		return 0
	}
	c.log.Infof("Sharing interest in up to %d early access roles...", limit)

	shared := 0
	for shared < limit {
		if ctx.Err() != nil {
			break
		}

		if _, err := c.page.Goto(earlyAccessURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			c.log.Errorf("Failed to open early access page: %v", err)
			c.shots.Capture(c.page, "early_access_page", "failure")
			break
		}
		utils.RandomDelay(3000, 5000)

		button := c.page.Locator(unsharedButtonSelector).First()
		if n, err := button.Count(); err != nil || n == 0 {
			c.log.Info("No more unshared early access roles")
			break
		}

		button.ScrollIntoViewIfNeeded()
		if err := button.Click(); err != nil {
			c.log.Errorf("Failed to share interest: %v", err)
			c.shots.Capture(c.page, "early_access_share", "failure")
			break
		}
		shared++
		c.log.Infof("🤝 Shared interest in early access role %d/%d", shared, limit)

		confirmation := c.page.Locator("text=Interest shared successfully!")
		if err := confirmation.WaitFor(playwright.LocatorWaitForOptions{
			Timeout: playwright.Float(5000),
		}); err != nil {
			c.log.Warn("Interest share confirmation did not appear")
		}
		utils.RandomDelay(2000, 4000)
	}

	c.log.Infof("Shared interest in %d early access role(s)", shared)
	return shared
}
