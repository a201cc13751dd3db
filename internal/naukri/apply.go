package naukri

import (
	"context"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/Barkat444/HireMeMaybe/internal/jobs"
	"github.com/Barkat444/HireMeMaybe/utils"
)

// Phrases the portal shows after a successful application. "already
// applied" counts too: the application is on file either way.
var successPatterns = []string{
	"you have successfully applied",
	"application successful",
	"applied successfully",
	"you have already applied",
	"application confirmed",
	"successfully applied",
}

const applyButtonSelector = "#apply-button, button.apply-button, button:has-text('Apply'), a:has-text('Apply')"

const companySiteSelector = "text=/Apply on [Cc]ompany [Ss]ite/"

// Apply opens the listing in its own tab, verifies it is direct-apply and
// clicks through the application. The main results page is left untouched
// so the scan can continue. Never retries; the engine records the outcome
// exactly once.
func (c *Client) Apply(ctx context.Context, listing jobs.Listing) jobs.Result {
	if listing.URL == "" {
		return jobs.Result{Listing: listing, Outcome: jobs.Skipped, Reason: "listing has no link"}
	}

	tab, err := c.page.Context().NewPage()
	if err != nil {
		return jobs.Result{Listing: listing, Outcome: jobs.Failed, Reason: "open tab: " + err.Error()}
	}
	defer tab.Close()

	if _, err := tab.Goto(listing.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return jobs.Result{Listing: listing, Outcome: jobs.Failed, Reason: "open listing: " + err.Error()}
	}
	utils.RandomDelay(2000, 4000)
	c.shots.Capture(tab, "job_details_"+slug(listing.Title), "info")

	if ctx.Err() != nil {
		return jobs.Result{Listing: listing, Outcome: jobs.Failed, Reason: ctx.Err().Error()}
	}

	// external-redirect listings slip through card parsing sometimes; the
	// detail page is authoritative
	if n, err := tab.Locator(companySiteSelector).Count(); err == nil && n > 0 {
		c.shots.Capture(tab, "skipped_company_site_"+slug(listing.Company), "info")
		return jobs.Result{Listing: listing, Outcome: jobs.Skipped, Reason: "requires applying on company site"}
	}

	applyBtn := tab.Locator(applyButtonSelector).First()
	if n, err := applyBtn.Count(); err != nil || n == 0 {
		c.shots.Capture(tab, "no_apply_button_"+slug(listing.Company), "info")
		return jobs.Result{Listing: listing, Outcome: jobs.Skipped, Reason: "no direct apply control"}
	}

	applyBtn.ScrollIntoViewIfNeeded()
	c.shots.Capture(tab, "before_apply_"+slug(listing.Company), "info")

	if err := applyBtn.Click(); err != nil {
		c.shots.Capture(tab, "apply_click_failed_"+slug(listing.Company), "failure")
		return jobs.Result{Listing: listing, Outcome: jobs.Failed, Reason: "click apply: " + err.Error()}
	}
	utils.RandomDelay(4000, 6000)
	c.shots.Capture(tab, "after_apply_"+slug(listing.Company), "info")

	if c.confirmApplied(tab) {
		c.shots.Capture(tab, "application_success_"+slug(listing.Company), "success")
		return jobs.Result{Listing: listing, Outcome: jobs.Applied}
	}

	// a confirmation dialog may sit between the click and the success message
	if c.confirmDialog(tab) && c.confirmApplied(tab) {
		c.shots.Capture(tab, "application_success_"+slug(listing.Company), "success")
		return jobs.Result{Listing: listing, Outcome: jobs.Applied}
	}

	c.shots.Capture(tab, "application_unconfirmed_"+slug(listing.Company), "warning")
	return jobs.Result{Listing: listing, Outcome: jobs.Failed, Reason: "application not confirmed"}
}

// confirmApplied looks for any of the portal's success phrases in the page.
func (c *Client) confirmApplied(tab playwright.Page) bool {
	content, err := tab.Content()
	if err != nil {
		return false
	}
	return matchesSuccessPattern(content)
}

func matchesSuccessPattern(content string) bool {
	lower := strings.ToLower(content)
	for _, pattern := range successPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// confirmDialog submits an intermediate modal if one appeared after the
// apply click. Returns whether a confirmation was clicked.
func (c *Client) confirmDialog(tab playwright.Page) bool {
	dialog := tab.Locator(".modal, .popup, .dialog, [role='dialog']").First()
	if n, err := dialog.Count(); err != nil || n == 0 {
		return false
	}
	c.shots.Capture(tab, "application_dialog", "info")

	confirm := dialog.Locator("button:has-text('Submit'), button:has-text('Confirm'), button:has-text('Apply'), button:has-text('OK')").First()
	if n, err := confirm.Count(); err != nil || n == 0 {
		return false
	}
	if err := confirm.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)}); err != nil {
		c.log.Warnf("Failed to click dialog confirmation: %v", err)
		return false
	}
	utils.RandomDelay(4000, 6000)
	return true
}
