package naukri

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/Barkat444/HireMeMaybe/internal/filter"
	"github.com/Barkat444/HireMeMaybe/internal/jobs"
	"github.com/Barkat444/HireMeMaybe/utils"
)

const (
	listingCardSelector = ".jobTuple, .cust-job-tuple, div[type='tuple'], article.jobTuple"
	nextPageSelector    = "a.fright.fs14.btn-secondary.br2, a[title='Next'], .nextPage"

	// one scan walks at most this many result pages; fallback passes get a
	// fresh scan anyway
	maxResultPages = 5
)

// Scan performs a live search and yields eligible listings lazily, in the
// portal's own ordering, advancing through result pages as the consumer
// keeps pulling. The sequence is finite and reflects site state at scan
// time. The first scan for a criteria sorts by relevance; repeated scans
// (fallback passes) sort by date so newer postings surface first.
func (c *Client) Scan(ctx context.Context, criteria jobs.Criteria) iter.Seq[jobs.Listing] {
	fallback := c.scanCounts[criteria] > 0
	c.scanCounts[criteria]++

	return func(yield func(jobs.Listing) bool) {
		if err := c.search(ctx, criteria, fallback); err != nil {
			c.log.Errorf("Search for %q in %q failed: %v", criteria.Title, criteria.Location, err)
			c.shots.Capture(c.page, "search_failed", "failure")
			return
		}
		c.shots.Capture(c.page, "search_results", "success")

		for pageNum := 1; ; pageNum++ {
			if ctx.Err() != nil {
				return
			}

			cards, err := c.page.Locator(listingCardSelector).All()
			if err != nil {
				c.log.Warnf("Failed to read job cards on page %d: %v", pageNum, err)
				return
			}
			if len(cards) == 0 {
				c.log.Warnf("No job listings found for %q in %q", criteria.Title, criteria.Location)
				c.shots.Capture(c.page, "no_job_listings", "warning")
				return
			}
			c.log.Infof("📦 Results page %d: %d job cards", pageNum, len(cards))

			for _, card := range cards {
				listing, ok := c.parseCard(card)
				if !ok {
					continue
				}
				if reason := filter.Exclude(listing); reason != "" {
					c.log.Debugf("Filtered %s at %s: %s", listing.Title, listing.Company, reason)
					continue
				}
				if !yield(listing) {
					return
				}
			}

			if pageNum >= maxResultPages || !c.nextPage() {
				return
			}
		}
	}
}

// search drives the portal's search UI: keyword, experience facet,
// location, then the one-day freshness filter and the sort order.
func (c *Client) search(ctx context.Context, criteria jobs.Criteria, fallback bool) error {
	// the global search bar renders on every logged-in page
	if _, err := c.page.Goto(profileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("open profile page: %w", err)
	}
	utils.RandomDelay(2000, 3000)

	if err := c.openSearchBar(); err != nil {
		c.log.Warnf("Search bar not found (%v), opening search page directly", err)
		if _, err := c.page.Goto(searchPageURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			return fmt.Errorf("open search page: %w", err)
		}
		if err := c.openSearchBar(); err != nil {
			return fmt.Errorf("open search bar: %w", err)
		}
	}

	if err := c.fillSearchField("input[placeholder='Enter keyword / designation / companies'], .keywordSugg input", criteria.Title); err != nil {
		return fmt.Errorf("enter job title: %w", err)
	}
	c.log.Infof("🔍 Searching %q in %q (%d years exp)", criteria.Title, criteria.Location, criteria.Experience)

	if err := c.selectExperience(criteria.Experience); err != nil {
		// the search still runs without the experience facet
		c.log.Warnf("Failed to select experience: %v", err)
		c.shots.Capture(c.page, "experience_selection", "warning")
	}

	if err := c.fillSearchField("input[placeholder='Enter location'], .locationSugg input", criteria.Location); err != nil {
		c.log.Warnf("Failed to enter location: %v", err)
	}

	if err := c.page.Locator(".nI-gNb-sb__icon-wrapper, button.search, button[type='submit']").First().Click(); err != nil {
		return fmt.Errorf("click search: %w", err)
	}

	if err := c.page.Locator(listingCardSelector).First().WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(20000),
	}); err != nil {
		c.log.Warn("Timed out waiting for search results, proceeding anyway")
	}

	c.applyFilter("filter-freshness", "freshness", "Last 1 day")
	sortOrder := "Relevance"
	if fallback {
		sortOrder = "Date"
	}
	c.applyFilter("filter-sort", "sort", sortOrder)

	return ctx.Err()
}

func (c *Client) openSearchBar() error {
	bar := c.page.Locator("span.nI-gNb-sb__placeholder, .nI-gNb-sb__icon-wrapper").First()
	if err := bar.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)}); err != nil {
		return err
	}
	utils.RandomDelay(1000, 2000)
	return nil
}

func (c *Client) fillSearchField(selector, value string) error {
	field := c.page.Locator(selector).First()
	if err := field.Fill(value); err != nil {
		return err
	}
	if err := field.Press("Tab"); err != nil {
		return err
	}
	utils.RandomDelay(500, 1000)
	return nil
}

func (c *Client) selectExperience(years int) error {
	if err := c.page.Locator("input[placeholder='Select experience']").Click(); err != nil {
		return err
	}
	utils.RandomDelay(1000, 2000)

	options, err := c.page.Locator(".dropdownPrimary ul li").All()
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("no experience options in dropdown")
	}

	target := experienceLabel(years)
	for _, option := range options {
		text, _ := option.TextContent()
		if strings.EqualFold(strings.TrimSpace(text), target) {
			return option.Click()
		}
	}

	c.log.Warnf("Experience %q not in dropdown, selecting first option", target)
	return options[0].Click()
}

// experienceLabel maps years to the portal's dropdown wording.
func experienceLabel(years int) string {
	switch {
	case years <= 0:
		return "Fresher"
	case years == 1:
		return "1 year"
	default:
		return fmt.Sprintf("%d years", years)
	}
}

// applyFilter opens the results-page filter dropdown with the given button
// id and selects the option whose title or text matches value.
func (c *Client) applyFilter(buttonID, filterID, value string) {
	if err := c.page.Locator("#" + buttonID).Click(); err != nil {
		c.log.Warnf("Filter %s not available: %v", filterID, err)
		return
	}
	utils.RandomDelay(500, 1000)

	options, err := c.page.Locator(fmt.Sprintf("ul[data-filter-id='%s'] li", filterID)).All()
	if err != nil || len(options) == 0 {
		c.log.Warnf("No %s filter options found", filterID)
		return
	}

	for _, option := range options {
		title, _ := option.GetAttribute("title")
		text, _ := option.TextContent()
		if title == value || strings.Contains(text, value) {
			if err := option.Click(); err != nil {
				c.log.Warnf("Failed to select %s %q: %v", filterID, value, err)
				return
			}
			c.log.Infof("Selected %s: %s", filterID, value)
			utils.RandomDelay(3000, 5000)
			return
		}
	}
	c.log.Warnf("%s option %q not found", filterID, value)
}

func (c *Client) parseCard(card playwright.Locator) (jobs.Listing, bool) {
	short := playwright.LocatorTextContentOptions{Timeout: playwright.Float(2000)}

	titleEl := card.Locator("a.title, a[title]").First()
	title, err := titleEl.TextContent(short)
	if err != nil || strings.TrimSpace(title) == "" {
		return jobs.Listing{}, false
	}
	title = strings.TrimSpace(title)
	url, _ := titleEl.GetAttribute("href")

	company := c.cardText(card, ".comp-name, .company-name", short)
	location := c.cardText(card, ".locWdth, .location", short)
	postedAt := c.cardText(card, ".job-post-day, .postedDate", short)

	applied := false
	if n, err := card.Locator(".already-applied, .applied-label, span.applied").Count(); err == nil && n > 0 {
		applied = true
	}

	mode := jobs.ApplyDirect
	if n, err := card.Locator(".company-site-tag, .ext-apply").Count(); err == nil && n > 0 {
		mode = jobs.ApplyExternal
	}

	return jobs.Listing{
		ID:             jobs.DeriveID(title, company, location),
		Title:          title,
		Company:        company,
		Location:       location,
		URL:            url,
		PostedAt:       postedAt,
		ApplyMode:      mode,
		AlreadyApplied: applied,
	}, true
}

func (c *Client) cardText(card playwright.Locator, selector string, opts playwright.LocatorTextContentOptions) string {
	text, err := card.Locator(selector).First().TextContent(opts)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func (c *Client) nextPage() bool {
	next := c.page.Locator(nextPageSelector).First()
	if n, err := next.Count(); err != nil || n == 0 {
		return false
	}
	if err := next.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)}); err != nil {
		c.log.Warnf("Failed to open next results page: %v", err)
		return false
	}
	utils.RandomDelay(4000, 6000)
	return true
}
