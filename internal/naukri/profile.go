package naukri

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/Barkat444/HireMeMaybe/utils"
)

const currentHeadlineJS = `() => {
	var els = document.querySelectorAll('.resumeHeadline span, .resumeHeadline p, .resumeHeadline div, .resumeHeadline, .headline');
	for (var i = 0; i < els.length; i++) {
		var text = els[i].textContent.trim();
		if (text && text.length > 5) {
			return text;
		}
	}
	return '';
}`

// NextHeadline picks the rotation candidate that follows the currently
// displayed headline, wrapping around. An unrecognized current value maps
// to the first entry. Returns false when no change is possible (the list
// only holds the headline already on display).
func NextHeadline(current string, headlines []string) (string, bool) {
	if len(headlines) == 0 {
		return "", false
	}

	idx := -1
	for i, h := range headlines {
		if strings.Contains(current, h) || strings.EqualFold(strings.TrimSpace(current), h) {
			idx = i
			break
		}
	}

	if idx == -1 {
		return headlines[0], true
	}
	next := headlines[(idx+1)%len(headlines)]
	if next == headlines[idx] {
		return "", false
	}
	return next, true
}

// RotateHeadline reads the displayed headline off the live profile page,
// picks the next candidate and submits it. Returns whether the displayed
// value changed. The last-used state lives on the page itself, so no
// rotation cursor survives between runs.
func (c *Client) RotateHeadline(ctx context.Context, headlines []string) bool {
	c.log.Info("Starting headline rotation...")

	if _, err := c.page.Goto(profileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		c.log.Errorf("Failed to open profile page: %v", err)
		return false
	}
	utils.RandomDelay(3000, 5000)

	current := c.currentHeadline()
	if current != "" {
		c.log.Infof("Current headline: %q", current)
	}

	next, ok := NextHeadline(current, headlines)
	if !ok {
		c.log.Info("No different headline available, skipping update")
		return false
	}
	c.log.Infof("Selected new headline: %q", next)

	if ctx.Err() != nil {
		return false
	}

	if !c.openHeadlineEditor() {
		c.shots.Capture(c.page, "headline_edit_button_not_found", "failure")
		return false
	}

	field := c.page.Locator("#resumeHeadlineTxt")
	if err := field.Fill(next); err != nil {
		c.log.Errorf("Failed to fill headline field: %v", err)
		c.shots.Capture(c.page, "headline_field_error", "failure")
		return false
	}

	save := c.page.Locator("button.btn-dark-ot[type='submit'], .btn-dark-ot, button:has-text('Save')").First()
	if err := save.Click(); err != nil {
		c.log.Errorf("Failed to click headline save button: %v", err)
		c.shots.Capture(c.page, "headline_save_button_error", "failure")
		return false
	}
	utils.RandomDelay(4000, 6000)

	// verify against the live page rather than trusting the form submit
	if _, err := c.page.Goto(profileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		c.log.Warnf("Failed to reload profile for verification: %v", err)
		return false
	}
	utils.RandomDelay(3000, 5000)

	updated := c.currentHeadline()
	if strings.Contains(updated, next) {
		c.log.Infof("✓ Headline updated to %q", next)
		return true
	}
	if content, err := c.page.Content(); err == nil && strings.Contains(content, next) {
		c.log.Infof("✓ Headline updated to %q", next)
		return true
	}

	c.log.Warn("Headline update could not be verified")
	c.shots.Capture(c.page, "headline_verification_failed", "failure")
	return false
}

func (c *Client) currentHeadline() string {
	value, err := c.page.Evaluate(currentHeadlineJS)
	if err != nil {
		c.log.Warnf("Failed to read current headline: %v", err)
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func (c *Client) openHeadlineEditor() bool {
	for _, selector := range []string{".widgetHead .edit.icon", "span.edit.icon", ".edit"} {
		edit := c.page.Locator(selector).First()
		if n, err := edit.Count(); err != nil || n == 0 {
			continue
		}
		if err := edit.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)}); err != nil {
			continue
		}
		utils.RandomDelay(2000, 3000)
		return true
	}
	c.log.Error("Could not find headline edit control")
	return false
}

// resume file name hints, checked in order
var resumeKeywords = []string{"resume", "cv", "curriculum", "vitae"}

// FindResumeFile locates a PDF in dir, preferring names that look like a
// resume. Returns "" when the directory holds no PDF.
func FindResumeFile(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var pdfs []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	if len(pdfs) == 0 {
		return ""
	}

	for _, keyword := range resumeKeywords {
		for _, pdf := range pdfs {
			if strings.Contains(strings.ToLower(pdf), keyword) {
				return filepath.Join(dir, pdf)
			}
		}
	}
	return filepath.Join(dir, pdfs[0])
}

// UpdateResume uploads the resume file through the profile page's file
// input. An empty path triggers discovery in the working directory. Any
// failure is logged and returns false; the rest of the run continues.
func (c *Client) UpdateResume(ctx context.Context, path string) bool {
	c.log.Info("Starting resume upload...")

	if path == "" {
		path = FindResumeFile(".")
	}
	if path == "" {
		c.log.Error("No resume file found")
		return false
	}
	if _, err := os.Stat(path); err != nil {
		c.log.Errorf("Resume file %s not readable: %v", path, err)
		return false
	}

	if !strings.Contains(c.page.URL(), "/mnjuser/profile") {
		if _, err := c.page.Goto(profileURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			c.log.Errorf("Failed to open profile page: %v", err)
			return false
		}
		utils.RandomDelay(3000, 5000)
	}

	input, ok := c.findResumeInput()
	if !ok {
		c.shots.Capture(c.page, "resume_upload_section_not_found", "failure")
		return false
	}

	c.log.Infof("Uploading resume file: %s", filepath.Base(path))
	if err := input.SetInputFiles(path); err != nil {
		c.log.Errorf("Failed to upload resume: %v", err)
		c.shots.Capture(c.page, "resume_upload_failed", "failure")
		return false
	}

	if ctx.Err() != nil {
		return false
	}
	utils.RandomDelay(8000, 12000)

	if content, err := c.page.Content(); err == nil {
		lower := strings.ToLower(content)
		if strings.Contains(lower, "uploaded successfully") || strings.Contains(lower, "resume updated") {
			c.log.Infof("✓ Resume %s uploaded successfully", filepath.Base(path))
			return true
		}
	}

	// no explicit indicator; the upload already completed without error
	c.log.Infof("✓ Resume %s upload completed", filepath.Base(path))
	return true
}

func (c *Client) findResumeInput() (playwright.Locator, bool) {
	for _, selector := range []string{"#attachCV", "input[type='file'].fileUpload", "input[type='file']"} {
		input := c.page.Locator(selector).First()
		if n, err := input.Count(); err == nil && n > 0 {
			return input, true
		}
	}
	c.log.Error("Could not find resume upload input")
	return nil, false
}
