package naukri

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/Barkat444/HireMeMaybe/internal/config"
	"github.com/Barkat444/HireMeMaybe/utils"
)

// ErrAuthExhausted means every login flow failed. It is the only fatal
// error in a run iteration; nothing downstream can proceed without a session.
var ErrAuthExhausted = errors.New("all login flows failed")

const loginFlowTimeout = 60 * time.Second

type loginFlow struct {
	name string
	run  func(ctx context.Context, creds config.Credentials) error
}

// Authenticate logs the page's session in, trying a direct form submission
// first and falling through alternate flows on structural failure. A flow
// exceeding its timeout counts as failed for that flow only.
func (c *Client) Authenticate(ctx context.Context, creds config.Credentials) error {
	flows := []loginFlow{
		{name: "login form", run: c.loginViaForm},
		{name: "homepage modal", run: c.loginViaModal},
		{name: "login form retry", run: c.loginViaForm},
	}
	return c.authenticate(ctx, creds, flows)
}

func (c *Client) authenticate(ctx context.Context, creds config.Credentials, flows []loginFlow) error {
	for _, flow := range flows {
		flowCtx, cancel := context.WithTimeout(ctx, loginFlowTimeout)
		err := flow.run(flowCtx, creds)
		cancel()

		if err == nil {
			c.log.Infof("🔓 Logged in via %s", flow.name)
			return nil
		}

		c.log.Warnf("Login flow %q failed: %v", flow.name, err)
		c.shots.Capture(c.page, "login_"+slug(flow.name), "failure")

		if ctx.Err() != nil {
			break
		}
	}

	c.shots.Capture(c.page, "login_failed_final", "failure")
	return ErrAuthExhausted
}

func (c *Client) loginViaForm(ctx context.Context, creds config.Credentials) error {
	if _, err := c.page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	// an authenticated session gets redirected off the login page
	if !strings.Contains(strings.ToLower(c.page.URL()), "login") {
		return c.verifySession()
	}

	if err := c.page.Locator("#usernameField").Fill(creds.Email); err != nil {
		return fmt.Errorf("fill email: %w", err)
	}
	if err := c.page.Locator("#passwordField").Fill(creds.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := c.page.Locator("button[type='submit']").First().Click(); err != nil {
		return fmt.Errorf("click login button: %w", err)
	}

	utils.RandomDelay(4000, 6000)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if strings.Contains(strings.ToLower(c.page.URL()), "login") {
		if msg, err := c.page.Locator(".erLbl").First().TextContent(playwright.LocatorTextContentOptions{
			Timeout: playwright.Float(2000),
		}); err == nil && strings.TrimSpace(msg) != "" {
			return fmt.Errorf("login rejected: %s", strings.TrimSpace(msg))
		}
		return fmt.Errorf("still on login page after submit")
	}

	return c.verifySession()
}

// loginViaModal goes through the homepage login drawer, the alternate entry
// point when the dedicated login page is broken or renamed.
func (c *Client) loginViaModal(ctx context.Context, creds config.Credentials) error {
	if _, err := c.page.Goto(baseURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("open homepage: %w", err)
	}

	if err := c.page.Locator("#login_Layer, a[title='Jobseeker Login']").First().Click(); err != nil {
		return fmt.Errorf("open login drawer: %w", err)
	}
	utils.RandomDelay(1000, 2000)

	form := c.page.Locator(".login-layer, form[name='login-form'], .drawer")
	if err := form.Locator("input[placeholder*='Email']").First().Fill(creds.Email); err != nil {
		return fmt.Errorf("fill email: %w", err)
	}
	if err := form.Locator("input[placeholder*='Password'], input[type='password']").First().Fill(creds.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := form.Locator("button[type='submit']").First().Click(); err != nil {
		return fmt.Errorf("submit login drawer: %w", err)
	}

	utils.RandomDelay(4000, 6000)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return c.verifySession()
}

// verifySession opens the profile page; an unauthenticated session bounces
// back to the login page.
func (c *Client) verifySession() error {
	if _, err := c.page.Goto(profileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("open profile page: %w", err)
	}
	if !strings.Contains(strings.ToLower(c.page.URL()), "mnjuser") {
		return fmt.Errorf("session not established, redirected to %s", c.page.URL())
	}
	return nil
}
