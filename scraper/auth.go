package scraper

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// elementTimeout bounds the wait for a login form field to appear.
const elementTimeout = 10 * time.Second

const rootURL = "https://www.linkedin.com/"

// loginSucceeded classifies the post-submit URL for the credential flow:
// a successful login lands on the feed or network page.
func loginSucceeded(url string) bool {
	return strings.Contains(url, "feed") || strings.Contains(url, "mynetwork")
}

// isAuthenticatedURL is the broader allow-list the manual flow polls
// against. OAuth sign-ins can land on the bare root or straight on a
// profile page, not just the feed.
func isAuthenticatedURL(url string) bool {
	if url == rootURL {
		return true
	}
	for _, frag := range []string{"feed", "mynetwork", "/in/"} {
		if strings.Contains(url, frag) {
			return true
		}
	}
	return false
}

// Login runs whichever authentication flow the configuration selects and
// reports success. Failure is non-fatal by design: the caller keeps
// scraping with reduced access, matching the site's behavior for
// anonymous visitors. No error ever escapes this method.
func (s *Scraper) Login(ctx context.Context) bool {
	if s.authCfg.ManualLogin {
		return s.manualLogin(ctx)
	}

	if s.authCfg.Email == "" || s.authCfg.Password == "" {
		slog.Warn("no credentials provided; some content may not be accessible")
		return false
	}

	s.state = models.StateAuthenticating
	if s.credentialLogin(ctx) {
		s.state = models.StateAuthenticated
		slog.Info("logged in")
		return true
	}
	s.state = models.StateFailed
	slog.Warn("login may have failed; check credentials")
	return false
}

// credentialLogin submits the configured email and password. Each form
// field has a single fixed locator — with markup this stable a fallback
// chain buys nothing. Any rod error converts to false.
func (s *Scraper) credentialLogin(ctx context.Context) bool {
	p := s.page.Context(ctx)

	if err := p.Navigate(s.authCfg.LoginURL); err != nil {
		slog.Warn("login error", "stage", "navigate", "error", err)
		return false
	}
	settle(ctx, s.scraperCfg.FormSettle)

	email, err := p.Timeout(elementTimeout).Element("#username")
	if err != nil {
		slog.Warn("login error", "stage", "username field", "error", err)
		return false
	}
	if err := email.Input(s.authCfg.Email); err != nil {
		slog.Warn("login error", "stage", "username input", "error", err)
		return false
	}

	password, err := p.Timeout(elementTimeout).Element("#password")
	if err != nil {
		slog.Warn("login error", "stage", "password field", "error", err)
		return false
	}
	if err := password.Input(s.authCfg.Password); err != nil {
		slog.Warn("login error", "stage", "password input", "error", err)
		return false
	}

	submit, err := p.Timeout(elementTimeout).Element("button[type='submit']")
	if err != nil {
		slog.Warn("login error", "stage", "submit button", "error", err)
		return false
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		slog.Warn("login error", "stage", "submit click", "error", err)
		return false
	}

	settle(ctx, s.scraperCfg.SubmitSettle)
	return loginSucceeded(s.currentURL())
}

// manualLogin opens the login page and waits for a human to finish signing
// in out of band (email/password, Google, Microsoft — anything the site
// offers). Success is detected by polling the current URL.
func (s *Scraper) manualLogin(ctx context.Context) bool {
	s.state = models.StateAuthenticating

	p := s.page.Context(ctx)
	if err := p.Navigate(s.authCfg.LoginURL); err != nil {
		slog.Warn("manual login error", "stage", "navigate", "error", err)
		s.state = models.StateFailed
		return false
	}

	slog.Info("manual login: complete sign-in in the browser window",
		"timeout", s.authCfg.LoginTimeout)

	if waitForLogin(ctx, s.currentURL, s.authCfg.PollInterval, s.authCfg.LoginTimeout) {
		s.state = models.StateAuthenticated
		slog.Info("login detected, proceeding")
		return true
	}
	s.state = models.StateFailed
	slog.Warn("login timeout; proceeding without authentication")
	return false
}

// waitForLogin polls location every interval until it reports an
// authenticated URL or the timeout elapses. This is a cooperative blocking
// loop, not event-driven: it holds the calling goroutine for up to the
// timeout. ctx cancellation ends it early with failure.
func waitForLogin(ctx context.Context, location func() string, interval, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if isAuthenticatedURL(location()) {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		t := time.NewTimer(interval)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return false
		}
	}
}
