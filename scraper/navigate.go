package scraper

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// settle blocks for d or until ctx is done. Fixed settle intervals are how
// this scraper waits out the site's lazy loading; there is no reliable
// "done rendering" signal to subscribe to.
func settle(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// prepare loads the target URL and drives the page through the scroll
// sequence that triggers progressive section loading. Navigation failure
// is the only error; a page too short to scroll is not one.
func (s *Scraper) prepare(ctx context.Context, url string) error {
	p := s.page.Context(ctx)

	if err := p.Navigate(url); err != nil {
		return models.NewScrapeError(
			models.ErrCodeNavigation,
			"navigation to target URL failed",
			err,
		)
	}
	settle(ctx, s.scraperCfg.NavigateSettle)

	steps := []struct {
		js   string
		wait time.Duration
	}{
		{`() => window.scrollTo(0, document.body.scrollHeight / 2)`, s.scraperCfg.ScrollSettle},
		{`() => window.scrollTo(0, document.body.scrollHeight)`, s.scraperCfg.FinalScrollSettle},
	}
	for _, step := range steps {
		if _, err := p.Eval(step.js); err != nil {
			slog.Debug("scroll step failed, continuing", "url", url, "error", err)
		}
		settle(ctx, step.wait)
	}
	return nil
}

// expandSections clicks every collapsed "show more"/"see more" expander so
// truncated about texts and descriptions make it into the snapshot.
// Per-button failures are ignored; a button that will not click just
// leaves its text truncated.
func (s *Scraper) expandSections(ctx context.Context) {
	p := s.page.Context(ctx)

	_, _ = p.Eval(`() => window.scrollTo(0, 0)`)
	settle(ctx, s.scraperCfg.ActionSettle)

	els, err := p.Elements("button[aria-expanded='false']")
	if err != nil {
		return
	}
	for _, el := range els {
		txt, err := el.Text()
		if err != nil {
			continue
		}
		t := strings.ToLower(txt)
		if !strings.Contains(t, "show more") && !strings.Contains(t, "see more") {
			continue
		}
		if err := el.ScrollIntoView(); err != nil {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			slog.Debug("expander click failed", "error", err)
			continue
		}
		settle(ctx, s.scraperCfg.ActionSettle)
	}
}

// snapshot captures the rendered HTML for offline field resolution.
func (s *Scraper) snapshot(ctx context.Context) (string, error) {
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", models.NewScrapeError(
			models.ErrCodeExtraction,
			"failed to extract page HTML",
			err,
		)
	}
	return html, nil
}

// openSkillsDetail clicks through to the /details/skills page, snapshots
// it, and navigates back. ok is false when the link is missing or the
// detour failed — the caller then falls back to main-page skills.
func (s *Scraper) openSkillsDetail(ctx context.Context) (string, bool) {
	p := s.page.Context(ctx)

	has, link, err := p.Has("a[href*='/details/skills']")
	if err != nil || !has {
		return "", false
	}
	if err := link.Click(proto.InputMouseButtonLeft, 1); err != nil {
		slog.Debug("skills detail click failed", "error", err)
		return "", false
	}
	settle(ctx, s.scraperCfg.DetailSettle)

	html, err := p.HTML()
	if err != nil {
		slog.Debug("skills detail snapshot failed", "error", err)
		html = ""
	}

	if err := p.NavigateBack(); err != nil {
		slog.Debug("navigate back from skills detail failed", "error", err)
	}
	settle(ctx, s.scraperCfg.ActionSettle)

	return html, html != ""
}
