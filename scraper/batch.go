package scraper

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// Result pairs one target with whichever record its kind produced. A
// failed target keeps its Err and a nil record; the batch carries on.
type Result struct {
	Target  models.Target         `json:"target"`
	Profile *models.ProfileRecord `json:"profile,omitempty"`
	Post    *models.PostRecord    `json:"post,omitempty"`
	Err     error                 `json:"-"`
}

// ScrapeAll runs the targets sequentially through the one open session,
// paced by the configured target interval so back-to-back page loads do
// not look like a crawler burst. Per-target failures are logged and the
// batch continues; the result slice always has one entry per target, in
// order.
func (s *Scraper) ScrapeAll(ctx context.Context, targets []models.Target) []Result {
	limiter := rate.NewLimiter(rate.Every(s.scraperCfg.TargetInterval), 1)

	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		res := Result{Target: t}

		if err := limiter.Wait(ctx); err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		switch t.Kind {
		case models.TargetProfile:
			res.Profile, res.Err = s.ScrapeProfile(ctx, t.URL)
		case models.TargetPost:
			res.Post, res.Err = s.ScrapePost(ctx, t.URL)
		default:
			res.Err = models.NewScrapeError(
				models.ErrCodeInvalidInput,
				"unknown target kind: "+string(t.Kind),
				nil,
			)
		}

		if res.Err != nil {
			slog.Error("target failed, continuing", "url", t.URL, "error", res.Err)
		}
		results = append(results, res)
	}
	return results
}
