package scraper

import (
	"context"
	"log/slog"

	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// ScrapeProfile loads a profile page and resolves it into a record.
//
// Only navigation and snapshot failures return an error; everything past
// that point is best-effort — unresolvable fields stay absent and the
// record still carries the requested URL.
func (s *Scraper) ScrapeProfile(ctx context.Context, url string) (*models.ProfileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.MaxTimeout)
	defer cancel()

	if err := s.prepare(ctx, url); err != nil {
		return nil, err
	}
	s.expandSections(ctx)

	raw, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.res.Profile(raw, url)

	// The detail page lists more skills than the main page teaser, so
	// prefer it when the click-through works.
	if detail, ok := s.openSkillsDetail(ctx); ok {
		if skills := s.res.SkillsDetail(detail); len(skills) > 0 {
			rec.Skills = skills
		}
	}

	slog.Info("profile scraped",
		"url", url,
		"name", rec.Name,
		"experience", len(rec.Experience),
		"education", len(rec.Education),
		"certifications", len(rec.Certifications),
		"skills", len(rec.Skills),
	)
	return rec, nil
}

// ScrapePost loads a post page and resolves it into a record.
func (s *Scraper) ScrapePost(ctx context.Context, url string) (*models.PostRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.MaxTimeout)
	defer cancel()

	if err := s.prepare(ctx, url); err != nil {
		return nil, err
	}
	s.expandSections(ctx)

	raw, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.res.Post(raw, url)

	slog.Info("post scraped",
		"url", url,
		"author", rec.Author,
		"images", len(rec.Images),
	)
	return rec, nil
}
