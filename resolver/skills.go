package resolver

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// skillSelector matches the bold skill-name spans; aria-hidden picks the
// visible copy over the screen-reader duplicate.
const skillSelector = ".t-bold span[aria-hidden='true']"

// SkillsDetail extracts skill names from a /details/skills page snapshot,
// capped at MaxSkills.
func (r *Resolver) SkillsDetail(rawHTML string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ScopeMain(rawHTML)))
	if err != nil {
		slog.Warn("skills snapshot did not parse", "error", err)
		return []string{}
	}
	return collectSkills(doc.Find(".pvs-list__container "+skillSelector), r.cfg.MaxSkills)
}

// inlineSkills extracts skills from the main profile page's Skills section,
// capped at MaxInlineSkills. Used when the detail page could not be opened.
func (r *Resolver) inlineSkills(scope *goquery.Selection) []string {
	sec := sectionContaining(scope, "Skills")
	if sec == nil {
		return []string{}
	}
	return collectSkills(sec.Find(skillSelector), r.cfg.MaxInlineSkills)
}

// collectSkills trims, deduplicates and caps the matched skill names.
// Whitespace-only entries never surface.
func collectSkills(sel *goquery.Selection, max int) []string {
	skills := []string{}
	seen := make(map[string]struct{})
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			return true
		}
		if _, ok := seen[t]; ok {
			return true
		}
		seen[t] = struct{}{}
		skills = append(skills, t)
		return len(skills) < max
	})
	return skills
}
