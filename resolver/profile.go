package resolver

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// Top-card field cascades. Order matters: precise data-test-id selectors
// first, design-system classes next, bare tag scans last.
var (
	nameSpec = FieldSpec{
		Name: "name",
		Strategies: []Strategy{
			CSS("h1"),
			CSS("div[data-test-id='top-card-profile-name']"),
			CSS(".text-heading-xlarge"),
			CSS("h1.text-heading-xlarge"),
			Tag("h1", 3),
		},
	}

	headlineSpec = FieldSpec{
		Name: "headline",
		Strategies: []Strategy{
			CSS("div.text-body-medium"),
			CSS(".pv-text-details__left-panel .text-body-medium"),
		},
	}

	locationSpec = FieldSpec{
		Name: "location",
		Strategies: []Strategy{
			CSS("span.text-body-small.inline"),
			CSS(".pv-text-details__left-panel .text-body-small"),
		},
	}

	aboutSpec = FieldSpec{
		Name: "about",
		// A real summary is substantial; anything shorter is a stray
		// label caught by the loose class matches below.
		MinLen: 21,
		Strategies: []Strategy{
			CSS("div[data-test-id='about'] div"),
			CSS(".pvs-list__outer-container div[class*='text']"),
			CSS("div[class*='about'] div[class*='text-body']"),
			CSS(".about__summary-text"),
		},
	}
)

func (r *Resolver) experienceSpec() SectionSpec {
	return SectionSpec{
		Name: "experience",
		Max:  r.cfg.MaxExperience,
		Strategies: []ItemStrategy{
			{Section: "Experience", Within: "div[class*='experience'] div, li[class*='experience']"},
			{Selector: "div[class*='pvs-entity']"},
			{Selector: "div[data-test-id*='experience']"},
		},
	}
}

func (r *Resolver) educationSpec() SectionSpec {
	return SectionSpec{
		Name: "education",
		Max:  r.cfg.MaxEducation,
		Strategies: []ItemStrategy{
			{Section: "Education", Within: "div[class*='education'] div, li[class*='education']"},
			{Selector: "div[class*='pvs-entity']", Keywords: []string{"education"}},
		},
	}
}

func (r *Resolver) certificationSpec() SectionSpec {
	return SectionSpec{
		Name: "certifications",
		Max:  r.cfg.MaxCertifications,
		Strategies: []ItemStrategy{
			{Section: "Licenses", Within: "div[class*='cert'], div[class*='license'], li"},
			{Section: "Certifications", Within: "div[class*='cert'], div[class*='license'], li"},
			// Generic entity containers sweep in every section's items,
			// so keep only certification-looking ones. Best effort.
			{Selector: "div[class*='pvs-entity']", Keywords: []string{
				"certified", "certification", "license", "credential",
			}},
		},
	}
}

// Profile resolves every profile field from a rendered-page snapshot. It
// never fails: unresolvable fields stay absent and the returned record
// always carries the requested URL.
func (r *Resolver) Profile(rawHTML, url string) *models.ProfileRecord {
	rec := models.NewProfileRecord(url)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ScopeMain(rawHTML)))
	if err != nil {
		slog.Warn("profile snapshot did not parse, returning bare record",
			"url", url, "error", err)
		return rec
	}
	scope := doc.Selection

	if v, ok := ResolveField(scope, nameSpec); ok {
		rec.Name = v
	}
	if v, ok := ResolveField(scope, headlineSpec); ok {
		rec.Headline = v
	}
	if v, ok := ResolveField(scope, locationSpec); ok {
		rec.Location = v
	}
	if v, ok := ResolveField(scope, aboutSpec); ok {
		rec.About = v
	}

	for _, item := range resolveItems(scope, r.experienceSpec()) {
		exp := parseExperience(item)
		if exp.Empty() {
			continue
		}
		rec.Experience = append(rec.Experience, exp)
	}
	for _, item := range resolveItems(scope, r.educationSpec()) {
		edu := parseEducation(item)
		if edu.Empty() {
			continue
		}
		rec.Education = append(rec.Education, edu)
	}
	for _, item := range resolveItems(scope, r.certificationSpec()) {
		cert := parseCertification(item)
		if cert.Empty() {
			continue
		}
		rec.Certifications = append(rec.Certifications, cert)
	}

	rec.Skills = r.inlineSkills(scope)

	// The first experience entry doubles as the current employer.
	// Best effort: ordering on the page is newest-first, usually.
	if len(rec.Experience) > 0 {
		rec.CurrentCompany = rec.Experience[0].Company
	}

	return rec
}
