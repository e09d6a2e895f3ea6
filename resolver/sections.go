package resolver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// ItemStrategy is one way to locate the repeated entity containers of a
// structured section. Either Section+Within (heading-scoped search) or
// Selector (document-wide class/attribute match) is set.
type ItemStrategy struct {
	Section  string // marker text of the owning section
	Within   string // item selector inside that section
	Selector string // document-wide item selector

	// Keywords, when set, keep only items whose lowercased text contains
	// at least one keyword. Used where a generic container match would
	// sweep in entries from unrelated sections.
	Keywords []string
}

// SectionSpec is the static resolution plan for one structured section.
type SectionSpec struct {
	Name       string
	Strategies []ItemStrategy
	Max        int // hard cap on items considered, bounds the work
}

// resolveItems runs the container cascade: the first strategy that yields
// at least one item wins, capped at spec.Max.
func resolveItems(scope *goquery.Selection, spec SectionSpec) []*goquery.Selection {
	for _, st := range spec.Strategies {
		search := scope
		sel := st.Selector
		if st.Section != "" {
			sec := sectionContaining(scope, st.Section)
			if sec == nil {
				continue
			}
			search = sec
			sel = st.Within
		}

		var items []*goquery.Selection
		search.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if len(st.Keywords) > 0 && !containsAny(strings.ToLower(s.Text()), st.Keywords) {
				return true
			}
			items = append(items, s)
			return len(items) < spec.Max
		})
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// firstText returns the first matched element's trimmed text, or "".
func firstText(item *goquery.Selection, selector string) string {
	var out string
	item.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = t
			return false
		}
		return true
	})
	return out
}

// lastText returns the last matched element's trimmed text, or "".
// Location spans sit after the duration spans that share the same class
// family, so the last one is the best guess.
func lastText(item *goquery.Selection, selector string) string {
	var out string
	item.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = t
		}
	})
	return out
}

// textLines splits an item's rendered text into trimmed, non-empty lines.
// Line order mirrors on-page order: title first, company/school second.
func textLines(item *goquery.Selection) []string {
	raw := strings.Split(item.Text(), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// parseExperience resolves one work-history container into an Experience.
// Every sub-field falls back independently; an all-empty result is the
// caller's signal to discard the item.
func parseExperience(item *goquery.Selection) models.Experience {
	text := strings.TrimSpace(item.Text())
	if text == "" {
		return models.Experience{}
	}
	lines := textLines(item)

	var exp models.Experience
	exp.Title = firstText(item, "span[class*='t-bold'], h3, strong")
	if exp.Title == "" && len(lines) > 0 {
		exp.Title = lines[0]
	}
	exp.Company = firstText(item, "span[class*='t-14']")
	if exp.Company == "" && len(lines) > 1 {
		exp.Company = lines[1]
	}
	exp.Duration = firstText(item, "span[class*='t-black--light']")
	if exp.Duration == "" {
		exp.Duration = experienceDate(text)
	}
	exp.Location = lastText(item, "span[class*='text-body-small']")
	exp.Description = firstText(item, "div[class*='show-more']")
	return exp
}

// parseEducation resolves one education container.
func parseEducation(item *goquery.Selection) models.Education {
	text := strings.TrimSpace(item.Text())
	if text == "" {
		return models.Education{}
	}
	lines := textLines(item)

	var edu models.Education
	edu.School = firstText(item, "span[class*='t-bold'], h3")
	if edu.School == "" && len(lines) > 0 {
		edu.School = lines[0]
	}
	edu.Degree = firstText(item, "span[class*='t-14']")
	if edu.Degree == "" && len(lines) > 1 {
		edu.Degree = lines[1]
	}
	edu.Duration = educationDate(text)
	return edu
}

// parseCertification resolves one license/certification container.
func parseCertification(item *goquery.Selection) models.Certification {
	text := strings.TrimSpace(item.Text())
	if text == "" {
		return models.Certification{}
	}
	lines := textLines(item)

	var cert models.Certification
	cert.Name = firstText(item, "span[class*='t-bold'], h3")
	if cert.Name == "" && len(lines) > 0 {
		cert.Name = lines[0]
	}
	cert.Issuer = firstText(item, "span[class*='t-14']")
	if cert.Issuer == "" && len(lines) > 1 {
		cert.Issuer = lines[1]
	}
	cert.Date = certificationDate(text)
	return cert
}
