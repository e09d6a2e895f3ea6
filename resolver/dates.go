package resolver

import (
	"regexp"
	"strings"
)

// Date-shaped substrings are pulled out of raw item text when no dedicated
// duration element matched. Each section family has its own shape.
var (
	// "Jan 2020 - Present · 3 yrs" and similar month-year openings.
	experienceDateRe = regexp.MustCompile(`[A-Za-z]+\s+\d{4}.*`)

	// "2016 - 2020", "2016–2020" or a lone year.
	educationDateRe = regexp.MustCompile(`\d{4}\s*[-–]\s*\d{4}|\d{4}`)

	// "Issued Mar 2023" / "Expires Mar 2025"; the month-year is captured.
	certificationDateRe = regexp.MustCompile(`(?:Issued|Expires)?\s*([A-Za-z]+\s+\d{4})`)

	// Leading count token in "1,234 reactions" / "87 comments" / "1.2K".
	countRe = regexp.MustCompile(`\d[\d,.]*[KM]?`)
)

func experienceDate(text string) string {
	return strings.TrimSpace(experienceDateRe.FindString(text))
}

func educationDate(text string) string {
	return strings.TrimSpace(educationDateRe.FindString(text))
}

func certificationDate(text string) string {
	m := certificationDateRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractCount(text string) string {
	return countRe.FindString(text)
}
