package resolver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rkaran-2547241/linkedinScrapper/config"
)

func testResolver() *Resolver {
	return New(config.Load().Resolver)
}

func TestProfile_BareHeadingOnly(t *testing.T) {
	// A page exposing nothing but an <h1> resolves the name and leaves
	// every other field absent.
	rec := testResolver().Profile(
		`<html><body><h1>Jane Doe</h1></body></html>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if rec.URL != "https://www.linkedin.com/in/janedoe/" {
		t.Errorf("URL = %q, want the requested URL", rec.URL)
	}
	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", rec.Name, "Jane Doe")
	}
	if rec.Headline != "" || rec.Location != "" || rec.About != "" || rec.CurrentCompany != "" {
		t.Errorf("expected all scalar fields absent, got %+v", rec)
	}
	if len(rec.Experience) != 0 || len(rec.Education) != 0 ||
		len(rec.Certifications) != 0 || len(rec.Skills) != 0 {
		t.Errorf("expected all lists empty, got %+v", rec)
	}
	if rec.Experience == nil || rec.Skills == nil {
		t.Error("list fields must be initialized, not nil")
	}
}

func TestProfile_TopCard(t *testing.T) {
	rec := testResolver().Profile(`
		<main>
			<h1>Jane Doe</h1>
			<div class="text-body-medium">Principal Engineer</div>
			<span class="text-body-small inline">Berlin, Germany</span>
			<div class="about-panel"><div class="text-body-large">Building distributed systems for fifteen years.</div></div>
		</main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Headline != "Principal Engineer" {
		t.Errorf("Headline = %q", rec.Headline)
	}
	if rec.Location != "Berlin, Germany" {
		t.Errorf("Location = %q", rec.Location)
	}
	if rec.About != "Building distributed systems for fifteen years." {
		t.Errorf("About = %q", rec.About)
	}
}

func TestProfile_ExperienceSection(t *testing.T) {
	rec := testResolver().Profile(`
		<main>
		<h1>Jane Doe</h1>
		<section>
			<h2>Experience</h2>
			<ul>
				<li class="experience-item">
					<span class="t-bold">Principal Engineer</span>
					<span class="t-14">Acme Corp</span>
					<span class="t-black--light">Jan 2020 - Present</span>
					<span class="text-body-small">Berlin, Germany</span>
				</li>
				<li class="experience-item">
					<span class="t-bold">Engineer</span>
					<span class="t-14">Initech</span>
					<span class="t-black--light">Mar 2015 - Dec 2019</span>
				</li>
			</ul>
		</section>
		</main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Experience) != 2 {
		t.Fatalf("len(Experience) = %d, want 2", len(rec.Experience))
	}
	first := rec.Experience[0]
	if first.Title != "Principal Engineer" || first.Company != "Acme Corp" {
		t.Errorf("first entry = %+v", first)
	}
	if first.Duration != "Jan 2020 - Present" {
		t.Errorf("Duration = %q", first.Duration)
	}
	if first.Location != "Berlin, Germany" {
		t.Errorf("Location = %q", first.Location)
	}
	if rec.CurrentCompany != "Acme Corp" {
		t.Errorf("CurrentCompany = %q, want first entry's company", rec.CurrentCompany)
	}
}

func TestProfile_ExperienceCapped(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&items, `<li class="experience-item"><span class="t-bold">Role %d</span></li>`, i)
	}
	rec := testResolver().Profile(
		`<main><section><h2>Experience</h2><ul>`+items.String()+`</ul></section></main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Experience) != 15 {
		t.Errorf("len(Experience) = %d, want the configured cap of 15", len(rec.Experience))
	}
}

func TestProfile_EducationCapped(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&items, `<li class="education-entry"><span class="t-bold">School %d</span></li>`, i)
	}
	rec := testResolver().Profile(
		`<main><section><h2>Education</h2><ul>`+items.String()+`</ul></section></main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Education) != 10 {
		t.Errorf("len(Education) = %d, want the configured cap of 10", len(rec.Education))
	}
}

func TestProfile_CertificationsCapped(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&items, `<li><span class="t-bold">Cert %d</span><span class="t-14">Issuer</span></li>`, i)
	}
	rec := testResolver().Profile(
		`<main><section><h2>Licenses &amp; Certifications</h2><ul>`+items.String()+`</ul></section></main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Certifications) != 10 {
		t.Errorf("len(Certifications) = %d, want the configured cap of 10", len(rec.Certifications))
	}
}

func TestProfile_AllEmptyItemsDropped(t *testing.T) {
	rec := testResolver().Profile(`
		<main><section>
			<h2>Experience</h2>
			<li class="experience-item">   </li>
			<li class="experience-item"><span class="t-bold">Engineer</span></li>
		</section></main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Experience) != 1 {
		t.Fatalf("len(Experience) = %d, want 1 (empty item discarded)", len(rec.Experience))
	}
	if rec.Experience[0].Title != "Engineer" {
		t.Errorf("kept item = %+v", rec.Experience[0])
	}
}

func TestProfile_EducationLineSplitFallback(t *testing.T) {
	// No dedicated sub-field elements; school and degree come from the
	// item's text lines, the duration from the year-range regex.
	rec := testResolver().Profile(`
		<main><section><h2>Education</h2>
			<li class="education-entry">Stanford University
B.S. Computer Science
2014 - 2018</li>
		</section></main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Education) != 1 {
		t.Fatalf("len(Education) = %d, want 1", len(rec.Education))
	}
	edu := rec.Education[0]
	if edu.School != "Stanford University" {
		t.Errorf("School = %q", edu.School)
	}
	if edu.Degree != "B.S. Computer Science" {
		t.Errorf("Degree = %q", edu.Degree)
	}
	if edu.Duration != "2014 - 2018" {
		t.Errorf("Duration = %q", edu.Duration)
	}
}

func TestProfile_CertificationKeywordFilter(t *testing.T) {
	// No Licenses section; certifications are picked out of generic
	// entity containers by keyword, other containers stay out.
	rec := testResolver().Profile(`
		<main>
			<div class="pvs-entity">AWS Certified Solutions Architect
Amazon Web Services
Issued Mar 2023</div>
			<div class="pvs-entity">Team Player Award
Acme Corp</div>
		</main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Certifications) != 1 {
		t.Fatalf("len(Certifications) = %d, want 1", len(rec.Certifications))
	}
	cert := rec.Certifications[0]
	if cert.Name != "AWS Certified Solutions Architect" {
		t.Errorf("Name = %q", cert.Name)
	}
	if cert.Issuer != "Amazon Web Services" {
		t.Errorf("Issuer = %q", cert.Issuer)
	}
	if cert.Date != "Mar 2023" {
		t.Errorf("Date = %q", cert.Date)
	}
}

func TestProfile_InlineSkills(t *testing.T) {
	var spans strings.Builder
	for i := 0; i < 14; i++ {
		fmt.Fprintf(&spans, `<div class="t-bold"><span aria-hidden="true">Skill %d</span></div>`, i)
	}
	// One duplicate and one whitespace-only entry must not survive.
	spans.WriteString(`<div class="t-bold"><span aria-hidden="true">Skill 0</span></div>`)
	spans.WriteString(`<div class="t-bold"><span aria-hidden="true">   </span></div>`)

	rec := testResolver().Profile(
		`<main><section><h2>Skills</h2>`+spans.String()+`</section></main>`,
		"https://www.linkedin.com/in/janedoe/",
	)

	if len(rec.Skills) != 10 {
		t.Fatalf("len(Skills) = %d, want the inline cap of 10", len(rec.Skills))
	}
	seen := map[string]bool{}
	for _, s := range rec.Skills {
		if strings.TrimSpace(s) == "" {
			t.Error("whitespace-only skill surfaced")
		}
		if seen[s] {
			t.Errorf("duplicate skill %q surfaced", s)
		}
		seen[s] = true
	}
}

func TestSkillsDetail_Capped(t *testing.T) {
	var spans strings.Builder
	spans.WriteString(`<main><div class="pvs-list__container">`)
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&spans, `<div class="t-bold"><span aria-hidden="true">Skill %d</span></div>`, i)
	}
	spans.WriteString(`</div></main>`)

	skills := testResolver().SkillsDetail(spans.String())
	if len(skills) != 20 {
		t.Errorf("len(skills) = %d, want the detail cap of 20", len(skills))
	}
}
