// Package resolver turns a rendered-HTML snapshot into structured records.
//
// The target markup is unstable and varies by account, locale and rollout,
// so every field is resolved through an ordered list of locator strategies:
// the first strategy that yields non-empty, plausible text wins and later
// strategies are never attempted. A field with no winning strategy is left
// absent; a single miss never aborts the record.
package resolver

import (
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"github.com/rkaran-2547241/linkedinScrapper/config"
	"golang.org/x/net/html"
)

// Kind tags a locator strategy.
type Kind int

const (
	// KindCSS matches a CSS selector anywhere in the current scope.
	KindCSS Kind = iota

	// KindTag scans elements of one tag name. Same matching mechanics as
	// KindCSS but carries its own plausibility floor (a bare <h1> scan
	// needs one, a precise class selector does not).
	KindTag

	// KindSection scopes Query to the first section-like container whose
	// rendered text mentions the Section marker. Replaces the original
	// "element containing text, then ancestor section" XPath probe.
	KindSection
)

// Strategy is one (kind, parameters) locator rule.
type Strategy struct {
	Kind    Kind
	Query   string
	Section string // KindSection only: marker text the container must contain
	MinText int    // per-strategy minimum rune count for a match
}

// CSS builds a KindCSS strategy.
func CSS(query string) Strategy {
	return Strategy{Kind: KindCSS, Query: query}
}

// Tag builds a KindTag strategy with a plausibility floor.
func Tag(name string, minText int) Strategy {
	return Strategy{Kind: KindTag, Query: name, MinText: minText}
}

// InSection builds a KindSection strategy.
func InSection(marker, query string) Strategy {
	return Strategy{Kind: KindSection, Section: marker, Query: query}
}

// FieldSpec is the static resolution plan for one output field.
type FieldSpec struct {
	Name       string
	Strategies []Strategy

	// MinLen is the field-wide minimum rune count a match must reach
	// (e.g. an "about" blurb under 21 runes is navigation noise, not a
	// summary).
	MinLen int

	// Clean post-processes the winning text (regex extraction, suffix
	// stripping). A Clean that leaves nothing makes the field absent;
	// the cascade does not resume.
	Clean func(string) string
}

// ResolveField runs the spec's cascade over the scope and returns the
// winning text. ok is false when no strategy produced plausible text; the
// returned value is then empty, never a whitespace-only string.
func ResolveField(scope *goquery.Selection, spec FieldSpec) (string, bool) {
	_, text, ok := resolveFieldElement(scope, spec)
	return text, ok
}

// resolveFieldElement is ResolveField plus the matched element, for callers
// that also need the element's inner HTML.
func resolveFieldElement(scope *goquery.Selection, spec FieldSpec) (*goquery.Selection, string, bool) {
	for _, st := range spec.Strategies {
		el, text, ok := applyStrategy(scope, st, spec.MinLen)
		if !ok {
			continue
		}
		if spec.Clean != nil {
			text = strings.TrimSpace(spec.Clean(text))
			if text == "" {
				return nil, "", false
			}
		}
		return el, text, true
	}
	return nil, "", false
}

// applyStrategy evaluates a single strategy: the first matched element with
// enough trimmed text wins. Returns ok=false on no match — misses are
// ordinary outcomes here, not errors.
func applyStrategy(scope *goquery.Selection, st Strategy, minLen int) (*goquery.Selection, string, bool) {
	min := minLen
	if st.MinText > min {
		min = st.MinText
	}
	if min < 1 {
		min = 1
	}

	search := scope
	if st.Kind == KindSection {
		sec := sectionContaining(scope, st.Section)
		if sec == nil {
			return nil, "", false
		}
		search = sec
	}

	var (
		found *goquery.Selection
		text  string
	)
	search.Find(st.Query).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(t) < min {
			return true
		}
		found, text = s, t
		return false
	})
	return found, text, found != nil
}

// sectionContaining locates the container that holds a named profile
// section ("Experience", "Education", ...). It prefers a <section> whose
// rendered text mentions the marker; failing that, the parent of any
// element whose direct text does.
func sectionContaining(scope *goquery.Selection, marker string) *goquery.Selection {
	var out *goquery.Selection
	scope.Find("section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), marker) {
			out = s
			return false
		}
		return true
	})
	if out != nil {
		return out
	}
	scope.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(ownText(s), marker) {
			out = s.Parent()
			return false
		}
		return true
	})
	return out
}

// ownText returns the text directly under the element, excluding descendant
// elements' text. A section heading matches its own label without the whole
// page body matching too.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

// Resolver holds the section caps and the reusable Markdown converter.
// Safe for concurrent use.
type Resolver struct {
	cfg config.ResolverConfig
	md  *converter.Converter
}

// New builds a Resolver with the given caps.
func New(cfg config.ResolverConfig) *Resolver {
	return &Resolver{
		cfg: cfg,
		md:  newMarkdownConverter(),
	}
}
