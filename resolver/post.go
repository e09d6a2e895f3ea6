package resolver

import (
	"log/slog"
	nurl "net/url"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/rkaran-2547241/linkedinScrapper/models"
)

// minReadableLength is the minimum rune count for a readability-extracted
// post body to be trusted. Below this the algorithm most likely latched
// onto chrome text, and the field is better left absent.
const minReadableLength = 50

// Post-page field cascades. The update-components classes are the current
// feed markup; the feed-shared classes are the previous generation, still
// served on some rollouts.
var (
	postAuthorSpec = FieldSpec{
		Name: "author",
		Strategies: []Strategy{
			CSS("span.update-components-actor__title span[aria-hidden='true']"),
			CSS(".update-components-actor__name"),
			CSS(".feed-shared-actor__name"),
			CSS(".update-components-actor__meta a span[dir='ltr']"),
		},
	}

	postHeadlineSpec = FieldSpec{
		Name: "author_headline",
		Strategies: []Strategy{
			CSS(".update-components-actor__description"),
			CSS(".feed-shared-actor__description"),
		},
	}

	postTextSpec = FieldSpec{
		Name: "post_text",
		Strategies: []Strategy{
			CSS(".update-components-text"),
			CSS(".feed-shared-update-v2__description"),
			CSS(".feed-shared-text"),
			CSS("div[data-test-id='main-feed-activity-card__commentary']"),
		},
	}

	postTimestampSpec = FieldSpec{
		Name: "timestamp",
		Strategies: []Strategy{
			CSS(".update-components-actor__sub-description span[aria-hidden='true']"),
			CSS(".feed-shared-actor__sub-description"),
			Tag("time", 1),
		},
		// "3d • Edited • Visible to anyone" → "3d"
		Clean: func(s string) string {
			return strings.SplitN(s, "•", 2)[0]
		},
	}

	postLikesSpec = FieldSpec{
		Name: "likes",
		Strategies: []Strategy{
			CSS("span.social-details-social-counts__reactions-count"),
			CSS("span[class*='social-counts-reactions']"),
			CSS("button[aria-label*='reaction'] span"),
		},
		Clean: extractCount,
	}

	postCommentsSpec = FieldSpec{
		Name: "comments",
		Strategies: []Strategy{
			CSS("li.social-details-social-counts__comments span"),
			CSS("span[class*='social-counts-comments']"),
			CSS("button[aria-label*='comment']"),
		},
		Clean: extractCount,
	}
)

// Post resolves every post field from a rendered-page snapshot. Like
// Profile it never fails; unresolvable fields stay absent.
func (r *Resolver) Post(rawHTML, url string) *models.PostRecord {
	rec := models.NewPostRecord(url)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ScopeMain(rawHTML)))
	if err != nil {
		slog.Warn("post snapshot did not parse, returning bare record",
			"url", url, "error", err)
		return rec
	}
	scope := doc.Selection

	if v, ok := ResolveField(scope, postAuthorSpec); ok {
		rec.Author = v
	}
	if v, ok := ResolveField(scope, postHeadlineSpec); ok {
		rec.AuthorHeadline = v
	}
	if v, ok := ResolveField(scope, postTimestampSpec); ok {
		rec.Timestamp = v
	}
	if v, ok := ResolveField(scope, postLikesSpec); ok {
		rec.Likes = v
	}
	if v, ok := ResolveField(scope, postCommentsSpec); ok {
		rec.Comments = v
	}

	if el, text, ok := resolveFieldElement(scope, postTextSpec); ok {
		rec.Text = text
		rec.TextMarkdown = r.renderMarkdown(el, url)
	} else if text := readablePostText(rawHTML, url); text != "" {
		rec.Text = text
	}

	rec.Images = collectImages(postImageScope(scope), url)
	return rec
}

// renderMarkdown converts the matched post body's inner HTML to Markdown.
// Best effort; an empty string means the plain-text field stands alone.
func (r *Resolver) renderMarkdown(el *goquery.Selection, url string) string {
	inner, err := el.Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return ""
	}
	md, err := r.md.ConvertString(inner, converter.WithDomain(url))
	if err != nil {
		slog.Debug("markdown conversion failed", "url", url, "error", err)
		return ""
	}
	return strings.TrimSpace(md)
}

// readablePostText is the last-resort strategy when every selector missed:
// run the Readability algorithm over the whole snapshot and take its plain
// text, if substantial.
func readablePostText(rawHTML, url string) string {
	parsed, err := nurl.Parse(url)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(rawHTML), parsed)
	if err != nil {
		slog.Debug("readability fallback failed", "url", url, "error", err)
		return ""
	}
	text := strings.TrimSpace(article.TextContent)
	if utf8.RuneCountInString(text) < minReadableLength {
		return ""
	}
	return text
}

// postImageScope narrows image collection to the post's own container when
// one exists, so avatars and sidebar media stay out of the record.
func postImageScope(scope *goquery.Selection) *goquery.Selection {
	for _, sel := range []string{
		"div[class*='update-components-image']",
		"div[class*='feed-shared-update']",
	} {
		if c := scope.Find(sel); c.Length() > 0 {
			return c
		}
	}
	return scope
}

// collectImages gathers the scope's image URLs: absolute, no data URIs,
// deduplicated, in document order.
func collectImages(scope *goquery.Selection, sourceURL string) []string {
	images := []string{}

	base, err := nurl.Parse(sourceURL)
	if err != nil {
		return images
	}

	seen := make(map[string]struct{})
	scope.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, exists := s.Attr("src")
		if !exists || src == "" {
			return
		}
		resolved, err := base.Parse(src)
		if err != nil || resolved.Scheme == "data" {
			return
		}
		abs := resolved.String()
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		images = append(images, abs)
	})

	return images
}
