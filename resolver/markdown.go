package resolver

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// newMarkdownConverter creates the reusable, goroutine-safe converter used
// to render post bodies as Markdown:
//
//   - base plugin: strips script, style, head, meta and HTML comments.
//   - commonmark plugin: standard Markdown rendering, which keeps the
//     links, mentions and hashtags a plain-text extraction flattens.
func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
}
