package resolver

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var mainSelector = cascadia.MustCompile("main")

// ScopeMain narrows a page snapshot to its <main> content region, dropping
// the global navigation chrome (which also says "Experience", "Jobs", ...
// and would confuse the section probes).
//
// If the page has no <main>, the original HTML is returned unchanged so
// downstream resolution still has something to work with.
func ScopeMain(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	matches := cascadia.QueryAll(doc, mainSelector)
	if len(matches) == 0 {
		return rawHTML
	}

	var buf bytes.Buffer
	for _, node := range matches {
		if err := html.Render(&buf, node); err != nil {
			return rawHTML
		}
	}
	return buf.String()
}
