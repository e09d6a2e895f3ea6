package models

import "strings"

// TargetKind distinguishes the two page layouts the extractor understands.
type TargetKind string

const (
	TargetProfile TargetKind = "profile"
	TargetPost    TargetKind = "post"
)

// Valid reports whether the kind is one of the recognized values.
func (k TargetKind) Valid() bool {
	return k == TargetProfile || k == TargetPost
}

// Target is one page to scrape: a URL plus the entity kind behind it.
// Targets are immutable and supplied by the caller.
type Target struct {
	URL  string     `json:"url"`
	Kind TargetKind `json:"kind"`
}

// GuessKind infers the target kind from well-known LinkedIn URL shapes.
// Profile pages live under /in/, posts under /posts/ or /feed/update/.
// Returns an empty kind when the URL matches neither family.
func GuessKind(url string) TargetKind {
	switch {
	case strings.Contains(url, "/in/"):
		return TargetProfile
	case strings.Contains(url, "/posts/"), strings.Contains(url, "/feed/update/"):
		return TargetPost
	default:
		return ""
	}
}
