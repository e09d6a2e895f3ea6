package models

// Field invariant shared by every record in this package: a scalar field is
// either absent (empty string, dropped by omitempty) or a non-empty trimmed
// string. Whitespace-only values never surface. List fields are always
// present, possibly empty, never null in the serialized output.

// Experience is one work-history entry on a profile.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Empty reports whether no sub-field was resolved. Empty entries are
// discarded before they reach a record.
func (e Experience) Empty() bool {
	return e.Title == "" && e.Company == "" && e.Duration == "" &&
		e.Location == "" && e.Description == ""
}

// Education is one education entry on a profile.
type Education struct {
	School   string `json:"school,omitempty"`
	Degree   string `json:"degree,omitempty"`
	Duration string `json:"duration,omitempty"`
}

func (e Education) Empty() bool {
	return e.School == "" && e.Degree == "" && e.Duration == ""
}

// Certification is one license/certification entry on a profile.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

func (c Certification) Empty() bool {
	return c.Name == "" && c.Issuer == "" && c.Date == ""
}

// ProfileRecord is the assembled output for one profile page. It always
// carries the originally requested URL and is never mutated after assembly.
type ProfileRecord struct {
	URL            string          `json:"url"`
	Name           string          `json:"name,omitempty"`
	Headline       string          `json:"headline,omitempty"`
	Location       string          `json:"location,omitempty"`
	About          string          `json:"about,omitempty"`
	CurrentCompany string          `json:"current_company,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Skills         []string        `json:"skills"`
	Languages      []string        `json:"languages"`
}

// NewProfileRecord returns a record with the URL set and all list fields
// initialized so they serialize as arrays rather than null.
func NewProfileRecord(url string) *ProfileRecord {
	return &ProfileRecord{
		URL:            url,
		Experience:     []Experience{},
		Education:      []Education{},
		Certifications: []Certification{},
		Skills:         []string{},
		Languages:      []string{},
	}
}

// PostRecord is the assembled output for one post page.
type PostRecord struct {
	URL            string   `json:"url"`
	Author         string   `json:"author,omitempty"`
	AuthorHeadline string   `json:"author_headline,omitempty"`
	Text           string   `json:"post_text,omitempty"`
	TextMarkdown   string   `json:"post_text_markdown,omitempty"`
	Timestamp      string   `json:"timestamp,omitempty"`
	Likes          string   `json:"likes,omitempty"`
	Comments       string   `json:"comments,omitempty"`
	Images         []string `json:"images"`
}

// NewPostRecord returns a record with the URL set and the image list
// initialized.
func NewPostRecord(url string) *PostRecord {
	return &PostRecord{
		URL:    url,
		Images: []string{},
	}
}
