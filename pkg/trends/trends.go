// Package trends filters and searches the catalog of content trends.
package trends

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"stratagix/pkg/content"
)

// Category groups trends on the dashboard tabs.
type Category string

const (
	CategoryBusiness Category = "Business"
	CategoryContent  Category = "Content"
	CategoryStrategy Category = "Strategy"
	CategoryIndustry Category = "Industry"
)

// Categories lists the known categories in tab order.
var Categories = []Category{CategoryBusiness, CategoryContent, CategoryStrategy, CategoryIndustry}

// AllCategories is the filter value that disables category filtering.
const AllCategories = "all"

// Momentum describes the direction a trend is heading.
type Momentum string

const (
	MomentumRising    Momentum = "rising"
	MomentumStable    Momentum = "stable"
	MomentumDeclining Momentum = "declining"
)

// Empty state copy shown when a search matches nothing.
const (
	EmptyStateTitle   = "No trends found"
	EmptyStateMessage = "Try adjusting your search or filters to find relevant trends."
)

var (
	ErrMissingID       = errors.New("trend id is required")
	ErrInvalidCategory = errors.New("invalid trend category")
	ErrInvalidMomentum = errors.New("invalid trend momentum")
)

// Example is a sample post illustrating a trend.
type Example struct {
	Title      string           `json:"title" yaml:"title"`
	Engagement int              `json:"engagement" yaml:"engagement"`
	Platform   content.Platform `json:"platform" yaml:"platform"`
}

// Entry is one trend in the catalog.
type Entry struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Category    Category         `json:"category" yaml:"category"`
	Platform    content.Platform `json:"platform" yaml:"platform"`
	Relevance   int              `json:"relevance" yaml:"relevance"`
	Growth      int              `json:"growth" yaml:"growth"`
	Momentum    Momentum         `json:"momentum" yaml:"momentum"`
	Description string           `json:"description" yaml:"description"`
	Hashtags    []string         `json:"hashtags" yaml:"hashtags"`
	Examples    []Example        `json:"examples" yaml:"examples"`
}

// Validate checks the enumerated fields of e.
func (e Entry) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	switch e.Category {
	case CategoryBusiness, CategoryContent, CategoryStrategy, CategoryIndustry:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	switch e.Momentum {
	case MomentumRising, MomentumStable, MomentumDeclining:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMomentum, e.Momentum)
	}
	switch e.Platform {
	case content.PlatformInstagram, content.PlatformLinkedIn, content.PlatformBoth:
	default:
		return fmt.Errorf("%w: %q", content.ErrInvalidPlatform, e.Platform)
	}
	return nil
}

// MatchCategory reports whether e belongs to category. "all" and the empty
// string match everything; otherwise the comparison ignores case.
func MatchCategory(e Entry, category string) bool {
	if category == "" {
		return true
	}
	fold := cases.Fold()
	want := fold.String(category)
	return want == AllCategories || fold.String(string(e.Category)) == want
}

// MatchQuery reports whether query occurs in the title, the description or
// any hashtag of e, compared under Unicode case folding ("STRASSE" finds
// "Straße"). An empty query matches everything.
func MatchQuery(e Entry, query string) bool {
	if query == "" {
		return true
	}
	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	q := fold.String(query)
	if strings.Contains(fold.String(e.Title), q) || strings.Contains(fold.String(e.Description), q) {
		return true
	}
	for _, tag := range e.Hashtags {
		if strings.Contains(fold.String(tag), q) {
			return true
		}
	}
	return false
}

// Filter keeps the entries that match both category and query, in input order.
// The result is never nil.
func Filter(entries []Entry, category, query string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if MatchCategory(e, category) && MatchQuery(e, query) {
			out = append(out, e)
		}
	}
	return out
}

// CountByCategory tallies entries per category. Every known category is
// present in the result, zero if unused.
func CountByCategory(entries []Entry) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, e := range entries {
		counts[e.Category]++
	}
	return counts
}

// FindByID returns the entry with the given id.
func FindByID(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
