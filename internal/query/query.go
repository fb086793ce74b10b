// Package query filters the article catalog by free text, category, and a
// minimum credibility threshold.
package query

import (
	"slices"
	"strings"

	"github.com/yamiarchive/yami/internal/catalog"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = catalog.AllCategories

// Options is the ephemeral query state held by the presentation layer.
type Options struct {
	Text           string
	Category       string
	MinCredibility float64
}

// Default matches every article.
func Default() Options {
	return Options{Category: AllCategories}
}

// Apply is Filter with the arguments taken from opts. An empty category is
// treated as AllCategories.
func Apply(articles []catalog.Article, opts Options) []catalog.Article {
	category := opts.Category
	if category == "" {
		category = AllCategories
	}
	return Filter(articles, opts.Text, category, opts.MinCredibility)
}

// Filter returns the articles matching text, category, and minCredibility in
// their input order. The threshold is compared as given; callers clamp.
func Filter(articles []catalog.Article, text, category string, minCredibility float64) []catalog.Article {
	q := strings.ToLower(strings.TrimSpace(text))
	out := make([]catalog.Article, 0, len(articles))
	for _, a := range articles {
		if matchText(a, q) && matchCategory(a, category) && a.Credibility >= minCredibility {
			out = append(out, a)
		}
	}
	return out
}

func matchText(a catalog.Article, q string) bool {
	if q == "" {
		return true
	}
	if contains(a.Title, q) || contains(a.Lead, q) {
		return true
	}
	for _, t := range a.Tags {
		if contains(t, q) {
			return true
		}
	}
	return contains(a.Region, q) || contains(a.Era, q)
}

// matchCategory keeps the primary-category clause even though Tags[0] is
// already covered by the membership test.
func matchCategory(a catalog.Article, category string) bool {
	if category == AllCategories {
		return true
	}
	return slices.Contains(a.Tags, category) || (len(a.Tags) > 0 && a.Tags[0] == category)
}

func contains(field, lowered string) bool {
	return strings.Contains(strings.ToLower(field), lowered)
}
