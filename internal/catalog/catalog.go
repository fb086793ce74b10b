package catalog

import (
	"embed"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogFS embed.FS

// Catalog is the fixed, ordered article collection. It is built once and
// never mutated; accessors hand out copies.
type Catalog struct {
	articles []Article
	index    map[string]int
}

// New validates articles and builds a Catalog preserving their order.
func New(articles []Article) (*Catalog, error) {
	if err := Validate(articles); err != nil {
		return nil, err
	}
	c := &Catalog{
		articles: make([]Article, len(articles)),
		index:    make(map[string]int, len(articles)),
	}
	for i, a := range articles {
		c.articles[i] = a.clone()
		c.index[a.ID] = i
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.Articles)
}

// Load reads a catalog from path, or the embedded sample catalog when path
// is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Embedded() (*Catalog, error) {
	data, err := catalogFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	return Parse(data)
}

// Articles returns the articles in catalog order.
func (c *Catalog) Articles() []Article {
	out := make([]Article, len(c.articles))
	for i, a := range c.articles {
		out[i] = a.clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.articles)
}

func (c *Catalog) Get(id string) (Article, bool) {
	i, ok := c.index[id]
	if !ok {
		return Article{}, false
	}
	return c.articles[i].clone(), true
}

// Resolve maps ids to articles in the given order, skipping ids that no
// longer exist in the catalog.
func (c *Catalog) Resolve(ids []string) []Article {
	out := make([]Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.Get(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// Validate checks the data model constraints of every article.
func Validate(articles []Article) error {
	seen := make(map[string]bool, len(articles))
	for i, a := range articles {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("article %d: id is required", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("article %q: duplicate id", a.ID)
		}
		seen[a.ID] = true

		switch {
		case a.Title == "":
			return fmt.Errorf("article %q: title is required", a.ID)
		case a.Lead == "":
			return fmt.Errorf("article %q: lead is required", a.ID)
		case a.Body == "":
			return fmt.Errorf("article %q: body is required", a.ID)
		case len(a.Tags) == 0:
			return fmt.Errorf("article %q: at least one tag is required", a.ID)
		}

		if a.Credibility < 0 || a.Credibility > 5 {
			return fmt.Errorf("article %q: credibility %.1f out of range [0,5]", a.ID, a.Credibility)
		}
		if _, frac := math.Modf(a.Credibility * 2); frac != 0 {
			return fmt.Errorf("article %q: credibility %v is not a multiple of 0.5", a.ID, a.Credibility)
		}
		if a.Danger < 0 || a.Danger > 5 {
			return fmt.Errorf("article %q: danger %d out of range [0,5]", a.ID, a.Danger)
		}
	}
	return nil
}

func (a Article) clone() Article {
	a.Tags = slices.Clone(a.Tags)
	a.Sources = slices.Clone(a.Sources)
	return a
}
