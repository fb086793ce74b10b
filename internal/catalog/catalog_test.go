package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func testArticle(id string) Article {
	return Article{
		ID:          id,
		Title:       "Title " + id,
		Lead:        "Lead " + id,
		Body:        "Body " + id,
		Tags:        []string{"怪談"},
		Credibility: 2.5,
		Danger:      2,
	}
}

func TestEmbedded(t *testing.T) {
	c, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	want := []string{"mothman", "hachishaku", "kukisake", "atlantis"}
	got := c.Articles()
	if len(got) != len(want) {
		t.Fatalf("expected %d articles, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("article %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	m, _ := c.Get("mothman")
	if m.PrimaryCategory() != "未確認生物" {
		t.Errorf("expected mothman primary category 未確認生物, got %q", m.PrimaryCategory())
	}
	if len(m.Sources) != 2 {
		t.Errorf("expected 2 mothman sources, got %d", len(m.Sources))
	}
}

func TestArticlesReturnsCopy(t *testing.T) {
	c, err := New([]Article{testArticle("a"), testArticle("b")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := c.Articles()
	got[0].Title = "changed"
	got[0].Tags[0] = "changed"
	got[1] = testArticle("z")

	again := c.Articles()
	if again[0].Title != "Title a" || again[0].Tags[0] != "怪談" {
		t.Errorf("catalog mutated through Articles(): %+v", again[0])
	}
	if again[1].ID != "b" {
		t.Errorf("expected second article b, got %s", again[1].ID)
	}
}

func TestGet(t *testing.T) {
	c, _ := New([]Article{testArticle("a")})
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to be found")
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected missing to be absent")
	}
}

func TestResolveSkipsStaleIDs(t *testing.T) {
	c, _ := New([]Article{testArticle("a"), testArticle("b"), testArticle("c")})
	got := c.Resolve([]string{"c", "gone", "a"})
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved articles, got %d", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("expected [c a], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Article)
		wantErr bool
	}{
		{"valid", func(a *Article) {}, false},
		{"zero credibility", func(a *Article) { a.Credibility = 0 }, false},
		{"max credibility", func(a *Article) { a.Credibility = 5 }, false},
		{"missing id", func(a *Article) { a.ID = " " }, true},
		{"missing title", func(a *Article) { a.Title = "" }, true},
		{"missing lead", func(a *Article) { a.Lead = "" }, true},
		{"missing body", func(a *Article) { a.Body = "" }, true},
		{"no tags", func(a *Article) { a.Tags = nil }, true},
		{"credibility above 5", func(a *Article) { a.Credibility = 5.5 }, true},
		{"negative credibility", func(a *Article) { a.Credibility = -0.5 }, true},
		{"credibility off step", func(a *Article) { a.Credibility = 2.3 }, true},
		{"danger above 5", func(a *Article) { a.Danger = 6 }, true},
		{"negative danger", func(a *Article) { a.Danger = -1 }, true},
	}
	for _, tt := range tests {
		a := testArticle("x")
		tt.mutate(&a)
		err := Validate([]Article{a})
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestValidateDuplicateID(t *testing.T) {
	err := Validate([]Article{testArticle("a"), testArticle("a")})
	if err == nil {
		t.Error("expected error for duplicate id")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `articles:
  - id: kappa
    title: 河童
    lead: 川の怪
    body: 水辺の伝承
    region: 日本
    era: 江戸
    tags: [民俗]
    credibility: 0.5
    danger: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 article, got %d", c.Len())
	}
	a, _ := c.Get("kappa")
	if a.Credibility != 0.5 || a.Sources != nil {
		t.Errorf("unexpected article: %+v", a)
	}
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("expected embedded catalog with 4 articles, got %d", c.Len())
	}
}

func TestLoadInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	os.WriteFile(path, []byte("articles:\n  - id: a\n"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDangerLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "無害"},
		{1, "低"},
		{2, "中"},
		{3, "高"},
		{4, "危険"},
		{5, "禁忌"},
		{-3, "無害"},
		{9, "禁忌"},
		{2.6, "高"},
	}
	for _, tt := range tests {
		if got := DangerLabel(tt.in); got != tt.want {
			t.Errorf("DangerLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrimaryCategories(t *testing.T) {
	c, _ := Embedded()
	got := PrimaryCategories(c.Articles())
	want := []string{AllCategories, "未確認生物", "怪談", "都市伝説", "失われた文明"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if Categories()[0] != AllCategories {
		t.Error("expected sentinel first in fixed category bar")
	}
}
