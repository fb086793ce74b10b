package catalog

import "math"

// AllCategories is the category-bar sentinel that matches every article.
const AllCategories = "すべて"

var dangerLabels = [...]string{"無害", "低", "中", "高", "危険", "禁忌"}

// Categories is the fixed category bar, sentinel first.
func Categories() []string {
	return []string{AllCategories, "未確認生物", "怪談", "都市伝説", "失われた文明", "神話"}
}

// PrimaryCategories returns the distinct primary categories of articles in
// first-seen order, prefixed with the sentinel.
func PrimaryCategories(articles []Article) []string {
	out := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, a := range articles {
		c := a.PrimaryCategory()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// DangerLabel rounds n and clamps it to [0,5] before looking up its label.
func DangerLabel(n float64) string {
	idx := int(math.Round(n))
	idx = max(0, min(len(dangerLabels)-1, idx))
	return dangerLabels[idx]
}
