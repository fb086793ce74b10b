package catalog

type Source struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Article struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Lead        string   `yaml:"lead"`
	Body        string   `yaml:"body"`
	Region      string   `yaml:"region"`
	Era         string   `yaml:"era"`
	Tags        []string `yaml:"tags"`
	Credibility float64  `yaml:"credibility"`
	Danger      int      `yaml:"danger"`
	Image       string   `yaml:"image"`
	Sources     []Source `yaml:"sources"`
}

// PrimaryCategory is the first tag, or "" for an article without tags.
func (a Article) PrimaryCategory() string {
	if len(a.Tags) == 0 {
		return ""
	}
	return a.Tags[0]
}

type document struct {
	Articles []Article `yaml:"articles"`
}
