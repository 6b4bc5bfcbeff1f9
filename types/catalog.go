package types

// Sound represents one playable clip in the catalog
type Sound struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Season        string   `json:"season"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Path          string   `json:"path"`
	ThumbnailPath string   `json:"thumbnailPath"`
	Description   string   `json:"description"`
	Source        string   `json:"source"`
	WikiLink      string   `json:"wikiLink"`
}

// Season represents one season within a category
type Season struct {
	Name string   `json:"name"`
	Path string   `json:"path"`
	Tags []string `json:"tags"`
}

// Category represents a named grouping of seasons
type Category struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Seasons []Season `json:"seasons"`
}

// Catalog is the root catalog document loaded from data.json
type Catalog struct {
	Categories []Category `json:"categories"`
	Sounds     []Sound    `json:"sounds"`
}

// Tag is a derived tag entry: a name and how many sounds carry it.
// It is recomputed from the catalog, never persisted.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FilterState holds the user-chosen search/category/season/tag constraints.
// The zero value means "no filtering".
type FilterState struct {
	Search   string   `json:"search"`
	Category string   `json:"category"`
	Season   string   `json:"season"`
	Tags     []string `json:"tags"`
}

// IsEmpty reports whether the filter state constrains nothing
func (f FilterState) IsEmpty() bool {
	return f.Search == "" && f.Category == "" && f.Season == "" && len(f.Tags) == 0
}

// Normalize replaces nil collections with empty ones so consumers never
// have to nil-check. Malformed catalog entries (missing tags arrays etc.)
// are repaired here at load time, not at filter time.
func (c *Catalog) Normalize() {
	if c.Categories == nil {
		c.Categories = []Category{}
	}
	if c.Sounds == nil {
		c.Sounds = []Sound{}
	}
	for i := range c.Categories {
		if c.Categories[i].Seasons == nil {
			c.Categories[i].Seasons = []Season{}
		}
		for j := range c.Categories[i].Seasons {
			if c.Categories[i].Seasons[j].Tags == nil {
				c.Categories[i].Seasons[j].Tags = []string{}
			}
		}
	}
	for i := range c.Sounds {
		if c.Sounds[i].Tags == nil {
			c.Sounds[i].Tags = []string{}
		}
	}
}
