package services

import (
	"sort"

	"tokusound/types"
)

// ExtractTags builds the tag index: every distinct tag name paired with the
// number of sounds carrying it. Tag names compare by exact string equality.
// Output order is unspecified; callers needing a stable order sort it
// themselves (see SortTagsByName).
func ExtractTags(sounds []types.Sound) []types.Tag {
	counts := make(map[string]int)
	order := []string{}

	for _, sound := range sounds {
		for _, tag := range sound.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]types.Tag, 0, len(order))
	for _, name := range order {
		tags = append(tags, types.Tag{Name: name, Count: counts[name]})
	}
	return tags
}

// SortTagsByName sorts a tag index alphabetically, in place
func SortTagsByName(tags []types.Tag) {
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
}
