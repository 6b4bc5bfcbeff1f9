package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tokusound/types"
)

// TestExtractTagsCounts tests tag occurrence counting
func TestExtractTagsCounts(t *testing.T) {
	sounds := []types.Sound{
		{ID: "1", Tags: []string{"loud", "battle"}},
		{ID: "2", Tags: []string{"loud"}},
		{ID: "3", Tags: []string{}},
	}

	tags := ExtractTags(sounds)

	counts := map[string]int{}
	for _, tag := range tags {
		counts[tag.Name] = tag.Count
	}
	assert.Equal(t, map[string]int{"loud": 2, "battle": 1}, counts)
}

// TestExtractTagsSumConsistent tests that counts sum to the total number
// of tag occurrences
func TestExtractTagsSumConsistent(t *testing.T) {
	sounds := []types.Sound{
		{ID: "1", Tags: []string{"a", "b", "c"}},
		{ID: "2", Tags: []string{"a", "c"}},
		{ID: "3", Tags: []string{"a"}},
	}

	total := 0
	for _, s := range sounds {
		total += len(s.Tags)
	}

	sum := 0
	for _, tag := range ExtractTags(sounds) {
		sum += tag.Count
	}
	assert.Equal(t, total, sum)
}

// TestExtractTagsExactEquality tests that tag names are not case-folded
func TestExtractTagsExactEquality(t *testing.T) {
	sounds := []types.Sound{
		{ID: "1", Tags: []string{"Loud"}},
		{ID: "2", Tags: []string{"loud"}},
	}

	tags := ExtractTags(sounds)
	assert.Len(t, tags, 2)
}

// TestExtractTagsEmpty tests the empty catalog case
func TestExtractTagsEmpty(t *testing.T) {
	assert.Empty(t, ExtractTags(nil))
	assert.Empty(t, ExtractTags([]types.Sound{{ID: "1", Tags: []string{}}}))
}

// TestSortTagsByName tests the presentation-side sort helper
func TestSortTagsByName(t *testing.T) {
	tags := []types.Tag{
		{Name: "zord", Count: 1},
		{Name: "battle", Count: 3},
		{Name: "monster", Count: 2},
	}

	SortTagsByName(tags)

	assert.Equal(t, "battle", tags[0].Name)
	assert.Equal(t, "monster", tags[1].Name)
	assert.Equal(t, "zord", tags[2].Name)
}
