package services

import (
	"strings"

	"tokusound/types"
)

// FilterSounds returns the sounds matching the filter state, preserving
// input order. It is pure: the input slice is never mutated and identical
// arguments always produce identical output. All four predicates are ANDed.
//
// Search is case-insensitive and matches a substring of any of title,
// season, category or a tag. Category and season are exact matches. Tag
// selection is conjunctive: every selected tag must be present on the
// sound. Tags compare by exact string equality, matching the names the tag
// index hands out.
func FilterSounds(sounds []types.Sound, state types.FilterState) []types.Sound {
	if state.IsEmpty() {
		return sounds
	}

	result := make([]types.Sound, 0, len(sounds))
	for _, sound := range sounds {
		if MatchesFilter(sound, state) {
			result = append(result, sound)
		}
	}
	return result
}

// MatchesFilter reports whether a single sound passes the filter state
func MatchesFilter(sound types.Sound, state types.FilterState) bool {
	return matchesSearch(sound, state.Search) &&
		(state.Category == "" || sound.Category == state.Category) &&
		(state.Season == "" || sound.Season == state.Season) &&
		containsAllTags(sound.Tags, state.Tags)
}

func matchesSearch(sound types.Sound, search string) bool {
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(sound.Title), needle) ||
		strings.Contains(strings.ToLower(sound.Season), needle) ||
		strings.Contains(strings.ToLower(sound.Category), needle) {
		return true
	}
	for _, tag := range sound.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func containsAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
