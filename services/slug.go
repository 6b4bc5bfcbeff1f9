package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^a-z0-9_]`)
)

// CategorySlug derives the storage subfolder for a category: lowercased,
// whitespace collapsed to hyphens. Empty input slugs to "uncategorized".
func CategorySlug(name string) string {
	slug := whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	if slug == "" {
		return "uncategorized"
	}
	return slug
}

// TitleSlug derives the record filename fragment for a title: lowercased,
// whitespace collapsed to underscores, everything outside [a-z0-9_]
// stripped. Empty input slugs to "unnamed".
func TitleSlug(title string) string {
	slug := whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "_")
	slug = unsafeRe.ReplaceAllString(slug, "")
	if slug == "" {
		return "unnamed"
	}
	return slug
}
