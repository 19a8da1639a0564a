// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a display name: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, leading/trailing hyphens
// trimmed. Slugs are stored alongside the name and are not checked for
// global uniqueness.
func Slugify(name string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
