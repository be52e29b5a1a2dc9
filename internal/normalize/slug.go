// Package normalize validates and canonicalizes event and booking field values
// before they reach a repository. Every function here is pure.
package normalize

import (
	"regexp"
	"strings"
)

// spaceClass matches the same whitespace as ECMAScript's \s. RE2's \s is ASCII only.
const spaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	slugStripRegex      = regexp.MustCompile(`[^\w` + spaceClass + `-]`)
	slugWhitespaceRegex = regexp.MustCompile(`[` + spaceClass + `]+`)
	slugHyphenRegex     = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe lowercase slug from title.
// Distinct titles may produce the same slug; uniqueness is enforced by the store.
func GenerateSlug(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugStripRegex.ReplaceAllString(s, "")
	s = slugWhitespaceRegex.ReplaceAllString(s, "-")
	s = slugHyphenRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
