package article

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL slug: lowercase, punctuation stripped,
// whitespace runs collapsed to single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DefaultExcerpt derives an excerpt from the content head when none is given.
func DefaultExcerpt(content string) string {
	const max = 160
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}
