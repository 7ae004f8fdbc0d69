package sanitizer

import "regexp"

// Pre-compiled regular expressions
var (
	dotRegex        = regexp.MustCompile(`\.+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)
