package sanitizer

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/kwcheck/pkg/slug"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Capitalize upper-cases the first character and lower-cases the rest:
// "mICHAEL" becomes "Michael". Leading whitespace is preserved, so trim first.
// The first rune uses its single-rune upper case, so "ßen" stays "ßen".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(s[size:])
}

// Title upper-cases the first letter of every word and lower-cases the rest.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// NormalizeWhitespace collapses runs of whitespace into a single space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine converts a multi-line string to a single line by replacing
// line breaks with spaces and normalizing whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return NormalizeWhitespace(s)
}

// NormalizeUnicode converts a string to Unicode normalization form C, so that
// visually identical input compares equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes HTML tags and unescapes HTML entities until neither
// changes the string, so escaped markup such as "&lt;b&gt;" is removed too.
func StripHTML(s string) string {
	for {
		out := html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
		if out == s {
			return out
		}
		s = out
	}
}

// NormalizeEmail trims and lower-cases an address and collapses repeated dots
// in the local part. Strings without exactly one "@" are only trimmed and lower-cased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	// Consolidate consecutive dots to prevent delivery failures
	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// Slug converts s into a lower-case, hyphen-separated ASCII identifier.
func Slug(s string) string {
	return slug.Make(s)
}

// SlugWith returns a Slug transform configured with opts.
func SlugWith(opts ...slug.Option) func(string) string {
	return func(s string) string {
		return slug.Make(s, opts...)
	}
}
