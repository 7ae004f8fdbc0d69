package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/kwcheck"
)

// Regex accepts values whose textual form matches pattern at its start.
// The match is anchored at the beginning only: `\d+` accepts "12ab".
// Use `$` to anchor the end as well.
func Regex(pattern string, opts ...Option) (*Rule, error) {
	re, err := compileAnchored("regex", pattern)
	if err != nil {
		return nil, err
	}
	return newRule(&Rule{
		name: "regex",
		check: func(value any) bool {
			return re.MatchString(stringify(value))
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s does not conform to regex %s", param, pattern)
		},
		key:    "validation.regex_pattern",
		values: map[string]any{"pattern": pattern},
	}, opts), nil
}

// NoRegex is the complement of Regex: it rejects exactly the values Regex accepts.
func NoRegex(pattern string, opts ...Option) (*Rule, error) {
	re, err := compileAnchored("no_regex", pattern)
	if err != nil {
		return nil, err
	}
	return newRule(&Rule{
		name: "no_regex",
		check: func(value any) bool {
			return !re.MatchString(stringify(value))
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s does conform to regex %s", param, pattern)
		},
		key:    "validation.regex_not_pattern",
		values: map[string]any{"pattern": pattern},
	}, opts), nil
}

// MustRegex is like Regex but panics on an invalid pattern.
func MustRegex(pattern string, opts ...Option) *Rule {
	r, err := Regex(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// MustNoRegex is like NoRegex but panics on an invalid pattern.
func MustNoRegex(pattern string, opts ...Option) *Rule {
	r, err := NoRegex(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func compileAnchored(name, pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, &kwcheck.ConfigurationError{
			Validator: name,
			Reason:    fmt.Sprintf("pattern %s is not a valid regex", pattern),
			Err:       err,
		}
	}
	return regexp.MustCompile(`^(?:` + pattern + `)`), nil
}
