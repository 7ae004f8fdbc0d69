package validator

import (
	"fmt"
	"unicode/utf8"
)

// MaxLen rejects values longer than max characters. Negative bounds are treated as zero.
func MaxLen(max int, opts ...Option) *Rule {
	max = clampLength(max)
	return newRule(&Rule{
		name: "max_len",
		check: func(value any) bool {
			return utf8.RuneCountInString(stringify(value)) <= max
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s has too many characters", param)
		},
		key:    "validation.max_length",
		values: map[string]any{"max": max},
	}, opts)
}

// MinLen rejects values shorter than min characters. Negative bounds are treated as zero.
func MinLen(min int, opts ...Option) *Rule {
	min = clampLength(min)
	return newRule(&Rule{
		name: "min_len",
		check: func(value any) bool {
			return utf8.RuneCountInString(stringify(value)) >= min
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s string is too short", param)
		},
		key:    "validation.min_length",
		values: map[string]any{"min": min},
	}, opts)
}

// NotEmpty rejects values whose textual form is empty. Whitespace counts as content.
func NotEmpty(opts ...Option) *Rule {
	return newRule(&Rule{
		name: "not_empty",
		check: func(value any) bool {
			return stringify(value) != ""
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s string is empty", param)
		},
		key: "validation.required",
	}, opts)
}

func clampLength(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
