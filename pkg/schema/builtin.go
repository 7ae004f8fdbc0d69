package schema

import (
	"github.com/dmitrymomot/kwcheck"
	"github.com/dmitrymomot/kwcheck/pkg/sanitizer"
	"github.com/dmitrymomot/kwcheck/pkg/slug"
	"github.com/dmitrymomot/kwcheck/pkg/validator"
)

// ruleArgs are accepted by every validator factory.
type ruleArgs struct {
	Message        string `mapstructure:"message"`
	TranslationKey string `mapstructure:"translation_key"`
}

func (a ruleArgs) options() []validator.Option {
	var opts []validator.Option
	if a.Message != "" {
		opts = append(opts, validator.WithMessage(a.Message))
	}
	if a.TranslationKey != "" {
		opts = append(opts, validator.WithTranslationKey(a.TranslationKey))
	}
	return opts
}

func (a ruleArgs) transformOptions() []sanitizer.Option {
	var opts []sanitizer.Option
	if a.Message != "" {
		opts = append(opts, sanitizer.WithMessage(a.Message))
	}
	if a.TranslationKey != "" {
		opts = append(opts, sanitizer.WithTranslationKey(a.TranslationKey))
	}
	return opts
}

// DefaultRegistry returns a new registry holding every validator from
// pkg/validator and every transform from pkg/sanitizer:
//
//	email, uuid, not_empty          [message, translation_key]
//	regex, no_regex                 pattern, [message, translation_key]
//	one_of                          values ([]string), [message, translation_key]
//	one_of_int                      values ([]int), [message, translation_key]
//	min_len, max_len                min / max, [message, translation_key]
//	range                           min, max, [message, translation_key]
//	trim, lower, upper, capitalize, title, normalize_whitespace, single_line,
//	normalize_unicode, remove_control_chars, strip_html, normalize_email
//	                                [message, translation_key]
//	slug                            [max_length, separator, message, translation_key]
//
// Callers may register more factories on the returned registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("email", simpleRule(validator.Email))
	r.MustRegister("uuid", simpleRule(validator.UUID))
	r.MustRegister("not_empty", simpleRule(validator.NotEmpty))

	r.MustRegister("regex", patternRule(validator.Regex))
	r.MustRegister("no_regex", patternRule(validator.NoRegex))

	r.MustRegister("one_of", func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule   ruleArgs `mapstructure:",squash"`
			Values []string `mapstructure:"values"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		return validator.OneOf(a.Values, a.Rule.options()...), nil
	})
	r.MustRegister("one_of_int", func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule   ruleArgs `mapstructure:",squash"`
			Values []int    `mapstructure:"values"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		return validator.OneOfInt(a.Values, a.Rule.options()...), nil
	})

	r.MustRegister("min_len", func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule ruleArgs `mapstructure:",squash"`
			Min  *int     `mapstructure:"min"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		if a.Min == nil {
			return nil, &kwcheck.ConfigurationError{Validator: "min_len", Reason: "requires argument min"}
		}
		return validator.MinLen(*a.Min, a.Rule.options()...), nil
	})
	r.MustRegister("max_len", func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule ruleArgs `mapstructure:",squash"`
			Max  *int     `mapstructure:"max"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		if a.Max == nil {
			return nil, &kwcheck.ConfigurationError{Validator: "max_len", Reason: "requires argument max"}
		}
		return validator.MaxLen(*a.Max, a.Rule.options()...), nil
	})

	r.MustRegister("range", func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule ruleArgs `mapstructure:",squash"`
			Min  *float64 `mapstructure:"min"`
			Max  *float64 `mapstructure:"max"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		if a.Min == nil || a.Max == nil {
			return nil, &kwcheck.ConfigurationError{Validator: "range", Reason: "requires arguments min and max"}
		}
		return validator.Range(*a.Min, *a.Max, a.Rule.options()...)
	})

	transforms := map[string]func(string) string{
		"trim":                 sanitizer.Trim,
		"lower":                sanitizer.ToLower,
		"upper":                sanitizer.ToUpper,
		"capitalize":           sanitizer.Capitalize,
		"title":                sanitizer.Title,
		"normalize_whitespace": sanitizer.NormalizeWhitespace,
		"single_line":          sanitizer.SingleLine,
		"normalize_unicode":    sanitizer.NormalizeUnicode,
		"remove_control_chars": sanitizer.RemoveControlChars,
		"strip_html":           sanitizer.StripHTML,
		"normalize_email":      sanitizer.NormalizeEmail,
	}
	for name, fn := range transforms {
		r.MustRegister(name, transformFactory(name, fn))
	}

	r.MustRegister("slug", func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule      ruleArgs `mapstructure:",squash"`
			MaxLength int      `mapstructure:"max_length"`
			Separator string   `mapstructure:"separator"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		if a.MaxLength < 0 {
			return nil, &kwcheck.ConfigurationError{Validator: "slug", Reason: "max_length must not be negative"}
		}
		slugify := sanitizer.SlugWith(slug.MaxLength(a.MaxLength), slug.Separator(a.Separator))
		return sanitizer.Named("slug", slugify).With(a.Rule.transformOptions()...), nil
	})

	return r
}

func simpleRule(build func(...validator.Option) *validator.Rule) Factory {
	return func(args Args) (kwcheck.Validator, error) {
		var a ruleArgs
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		return build(a.options()...), nil
	}
}

func patternRule(build func(string, ...validator.Option) (*validator.Rule, error)) Factory {
	return func(args Args) (kwcheck.Validator, error) {
		var a struct {
			Rule    ruleArgs `mapstructure:",squash"`
			Pattern string   `mapstructure:"pattern"`
		}
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		return build(a.Pattern, a.Rule.options()...)
	}
}

// transformFactory accepts only message and translation_key.
func transformFactory(name string, fn func(string) string) Factory {
	return func(args Args) (kwcheck.Validator, error) {
		var a ruleArgs
		if err := args.Decode(&a); err != nil {
			return nil, err
		}
		return sanitizer.Named(name, fn).With(a.transformOptions()...), nil
	}
}
