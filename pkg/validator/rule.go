package validator

import (
	"fmt"
	"maps"

	"github.com/dmitrymomot/kwcheck"
)

// Rule is a configured leaf validator.
type Rule struct {
	name     string
	check    func(value any) bool
	message  func(param string) string
	key      string
	values   map[string]any
	override string
	fixedKey bool

	// kind, when set, runs before check. A value it rejects is reported with
	// kindMessage and kindKey instead of the rule's own message.
	kind        func(value any) bool
	kindMessage func(param string) string
	kindKey     string
}

var _ kwcheck.Validator = (*Rule)(nil)

// Option customizes a Rule.
type Option func(*Rule)

// WithMessage replaces the generated message. It is used verbatim and,
// unless WithTranslationKey is also given, no translation key is reported so
// translators fall back to the message itself.
func WithMessage(msg string) Option {
	return func(r *Rule) { r.override = msg }
}

// WithTranslationKey replaces the translation key reported with failures.
func WithTranslationKey(key string) Option {
	return func(r *Rule) {
		if key != "" {
			r.key = key
			r.kindKey = key
			r.fixedKey = true
		}
	}
}

func newRule(r *Rule, opts []Option) *Rule {
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name identifies the rule in logs and declarations.
func (r *Rule) Name() string { return r.name }

// Validate implements kwcheck.Validator. The value is always returned unchanged.
func (r *Rule) Validate(param string, value any) (any, error) {
	if r.kind != nil && !r.kind(value) {
		return value, r.fail(param, r.kindMessage, r.kindKey)
	}
	if !r.check(value) {
		return value, r.fail(param, r.message, r.key)
	}
	return value, nil
}

func (r *Rule) fail(param string, message func(string) string, key string) error {
	msg := r.override
	if msg == "" {
		msg = message(param)
	} else if !r.fixedKey {
		key = ""
	}
	values := maps.Clone(r.values)
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["param"] = param
	return &kwcheck.ValidationError{
		Param:             param,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// stringify returns the textual form string rules operate on.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
