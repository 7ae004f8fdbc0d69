package sanitizer

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/kwcheck"
)

// Transformer is a kwcheck.Validator that rewrites string values.
type Transformer struct {
	name       string
	transforms []func(string) string
	message    string
	key        string
}

// Option customizes the failure a Transformer reports for non-string values.
type Option func(*Transformer)

// WithMessage replaces the generated message. As in pkg/validator, no
// translation key is reported unless WithTranslationKey is also given.
func WithMessage(msg string) Option {
	return func(t *Transformer) { t.message = msg }
}

// WithTranslationKey replaces the translation key reported with failures.
func WithTranslationKey(key string) Option {
	return func(t *Transformer) { t.key = key }
}

var _ kwcheck.Validator = (*Transformer)(nil)

// String builds a validator applying transforms in order. The result is
// returned as a plain string.
func String(transforms ...func(string) string) *Transformer {
	return Named("sanitize", transforms...)
}

// Named is like String but labels the transformer, which shows up in declarations.
func Named(name string, transforms ...func(string) string) *Transformer {
	clean := make([]func(string) string, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			clean = append(clean, t)
		}
	}
	return &Transformer{name: name, transforms: clean}
}

// With returns a copy of t configured with opts.
//
//	sanitizer.String(sanitizer.Trim).With(sanitizer.WithMessage("name must be text"))
func (t *Transformer) With(opts ...Option) *Transformer {
	cp := *t
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// Name identifies the transformer.
func (t *Transformer) Name() string { return t.name }

// Validate implements kwcheck.Validator.
func (t *Transformer) Validate(param string, value any) (any, error) {
	s, ok := asString(value)
	if !ok {
		return value, t.fail(param)
	}
	return Apply(s, t.transforms...), nil
}

func (t *Transformer) fail(param string) error {
	msg, key := t.message, t.key
	if msg == "" {
		msg = fmt.Sprintf("parameter %s must be a string to be sanitized", param)
		if key == "" {
			key = "validation.string"
		}
	}
	return &kwcheck.ValidationError{
		Param:             param,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: map[string]any{"param": param},
	}
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
