package i18n

import "context"

type languageContextKey struct{}

// WithLanguage stores the preferred language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the language stored by WithLanguage, or
// DefaultLanguage when none is set.
func LanguageFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
