package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// Default returns a translator holding the built-in English and Spanish
// messages for every kwcheck error and validator.
func Default(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(locales, "locales"), opts...)
}
