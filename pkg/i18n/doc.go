// Package i18n renders kwcheck errors and other translation keys in the
// caller's language.
//
// The package allows you to:
//
//   - Load translations from an in-memory map, any fs.FS (including embed.FS),
//     or custom storage by implementing the TranslationAdapter interface.
//   - Translate strings with named placeholders (`%{key}`).
//   - Render any error exposing Translation() (every kwcheck error does) in a
//     given language, falling back to its Error() text.
//   - Match requested languages ("es-MX", Accept-Language values) to the
//     loaded ones using golang.org/x/text/language.
//
// # Architecture
//
// The Translator holds a catalogue keyed by language code, where every
// language maps to nested keys addressed with dots ("validation.range").
// Adapters produce the catalogue; YAML and JSON parsers decode files:
//
//	en:
//	  validation:
//	    range: "parameter %{param} must be between %{min} and %{max}"
//
// Default loads the embedded English and Spanish catalogues covering every
// kwcheck error key and every validator in pkg/validator and pkg/sanitizer.
//
// # Usage
//
//	translator, err := i18n.Default(ctx)
//	if err != nil {
//		return err
//	}
//
//	if err := checker.Validate(params); err != nil {
//		msg := translator.Error("es", err)
//		// "falta el parámetro obligatorio email"
//	}
//
// Custom catalogues live next to the built-in keys:
//
//	translator, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(os.DirFS("locales"), "."),
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithMissingTranslationsLogging(true),
//	)
//
// Validators created with validator.WithMessage report no translation key
// unless validator.WithTranslationKey is given, so their message is rendered
// verbatim in every language.
package i18n
