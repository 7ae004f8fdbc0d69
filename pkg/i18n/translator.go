package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or matched.
const DefaultLanguage = "en"

// Translatable is implemented by errors that carry a translation key and
// named values, such as every error returned by kwcheck.
type Translatable interface {
	Translation() (key string, values map[string]any)
}

// Translator renders translation keys for a language. It is safe for
// concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	matcher        language.Matcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.languages = t.supportedLanguages()
	t.matcher = t.buildMatcher()
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.languages)
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslation)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations map for language %s", ErrInvalidTranslation, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// buildMatcher orders the default language first so it wins ties.
func (t *Translator) buildMatcher() language.Matcher {
	if len(t.languages) == 0 {
		return nil
	}
	ordered := make([]string, 0, len(t.languages))
	if _, ok := t.translations[t.defaultLang]; ok {
		ordered = append(ordered, t.defaultLang)
	}
	for _, lang := range t.languages {
		if lang != t.defaultLang {
			ordered = append(ordered, lang)
		}
	}
	t.languages = ordered

	tags := make([]language.Tag, len(ordered))
	for i, lang := range ordered {
		tags[i] = language.Make(lang)
	}
	return language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// Match returns the supported language best matching lang, which may be a
// BCP 47 tag ("es-MX") or an Accept-Language value ("es-MX,es;q=0.9").
// It returns the default language when nothing matches, and false if that
// language is not loaded either.
func (t *Translator) Match(lang string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match(lang)
}

func (t *Translator) match(lang string) (string, bool) {
	if _, ok := t.translations[lang]; ok {
		return lang, true
	}
	if t.matcher != nil && strings.TrimSpace(lang) != "" {
		if tags, _, err := language.ParseAcceptLanguage(lang); err == nil && len(tags) > 0 {
			_, idx, conf := t.matcher.Match(tags...)
			if conf != language.No {
				return t.languages[idx], true
			}
		}
	}
	if _, ok := t.translations[t.defaultLang]; ok {
		return t.defaultLang, true
	}
	return "", false
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.range" reads m["validation"]["range"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}
		current = currentMap
	}

	return nil, false
}

// lookup returns the string translation for key in the language matched
// from lang.
func (t *Translator) lookup(lang, key string) (string, bool) {
	resolved, ok := t.match(lang)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := t.getTranslation(t.translations[resolved], key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", resolved, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", resolved, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// HasTranslation reports whether key is translated for exactly lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = t.getTranslation(langMap, key)
	return ok
}

// T translates key for lang. Arguments are key/value pairs substituted into
// "%{name}" placeholders; an odd trailing argument is ignored.
//
// The language is matched as described on Match. If no translation is found
// the key itself is returned, or an empty string when WithFallbackToKey(false)
// was given.
//
//	// "validation.range": "parameter %{param} must be between %{min} and %{max}"
//	msg := translator.T("en", "validation.range", "param", "age", "min", "0", "max", "150")
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key with an explicit fallback used when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return defaultValue
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LanguageFromContext(ctx), key, args...)
}

// Error renders err in lang. Errors exposing Translation anywhere in their
// chain are translated with their key and values; everything else, and keys
// with no translation, fall back to err.Error(). A nil error renders as "".
func (t *Translator) Error(lang string, err error) string {
	if err == nil {
		return ""
	}

	var tr Translatable
	if !errors.As(err, &tr) {
		return err.Error()
	}

	key, values := tr.Translation()
	if key == "" {
		return err.Error()
	}
	return t.Td(lang, key, err.Error(), valueArgs(values)...)
}

// ErrorContext renders err using the language stored in ctx.
func (t *Translator) ErrorContext(ctx context.Context, err error) string {
	return t.Error(LanguageFromContext(ctx), err)
}

func valueArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(values)*2)
	for _, k := range keys {
		v := values[k]
		if v == nil {
			args = append(args, k, "")
			continue
		}
		args = append(args, k, fmt.Sprint(v))
	}
	return args
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key/value pairs. Unknown
// placeholders are kept as is.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
