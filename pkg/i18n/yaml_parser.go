package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns a map of translations.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toLanguageMap(data)
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// toLanguageMap requires every top-level value to be a map of translations.
func toLanguageMap(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		trans, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidTranslation, lang, val)
		}
		result[lang] = trans
	}
	return result, nil
}
