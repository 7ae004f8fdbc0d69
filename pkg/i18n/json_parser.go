package i18n

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// JSONParser implements the Parser interface for JSON files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content and returns a map of translations.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toLanguageMap(data)
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
