package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes translation files. The outer map of the result is keyed by
// language code, the inner one holds (possibly nested) translation keys.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
