package schema

import (
	"context"
	"path"
	"strings"
)

// Parser decodes declaration documents from a specific file format.
type Parser interface {
	// Parse decodes content into a Document. Unknown top-level keys are rejected.
	Parse(ctx context.Context, content []byte) (*Document, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the extension is not recognized.
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
