package schema

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// JSONParser implements Parser for JSON documents.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser. Numbers decode as float64.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyDocument
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if doc.empty() {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// SupportsFileExtension implements Parser.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
