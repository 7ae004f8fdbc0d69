package schema

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements Parser for YAML documents.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements Parser.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if doc.empty() {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// SupportsFileExtension implements Parser.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
