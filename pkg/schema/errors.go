package schema

import "errors"

var (
	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML declaration")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON declaration")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading declaration file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read declaration file")
	ErrUnsupportedFormat    = errors.New("unsupported declaration file format")
	ErrEmptyDocument        = errors.New("declaration document is empty")

	// Registry operations
	ErrInvalidFactory = errors.New("invalid validator factory")
)
