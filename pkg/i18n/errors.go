package i18n

import "errors"

// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Filesystem operations
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadDir      = errors.New("failed to read translations directory")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrNoTranslationsLoaded = errors.New("no translation files found")

	// Translator construction
	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrInvalidTranslation = errors.New("invalid translations")
)
