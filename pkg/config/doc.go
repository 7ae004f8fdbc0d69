// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is loaded once per process (when present), an
// additional env file may be requested per call, and the environment is then
// parsed into any struct annotated with `env` tags.
//
// # Usage
//
//	type Settings struct {
//	    Mode     string `env:"MODE" envDefault:"sanitize"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("KWCHECK_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
