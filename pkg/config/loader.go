package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option customizes a single Load call.
type Option func(*options)

type options struct {
	prefix  string
	envFile string
	environ map[string]string
}

// WithPrefix only reads variables starting with prefix; tags are written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFile loads variables from path before parsing. Variables already
// present in the process environment win. A missing file is an error.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithEnviron parses from the given variables instead of the process environment.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.environ = vars
		}
	}
}

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file in the working directory is loaded once per process
// if it exists.
//
// Example:
//
//	type Settings struct {
//		Mode string `env:"MODE" envDefault:"sanitize"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("KWCHECK_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environ != nil {
		envOpts.Environment = o.environ
	}
	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(err)
	}
}
