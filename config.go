package kwcheck

import (
	"github.com/dmitrymomot/kwcheck/pkg/config"
	"github.com/dmitrymomot/kwcheck/pkg/logger"
)

// Config holds environment-driven checker defaults.
type Config struct {
	Mode      string `env:"MODE" envDefault:"sanitize"`
	Name      string `env:"NAME" envDefault:"kwcheck"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "KWCHECK_"

// LoadConfig reads Config from KWCHECK_* environment variables (and .env).
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the config into checker options. The logger writes to
// stdout unless extra logger options redirect it.
func (c Config) Options(logOpts ...logger.Option) ([]Option, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}

	lopts := append([]logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("kwcheck")),
	}, logOpts...)

	return []Option{
		WithMode(mode),
		WithName(c.Name),
		WithLogger(logger.New(lopts...)),
	}, nil
}
