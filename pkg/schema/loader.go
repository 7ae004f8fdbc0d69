package schema

import (
	"context"
	"io"
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/kwcheck"
	"github.com/dmitrymomot/kwcheck/pkg/cache"
)

// DefaultLoaderCapacity is the number of compiled checkers a Loader keeps
// when no capacity is given.
const DefaultLoaderCapacity = 128

// Loader compiles declaration files from a file system on first use and
// keeps the resulting checkers in an LRU cache keyed by path. It is safe for
// concurrent use; two goroutines missing the same path may both compile it.
type Loader struct {
	fsys     fs.FS
	registry *Registry
	capacity int
	opts     []kwcheck.Option
	logger   *slog.Logger
	checkers *cache.LRU[string, *kwcheck.Checker]
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRegistry resolves validator names through reg instead of a fresh
// DefaultRegistry.
func WithRegistry(reg *Registry) LoaderOption {
	return func(l *Loader) {
		if reg != nil {
			l.registry = reg
		}
	}
}

// WithCapacity bounds the number of cached checkers. Non-positive values are
// ignored.
func WithCapacity(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// WithCheckerOptions applies opts to every checker the Loader compiles.
// Options set here run after the document's own name and mode.
func WithCheckerOptions(opts ...kwcheck.Option) LoaderOption {
	return func(l *Loader) { l.opts = append(l.opts, opts...) }
}

// WithLoaderLogger sets the logger for cache activity.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader returns a Loader reading declarations from fsys.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:     fsys,
		registry: DefaultRegistry(),
		capacity: DefaultLoaderCapacity,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.checkers = cache.New(l.capacity, cache.WithEvictCallback(func(path string, _ *kwcheck.Checker) {
		l.logger.Debug("checker evicted", "path", path)
	}))
	return l
}

// Checker returns the compiled checker for path, loading it on a cache miss.
// Failed loads are not cached.
func (l *Loader) Checker(ctx context.Context, path string) (*kwcheck.Checker, error) {
	if c, ok := l.checkers.Get(path); ok {
		return c, nil
	}

	c, err := LoadWithRegistry(ctx, l.fsys, path, l.registry, l.opts...)
	if err != nil {
		l.logger.WarnContext(ctx, "checker load failed", "path", path, "error", err)
		return nil, err
	}
	l.checkers.Add(path, c)
	l.logger.DebugContext(ctx, "checker loaded", "path", path, "checker", c.Name())
	return c, nil
}

// Validate loads the checker for path and runs it against params.
func (l *Loader) Validate(ctx context.Context, path string, params map[string]any) error {
	c, err := l.Checker(ctx, path)
	if err != nil {
		return err
	}
	return c.Validate(params)
}

// Forget drops the cached checker for path so the next call reloads it.
func (l *Loader) Forget(path string) bool {
	return l.checkers.Remove(path)
}

// Reset drops every cached checker.
func (l *Loader) Reset() {
	l.checkers.Purge()
}

// Cached returns the cached paths from most to least recently used.
func (l *Loader) Cached() []string {
	return l.checkers.Keys()
}
