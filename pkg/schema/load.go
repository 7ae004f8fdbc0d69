package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrymomot/kwcheck"
)

// LoadDocument reads and parses the declaration file at path in fsys. The
// parser is picked from the file extension.
func LoadDocument(ctx context.Context, fsys fs.FS, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(ctx, content)
}

// Load reads the declaration file at path and compiles it with DefaultRegistry.
//
//	//go:embed checkers
//	var checkers embed.FS
//
//	signup, err := schema.Load(ctx, checkers, "checkers/signup.yaml")
func Load(ctx context.Context, fsys fs.FS, path string, opts ...kwcheck.Option) (*kwcheck.Checker, error) {
	return LoadWithRegistry(ctx, fsys, path, nil, opts...)
}

// LoadWithRegistry is like Load but resolves validator names through reg.
func LoadWithRegistry(ctx context.Context, fsys fs.FS, path string, reg *Registry, opts ...kwcheck.Option) (*kwcheck.Checker, error) {
	doc, err := LoadDocument(ctx, fsys, path)
	if err != nil {
		return nil, err
	}
	return Compile(doc, reg, opts...)
}
