package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every YAML and JSON file in a directory of a filesystem.
// Files are read in lexical order and merged per language, so one language
// may be split across files. A key defined twice keeps the last value.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter reading dir in fsys. Use "." for the root.
// Returns nil if fsys is nil.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("file %s", name), err)
		}

		for lang, trans := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(trans))
			}
			merge(all[lang], trans)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslationsLoaded, a.dir)
	}
	return all, nil
}

// merge copies src into dst, descending into maps present in both.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sm, srcIsMap := v.(map[string]any)
		dm, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dm, sm)
			continue
		}
		dst[k] = v
	}
}
