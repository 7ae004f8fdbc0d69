package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/dmitrymomot/kwcheck"
)

// Args holds the arguments written next to a validator name in a declaration.
type Args map[string]any

// Decode copies the arguments into out, a pointer to a struct whose fields are
// tagged with `mapstructure`. Numbers and strings convert weakly, so a YAML
// integer fills a float64 field. Keys with no matching field are an error.
func (a Args) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(a))
}

// Factory builds a validator from its declared arguments. Args is empty when
// the validator was referenced by name only.
type Factory func(args Args) (kwcheck.Validator, error)

// Registry maps validator names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name. Names that collide with a
// type name can never be referenced and are rejected.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.Join(ErrInvalidFactory, errors.New("name is empty"))
	}
	if f == nil {
		return errors.Join(ErrInvalidFactory, fmt.Errorf("factory for %q is nil", name))
	}
	if _, ok := typeNames[name]; ok {
		return errors.Join(ErrInvalidFactory, fmt.Errorf("%q is a type name", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// build runs the named factory and normalizes its failures.
func (r *Registry) build(name string, args Args) (kwcheck.Validator, bool, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, false, nil
	}
	if args == nil {
		args = Args{}
	}
	v, err := f(args)
	if err != nil {
		var cerr *kwcheck.ConfigurationError
		if errors.As(err, &cerr) {
			return nil, true, err
		}
		return nil, true, &kwcheck.ConfigurationError{Validator: name, Reason: "rejected its arguments", Err: err}
	}
	if v == nil {
		return nil, true, &kwcheck.ConfigurationError{Validator: name, Reason: "factory returned no validator"}
	}
	return v, true, nil
}
