package schema

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/dmitrymomot/kwcheck"
)

// typeNames maps declaration type names to Go types.
var typeNames = map[string]reflect.Type{
	"string":  reflect.TypeFor[string](),
	"int":     reflect.TypeFor[int](),
	"int64":   reflect.TypeFor[int64](),
	"float64": reflect.TypeFor[float64](),
	"bool":    reflect.TypeFor[bool](),
	"list":    reflect.TypeFor[[]any](),
	"map":     reflect.TypeFor[map[string]any](),
	"any":     reflect.TypeFor[any](),
}

// TypeNames returns the type names usable in declarations, sorted.
func TypeNames() []string {
	return slices.Sorted(maps.Keys(typeNames))
}

// Compile turns doc into a Checker. A nil registry means DefaultRegistry.
//
// The document name and mode are applied first, so opts override them.
// Unknown names and malformed elements yield *kwcheck.DefinitionError;
// arguments a factory rejects yield *kwcheck.ConfigurationError.
func Compile(doc *Document, reg *Registry, opts ...kwcheck.Option) (*kwcheck.Checker, error) {
	if doc == nil {
		return nil, ErrEmptyDocument
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	required, err := compileSpecs(doc.Required, reg)
	if err != nil {
		return nil, err
	}
	optional, err := compileSpecs(doc.Optional, reg)
	if err != nil {
		return nil, err
	}

	base := make([]kwcheck.Option, 0, len(opts)+2)
	if doc.Name != "" {
		base = append(base, kwcheck.WithName(doc.Name))
	}
	if doc.Mode != "" {
		mode, err := kwcheck.ParseMode(doc.Mode)
		if err != nil {
			return nil, err
		}
		base = append(base, kwcheck.WithMode(mode))
	}

	return kwcheck.New(required, optional, append(base, opts...)...)
}

func compileSpecs(raw map[string]any, reg *Registry) (kwcheck.Specs, error) {
	specs := make(kwcheck.Specs, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		spec, err := compileSpec(name, raw[name], reg)
		if err != nil {
			return nil, err
		}
		specs[name] = spec
	}
	return specs, nil
}

func compileSpec(name string, raw any, reg *Registry) (kwcheck.Spec, error) {
	list, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nil, &kwcheck.DefinitionError{Param: name, Reason: "must be either a type, function, sequence or list of types and functions"}
		}
		return compileElement(name, raw, reg)
	}

	elems := make([]any, 0, len(list))
	for _, item := range list {
		if _, nested := item.([]any); nested {
			return nil, &kwcheck.DefinitionError{Param: name, Reason: "is not a sequence of types or functions. value: nested list"}
		}
		if item == nil {
			return nil, &kwcheck.DefinitionError{Param: name, Reason: "is not a sequence of types or functions. value: nil"}
		}
		elem, err := compileElement(name, item, reg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return kwcheck.Chain(elems...), nil
}

func compileElement(name string, raw any, reg *Registry) (kwcheck.Spec, error) {
	switch v := raw.(type) {
	case string:
		if t, ok := typeNames[v]; ok {
			return kwcheck.TypeOf(t), nil
		}
		return compileValidator(name, v, nil, reg)
	case map[string]any:
		if len(v) != 1 {
			return nil, &kwcheck.DefinitionError{Param: name, Reason: fmt.Sprintf("must name exactly one validator per element, got %d keys", len(v))}
		}
		for vname, rawArgs := range v {
			args, err := toArgs(vname, rawArgs)
			if err != nil {
				return nil, err
			}
			return compileValidator(name, vname, args, reg)
		}
	}
	return nil, &kwcheck.DefinitionError{Param: name, Reason: fmt.Sprintf("is not a sequence of types or functions. value: %v", raw)}
}

func compileValidator(name, vname string, args Args, reg *Registry) (kwcheck.Spec, error) {
	v, found, err := reg.build(vname, args)
	if !found {
		return nil, &kwcheck.DefinitionError{Param: name, Reason: fmt.Sprintf("references unknown type or validator %q", vname)}
	}
	if err != nil {
		return nil, err
	}
	return kwcheck.Use(v), nil
}

func toArgs(vname string, raw any) (Args, error) {
	switch v := raw.(type) {
	case nil:
		return Args{}, nil
	case map[string]any:
		return Args(v), nil
	default:
		return nil, &kwcheck.ConfigurationError{Validator: vname, Reason: fmt.Sprintf("expects a map of arguments, got %T", raw)}
	}
}
