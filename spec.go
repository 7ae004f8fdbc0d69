package kwcheck

import (
	"fmt"
	"reflect"
	"sort"
)

// Spec is the declared rule set for one parameter: a type check, a single
// validator, or a chain of either. Values are built with Type, TypeOf, Use,
// Func and Chain.
type Spec interface {
	spec()
}

// Specs maps parameter names to their declarations.
type Specs map[string]Spec

// TypeSpec requires the value's dynamic type to be assignable to Type.
type TypeSpec struct {
	Type reflect.Type
}

// ValidatorSpec runs a single validator.
type ValidatorSpec struct {
	Validator Validator
}

// ChainSpec runs its elements in declaration order.
type ChainSpec struct {
	Elems []Spec
}

func (TypeSpec) spec()      {}
func (ValidatorSpec) spec() {}
func (ChainSpec) spec()     {}

// Type declares a type check against T.
//
//	kwcheck.Type[string]()
//	kwcheck.Type[fmt.Stringer]() // any value implementing fmt.Stringer
func Type[T any]() Spec {
	return TypeSpec{Type: reflect.TypeFor[T]()}
}

// TypeOf declares a type check against t.
func TypeOf(t reflect.Type) Spec {
	return TypeSpec{Type: t}
}

// Use declares a single validator.
func Use(v Validator) Spec {
	return ValidatorSpec{Validator: v}
}

// Func declares a single validator function.
func Func(fn ValidatorFunc) Spec {
	if fn == nil {
		return ValidatorSpec{}
	}
	return ValidatorSpec{Validator: fn}
}

// Chain declares an ordered sequence of type checks and validators.
// Validators are accepted directly alongside Spec values, so
// Chain(Type[string](), validator.Email()) needs no wrapping.
func Chain(elems ...any) Spec {
	out := make([]Spec, 0, len(elems))
	for _, e := range elems {
		out = append(out, asSpec(e))
	}
	return ChainSpec{Elems: out}
}

// asSpec lifts a chain element to a Spec. Anything it cannot lift is kept
// as an invalidSpec so that New reports it against the parameter name.
func asSpec(e any) Spec {
	switch v := e.(type) {
	case nil:
		return nil
	case Spec:
		return v
	case Validator:
		return ValidatorSpec{Validator: v}
	case func(string, any) (any, error):
		return ValidatorSpec{Validator: ValidatorFunc(v)}
	case reflect.Type:
		return TypeSpec{Type: v}
	default:
		return invalidSpec{value: e}
	}
}

type invalidSpec struct {
	value any
}

func (invalidSpec) spec() {}

// checkDefinitions verifies every declaration in specs is well formed.
// Names are visited in sorted order so the reported parameter is stable.
func checkDefinitions(specs Specs) error {
	for _, name := range sortedKeys(specs) {
		if name == "" {
			return &DefinitionError{Param: `""`, Reason: "must have a non-empty name"}
		}
		if err := checkSpec(name, specs[name], false); err != nil {
			return err
		}
	}
	return nil
}

func checkSpec(name string, s Spec, inChain bool) error {
	switch v := s.(type) {
	case nil:
		if inChain {
			return &DefinitionError{Param: name, Reason: "is not a sequence of types or functions. value: nil"}
		}
		return &DefinitionError{Param: name, Reason: "must be either a type, function, sequence or list of types and functions"}
	case TypeSpec:
		if v.Type == nil {
			return &DefinitionError{Param: name, Reason: "declares a type check without a type"}
		}
	case ValidatorSpec:
		if isNilValidator(v.Validator) {
			return &DefinitionError{Param: name, Reason: "declares a nil validator"}
		}
	case ChainSpec:
		if inChain {
			return &DefinitionError{Param: name, Reason: "is not a sequence of types or functions. value: nested chain"}
		}
		for _, elem := range v.Elems {
			if err := checkSpec(name, elem, true); err != nil {
				return err
			}
		}
	case invalidSpec:
		if inChain {
			return &DefinitionError{Param: name, Reason: fmt.Sprintf("is not a sequence of types or functions. value: %v", v.value)}
		}
		return &DefinitionError{Param: name, Reason: "must be either a type, function, sequence or list of types and functions"}
	default:
		return &DefinitionError{Param: name, Reason: fmt.Sprintf("has unsupported spec %T", s)}
	}
	return nil
}

func isNilValidator(v Validator) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// elements flattens a spec into the sequence executed for one parameter.
func elements(s Spec) []Spec {
	if c, ok := s.(ChainSpec); ok {
		return c.Elems
	}
	return []Spec{s}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
