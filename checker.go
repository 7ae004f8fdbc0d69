package kwcheck

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/kwcheck/pkg/logger"
)

const defaultCheckerName = "kwcheck"

// Checker enforces a set of required and optional parameter declarations.
// It is immutable after New and safe for concurrent use as long as the
// validators it references are, and each mapping has a single owner for the
// duration of a Validate call.
type Checker struct {
	name          string
	required      Specs
	optional      Specs
	requiredNames []string
	mode          Mode
	logger        *slog.Logger
	observer      Observer
}

// New validates the declarations and builds a Checker. Nil maps are treated
// as empty. A malformed declaration yields a *DefinitionError and no Checker.
func New(required, optional Specs, opts ...Option) (*Checker, error) {
	if err := checkDefinitions(required); err != nil {
		return nil, err
	}
	if err := checkDefinitions(optional); err != nil {
		return nil, err
	}
	for _, name := range sortedKeys(required) {
		if _, ok := optional[name]; ok {
			return nil, &DefinitionError{Param: name, Reason: "is declared both required and optional"}
		}
	}

	c := &Checker{
		name:          defaultCheckerName,
		required:      cloneSpecs(required),
		optional:      cloneSpecs(optional),
		requiredNames: sortedKeys(required),
		mode:          ModeSanitize,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is like New but panics on a malformed declaration.
func MustNew(required, optional Specs, opts ...Option) *Checker {
	c, err := New(required, optional, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the label used in logs and metrics.
func (c *Checker) Name() string { return c.name }

// Mode returns the checker mode.
func (c *Checker) Mode() Mode { return c.mode }

// Required returns the required parameter names in sorted order.
func (c *Checker) Required() []string { return slices.Clone(c.requiredNames) }

// Optional returns the optional parameter names in sorted order.
func (c *Checker) Optional() []string { return sortedKeys(c.optional) }

// Validate checks params against the declarations and stops at the first failure.
//
// Required names are checked for presence first. Supplied names are then
// visited in sorted order; each one runs its chain in declaration order. In
// ModeSanitize every element reads the current params[name] and its result is
// written back immediately, so replacements made before a failing element
// remain in params. A nil result leaves a non-nil value in place.
func (c *Checker) Validate(params map[string]any) error {
	err := c.validate(params)
	param, _ := ParamOf(err)
	if err != nil {
		c.logger.Debug("parameters rejected",
			logger.Checker(c.name),
			logger.Param(param),
			logger.Error(err),
		)
	}
	if c.observer != nil {
		c.observer.ObserveValidation(c.name, param, err)
	}
	return err
}

func (c *Checker) validate(params map[string]any) error {
	for _, name := range c.requiredNames {
		if _, ok := params[name]; !ok {
			return &MissingParameterError{Param: name}
		}
	}

	for _, name := range sortedKeys(params) {
		spec, ok := c.required[name]
		if !ok {
			spec, ok = c.optional[name]
		}
		if !ok {
			return &UnknownParameterError{Param: name}
		}
		if err := c.run(params, name, spec); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) run(params map[string]any, name string, spec Spec) error {
	supplied := params[name]
	for _, elem := range elements(spec) {
		value := supplied
		if c.mode == ModeSanitize {
			value = params[name]
		}

		switch e := elem.(type) {
		case TypeSpec:
			if actual, ok := matchesType(value, e.Type); !ok {
				return &TypeMismatchError{Param: name, Expected: e.Type, Actual: actual}
			}
		case ValidatorSpec:
			out, err := e.Validator.Validate(name, value)
			if err != nil {
				return wrapValidatorError(name, err)
			}
			if c.mode == ModeSanitize && !keepsValue(value, out) {
				params[name] = out
			}
		}
	}
	return nil
}

// keepsValue reports whether a validator result leaves the parameter alone.
// A nil result for a non-nil value means accepted without replacement.
func keepsValue(in, out any) bool {
	return out == nil && in != nil
}

// matchesType reports whether value is an instance of t. A nil value only
// satisfies interface types.
func matchesType(value any, t reflect.Type) (reflect.Type, bool) {
	vt := reflect.TypeOf(value)
	if vt == nil {
		return nil, t.Kind() == reflect.Interface
	}
	return vt, vt.AssignableTo(t)
}

func cloneSpecs(specs Specs) Specs {
	out := make(Specs, len(specs))
	for name, s := range specs {
		if chain, ok := s.(ChainSpec); ok {
			s = ChainSpec{Elems: slices.Clone(chain.Elems)}
		}
		out[name] = s
	}
	return out
}
