package kwcheck

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors. Every typed error below matches exactly one of them with errors.Is.
var (
	// ErrDefinition is returned by New when a declared spec has an unrecognized shape.
	ErrDefinition = errors.New("invalid parameter definition")

	// ErrConfiguration is returned by validator factories given malformed configuration.
	ErrConfiguration = errors.New("invalid validator configuration")

	// ErrMissingParameter is returned when a required parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnknownParameter is returned when a supplied parameter is not declared.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrTypeMismatch is returned when a value fails a type check.
	ErrTypeMismatch = errors.New("parameter type mismatch")

	// ErrValidation is returned when a validator rejects a value.
	ErrValidation = errors.New("parameter validation failed")
)

// DefinitionError describes a malformed declaration detected at construction time.
type DefinitionError struct {
	Param  string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("parameter definition of %s %s", e.Param, e.Reason)
}

func (e *DefinitionError) Is(target error) bool { return target == ErrDefinition }

func (e *DefinitionError) Translation() (string, map[string]any) {
	return "kwcheck.definition", map[string]any{"param": e.Param, "reason": e.Reason}
}

// ConfigurationError is returned by validator factories. Validator names the
// factory, Err holds the underlying cause when there is one.
type ConfigurationError struct {
	Validator string
	Reason    string
	Err       error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validator %s %s: %v", e.Validator, e.Reason, e.Err)
	}
	return fmt.Sprintf("validator %s %s", e.Validator, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Translation() (string, map[string]any) {
	return "kwcheck.configuration", map[string]any{"validator": e.Validator, "reason": e.Reason}
}

// MissingParameterError reports a required parameter absent from the mapping.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %s is not passed as parameter", e.Param)
}

func (e *MissingParameterError) Is(target error) bool { return target == ErrMissingParameter }

func (e *MissingParameterError) Translation() (string, map[string]any) {
	return "kwcheck.missing", map[string]any{"param": e.Param}
}

// UnknownParameterError reports a supplied parameter that is neither required nor optional.
type UnknownParameterError struct {
	Param string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("parameter name %s is not defined", e.Param)
}

func (e *UnknownParameterError) Is(target error) bool { return target == ErrUnknownParameter }

func (e *UnknownParameterError) Translation() (string, map[string]any) {
	return "kwcheck.unknown", map[string]any{"param": e.Param}
}

// TypeMismatchError reports a value whose dynamic type does not satisfy a type spec.
// Actual is nil when the value itself was nil.
type TypeMismatchError struct {
	Param    string
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %s not of expected type %s", e.Param, typeName(e.Expected))
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *TypeMismatchError) Translation() (string, map[string]any) {
	return "kwcheck.type_mismatch", map[string]any{
		"param":    e.Param,
		"expected": typeName(e.Expected),
		"actual":   typeName(e.Actual),
	}
}

// ValidationError is a rejection produced by a validator. Message is either
// the validator's generated default or the override supplied to its factory.
type ValidationError struct {
	Param             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Err               error
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("parameter %s is invalid: %v", e.Param, e.Err)
	}
	return fmt.Sprintf("parameter %s is invalid", e.Param)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

// Translation falls back to a generic key when the validator did not provide one.
// The parameter name is always present under "param".
func (e *ValidationError) Translation() (string, map[string]any) {
	key := e.TranslationKey
	if key == "" {
		key = "kwcheck.invalid"
	}
	values := make(map[string]any, len(e.TranslationValues)+2)
	for k, v := range e.TranslationValues {
		values[k] = v
	}
	values["param"] = e.Param
	if _, ok := values["message"]; !ok {
		values["message"] = e.Error()
	}
	return key, values
}

// ParamOf returns the parameter a call-time or definition error refers to.
func ParamOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var (
		missing  *MissingParameterError
		unknown  *UnknownParameterError
		mismatch *TypeMismatchError
		invalid  *ValidationError
		def      *DefinitionError
	)
	switch {
	case errors.As(err, &missing):
		return missing.Param, true
	case errors.As(err, &unknown):
		return unknown.Param, true
	case errors.As(err, &mismatch):
		return mismatch.Param, true
	case errors.As(err, &invalid):
		return invalid.Param, true
	case errors.As(err, &def):
		return def.Param, true
	}
	return "", false
}

// wrapValidatorError normalizes whatever a validator returned into a *ValidationError
// naming the parameter.
func wrapValidatorError(name string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if verr.Param == "" {
			cp := *verr
			cp.Param = name
			return &cp
		}
		return verr
	}
	// Type mismatch, missing and unknown parameter failures raised from inside a
	// validator keep their identity. Anything else, definition errors included,
	// becomes a ValidationError that still unwraps to the original.
	if errors.Is(err, ErrTypeMismatch) || errors.Is(err, ErrMissingParameter) || errors.Is(err, ErrUnknownParameter) {
		return err
	}
	return &ValidationError{Param: name, Message: err.Error(), Err: err}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
