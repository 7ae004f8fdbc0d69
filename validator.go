package kwcheck

// Validator checks, and optionally replaces, the value of one parameter.
//
// Validate returns the value to keep. Returning value unchanged, or nil,
// accepts it; returning anything else replaces it in the mapping when the
// checker runs in ModeSanitize. A replacement must be of the same conceptual
// type as the original. A validator cannot replace a value with nil.
// Rejections are reported through the error.
type Validator interface {
	Validate(name string, value any) (any, error)
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(name string, value any) (any, error)

func (f ValidatorFunc) Validate(name string, value any) (any, error) {
	return f(name, value)
}

// Check adapts a predicate that never replaces the value.
func Check(fn func(name string, value any) error) Validator {
	if fn == nil {
		return nil
	}
	return ValidatorFunc(func(name string, value any) (any, error) {
		if err := fn(name, value); err != nil {
			return value, err
		}
		return value, nil
	})
}

// Transform adapts a name-independent rewrite of the value.
func Transform(fn func(value any) (any, error)) Validator {
	if fn == nil {
		return nil
	}
	return ValidatorFunc(func(_ string, value any) (any, error) {
		return fn(value)
	})
}
