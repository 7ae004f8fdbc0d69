package kwcheck

import (
	"errors"

	"github.com/mitchellh/mapstructure"
)

// BindTag is the struct tag Bind reads parameter names from.
const BindTag = "kwarg"

// ErrBind is returned when a validated mapping cannot be decoded into the target.
var ErrBind = errors.New("failed to bind parameters")

// Bind decodes params into out, which must be a non-nil pointer to a struct
// or map. Fields are matched by their `kwarg` tag, falling back to a
// case-insensitive field name match. Unset fields keep their current value.
//
//	type createUser struct {
//		Email string `kwarg:"email"`
//		Name  string `kwarg:"name"`
//	}
func Bind(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          BindTag,
		Result:           out,
		WeaklyTypedInput: false,
		ZeroFields:       false,
	})
	if err != nil {
		return errors.Join(ErrBind, err)
	}
	if err := dec.Decode(params); err != nil {
		return errors.Join(ErrBind, err)
	}
	return nil
}

// ValidateInto runs Validate and, on success, binds the sanitized mapping into out.
func (c *Checker) ValidateInto(params map[string]any, out any) error {
	if err := c.Validate(params); err != nil {
		return err
	}
	return Bind(params, out)
}
