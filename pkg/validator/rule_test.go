package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kwcheck"
	"github.com/dmitrymomot/kwcheck/pkg/validator"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestRule_Validate(t *testing.T) {
	t.Run("returns the value unchanged on success", func(t *testing.T) {
		out, err := validator.NotEmpty().Validate("name", "Michael")
		require.NoError(t, err)
		assert.Equal(t, "Michael", out)
	})

	t.Run("returns a validation error naming the parameter", func(t *testing.T) {
		_, err := validator.NotEmpty().Validate("name", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, kwcheck.ErrValidation))

		var verr *kwcheck.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Param)
		assert.Equal(t, "parameter name string is empty", verr.Message)
		assert.Equal(t, "validation.required", verr.TranslationKey)
		assert.Equal(t, "name", verr.TranslationValues["param"])
	})

	t.Run("override message is used verbatim", func(t *testing.T) {
		_, err := validator.NotEmpty(validator.WithMessage("Name, please!")).Validate("name", "")
		require.Error(t, err)
		assert.Equal(t, "Name, please!", err.Error())

		key, values := err.(*kwcheck.ValidationError).Translation()
		assert.Equal(t, "kwcheck.invalid", key)
		assert.Equal(t, "Name, please!", values["message"])
	})

	t.Run("override message with translation key", func(t *testing.T) {
		_, err := validator.NotEmpty(
			validator.WithMessage("Name, please!"),
			validator.WithTranslationKey("user.name.empty"),
		).Validate("name", "")
		var verr *kwcheck.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Name, please!", verr.Message)
		assert.Equal(t, "user.name.empty", verr.TranslationKey)
	})

	t.Run("custom translation key", func(t *testing.T) {
		_, err := validator.NotEmpty(validator.WithTranslationKey("user.name.empty")).Validate("name", "")
		var verr *kwcheck.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "user.name.empty", verr.TranslationKey)
	})

	t.Run("failures do not share translation values", func(t *testing.T) {
		rule := validator.MaxLen(1)
		_, err1 := rule.Validate("a", "xx")
		_, err2 := rule.Validate("b", "yy")

		var v1, v2 *kwcheck.ValidationError
		require.ErrorAs(t, err1, &v1)
		require.ErrorAs(t, err2, &v2)
		assert.Equal(t, "a", v1.TranslationValues["param"])
		assert.Equal(t, "b", v2.TranslationValues["param"])
	})

	t.Run("string rules use the textual form of values", func(t *testing.T) {
		rule := validator.MaxLen(3)

		_, err := rule.Validate("n", 123)
		assert.NoError(t, err)
		_, err = rule.Validate("n", 1234)
		assert.Error(t, err)
		_, err = rule.Validate("n", []byte("abcd"))
		assert.Error(t, err)
		_, err = rule.Validate("n", stringer("abc"))
		assert.NoError(t, err)
	})

	t.Run("name identifies the rule", func(t *testing.T) {
		assert.Equal(t, "email", validator.Email().Name())
		assert.Equal(t, "regex", validator.MustRegex(`a`).Name())
		assert.Equal(t, "range", validator.MustRange(1, 2).Name())
	})
}
