package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kwcheck"
	"github.com/dmitrymomot/kwcheck/pkg/sanitizer"
)

type label string

type stringer struct{ v string }

func (s stringer) String() string { return s.v }

func TestTransformer_Validate(t *testing.T) {
	t.Parallel()

	t.Run("returns the transformed string", func(t *testing.T) {
		out, err := sanitizer.String(sanitizer.Trim, sanitizer.Capitalize).Validate("name", " michael ")
		require.NoError(t, err)
		assert.Equal(t, "Michael", out)
	})

	t.Run("accepts string-like values", func(t *testing.T) {
		tr := sanitizer.String(sanitizer.Trim)
		for _, in := range []any{label(" x "), []byte(" x "), stringer{" x "}} {
			out, err := tr.Validate("p", in)
			require.NoError(t, err)
			assert.Equal(t, "x", out)
		}
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		out, err := sanitizer.String(sanitizer.Trim).Validate("age", 42)
		require.Error(t, err)
		assert.Equal(t, 42, out)
		assert.EqualError(t, err, "parameter age must be a string to be sanitized")
		assert.ErrorIs(t, err, kwcheck.ErrValidation)
	})

	t.Run("override message", func(t *testing.T) {
		tr := sanitizer.String(sanitizer.Trim).With(sanitizer.WithMessage("name must be text"))
		_, err := tr.Validate("name", 42)
		require.Error(t, err)
		assert.EqualError(t, err, "name must be text")

		key, values := err.(*kwcheck.ValidationError).Translation()
		assert.Equal(t, "kwcheck.invalid", key)
		assert.Equal(t, "name must be text", values["message"])

		out, err := tr.Validate("name", " ok ")
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	})

	t.Run("override translation key", func(t *testing.T) {
		base := sanitizer.String(sanitizer.Trim)
		tr := base.With(sanitizer.WithMessage("name must be text"), sanitizer.WithTranslationKey("user.name.text"))
		_, err := tr.Validate("name", 42)
		var verr *kwcheck.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "user.name.text", verr.TranslationKey)

		_, err = base.Validate("name", 42)
		assert.EqualError(t, err, "parameter name must be a string to be sanitized")
	})

	t.Run("nil transforms are skipped", func(t *testing.T) {
		out, err := sanitizer.String(nil, sanitizer.ToUpper).Validate("p", "abc")
		require.NoError(t, err)
		assert.Equal(t, "ABC", out)
	})

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, "sanitize", sanitizer.String().Name())
		assert.Equal(t, "trim", sanitizer.Named("trim", sanitizer.Trim).Name())
	})
}

func TestTransformer_CheckerRunsAreStable(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(kwcheck.Specs{
		"bio":  kwcheck.Use(sanitizer.String(sanitizer.StripHTML)),
		"name": kwcheck.Use(sanitizer.String(sanitizer.Trim, sanitizer.Capitalize)),
	}, nil)

	params := map[string]any{"bio": "&lt;b&gt;hi", "name": " ßen "}
	require.NoError(t, checker.Validate(params))
	first := map[string]any{"bio": params["bio"], "name": params["name"]}

	require.NoError(t, checker.Validate(params))
	assert.Equal(t, first, params)
	assert.Equal(t, "hi", params["bio"])
	assert.Equal(t, "ßen", params["name"])
}
