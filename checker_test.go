package kwcheck_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kwcheck"
	"github.com/dmitrymomot/kwcheck/pkg/logger"
	"github.com/dmitrymomot/kwcheck/pkg/sanitizer"
	"github.com/dmitrymomot/kwcheck/pkg/validator"
)

func newEmailChecker(t *testing.T) *kwcheck.Checker {
	t.Helper()
	checker, err := kwcheck.New(
		kwcheck.Specs{"req_email": kwcheck.Use(validator.Email())},
		kwcheck.Specs{"opt_str": kwcheck.Type[string]()},
	)
	require.NoError(t, err)
	return checker
}

func TestChecker_Validate(t *testing.T) {
	t.Run("missing required parameter", func(t *testing.T) {
		err := newEmailChecker(t).Validate(map[string]any{})
		require.Error(t, err)
		assert.EqualError(t, err, "required parameter req_email is not passed as parameter")
		assert.ErrorIs(t, err, kwcheck.ErrMissingParameter)

		var merr *kwcheck.MissingParameterError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "req_email", merr.Param)
	})

	t.Run("nil mapping reports missing parameter", func(t *testing.T) {
		err := newEmailChecker(t).Validate(nil)
		assert.ErrorIs(t, err, kwcheck.ErrMissingParameter)
	})

	t.Run("invalid email", func(t *testing.T) {
		err := newEmailChecker(t).Validate(map[string]any{"req_email": "not-an-email"})
		assert.EqualError(t, err, "parameter req_email is not a valid email")
		assert.ErrorIs(t, err, kwcheck.ErrValidation)
	})

	t.Run("type mismatch", func(t *testing.T) {
		err := newEmailChecker(t).Validate(map[string]any{
			"req_email": "blabla@gmail.com",
			"opt_str":   []int{1, 2, 3},
		})
		assert.EqualError(t, err, "parameter opt_str not of expected type string")

		var terr *kwcheck.TypeMismatchError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "opt_str", terr.Param)
		assert.Equal(t, "string", terr.Expected.String())
		assert.Equal(t, "[]int", terr.Actual.String())
	})

	t.Run("undefined parameter", func(t *testing.T) {
		err := newEmailChecker(t).Validate(map[string]any{
			"req_email":       "blabla@gmail.com",
			"undefined_param": 42,
		})
		assert.EqualError(t, err, "parameter name undefined_param is not defined")
		assert.ErrorIs(t, err, kwcheck.ErrUnknownParameter)
	})

	t.Run("valid call", func(t *testing.T) {
		err := newEmailChecker(t).Validate(map[string]any{
			"req_email": "blabla@gmail.com",
			"opt_str":   "blabla",
		})
		assert.NoError(t, err)
	})

	t.Run("optional parameter may be omitted", func(t *testing.T) {
		err := newEmailChecker(t).Validate(map[string]any{"req_email": "blabla@gmail.com"})
		assert.NoError(t, err)
	})
}

func TestChecker_MissingAlwaysReported(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(
		kwcheck.Specs{
			"a": kwcheck.Type[int](),
			"b": kwcheck.Type[int](),
			"c": kwcheck.Type[int](),
		},
		kwcheck.Specs{"opt": kwcheck.Type[int]()},
	)

	for _, missing := range []string{"a", "b", "c"} {
		params := map[string]any{"a": 1, "b": 2, "c": 3, "opt": 4}
		delete(params, missing)
		// Add parameters that would fail later checks: presence is reported first.
		params["zzz_unknown"] = true
		if missing != "a" {
			params["a"] = "wrong type"
		}

		err := checker.Validate(params)
		var merr *kwcheck.MissingParameterError
		require.ErrorAs(t, err, &merr, "omitting %s", missing)
		assert.Equal(t, missing, merr.Param)
	}
}

func TestChecker_MissingReportedBeforeValidators(t *testing.T) {
	t.Parallel()

	calls := 0
	spy := kwcheck.Check(func(string, any) error {
		calls++
		return nil
	})
	checker := kwcheck.MustNew(
		kwcheck.Specs{"a": kwcheck.Use(spy), "b": kwcheck.Use(spy)},
		nil,
	)

	err := checker.Validate(map[string]any{"a": 1})
	assert.ErrorIs(t, err, kwcheck.ErrMissingParameter)
	assert.Zero(t, calls, "no validator may see a partial mapping")
}

func TestChecker_UnknownParameterNamed(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(kwcheck.Specs{"known": kwcheck.Type[string]()}, nil)

	for _, name := range []string{"typo", "Known", "known ", "other"} {
		err := checker.Validate(map[string]any{"known": "ok", name: 1})
		var uerr *kwcheck.UnknownParameterError
		require.ErrorAs(t, err, &uerr, "supplying %q", name)
		assert.Equal(t, name, uerr.Param)
	}
}

func TestChecker_ParametersVisitedInSortedOrder(t *testing.T) {
	t.Parallel()

	var seen []string
	record := kwcheck.Check(func(name string, _ any) error {
		seen = append(seen, name)
		return nil
	})
	checker := kwcheck.MustNew(nil, kwcheck.Specs{
		"charlie": kwcheck.Use(record),
		"alpha":   kwcheck.Use(record),
		"bravo":   kwcheck.Use(record),
	})

	require.NoError(t, checker.Validate(map[string]any{"charlie": 1, "alpha": 2, "bravo": 3}))
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, seen)
}

func TestChecker_FailFast(t *testing.T) {
	t.Parallel()

	var seen []string
	record := kwcheck.Check(func(name string, _ any) error {
		seen = append(seen, name)
		return nil
	})
	checker := kwcheck.MustNew(nil, kwcheck.Specs{
		"a": kwcheck.Chain(record, kwcheck.Type[int]()),
		"b": kwcheck.Use(record),
	})

	err := checker.Validate(map[string]any{"a": "not an int", "b": 1})
	assert.ErrorIs(t, err, kwcheck.ErrTypeMismatch)
	assert.Equal(t, []string{"a"}, seen, "parameters after the failure are not checked")
}

func TestChecker_ChainOrder(t *testing.T) {
	t.Parallel()

	leading := validator.MustNoRegex(`^\s+`, validator.WithMessage("no leading whitespaces allowed"))
	trailing := validator.MustNoRegex(`.*\s+$`, validator.WithMessage("no trailing whitespaces allowed"))

	t.Run("declared order decides which failure is reported", func(t *testing.T) {
		checker := kwcheck.MustNew(kwcheck.Specs{
			"no_spaces": kwcheck.Chain(kwcheck.Type[string](), trailing, leading),
		}, nil)

		require.NoError(t, checker.Validate(map[string]any{"no_spaces": "no-leading-and-trailing-spaces"}))
		assert.EqualError(t, checker.Validate(map[string]any{"no_spaces": "    leading tab"}), "no leading whitespaces allowed")
		assert.EqualError(t, checker.Validate(map[string]any{"no_spaces": "trailing spaces \t"}), "no trailing whitespaces allowed")
		assert.EqualError(t, checker.Validate(map[string]any{"no_spaces": " both "}), "no trailing whitespaces allowed")
	})

	t.Run("reordering changes the reported message", func(t *testing.T) {
		checker := kwcheck.MustNew(kwcheck.Specs{
			"no_spaces": kwcheck.Chain(kwcheck.Type[string](), leading, trailing),
		}, nil)

		assert.EqualError(t, checker.Validate(map[string]any{"no_spaces": " both "}), "no leading whitespaces allowed")
	})

	t.Run("type check runs before validators declared after it", func(t *testing.T) {
		checker := kwcheck.MustNew(kwcheck.Specs{
			"no_spaces": kwcheck.Chain(kwcheck.Type[string](), leading),
		}, nil)

		err := checker.Validate(map[string]any{"no_spaces": 12})
		assert.ErrorIs(t, err, kwcheck.ErrTypeMismatch)
	})
}

func TestChecker_Sanitize(t *testing.T) {
	t.Parallel()

	newChecker := func(opts ...kwcheck.Option) *kwcheck.Checker {
		return kwcheck.MustNew(kwcheck.Specs{
			"name": kwcheck.Chain(
				kwcheck.Type[string](),
				sanitizer.String(sanitizer.Trim),
				sanitizer.String(sanitizer.Capitalize),
				validator.MustRegex(`^[A-Z][a-z]+$`),
			),
		}, nil, opts...)
	}

	t.Run("replacements are written back", func(t *testing.T) {
		params := map[string]any{"name": " Michael "}
		require.NoError(t, newChecker().Validate(params))
		assert.Equal(t, "Michael", params["name"])
	})

	t.Run("each element sees the previous replacement", func(t *testing.T) {
		params := map[string]any{"name": "  mICHAEL"}
		require.NoError(t, newChecker().Validate(params))
		assert.Equal(t, "Michael", params["name"])
	})

	t.Run("validating twice is a no-op", func(t *testing.T) {
		params := map[string]any{"name": " michael "}
		checker := newChecker()
		require.NoError(t, checker.Validate(params))
		first := params["name"]

		require.NoError(t, checker.Validate(params))
		assert.Equal(t, first, params["name"])
		assert.Equal(t, "Michael", params["name"])
	})

	t.Run("replacements before a failure remain", func(t *testing.T) {
		params := map[string]any{"name": " m1ke "}
		err := newChecker().Validate(params)
		require.Error(t, err)
		assert.Equal(t, "M1ke", params["name"])
	})

	t.Run("other parameters are untouched", func(t *testing.T) {
		checker := kwcheck.MustNew(
			kwcheck.Specs{"name": kwcheck.Use(sanitizer.String(sanitizer.Trim))},
			kwcheck.Specs{"raw": kwcheck.Type[string]()},
		)
		params := map[string]any{"name": " x ", "raw": " y "}
		require.NoError(t, checker.Validate(params))
		assert.Equal(t, map[string]any{"name": "x", "raw": " y "}, params)
	})

	t.Run("nil result keeps the value", func(t *testing.T) {
		accept := kwcheck.Func(func(string, any) (any, error) { return nil, nil })
		checker := kwcheck.MustNew(kwcheck.Specs{
			"age":  accept,
			"tags": kwcheck.Chain(accept, kwcheck.Type[[]string]()),
		}, nil)

		params := map[string]any{"age": 42, "tags": []string{"a"}}
		require.NoError(t, checker.Validate(params))
		assert.Equal(t, map[string]any{"age": 42, "tags": []string{"a"}}, params)
	})
}

func TestChecker_ReportMode(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(kwcheck.Specs{
		"name": kwcheck.Chain(
			sanitizer.String(sanitizer.Trim),
			validator.MustNoRegex(`^\s+`, validator.WithMessage("no leading whitespaces allowed")),
		),
	}, nil, kwcheck.WithMode(kwcheck.ModeReport))

	assert.Equal(t, kwcheck.ModeReport, checker.Mode())

	t.Run("mapping is never mutated", func(t *testing.T) {
		params := map[string]any{"name": "Michael "}
		require.NoError(t, checker.Validate(params))
		assert.Equal(t, "Michael ", params["name"])
	})

	t.Run("elements see the supplied value", func(t *testing.T) {
		params := map[string]any{"name": " Michael"}
		err := checker.Validate(params)
		assert.EqualError(t, err, "no leading whitespaces allowed")
		assert.Equal(t, " Michael", params["name"])
	})
}

func TestChecker_ValidatorErrors(t *testing.T) {
	t.Parallel()

	t.Run("plain errors become validation errors", func(t *testing.T) {
		cause := errors.New("too cold")
		checker := kwcheck.MustNew(kwcheck.Specs{
			"temp": kwcheck.Func(func(string, any) (any, error) { return nil, cause }),
		}, nil)

		params := map[string]any{"temp": -40}
		err := checker.Validate(params)
		assert.EqualError(t, err, "too cold")
		assert.ErrorIs(t, err, kwcheck.ErrValidation)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, -40, params["temp"], "failed validators never write back")

		var verr *kwcheck.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "temp", verr.Param)
	})

	t.Run("validation errors get the parameter name", func(t *testing.T) {
		checker := kwcheck.MustNew(kwcheck.Specs{
			"temp": kwcheck.Func(func(_ string, v any) (any, error) {
				return v, &kwcheck.ValidationError{Message: "nope"}
			}),
		}, nil)

		err := checker.Validate(map[string]any{"temp": 1})
		param, ok := kwcheck.ParamOf(err)
		require.True(t, ok)
		assert.Equal(t, "temp", param)
	})

	t.Run("error identity from nested validators", func(t *testing.T) {
		raise := func(err error) kwcheck.Spec {
			return kwcheck.Func(func(_ string, v any) (any, error) { return v, err })
		}
		mismatch := &kwcheck.TypeMismatchError{Param: "inner", Expected: reflect.TypeFor[int]()}
		definition := &kwcheck.DefinitionError{Param: "inner", Reason: "is broken"}
		checker := kwcheck.MustNew(nil, kwcheck.Specs{
			"a": raise(mismatch),
			"b": raise(definition),
		})

		err := checker.Validate(map[string]any{"a": 1})
		assert.Same(t, mismatch, err)

		err = checker.Validate(map[string]any{"b": 1})
		var verr *kwcheck.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "b", verr.Param)
		assert.ErrorIs(t, err, kwcheck.ErrValidation)
		assert.ErrorIs(t, err, kwcheck.ErrDefinition)
	})

	t.Run("transform adapter replaces values", func(t *testing.T) {
		checker := kwcheck.MustNew(kwcheck.Specs{
			"count": kwcheck.Chain(
				kwcheck.Transform(func(v any) (any, error) {
					s, ok := v.(string)
					if !ok {
						return v, nil
					}
					var n int
					if _, err := fmt.Sscan(s, &n); err != nil {
						return v, err
					}
					return n, nil
				}),
				kwcheck.Type[int](),
				validator.MustRange(1, 10),
			),
		}, nil)

		params := map[string]any{"count": "7"}
		require.NoError(t, checker.Validate(params))
		assert.Equal(t, 7, params["count"])

		assert.ErrorIs(t, checker.Validate(map[string]any{"count": "seven"}), kwcheck.ErrValidation)
	})
}

func TestChecker_TypeChecks(t *testing.T) {
	t.Parallel()

	type userID string

	tests := []struct {
		name  string
		spec  kwcheck.Spec
		value any
		ok    bool
	}{
		{"string accepts string", kwcheck.Type[string](), "x", true},
		{"string rejects named string", kwcheck.Type[string](), userID("x"), false},
		{"named type accepts itself", kwcheck.Type[userID](), userID("x"), true},
		{"int rejects int64", kwcheck.Type[int](), int64(1), false},
		{"interface accepts implementation", kwcheck.Type[error](), errors.New("x"), true},
		{"interface rejects other values", kwcheck.Type[error](), "x", false},
		{"any accepts nil", kwcheck.Type[any](), nil, true},
		{"concrete type rejects nil", kwcheck.Type[string](), nil, false},
		{"slice type", kwcheck.Type[[]int](), []int{1, 2, 3}, true},
		{"map type", kwcheck.Type[map[string]any](), map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := kwcheck.MustNew(kwcheck.Specs{"p": tt.spec}, nil)
			err := checker.Validate(map[string]any{"p": tt.value})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, kwcheck.ErrTypeMismatch)
		})
	}
}

func TestChecker_EmptyChainAcceptsAnything(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(nil, kwcheck.Specs{"anything": kwcheck.Chain()})
	for _, v := range []any{nil, 1, "x", []int{1}} {
		assert.NoError(t, checker.Validate(map[string]any{"anything": v}))
	}
}

func TestChecker_SharedValidator(t *testing.T) {
	t.Parallel()

	notEmpty := validator.NotEmpty()
	checker := kwcheck.MustNew(
		kwcheck.Specs{"first": kwcheck.Use(notEmpty), "last": kwcheck.Use(notEmpty)},
		nil,
	)

	err := checker.Validate(map[string]any{"first": "Ada", "last": ""})
	assert.EqualError(t, err, "parameter last string is empty")
}

func TestChecker_Accessors(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(
		kwcheck.Specs{"b": kwcheck.Type[int](), "a": kwcheck.Type[int]()},
		kwcheck.Specs{"z": kwcheck.Type[int](), "y": kwcheck.Type[int]()},
		kwcheck.WithName("create_user"),
	)

	assert.Equal(t, "create_user", checker.Name())
	assert.Equal(t, kwcheck.ModeSanitize, checker.Mode())
	assert.Equal(t, []string{"a", "b"}, checker.Required())
	assert.Equal(t, []string{"y", "z"}, checker.Optional())

	req := checker.Required()
	req[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, checker.Required())
}

func TestChecker_DeclarationsAreCopied(t *testing.T) {
	t.Parallel()

	required := kwcheck.Specs{"a": kwcheck.Type[int]()}
	checker := kwcheck.MustNew(required, nil)

	required["b"] = kwcheck.Type[int]()
	assert.NoError(t, checker.Validate(map[string]any{"a": 1}))
}

func TestChecker_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	checker := kwcheck.MustNew(
		kwcheck.Specs{"email": kwcheck.Use(validator.Email())},
		nil,
		kwcheck.WithName("signup"),
		kwcheck.WithLogger(logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug), logger.WithTextFormatter())),
	)

	require.NoError(t, checker.Validate(map[string]any{"email": "a@b.co"}))
	assert.Empty(t, buf.String(), "successful calls are not logged")

	require.Error(t, checker.Validate(map[string]any{"email": "nope"}))
	out := buf.String()
	assert.Contains(t, out, "parameters rejected")
	assert.Contains(t, out, "checker=signup")
	assert.Contains(t, out, "param=email")
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observation
}

type observation struct {
	checker string
	param   string
	err     error
}

func (o *recordingObserver) ObserveValidation(checker, param string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, observation{checker, param, err})
}

func TestChecker_Observer(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	checker := kwcheck.MustNew(
		kwcheck.Specs{"id": kwcheck.Use(validator.UUID())},
		nil,
		kwcheck.WithName("lookup"),
		kwcheck.WithObserver(obs),
	)

	_ = checker.Validate(map[string]any{"id": "8d0c4f0e-3a7e-4a43-9a0b-2f9b9f0c2b11"})
	_ = checker.Validate(map[string]any{})
	_ = checker.Validate(map[string]any{"id": "x"})

	require.Len(t, obs.calls, 3)
	assert.Equal(t, observation{"lookup", "", nil}, obs.calls[0])
	assert.Equal(t, "id", obs.calls[1].param)
	assert.ErrorIs(t, obs.calls[1].err, kwcheck.ErrMissingParameter)
	assert.Equal(t, "id", obs.calls[2].param)
	assert.ErrorIs(t, obs.calls[2].err, kwcheck.ErrValidation)
}

func TestChecker_ConcurrentUse(t *testing.T) {
	t.Parallel()

	checker := kwcheck.MustNew(kwcheck.Specs{
		"name": kwcheck.Chain(kwcheck.Type[string](), sanitizer.String(sanitizer.Trim, sanitizer.Capitalize)),
	}, nil)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			params := map[string]any{"name": fmt.Sprintf("  user%d ", i)}
			assert.NoError(t, checker.Validate(params))
			assert.Equal(t, fmt.Sprintf("User%d", i), params["name"])
		}(i)
	}
	wg.Wait()
}

func TestWithModePanicsOnUnknownMode(t *testing.T) {
	assert.Panics(t, func() {
		kwcheck.MustNew(nil, nil, kwcheck.WithMode(kwcheck.Mode(42)))
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    kwcheck.Mode
		wantErr bool
	}{
		{"sanitize", kwcheck.ModeSanitize, false},
		{"REPORT", kwcheck.ModeReport, false},
		{"", kwcheck.ModeSanitize, false},
		{"strict", kwcheck.ModeSanitize, true},
	}
	for _, tt := range tests {
		got, err := kwcheck.ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want.String(), got.String())
	}
	assert.Equal(t, "Mode(42)", kwcheck.Mode(42).String())
}
