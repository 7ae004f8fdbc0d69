package validator

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/dmitrymomot/kwcheck"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range accepts numbers between min and max, both inclusive. Values of any
// numeric kind are compared exactly against the bounds, so large integers are
// not rounded; anything else, including NaN, is rejected as not a number.
func Range[T Numeric](min, max T, opts ...Option) (*Rule, error) {
	lo, okLo := toNumber(min)
	hi, okHi := toNumber(max)
	if !okLo || !okHi {
		return nil, &kwcheck.ConfigurationError{
			Validator: "range",
			Reason:    fmt.Sprintf("bounds %v and %v must be numbers", min, max),
		}
	}
	if lo.Cmp(hi) > 0 {
		return nil, &kwcheck.ConfigurationError{
			Validator: "range",
			Reason:    fmt.Sprintf("lower bound %v is greater than upper bound %v", min, max),
		}
	}
	return newRule(&Rule{
		name: "range",
		kind: func(value any) bool {
			_, ok := toNumber(value)
			return ok
		},
		kindMessage: func(param string) string {
			return fmt.Sprintf("parameter %s is not a number", param)
		},
		kindKey: "validation.number",
		check: func(value any) bool {
			n, _ := toNumber(value)
			return n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s must be between %v and %v", param, min, max)
		},
		key:    "validation.range",
		values: map[string]any{"min": min, "max": max},
	}, opts), nil
}

// MustRange is like Range but panics on invalid bounds.
func MustRange[T Numeric](min, max T, opts ...Option) *Rule {
	r, err := Range(min, max, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// toNumber converts any numeric kind to an exact big.Float.
func toNumber(value any) (*big.Float, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return nil, false
		}
		return new(big.Float).SetFloat64(f), true
	}
	return nil, false
}
