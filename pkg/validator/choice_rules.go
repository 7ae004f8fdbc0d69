package validator

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// OneOf accepts values whose textual form is one of allowed.
func OneOf(allowed []string, opts ...Option) *Rule {
	allowed = slices.Clone(allowed)
	joined := strings.Join(allowed, ",")
	return newRule(&Rule{
		name: "one_of",
		check: func(value any) bool {
			return slices.Contains(allowed, stringify(value))
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s is not one of %s", param, joined)
		},
		key:    "validation.in_list",
		values: map[string]any{"allowed_values": joined},
	}, opts)
}

// OneOfInt accepts integers, integral floats and decimal strings whose
// integer value is one of allowed.
func OneOfInt(allowed []int, opts ...Option) *Rule {
	allowed = slices.Clone(allowed)
	parts := make([]string, len(allowed))
	for i, v := range allowed {
		parts[i] = strconv.Itoa(v)
	}
	joined := strings.Join(parts, ",")
	return newRule(&Rule{
		name: "one_of_int",
		check: func(value any) bool {
			n, ok := toInt(value)
			return ok && slices.Contains(allowed, n)
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s is not one of %s", param, joined)
		},
		key:    "validation.in_list",
		values: map[string]any{"allowed_values": joined},
	}, opts)
}

func toInt(value any) (int, bool) {
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return n, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return int(n), n >= math.MinInt && n <= math.MaxInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		return int(n), n <= math.MaxInt
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt || f > math.MaxInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}
