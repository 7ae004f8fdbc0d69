// Package sanitizer provides string transforms and the validators that apply
// them to parameter values.
//
// The transforms are plain func(string) string helpers (Trim, Capitalize,
// NormalizeWhitespace, NormalizeEmail, ...) that can be freely combined with
// Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// String wraps a sequence of transforms into a kwcheck.Validator whose result
// replaces the parameter value when the checker runs in sanitize mode:
//
//	checker := kwcheck.MustNew(kwcheck.Specs{
//	    "name": kwcheck.Chain(
//	        kwcheck.Type[string](),
//	        sanitizer.String(sanitizer.Trim),
//	        sanitizer.String(sanitizer.Capitalize),
//	    ),
//	}, nil)
//
//	params := map[string]any{"name": " michael "}
//	_ = checker.Validate(params) // params["name"] == "Michael"
//
// # Error handling
//
// Transforms never fail. A String validator rejects values that are not
// strings (string kinds, []byte or fmt.Stringer), since a replacement must
// keep the conceptual type of the original.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
