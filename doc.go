// Package kwcheck validates and sanitizes named-parameter mappings.
//
// A Checker is built once from two declaration maps, required and optional,
// and then applied to any number of map[string]any values. Each declaration
// is a Spec: a type check (Type, TypeOf), a single validator (Use, Func), or
// an ordered Chain of both.
//
// Key Features:
//
//   - Declarations are checked at construction; malformed ones yield *DefinitionError
//   - Deterministic, fail-fast checking with typed errors matching sentinel values
//   - Sanitizing validators whose results are written back into the mapping
//   - Report mode for pure validation without mutation
//   - Translation metadata on every error for localized messages
//
// Basic Usage:
//
//	checker, err := kwcheck.New(
//		kwcheck.Specs{"email": kwcheck.Use(validator.Email())},
//		kwcheck.Specs{
//			"name": kwcheck.Chain(
//				kwcheck.Type[string](),
//				sanitizer.String(sanitizer.Trim, sanitizer.Capitalize),
//				validator.MaxLen(64),
//			),
//		},
//	)
//	if err != nil {
//		return err
//	}
//
//	params := map[string]any{"email": "ada@example.com", "name": "  ada "}
//	if err := checker.Validate(params); err != nil {
//		return err
//	}
//	// params["name"] == "Ada"
//
// Order of Checks:
//
// Every required name is checked for presence first, in sorted order. Supplied
// names are then visited in sorted order: a name declared nowhere yields
// *UnknownParameterError, otherwise its chain runs in declaration order. The
// first failure is returned and nothing after it runs.
//
// Modes:
//
// In ModeSanitize (the default) every chain element reads the current value
// and its result replaces it immediately. Replacements made before a failure
// stay in the mapping. ModeReport never writes to the mapping:
//
//	checker := kwcheck.MustNew(required, optional, kwcheck.WithMode(kwcheck.ModeReport))
//
// Errors:
//
//	switch {
//	case errors.Is(err, kwcheck.ErrMissingParameter):
//	case errors.Is(err, kwcheck.ErrUnknownParameter):
//	case errors.Is(err, kwcheck.ErrTypeMismatch):
//	case errors.Is(err, kwcheck.ErrValidation):
//	}
//
// ParamOf extracts the offending parameter name. Each error type also
// implements Translation, consumed by the i18n package.
//
// Related packages:
//
//   - pkg/validator: leaf validators (email, uuid, regex, range, ...)
//   - pkg/sanitizer: string transforms usable as validators
//   - pkg/schema: declarations loaded from YAML or JSON
//   - pkg/i18n: localized error messages
//   - pkg/metrics: Prometheus observer
package kwcheck
