// Package validator provides factories for leaf parameter validators.
//
// Every exported factory captures its configuration (a compiled pattern, an
// allowed set, a numeric bound, an override message) and returns a *Rule,
// which implements kwcheck.Validator. Rules never replace the value they
// inspect; they either accept it or return a *kwcheck.ValidationError that
// carries a message and translation metadata.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`, `choice_rules.go`, `numeric_rules.go`,
// `format_rules.go`). There is no hidden global state, so rules are
// goroutine-safe and may be shared between parameters and checkers.
//
// String rules look at the textual form of a value: strings and []byte as
// is, fmt.Stringer through String, anything else through fmt.Sprint, and
// nil as the empty string.
//
// # Usage
//
//	checker := kwcheck.MustNew(
//	    kwcheck.Specs{"email": kwcheck.Use(validator.Email())},
//	    kwcheck.Specs{
//	        "nick": kwcheck.Chain(
//	            kwcheck.Type[string](),
//	            validator.MinLen(3),
//	            validator.MustNoRegex(`^\s+`, validator.WithMessage("no leading whitespaces allowed")),
//	        ),
//	        "age": kwcheck.Use(validator.MustRange(0, 150)),
//	    },
//	)
//
// # Configuration Errors
//
// Factories that can receive malformed configuration (Regex, NoRegex, Range)
// return a *kwcheck.ConfigurationError immediately. Their Must* variants panic
// instead, which suits package-level declarations.
package validator
