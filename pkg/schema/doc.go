// Package schema builds kwcheck checkers from YAML or JSON declaration files.
//
// A declaration file lists required and optional parameters. Each parameter
// maps to an element or a list of elements forming a chain:
//
//	name: signup
//	mode: sanitize
//	required:
//	  email: [string, normalize_email, email]
//	  name: [string, trim, capitalize]
//	optional:
//	  age:
//	    - int
//	    - range: {min: 0, max: 150}
//	  nick:
//	    - regex: {pattern: "^[a-z]+$", message: "lowercase only"}
//
// A plain string is a type name (see TypeNames) or a validator referenced
// without arguments. A single-key map names a validator and its arguments.
// Validator names resolve through a Registry; DefaultRegistry knows every
// validator in pkg/validator and every transform in pkg/sanitizer.
//
// Usage:
//
//	checker, err := schema.Load(ctx, os.DirFS("config"), "signup.yaml")
//
// Custom validators are registered on a registry before loading:
//
//	reg := schema.DefaultRegistry()
//	reg.MustRegister("handle", func(args schema.Args) (kwcheck.Validator, error) {
//		return validator.Regex(`[a-z0-9-]+$`)
//	})
//	checker, err := schema.LoadWithRegistry(ctx, fsys, "post.json", reg)
//
// Services validating against many declaration files keep a Loader, which
// compiles each file once and caches the checker:
//
//	loader := schema.NewLoader(fsys, schema.WithCapacity(32))
//	err := loader.Validate(ctx, "signup.yaml", params)
package schema
