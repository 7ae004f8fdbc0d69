// Package slug converts free text into URL-safe identifiers.
//
//	slug.Make("Hello, World!")                        // "hello-world"
//	slug.Make("Crème Brûlée", slug.Separator("_"))    // "creme_brulee"
//	slug.Make("Fish & Chips", slug.Replace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
//
// Diacritics are removed with Unicode decomposition (golang.org/x/text), a
// few Latin letters without a decomposition (ß, æ, ø, ł, ...) are folded by
// table, and everything that is not an ASCII letter or digit separates
// words. MaxLength counts runes and never cuts in the middle of a separator.
//
// Make is deterministic and idempotent, which makes it usable as a sanitizer:
// sanitizer.Slug wraps it and the schema registry exposes it as "slug".
package slug
