package slug

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
	replace   map[string]string
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength caps the slug length in runes. Zero or negative means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
// An empty separator is ignored.
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// Lowercase controls whether letters are lower-cased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Replace applies string replacements before slugification, longest
// pattern first. For example: {"&": "and", "@": "at"}.
func Replace(replacements map[string]string) Option {
	return func(c *config) {
		c.replace = replacements
	}
}

// stripMarks decomposes letters and drops combining marks: "é" becomes "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// letterFolds covers Latin letters that have no decomposition.
var letterFolds = map[rune]string{
	'ß': "ss", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O", 'ł': "l", 'Ł': "L", 'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D", 'þ': "th", 'Þ': "TH",
}

// Make turns s into ASCII words joined by the separator. Letters with
// diacritics are folded to their base letter; every other run of
// characters becomes a single separator. The result never starts or ends
// with a separator, and Make is idempotent for a given set of options.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.replace) > 0 {
		keys := make([]string, 0, len(cfg.replace))
		for k := range cfg.replace {
			if k != "" {
				keys = append(keys, k)
			}
		}
		slices.SortFunc(keys, func(a, b string) int {
			if d := len(b) - len(a); d != 0 {
				return d
			}
			return strings.Compare(a, b)
		})
		for _, k := range keys {
			s = strings.ReplaceAll(s, k, cfg.replace[k])
		}
	}

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	w := writer{cfg: cfg, sepLen: len([]rune(cfg.separator))}
	w.b.Grow(len(s))
	for _, r := range s {
		if fold, ok := letterFolds[r]; ok {
			for _, fr := range fold {
				if !w.letter(fr) {
					return w.b.String()
				}
			}
			continue
		}
		if isASCIIAlnum(r) {
			if !w.letter(r) {
				break
			}
			continue
		}
		w.pending = w.n > 0
	}
	return w.b.String()
}

type writer struct {
	cfg     *config
	b       strings.Builder
	n       int
	sepLen  int
	pending bool
}

// letter writes r, preceded by a separator if one is pending. It reports
// false once the length limit is reached.
func (w *writer) letter(r rune) bool {
	limit := w.cfg.maxLength
	if w.pending {
		if limit > 0 && w.n+w.sepLen+1 > limit {
			return false
		}
		w.b.WriteString(w.cfg.separator)
		w.n += w.sepLen
		w.pending = false
	}
	if limit > 0 && w.n+1 > limit {
		return false
	}
	if w.cfg.lowercase {
		r = unicode.ToLower(r)
	}
	w.b.WriteRune(r)
	w.n++
	return true
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
