package kwcheck

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects what happens to values returned by validators.
type Mode int

const (
	// ModeSanitize writes every validator result back into the mapping before
	// the next chain element runs, so later elements see earlier replacements.
	ModeSanitize Mode = iota
	// ModeReport only accepts or rejects. The mapping is never written and
	// every element sees the value the caller supplied.
	ModeReport
)

func (m Mode) String() string {
	switch m {
	case ModeSanitize:
		return "sanitize"
	case ModeReport:
		return "report"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "sanitize" or "report", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sanitize", "":
		return ModeSanitize, nil
	case "report":
		return ModeReport, nil
	default:
		return ModeSanitize, fmt.Errorf("invalid mode %q: must be %q or %q", s, ModeSanitize, ModeReport)
	}
}

// Option configures a Checker.
type Option func(*Checker)

// WithMode sets the checker mode. Unknown modes panic, misconfiguration
// should fail at startup.
func WithMode(m Mode) Option {
	return func(c *Checker) {
		switch m {
		case ModeSanitize, ModeReport:
			c.mode = m
		default:
			panic(fmt.Errorf("invalid checker mode %d", int(m)))
		}
	}
}

// WithName labels the checker in logs and metrics.
func WithName(name string) Option {
	return func(c *Checker) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger used for rejected calls. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer notified once per Validate call.
func WithObserver(o Observer) Option {
	return func(c *Checker) {
		if o != nil {
			c.observer = o
		}
	}
}

// Observer receives the outcome of every Validate call. param is empty when
// err is nil. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveValidation(checker, param string, err error)
}
