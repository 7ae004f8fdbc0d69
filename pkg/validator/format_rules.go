package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Email accepts a bare RFC 5322 address with a dotted domain, e.g.
// "user@example.com". Display-name forms such as "User <user@example.com>"
// are rejected.
func Email(opts ...Option) *Rule {
	return newRule(&Rule{
		name: "email",
		check: func(value any) bool {
			return isEmail(stringify(value))
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s is not a valid email", param)
		},
		key: "validation.email",
	}, opts)
}

// UUID accepts the canonical 36-character hyphenated form.
func UUID(opts ...Option) *Rule {
	return newRule(&Rule{
		name: "uuid",
		check: func(value any) bool {
			return isUUID(stringify(value))
		},
		message: func(param string) string {
			return fmt.Sprintf("parameter %s is not a valid UUID", param)
		},
		key: "validation.uuid",
	}, opts)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 {
		return false
	}
	domain := addr.Address[at+1:]

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func isUUID(value string) bool {
	// Cheap shape check before parsing.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
