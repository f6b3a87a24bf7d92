// Package validate holds the form checks used before data is sent to the
// backend.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/dropwatch/internal/client/format"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// Email reports whether s looks like an address: something, an @, and a
// dotted domain, with no whitespace.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone reports whether s is an Indian mobile number. Whitespace is
// ignored, so "98765 43210" passes.
func Phone(s string) bool {
	return phoneRe.MatchString(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// Required reports whether v holds a value. Only nil and the empty string
// are missing; zero and false count as values.
func Required(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case string:
		return s != ""
	case *string:
		return s != nil && *s != ""
	}
	return true
}

// Range reports whether v reads as a number within [lo, hi]. Strings are
// read leniently, so "72.5%" is 72.5.
func Range(v any, lo, hi float64) bool {
	f, ok := format.ToNumber(v)
	return ok && f >= lo && f <= hi
}
