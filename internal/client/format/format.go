// Package format renders dashboard values for display. Every helper accepts
// loosely typed input (numbers arrive from JSON as float64 or as strings)
// and returns "-" when there is nothing sensible to show.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Placeholder is shown for missing or unparseable values.
const Placeholder = "-"

// DefaultTruncateLength is the cut-off used by the CLI tables.
const DefaultTruncateLength = 50

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ToNumber converts v to a float. Strings are read like a lenient numeric
// prefix ("72.5%" is 72.5); nil, empty strings and non-numeric values fail.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case string:
		m := leadingNumber.FindString(strings.TrimSpace(n))
		if m == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Number formats v with a fixed number of decimals.
func Number(v any, decimals int) string {
	f, ok := ToNumber(v)
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// Percentage formats v with one decimal and a percent sign.
func Percentage(v any) string {
	f, ok := ToNumber(v)
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(f, 'f', 1, 64) + "%"
}

// Currency formats v as whole rupees with Indian digit grouping:
// 1234567 becomes ₹12,34,567.
func Currency(v any) string {
	f, ok := ToNumber(v)
	if !ok {
		return Placeholder
	}

	r := math.Round(f)
	sign := ""
	if r < 0 {
		sign = "-"
		r = -r
	}
	return sign + "₹" + groupIndian(strconv.FormatFloat(r, 'f', 0, 64))
}

// groupIndian inserts separators into a string of digits: the last three
// digits form one group, the rest are grouped in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	first := len(head) % 2
	if first > 0 {
		b.WriteString(head[:first])
	}
	for i := first; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// CompactNumber shortens large counts: 999, 1.5K, 2.3M.
func CompactNumber(v any) string {
	f, ok := ToNumber(v)
	if !ok {
		return Placeholder
	}
	switch {
	case f < 1_000:
		return strconv.FormatFloat(f, 'f', -1, 64)
	case f < 1_000_000:
		return strconv.FormatFloat(f/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(f/1_000_000, 'f', 1, 64) + "M"
	}
}

// Truncate shortens text to length runes and appends "...".
func Truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length]) + "..."
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Indian English short month names; September is "Sept".
var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sept", "Oct", "Nov", "Dec"}

// Date renders a backend timestamp as "19 Oct 2026".
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return strconv.Itoa(t.Day()) + " " + shortMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
		}
	}
	return Placeholder
}
