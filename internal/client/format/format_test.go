package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberAndPercentage(t *testing.T) {
	tests := []struct {
		in      any
		number  string
		percent string
	}{
		{in: 3.14159, number: "3.14", percent: "3.1%"},
		{in: 72, number: "72.00", percent: "72.0%"},
		{in: "8.456", number: "8.46", percent: "8.5%"},
		{in: "91.2% present", number: "91.20", percent: "91.2%"},
		{in: nil, number: "-", percent: "-"},
		{in: "", number: "-", percent: "-"},
		{in: "n/a", number: "-", percent: "-"},
		{in: struct{}{}, number: "-", percent: "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.number, Number(tt.in, 2), "Number(%v)", tt.in)
		assert.Equal(t, tt.percent, Percentage(tt.in), "Percentage(%v)", tt.in)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567.6, "₹12,34,568"},
		{123456789, "₹12,34,56,789"},
		{-2500, "-₹2,500"},
		{nil, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "Currency(%v)", tt.in)
	}
}

func TestCompactNumber(t *testing.T) {
	assert.Equal(t, "999", CompactNumber(999))
	assert.Equal(t, "12.5", CompactNumber(12.5))
	assert.Equal(t, "1.5K", CompactNumber(1500))
	assert.Equal(t, "1000.0K", CompactNumber(999_999))
	assert.Equal(t, "2.3M", CompactNumber(2_300_000))
	assert.Equal(t, "-", CompactNumber(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly", Truncate("exactly", 7))
	assert.Equal(t, "Needs ...", Truncate("Needs tutoring", 6))
	assert.Equal(t, "पढ़...", Truncate("पढ़ाई", 3))
	assert.Equal(t, "", Truncate("", DefaultTruncateLength))
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-10-19", "19 Oct 2026"},
		{"2026-09-01T08:30:00Z", "1 Sept 2026"},
		{"2026-01-05 14:00:00", "5 Jan 2026"},
		{"Mon, 19 Oct 2026 00:00:00 GMT", "19 Oct 2026"},
		{"", "-"},
		{"yesterday", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Date(tt.in), tt.in)
	}
}
