package recommend

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	str := "A|B"
	var nilStr *string

	tests := []struct {
		name string
		in   any
		want Decoded
	}{
		{name: "nil", in: nil, want: Decoded{Kind: KindEmpty, Items: []string{}}},
		{name: "empty string", in: "", want: Decoded{Kind: KindEmpty, Items: []string{}}},
		{name: "whitespace string", in: "  \t ", want: Decoded{Kind: KindEmpty, Items: []string{}}},
		{name: "nil string pointer", in: nilStr, want: Decoded{Kind: KindEmpty, Items: []string{}}},
		{
			name: "string slice drops blanks",
			in:   []string{"Meet advisor", "", "   ", "Attend tutoring"},
			want: Decoded{Kind: KindList, Items: []string{"Meet advisor", "Attend tutoring"}},
		},
		{
			name: "any slice from JSON body",
			in:   []any{"Review notes", nil, "", 3.0, true},
			want: Decoded{Kind: KindList, Items: []string{"Review notes", "3", "true"}},
		},
		{
			name: "JSON array text",
			in:   `["Meet advisor","Attend tutoring"]`,
			want: Decoded{Kind: KindJSONList, Items: []string{"Meet advisor", "Attend tutoring"}},
		},
		{
			name: "JSON array with blanks",
			in:   `["", "  ", "Join study group"]`,
			want: Decoded{Kind: KindJSONList, Items: []string{"Join study group"}},
		},
		{
			name: "JSON array keeps padding",
			in:   `[" Meet advisor ", "\t"]`,
			want: Decoded{Kind: KindJSONList, Items: []string{" Meet advisor "}},
		},
		{name: "JSON empty array", in: `[]`, want: Decoded{Kind: KindJSONList, Items: []string{}}},
		{name: "JSON string", in: `"Call parents"`, want: Decoded{Kind: KindJSONScalar, Items: []string{"Call parents"}}},
		{name: "JSON number", in: `42.5`, want: Decoded{Kind: KindJSONScalar, Items: []string{"42.5"}}},
		{name: "JSON null", in: `null`, want: Decoded{Kind: KindJSONScalar, Items: []string{"null"}}},
		{name: "JSON object", in: `{"a": 1}`, want: Decoded{Kind: KindJSONScalar, Items: []string{`{"a":1}`}}},
		{name: "JSON empty string", in: `""`, want: Decoded{Kind: KindEmpty, Items: []string{}}},
		{
			name: "real newlines",
			in:   "A\nB\n\nC",
			want: Decoded{Kind: KindDelimited, Delimiter: "\n", Items: []string{"A", "B", "C"}},
		},
		{
			name: "literal backslash-n",
			in:   `Improve attendance\nSee counselor`,
			want: Decoded{Kind: KindDelimited, Delimiter: `\n`, Items: []string{"Improve attendance", "See counselor"}},
		},
		{
			name: "pipes",
			in:   "A|B|C",
			want: Decoded{Kind: KindDelimited, Delimiter: "|", Items: []string{"A", "B", "C"}},
		},
		{
			name: "literal backslash-n wins over newline and pipe",
			in:   "A\\nB|C\nD",
			want: Decoded{Kind: KindDelimited, Delimiter: `\n`, Items: []string{"A", "B|C\nD"}},
		},
		{
			name: "newline wins over pipe",
			in:   "A|B\nC",
			want: Decoded{Kind: KindDelimited, Delimiter: "\n", Items: []string{"A|B", "C"}},
		},
		{name: "plain text", in: "  Single note ", want: Decoded{Kind: KindPlain, Items: []string{"Single note"}}},
		{name: "string pointer", in: &str, want: Decoded{Kind: KindDelimited, Delimiter: "|", Items: []string{"A", "B"}}},
		{
			name: "raw JSON message",
			in:   json.RawMessage(`["x","y"]`),
			want: Decoded{Kind: KindJSONList, Items: []string{"x", "y"}},
		},
		{name: "other type", in: 17, want: Decoded{Kind: KindOther, Items: []string{"17"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Decode(%#v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParse_ListsKeepOrderAndDropBlanks(t *testing.T) {
	lists := [][]string{
		{"a"},
		{"a", "b", "c"},
		{"", "x", " ", "y", "\t"},
		{"z", "y", "x"},
		{"  Meet advisor ", "", " ", "Attend tutoring"},
	}
	for _, in := range lists {
		want := make([]string, 0, len(in))
		for _, s := range in {
			if strings.TrimSpace(s) != "" {
				want = append(want, s)
			}
		}
		assert.Equal(t, want, Parse(in))
	}
}

func TestParse_NeverReturnsNil(t *testing.T) {
	assert.NotNil(t, Parse(nil))
	assert.Empty(t, Parse(nil))
	assert.NotNil(t, Parse("[]"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "json-scalar", KindJSONScalar.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
