// Package recommend normalizes the recommendation field of a prediction
// into a list of display strings.
//
// The backend stores recommendations loosely: sometimes a JSON array,
// sometimes a JSON-encoded string, sometimes free text separated by
// newlines or pipes. Decode classifies the input and Parse returns just the
// items. Every returned item is trimmed and non-empty.
package recommend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells which rule produced a Decoded value.
type Kind int

const (
	KindEmpty      Kind = iota // nil, empty or whitespace-only input
	KindList                   // input was already a list
	KindJSONList               // string holding a JSON array
	KindJSONScalar             // string holding any other JSON value
	KindDelimited              // free text split on a delimiter
	KindPlain                  // free text without a known delimiter
	KindOther                  // any other Go value, formatted with fmt
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindList:
		return "list"
	case KindJSONList:
		return "json-list"
	case KindJSONScalar:
		return "json-scalar"
	case KindDelimited:
		return "delimited"
	case KindPlain:
		return "plain"
	case KindOther:
		return "other"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Delimiters are tried in order on text that is not valid JSON. Only the
// first one present in the text is used.
//
// The two-character sequence `\n` (backslash, n) comes before a real
// newline so that text escaped twice on its way through the backend still
// splits into lines.
var Delimiters = []string{`\n`, "\n", "|"}

// Decoded is the classified form of a recommendation value.
type Decoded struct {
	Kind Kind
	// Delimiter is set for KindDelimited.
	Delimiter string
	Items     []string
}

// Parse returns the recommendation items of v in order.
func Parse(v any) []string {
	return Decode(v).Items
}

// Decode classifies v and extracts its items.
func Decode(v any) Decoded {
	switch value := v.(type) {
	case nil:
		return empty()
	case []string:
		return Decoded{Kind: KindList, Items: nonBlank(value)}
	case []any:
		return Decoded{Kind: KindList, Items: nonBlankAny(value)}
	case string:
		return decodeText(value)
	case *string:
		if value == nil {
			return empty()
		}
		return decodeText(*value)
	case json.RawMessage:
		return decodeText(string(value))
	case []byte:
		return decodeText(string(value))
	default:
		return single(KindOther, fmt.Sprint(value))
	}
}

func decodeText(s string) Decoded {
	if strings.TrimSpace(s) == "" {
		return empty()
	}

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err == nil {
		if list, ok := parsed.([]any); ok {
			return Decoded{Kind: KindJSONList, Items: nonBlankAny(list)}
		}
		return single(KindJSONScalar, scalarString(parsed))
	}

	for _, d := range Delimiters {
		if strings.Contains(s, d) {
			return Decoded{Kind: KindDelimited, Delimiter: d, Items: clean(strings.Split(s, d))}
		}
	}

	return single(KindPlain, s)
}

func empty() Decoded {
	return Decoded{Kind: KindEmpty, Items: []string{}}
}

func single(kind Kind, s string) Decoded {
	s = strings.TrimSpace(s)
	if s == "" {
		return empty()
	}
	return Decoded{Kind: kind, Items: []string{s}}
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// nonBlank drops empty and whitespace-only entries. Kept entries are
// returned as given.
func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonBlankAny(in []any) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == nil {
			continue
		}
		if s := scalarString(v); strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// scalarString formats a decoded JSON value for display. Numbers use the
// shortest representation, null is "null", objects and arrays are compact
// JSON.
func scalarString(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(b)
	default:
		return fmt.Sprint(value)
	}
}
