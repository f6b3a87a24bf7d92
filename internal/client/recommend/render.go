package recommend

import (
	"fmt"
	"io"
)

// EmptyMessage is written by Render when there is nothing to show.
const EmptyMessage = "No recommendations available at this time."

// Render writes the parsed recommendations of v as a numbered list. Items
// graded urgent or high get a bracketed tag.
func Render(w io.Writer, v any) error {
	items := Parse(v)
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	for i, item := range items {
		tag := ""
		if p := PriorityOf(item); p != PriorityNormal {
			tag = " [" + string(p) + "]"
		}
		if _, err := fmt.Fprintf(w, "%d. %s%s\n", i+1, item, tag); err != nil {
			return err
		}
	}
	return nil
}
