package recommend

import "strings"

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

var (
	urgentWords = []string{"urgent", "immediate", "critical", "asap"}
	highWords   = []string{"high", "important", "significant"}
)

// PriorityOf grades a recommendation by the words it contains. Matching is
// case-insensitive and on substrings, so "immediately" counts as urgent.
func PriorityOf(rec string) Priority {
	lower := strings.ToLower(rec)
	if containsAny(lower, urgentWords) {
		return PriorityUrgent
	}
	if containsAny(lower, highWords) {
		return PriorityHigh
	}
	return PriorityNormal
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
