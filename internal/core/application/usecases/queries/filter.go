// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for a specific screen; they never mutate the store.
package queries

import (
	"strings"
)

// TabAll is the status tab that matches every record.
const TabAll = "All"

// TabCount is the badge of a status tab. The All tab always equals the sum of the others.
type TabCount struct {
	Tab   string
	Count int
}

// matchesSearch reports whether any field contains search, ignoring case. An empty
// search matches everything.
func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func isAllTab(tab string) bool {
	return tab == "" || strings.EqualFold(tab, TabAll)
}
