package xfer

import (
	"sort"
)

// ConnectionResult summarizes a completed sequence of connection attempts. It is built once by a Connector and
// never modified afterwards.
type ConnectionResult struct {
	// Connected is true if any attempt succeeded.
	Connected bool

	// RetryCount is the number of retries consumed, not counting the initial attempt.
	RetryCount int

	// Errors holds one entry per distinct error message observed, sorted by description.
	Errors []ErrorCount
}

// ErrorCount is a distinct error message and the number of attempts that failed with it.
type ErrorCount struct {
	Description string
	Count       int
}

// ErrorCount returns how many attempts failed with exactly this description.
func (r ConnectionResult) ErrorCount(description string) int {
	for _, e := range r.Errors {
		if e.Description == description {
			return e.Count
		}
	}
	return 0
}

// groupErrors collapses messages by exact string equality.
func groupErrors(messages []string) []ErrorCount {
	if len(messages) == 0 {
		return nil
	}

	counts := make(map[string]int, len(messages))
	for _, msg := range messages {
		counts[msg]++
	}

	grouped := make([]ErrorCount, 0, len(counts))
	for desc, n := range counts {
		grouped = append(grouped, ErrorCount{Description: desc, Count: n})
	}
	sort.Slice(grouped, func(i, j int) bool {
		return grouped[i].Description < grouped[j].Description
	})

	return grouped
}
