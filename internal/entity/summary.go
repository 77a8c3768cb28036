package entity

import "time"

// Summary describes one conformance run over the registered engines.
type Summary struct {
	RunID     string    `json:"run_id"`
	Engines   []string  `json:"engines"`
	Passed    []string  `json:"passed"`
	CreatedAt time.Time `json:"created_at"`
}

// HasPassed reports whether the named engine held every property in this run.
func (that *Summary) HasPassed(name string) bool {
	for _, passed := range that.Passed {
		if passed == name {
			return true
		}
	}

	return false
}
