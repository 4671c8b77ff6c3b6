// Package models defines the data shapes produced by lithology extraction.
package models

// Section is one normalized depth interval extracted from a sheet's data rows.
type Section struct {
	// FromDepth is the canonical display text of the interval start.
	FromDepth string `json:"from_depth"`
	// ToDepth is the canonical display text of the interval end.
	ToDepth string `json:"to_depth"`
	// Description is the lithological description; never empty.
	Description string `json:"description"`
}

// SectionTable maps lookup keys (sheet names, plus their .pdf variants) to
// ordered section sequences.
type SectionTable map[string][]Section

// Lookup returns the sections stored under key and whether the key exists.
func (t SectionTable) Lookup(key string) ([]Section, bool) {
	sections, ok := t[key]
	return sections, ok
}
