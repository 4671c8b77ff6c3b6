package litho

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/AIforimpact22/lithology/pkg/litho/models"
)

// SectionCache memoizes the container-to-table extraction so the workbook is
// parsed at most once per process. Concurrent first callers block until the
// single computation completes; later callers read the populated result
// without synchronization cost beyond the once guard.
type SectionCache struct {
	path      string
	extractor *Extractor

	once  sync.Once
	table models.SectionTable
	err   error
}

// NewSectionCache returns a cache over the container at path.
func NewSectionCache(path string, logger zerolog.Logger) *SectionCache {
	return &SectionCache{path: path, extractor: NewExtractor(logger)}
}

// Table returns the memoized section table, computing it on first use. A
// fatal decode error is memoized as well and returned to every caller.
func (c *SectionCache) Table() (models.SectionTable, error) {
	c.once.Do(func() {
		c.table, c.err = c.extractor.Extract(c.path)
	})
	return c.table, c.err
}

// SectionsFor returns the sections stored under key, or an empty sequence
// when the key is unknown or the table is unavailable.
func (c *SectionCache) SectionsFor(key string) []models.Section {
	table, err := c.Table()
	if err != nil {
		return nil
	}
	sections, _ := table.Lookup(key)
	return sections
}
