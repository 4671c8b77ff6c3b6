// Package catalog loads lithology entry records and joins them with
// extracted section tables.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/AIforimpact22/lithology/pkg/litho"
	"github.com/AIforimpact22/lithology/pkg/litho/models"
)

// LoadEntries reads the catalog records from a JSON file.
func LoadEntries(path string) ([]models.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return entries, nil
}

// Enrich joins each entry with its section list, trying the entry's PDF
// filename key first and falling back to its tab name. Entries without a
// match get an empty list, never a missing field.
func Enrich(entries []models.Entry, table models.SectionTable) []models.EnrichedEntry {
	enriched := make([]models.EnrichedEntry, 0, len(entries))
	for _, entry := range entries {
		sections, ok := table.Lookup(entry.PDFFilename)
		if !ok {
			sections, _ = table.Lookup(entry.TabName)
		}
		if sections == nil {
			sections = []models.Section{}
		}
		enriched = append(enriched, models.EnrichedEntry{Entry: entry, Sections: sections})
	}
	return enriched
}

// Service serves the enriched entry list, computing it at most once per
// process.
type Service struct {
	dataPath string
	cache    *litho.SectionCache
	logger   zerolog.Logger

	once    sync.Once
	entries []models.EnrichedEntry
	err     error
}

// NewService returns a Service reading entries from dataPath and sections
// through the given cache.
func NewService(dataPath string, cache *litho.SectionCache, logger zerolog.Logger) *Service {
	return &Service{dataPath: dataPath, cache: cache, logger: logger}
}

// Entries returns the enriched catalog, loading and joining on first use.
func (s *Service) Entries() ([]models.EnrichedEntry, error) {
	s.once.Do(func() {
		entries, err := LoadEntries(s.dataPath)
		if err != nil {
			s.err = err
			return
		}
		table, err := s.cache.Table()
		if err != nil {
			s.err = err
			return
		}
		s.entries = Enrich(entries, table)
		s.logger.Info().Int("entries", len(s.entries)).Msg("catalog loaded")
	})
	return s.entries, s.err
}
