// Package litho extracts lithology section tables from OOXML spreadsheet
// containers and exposes them to the catalog layer.
package litho

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AIforimpact22/lithology/pkg/litho/models"
	"github.com/AIforimpact22/lithology/pkg/litho/parser"
)

const pdfExtension = ".pdf"

// Extractor decodes spreadsheet containers into section tables.
type Extractor struct {
	logger zerolog.Logger
}

// NewExtractor returns an Extractor logging through the given logger.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses the container at path into a section table keyed by sheet
// name, and additionally by the name with a .pdf suffix unless the name
// already carries one. Sheets that yield no sections are omitted. A missing
// container file yields an empty table: callers treat that as "no enrichment
// available", not as an error. Malformed workbook, relationship or
// shared-strings parts fail the whole extraction.
func (e *Extractor) Extract(path string) (models.SectionTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		e.logger.Debug().Str("path", path).Msg("workbook not found, section table is empty")
		return models.SectionTable{}, nil
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	defer r.Close()

	container := parser.NewContainer(&r.Reader)

	pool, err := parser.ReadSharedStrings(container)
	if err != nil {
		return nil, newDecodeError("shared strings", err)
	}

	rels, err := parser.ReadRelationships(container)
	if err != nil {
		return nil, newDecodeError("workbook relationships", err)
	}

	refs, err := parser.ReadSheetRefs(container)
	if err != nil {
		return nil, newDecodeError("workbook manifest", err)
	}

	table := models.SectionTable{}
	for _, sheet := range parser.LocateSheets(container, refs, rels) {
		data, err := container.ReadPart(sheet.Path)
		if err != nil {
			e.logger.Warn().Str("sheet", sheet.Name).Err(err).Msg("skipping unreadable sheet part")
			continue
		}
		sections, err := parser.ParseSections(data, pool)
		if err != nil {
			return nil, newDecodeError(sheet.Path, err)
		}
		if len(sections) == 0 {
			e.logger.Debug().Str("sheet", sheet.Name).Msg("sheet yielded no sections")
			continue
		}
		table[sheet.Name] = sections
		if !strings.HasSuffix(strings.ToLower(sheet.Name), pdfExtension) {
			table[sheet.Name+pdfExtension] = sections
		}
	}
	e.logger.Info().Int("keys", len(table)).Str("path", path).Msg("section table extracted")
	return table, nil
}
