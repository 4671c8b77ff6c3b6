package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/AIforimpact22/lithology/pkg/litho/models"
)

// Fixed columns of a lithology sheet.
const (
	startDepthColumn  = "A"
	endDepthColumn    = "B"
	descriptionColumn = "C"
)

// ParseSections walks a sheet part's row sequence in document order and maps
// data rows into sections. The first row is always a header and is discarded
// regardless of content. Rows whose description is blank after trimming
// carry no usable information and are dropped; depth cells pass through
// FormatNumeric so the output keeps exact display formatting.
func ParseSections(data []byte, pool []string) ([]models.Section, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var sections []models.Section
	rowIndex := -1
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "row" {
			continue
		}
		rowIndex++
		cells, err := parseRowCells(decoder, pool)
		if err != nil {
			return nil, err
		}
		if rowIndex == 0 {
			continue
		}
		description := strings.TrimSpace(cells[descriptionColumn])
		if description == "" {
			continue
		}
		sections = append(sections, models.Section{
			FromDepth:   FormatNumeric(cells[startDepthColumn]),
			ToDepth:     FormatNumeric(cells[endDepthColumn]),
			Description: description,
		})
	}
	return sections, nil
}
