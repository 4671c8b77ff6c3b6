package parser

import (
	"encoding/xml"
	"strconv"
	"strings"
	"unicode"
)

// sharedStringType marks a cell whose value is an index into the shared
// string pool.
const sharedStringType = "s"

// columnOf derives the column letter key from a cell reference, keeping only
// the alphabetic characters of tokens like "C12".
func columnOf(reference string) string {
	var sb strings.Builder
	for _, r := range reference {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// resolveValue converts a raw cell value into text. Shared-string references
// resolve against the pool; a non-integer or out-of-range index decodes to an
// empty string rather than failing the row.
func resolveValue(raw string, hasValue bool, declaredType string, pool []string) string {
	if !hasValue {
		return ""
	}
	if declaredType == sharedStringType {
		index, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return ""
		}
		if index < 0 || index >= len(pool) {
			return ""
		}
		return pool[index]
	}
	return raw
}

// parseRowCells decodes every cell of one row element into a column-letter
// keyed map. The decoder must be positioned just past the row start element.
func parseRowCells(decoder *xml.Decoder, pool []string) (map[string]string, error) {
	cells := make(map[string]string)
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "c" {
				var reference, declaredType string
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "r":
						reference = attr.Value
					case "t":
						declaredType = attr.Value
					}
				}
				raw, hasValue, err := parseCellValue(decoder)
				if err != nil {
					return nil, err
				}
				column := columnOf(reference)
				if column == "" {
					continue
				}
				cells[column] = resolveValue(raw, hasValue, declaredType, pool)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return cells, nil
}

// parseCellValue consumes a cell subtree and returns the text of its value
// child. A cell without a value child reports hasValue false; blank cells
// are meaningful as "no data".
func parseCellValue(decoder *xml.Decoder) (string, bool, error) {
	var sb strings.Builder
	hasValue := false
	depth := 1
	valueDepth := 0
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", false, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "v" {
				hasValue = true
				valueDepth++
			}
		case xml.EndElement:
			if t.Name.Local == "v" && valueDepth > 0 {
				valueDepth--
			}
			depth--
		case xml.CharData:
			if valueDepth > 0 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), hasValue, nil
}
