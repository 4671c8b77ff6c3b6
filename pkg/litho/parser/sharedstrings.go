package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ReadSharedStrings decodes the workbook's deduplicated string pool into an
// ordered list. A container without a shared-strings part yields an empty
// pool; a malformed part fails the whole extraction.
func ReadSharedStrings(c *Container) ([]string, error) {
	data, err := c.ReadPart(sharedStringsPart)
	if errors.Is(err, ErrPartMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseSharedStrings(data)
}

func parseSharedStrings(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var pool []string
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			item, err := collectItemText(decoder)
			if err != nil {
				return nil, err
			}
			pool = append(pool, item)
		}
	}
	return pool, nil
}

// collectItemText concatenates the text of every t descendant of one string
// item, so items split across formatting runs come back as a single string.
func collectItemText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	textDepth := 0
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				textDepth++
			}
		case xml.EndElement:
			if t.Name.Local == "t" && textDepth > 0 {
				textDepth--
			}
			depth--
		case xml.CharData:
			if textDepth > 0 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
