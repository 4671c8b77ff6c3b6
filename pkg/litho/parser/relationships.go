package parser

import (
	"bytes"
	"encoding/xml"
	"io"
)

// ReadRelationships maps relationship identifiers to target paths from the
// workbook's relationship manifest. Every relationship entry is kept
// regardless of type; callers filter by usage. The manifest is required: a
// workbook whose sheets cannot be resolved is unusable.
func ReadRelationships(c *Container) (map[string]string, error) {
	data, err := c.ReadPart(workbookRelsPart)
	if err != nil {
		return nil, err
	}
	return parseRelationships(data)
}

func parseRelationships(data []byte) (map[string]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	rels := make(map[string]string)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				id = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		if id != "" {
			rels[id] = target
		}
	}
	return rels, nil
}
