package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// SheetRef is one sheet declared in the workbook manifest.
type SheetRef struct {
	// Name is the declared tab name, untrimmed.
	Name string
	// RelID is the relationship identifier pointing at the sheet part.
	RelID string
}

// LocatedSheet pairs a sheet name with its concrete part path inside the
// container.
type LocatedSheet struct {
	Name string
	Path string
}

// ReadSheetRefs extracts the declared sheet list from the workbook manifest.
// A missing or malformed manifest fails the whole extraction.
func ReadSheetRefs(c *Container) ([]SheetRef, error) {
	data, err := c.ReadPart(workbookPart)
	if err != nil {
		return nil, err
	}
	return parseSheetRefs(data)
}

func parseSheetRefs(data []byte) ([]SheetRef, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var refs []SheetRef
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var ref SheetRef
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				ref.Name = attr.Value
			case "id":
				// r:id, the relationship reference.
				ref.RelID = attr.Value
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// LocateSheets resolves declared sheets to part paths. Sheets with a blank
// name or relationship id, an unresolvable id, or a target absent from the
// container are skipped; placeholder tabs are common and not an error.
func LocateSheets(c *Container, refs []SheetRef, rels map[string]string) []LocatedSheet {
	located := make([]LocatedSheet, 0, len(refs))
	for _, ref := range refs {
		name := strings.TrimSpace(ref.Name)
		if name == "" || ref.RelID == "" {
			continue
		}
		target := rels[ref.RelID]
		if target == "" {
			continue
		}
		path := resolveTarget(target)
		if !c.Has(path) {
			continue
		}
		located = append(located, LocatedSheet{Name: name, Path: path})
	}
	return located
}
