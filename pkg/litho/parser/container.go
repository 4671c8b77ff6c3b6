// Package parser decodes the OOXML spreadsheet package parts that hold
// lithology section data. It works directly on the zip container and the
// raw XML parts; no spreadsheet library is involved.
package parser

import (
	"archive/zip"
	"errors"
	"io"
	"strings"
)

// Fixed part paths inside the container.
const (
	workbookPart      = "xl/workbook.xml"
	workbookRelsPart  = "xl/_rels/workbook.xml.rels"
	sharedStringsPart = "xl/sharedStrings.xml"
)

// ErrPartMissing indicates a named part is not present in the container.
var ErrPartMissing = errors.New("part not found in container")

// Container indexes the parts of an opened spreadsheet package by name.
type Container struct {
	parts map[string]*zip.File
}

// NewContainer builds a part index over an opened zip reader.
func NewContainer(r *zip.Reader) *Container {
	parts := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		parts[f.Name] = f
	}
	return &Container{parts: parts}
}

// Has reports whether the container holds a part with the given name.
func (c *Container) Has(name string) bool {
	_, ok := c.parts[name]
	return ok
}

// ReadPart returns the raw bytes of a named part, or ErrPartMissing when the
// container does not hold it.
func (c *Container) ReadPart(name string) ([]byte, error) {
	f, ok := c.parts[name]
	if !ok {
		return nil, ErrPartMissing
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// resolveTarget composes the physical part path of a relationship target.
// Relative targets live under the xl root; package-absolute targets keep
// their own path.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	clean := target
	for strings.HasPrefix(clean, "../") {
		clean = strings.TrimPrefix(clean, "../")
	}
	return "xl/" + clean
}
