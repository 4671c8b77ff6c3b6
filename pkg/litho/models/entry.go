package models

// Entry is one catalog record as stored in the entry data file.
type Entry struct {
	// TabName is the workbook tab the record was digitized from.
	TabName string `json:"tab_name"`
	// Title is the display title of the record.
	Title string `json:"title"`
	// Description is the free-text summary of the record.
	Description string `json:"description"`
	// PDFFilename is the scanned profile document for the record.
	PDFFilename string `json:"pdf_filename"`
}

// EnrichedEntry is an Entry joined with its section list. Sections is always
// populated; an empty list means no enrichment data was available.
type EnrichedEntry struct {
	Entry
	Sections []Section `json:"sections"`
}
