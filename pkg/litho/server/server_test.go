package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIforimpact22/lithology/pkg/litho/models"
)

const entriesJSON = `[
  {"tab_name": "Core-1", "title": "Borehole 1", "description": "First borehole", "pdf_filename": "core-1.pdf"},
  {"tab_name": "Core-2", "title": "Borehole 2", "description": "Second borehole", "pdf_filename": "notes.txt"}
]`

// newTestServer lays out a deployment directory: entry data, an index page
// and one PDF on disk. The workbook is deliberately absent, so every entry
// serves an empty section list.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "web"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "lithology_entries.json"), []byte(entriesJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "web", "index.html"), []byte("<html>lithology viewer</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core-1.pdf"), []byte("%PDF-1.4 fake"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a pdf"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.pdf"), []byte("%PDF-1.4 unlisted"), 0644))

	config := Config{
		Addr:         ":0",
		WorkbookPath: filepath.Join(dir, "Geological Profiles.xlsx"),
		DataPath:     filepath.Join(dir, "data", "lithology_entries.json"),
		PDFDir:       dir,
		WebDir:       filepath.Join(dir, "web"),
	}
	return New(config, zerolog.New(nil).Level(zerolog.Disabled))
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lithology viewer")
}

func TestEntriesEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/lithology")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var entries []models.EnrichedEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Core-1", entries[0].TabName)
	// No workbook on disk: sections are present but empty, never missing.
	assert.NotNil(t, entries[0].Sections)
	assert.Empty(t, entries[0].Sections)
}

func TestEntriesEndpointCatalogFailure(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.Remove(s.config.DataPath))

	rec := doRequest(s, http.MethodGet, "/api/lithology")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServePDF(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/pdfs/core-1.pdf")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "%PDF-1.4 fake")
}

func TestServePDFGuards(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"unlisted file", "/pdfs/secret.pdf"},
		{"unknown file", "/pdfs/missing.pdf"},
		{"listed but not a pdf", "/pdfs/notes.txt"},
		{"path traversal", "/pdfs/..%2Fsecret.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodGet, tt.target)
			assert.NotEqual(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServePDFMissingOnDisk(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.Remove(filepath.Join(s.config.PDFDir, "core-1.pdf")))

	rec := doRequest(s, http.MethodGet, "/pdfs/core-1.pdf")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
