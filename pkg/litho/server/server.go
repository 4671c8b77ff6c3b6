// Package server exposes the lithology catalog over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"

	"github.com/AIforimpact22/lithology/pkg/litho"
	"github.com/AIforimpact22/lithology/pkg/litho/catalog"
)

// Config holds the server's listen address and content paths.
type Config struct {
	// Addr is the listen address.
	Addr string
	// WorkbookPath is the profiles workbook the section table is read from.
	WorkbookPath string
	// DataPath is the JSON file holding the catalog entries.
	DataPath string
	// PDFDir is the directory holding the scanned profile PDFs.
	PDFDir string
	// WebDir is the directory holding the index page.
	WebDir string
}

// DefaultConfig returns the layout the original deployment used.
func DefaultConfig() Config {
	return Config{
		Addr:         ":5000",
		WorkbookPath: "Geological Profiles.xlsx",
		DataPath:     filepath.Join("data", "lithology_entries.json"),
		PDFDir:       ".",
		WebDir:       "web",
	}
}

// Server routes catalog and document requests.
type Server struct {
	config  Config
	service *catalog.Service
	router  *httprouter.Router
	logger  zerolog.Logger
}

// New builds a Server with its routes registered. The section table and the
// catalog are loaded lazily on first request.
func New(config Config, logger zerolog.Logger) *Server {
	cache := litho.NewSectionCache(config.WorkbookPath, logger)
	s := &Server{
		config:  config,
		service: catalog.NewService(config.DataPath, cache, logger),
		router:  httprouter.New(),
		logger:  logger,
	}
	s.router.GET("/", s.index)
	s.router.GET("/api/lithology", s.entries)
	s.router.GET("/pdfs/:filename", s.pdf)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

// ListenAndServe blocks serving requests on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.config.Addr).Msg("lithology server listening")
	return http.ListenAndServe(s.config.Addr, s.router)
}

func (s *Server) index(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	http.ServeFile(w, req, filepath.Join(s.config.WebDir, "index.html"))
}

func (s *Server) entries(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	entries, err := s.service.Entries()
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog load failed")
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.logger.Error().Err(err).Msg("encode catalog response")
	}
}

// pdf serves a document declared by some catalog entry. The filename must be
// a bare base name; anything path-like is rejected so requests cannot escape
// the PDF directory.
func (s *Server) pdf(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
	name := ps.ByName("filename")
	if name == "" || filepath.Base(name) != name {
		http.NotFound(w, req)
		return
	}

	entries, err := s.service.Entries()
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog load failed")
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}
	listed := false
	for _, entry := range entries {
		if entry.PDFFilename == name {
			listed = true
			break
		}
	}
	if !listed {
		http.NotFound(w, req)
		return
	}

	path := filepath.Join(s.config.PDFDir, name)
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		http.NotFound(w, req)
		return
	}
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, req)
		return
	}
	http.ServeFile(w, req, path)
}
