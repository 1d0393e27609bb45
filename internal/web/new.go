package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/nguyentantai21042004/notes-craft/internal/catalog"
	"github.com/nguyentantai21042004/notes-craft/internal/logger"
	"github.com/nguyentantai21042004/notes-craft/internal/notes"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the note form, submissions and downloads.
type Server struct {
	addr      string
	notes     notes.NoteGenerator
	catalog   *catalog.Store
	logger    logger.Logger
	downloads *downloads
	tmpl      *template.Template
}

// New creates a Server. Generated notes stay downloadable for downloadTTL.
func New(addr string, gen notes.NoteGenerator, store *catalog.Store, log logger.Logger, downloadTTL time.Duration) *Server {
	return &Server{
		addr:      addr,
		notes:     gen,
		catalog:   store,
		logger:    log,
		downloads: newDownloads(downloadTTL),
		tmpl:      template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}
