package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/notes-craft/internal/export"
	"github.com/nguyentantai21042004/notes-craft/internal/notes"
	"github.com/nguyentantai21042004/notes-craft/internal/videoid"
)

const videoHint = "Please upload your YouTube video link."

type pageData struct {
	Subjects  []string
	Languages []string

	VideoURL string
	Subject  string
	Prompt   string
	Language string

	EmbedURL  string
	VideoHint string

	Note       *notes.Note
	DownloadID string
	Error      string
}

func (s *Server) newPage(videoURL, subject, prompt, language string) *pageData {
	cat := s.catalog.Current()
	if language == "" {
		language = cat.DefaultLanguage()
	}

	p := &pageData{
		Subjects:  cat.Subjects(),
		Languages: cat.Languages(),
		VideoURL:  videoURL,
		Subject:   subject,
		Prompt:    prompt,
		Language:  language,
	}
	if p.EmbedURL = embedURL(videoURL); p.EmbedURL == "" {
		p.VideoHint = videoHint
	}
	return p
}

// embedURL returns a player URL for links carrying an '=' parameter.
func embedURL(videoURL string) string {
	if !strings.Contains(videoURL, "=") {
		return ""
	}
	id, err := videoid.Parse(videoURL)
	if err != nil {
		return ""
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	subject := q.Get("subject")
	prompt, _ := s.catalog.Current().Template(subject)

	s.render(w, r, http.StatusOK, s.newPage(q.Get("video_url"), subject, prompt, q.Get("language")))
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.catalog.Current().Template(r.PathValue("subject"))
	if !ok {
		http.Error(w, "unknown subject", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, tpl)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	req := notes.Request{
		VideoURL: strings.TrimSpace(r.PostFormValue("video_url")),
		Subject:  r.PostFormValue("subject"),
		Prompt:   r.PostFormValue("prompt"),
		Language: r.PostFormValue("language"),
	}
	page := s.newPage(req.VideoURL, req.Subject, req.Prompt, req.Language)

	note, err := s.notes.Generate(ctx, req)
	if err != nil {
		kind := notes.KindOf(err)
		page.Error = kind.Message()
		s.render(w, r, statusFor(kind), page)
		return
	}

	page.Note = note
	page.DownloadID = s.downloads.put(note)
	s.render(w, r, http.StatusOK, page)
}

func statusFor(kind notes.Kind) int {
	switch kind {
	case notes.ValidationFailed:
		return http.StatusBadRequest
	case notes.TranscriptUnavailable:
		return http.StatusNotFound
	case notes.GenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleDownloadText(w http.ResponseWriter, r *http.Request) {
	note, ok := s.downloads.get(r.PathValue("id"))
	if !ok {
		http.Error(w, "note expired or not found", http.StatusNotFound)
		return
	}
	s.writeAttachment(w, r, export.TextFileName, export.TextMIME, export.Text(note.Text))
}

func (s *Server) handleDownloadDocx(w http.ResponseWriter, r *http.Request) {
	note, ok := s.downloads.get(r.PathValue("id"))
	if !ok {
		http.Error(w, "note expired or not found", http.StatusNotFound)
		return
	}

	data, err := export.Docx(docTitle(note), note.Raw)
	if err != nil {
		s.logger.Error(r.Context(), "Failed to render docx for %s: %v", note.VideoID, err)
		http.Error(w, "could not render document", http.StatusInternalServerError)
		return
	}
	s.writeAttachment(w, r, export.DocxFileName, export.DocxMIME, data)
}

func docTitle(n *notes.Note) string {
	if n.Subject != "" {
		return n.Subject + " notes"
	}
	return "Notes for " + n.VideoID
}

func (s *Server) writeAttachment(w http.ResponseWriter, r *http.Request, name, mime string, data []byte) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	if n, err := w.Write(data); err != nil {
		s.logger.Debug(r.Context(), "Short write of %s: %d/%d bytes: %v", name, n, len(data), err)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		s.logger.Error(r.Context(), "Failed to render page: %v", err)
	}
}
