// Package export renders generated notes as downloadable files.
package export

const (
	TextFileName = "note.txt"
	TextMIME     = "text/plain; charset=utf-8"
	DocxFileName = "note.docx"
	DocxMIME     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Text returns the plain-text download body.
func Text(note string) []byte {
	return []byte(note)
}
