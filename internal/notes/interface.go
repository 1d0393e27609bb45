package notes

import "context"

// Request is one note submission.
type Request struct {
	VideoURL string
	Subject  string
	Prompt   string
	Language string
}

// Note is a generated note. Text is the post-processed form offered for
// download; Raw is the model output as returned.
type Note struct {
	VideoID  string
	Subject  string
	Language string
	Raw      string
	Text     string
}

// NoteGenerator turns one request into one note or one *Error.
type NoteGenerator interface {
	Generate(ctx context.Context, req Request) (*Note, error)
}
