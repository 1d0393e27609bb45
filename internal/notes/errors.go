package notes

import (
	"errors"
	"fmt"
)

// Kind classifies a failed submission.
type Kind int

const (
	KindUnknown Kind = iota
	ValidationFailed
	TranscriptUnavailable
	GenerationFailed
)

func (k Kind) String() string {
	switch k {
	case ValidationFailed:
		return "ValidationFailed"
	case TranscriptUnavailable:
		return "TranscriptUnavailable"
	case GenerationFailed:
		return "GenerationFailed"
	default:
		return "Unknown"
	}
}

// Message is the short text shown to the user for this kind.
func (k Kind) Message() string {
	switch k {
	case ValidationFailed:
		return "Please enter the video link and text prompt correctly."
	case TranscriptUnavailable:
		return "No transcript data found for the video."
	case GenerationFailed:
		return "An error occurred while generating notes."
	default:
		return "An unexpected error occurred."
	}
}

// Error is the only error type returned by NoteGenerator.Generate.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func fail(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
