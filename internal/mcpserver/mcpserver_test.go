package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/notes-craft/internal/catalog"
	"github.com/nguyentantai21042004/notes-craft/internal/logger"
	"github.com/nguyentantai21042004/notes-craft/internal/notes"
)

type fakeNotes struct {
	note *notes.Note
	err  error
	reqs []notes.Request
}

func (f *fakeNotes) Generate(ctx context.Context, req notes.Request) (*notes.Note, error) {
	f.reqs = append(f.reqs, req)
	return f.note, f.err
}

func newTools(t *testing.T, gen notes.NoteGenerator) *tools {
	t.Helper()
	store, err := catalog.NewStore("", logger.Nop())
	require.NoError(t, err)
	return &tools{notes: gen, catalog: store, logger: logger.Nop()}
}

func TestGenerateNotesUsesSubjectTemplate(t *testing.T) {
	gen := &fakeNotes{note: &notes.Note{VideoID: "abc123", Language: "English", Raw: "# Notes"}}
	tl := newTools(t, gen)

	_, out, err := tl.generateNotes(context.Background(), nil, GenerateInput{
		VideoURL: "https://www.youtube.com/watch?v=abc123",
		Subject:  "Biology",
	})
	require.NoError(t, err)
	assert.Equal(t, GenerateOutput{VideoID: "abc123", Language: "English", Note: "# Notes"}, out)

	want, _ := catalog.Default().Template("Biology")
	require.Len(t, gen.reqs, 1)
	assert.Equal(t, want, gen.reqs[0].Prompt)
}

func TestGenerateNotesExplicitPrompt(t *testing.T) {
	gen := &fakeNotes{note: &notes.Note{VideoID: "abc123"}}
	tl := newTools(t, gen)

	_, _, err := tl.generateNotes(context.Background(), nil, GenerateInput{
		VideoURL: "abc123",
		Subject:  "Biology",
		Prompt:   "custom",
		Language: "Hindi",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", gen.reqs[0].Prompt)
	assert.Equal(t, "Hindi", gen.reqs[0].Language)
}

func TestGenerateNotesError(t *testing.T) {
	gen := &fakeNotes{err: &notes.Error{Kind: notes.TranscriptUnavailable, Err: errors.New("no captions")}}
	tl := newTools(t, gen)

	_, _, err := tl.generateNotes(context.Background(), nil, GenerateInput{VideoURL: "abc123", Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), notes.TranscriptUnavailable.Message())
	assert.Contains(t, err.Error(), "TranscriptUnavailable")
}

func TestListSubjects(t *testing.T) {
	tl := newTools(t, &fakeNotes{})

	_, out, err := tl.listSubjects(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	assert.Contains(t, out.Subjects, "Biology")
	assert.NotContains(t, out.Subjects, "")
	assert.Equal(t, "English", out.Languages[0])
}

func TestNew(t *testing.T) {
	store, err := catalog.NewStore("", logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, New(&fakeNotes{}, store, logger.Nop(), "test"))
}
