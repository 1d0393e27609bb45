package notes

import (
	"github.com/nguyentantai21042004/notes-craft/internal/catalog"
	"github.com/nguyentantai21042004/notes-craft/internal/generator"
	"github.com/nguyentantai21042004/notes-craft/internal/logger"
	"github.com/nguyentantai21042004/notes-craft/internal/transcript"
)

type implNoteGenerator struct {
	transcripts transcript.Provider
	model       generator.Generator
	catalog     *catalog.Store
	logger      logger.Logger
	slots       *semaphore
}

// New creates a NoteGenerator. maxConcurrent bounds in-flight submissions;
// values below 1 mean one at a time.
func New(transcripts transcript.Provider, model generator.Generator, store *catalog.Store, log logger.Logger, maxConcurrent int) NoteGenerator {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &implNoteGenerator{
		transcripts: transcripts,
		model:       model,
		catalog:     store,
		logger:      log,
		slots:       newSemaphore(maxConcurrent),
	}
}
