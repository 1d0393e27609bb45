package notes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nguyentantai21042004/notes-craft/internal/videoid"
)

var errMissingInput = errors.New("video URL and prompt are required")

// Generate runs the note pipeline: validate, fetch transcript, assemble the
// prompt, call the model and post-process the reply. Every failure is
// logged and returned as *Error.
func (g *implNoteGenerator) Generate(ctx context.Context, req Request) (*Note, error) {
	if strings.TrimSpace(req.VideoURL) == "" || strings.TrimSpace(req.Prompt) == "" {
		g.logger.Warn(ctx, "Rejected submission: missing video link or prompt")
		return nil, fail(ValidationFailed, errMissingInput)
	}

	videoID, err := videoid.Parse(req.VideoURL)
	if err != nil {
		g.logger.Warn(ctx, "Rejected submission: %v (%q)", err, req.VideoURL)
		return nil, fail(ValidationFailed, err)
	}

	if err := g.slots.acquire(ctx); err != nil {
		return nil, fail(GenerationFailed, err)
	}
	defer g.slots.release()

	startTime := time.Now()
	cat := g.catalog.Current()

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = cat.DefaultLanguage()
	} else if !cat.HasLanguage(language) {
		g.logger.Warn(ctx, "Unknown language %q, passing it through", language)
	}

	// Step 1: Fetch transcript
	segments, err := g.transcripts.Fetch(ctx, videoID)
	if err != nil {
		g.logger.Error(ctx, "Transcript fetch failed for %s: %v", videoID, err)
		return nil, fail(TranscriptUnavailable, err)
	}
	g.logger.Info(ctx, "Extract data from the video.")
	g.logger.Debug(ctx, "Transcript for %s: %d segments", videoID, len(segments))

	// Step 2: Generate
	prompt := AssemblePrompt(req.Prompt, segments, language)
	raw, err := g.model.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error(ctx, "Generation failed for %s: %v", videoID, err)
		return nil, fail(GenerationFailed, err)
	}
	g.logger.Info(ctx, "Notes generated.")
	g.logger.Debug(ctx, "Pipeline for %s took %s", videoID, time.Since(startTime))

	return &Note{
		VideoID:  videoID,
		Subject:  req.Subject,
		Language: language,
		Raw:      raw,
		Text:     PostProcess(raw),
	}, nil
}
