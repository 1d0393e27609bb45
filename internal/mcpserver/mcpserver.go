// Package mcpserver exposes note generation as MCP tools.
package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nguyentantai21042004/notes-craft/internal/catalog"
	"github.com/nguyentantai21042004/notes-craft/internal/logger"
	"github.com/nguyentantai21042004/notes-craft/internal/notes"
)

const serverName = "notes-craft"

// GenerateInput is the generate_notes argument object.
type GenerateInput struct {
	VideoURL string `json:"video_url" jsonschema:"YouTube video link or bare video id"`
	Subject  string `json:"subject,omitempty" jsonschema:"Subject whose template is used when prompt is empty"`
	Prompt   string `json:"prompt,omitempty" jsonschema:"Instruction text sent ahead of the transcript"`
	Language string `json:"language,omitempty" jsonschema:"Output language (default: English)"`
}

// GenerateOutput is the generate_notes result.
type GenerateOutput struct {
	VideoID  string `json:"video_id"`
	Language string `json:"language"`
	Note     string `json:"note"`
}

// SubjectsOutput is the list_subjects result.
type SubjectsOutput struct {
	Subjects  []string `json:"subjects"`
	Languages []string `json:"languages"`
}

type tools struct {
	notes   notes.NoteGenerator
	catalog *catalog.Store
	logger  logger.Logger
}

// New builds an MCP server with the note tools registered.
func New(gen notes.NoteGenerator, store *catalog.Store, log logger.Logger, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	t := &tools{notes: gen, catalog: store, logger: log}
	t.register(server)
	return server
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func Run(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

func (t *tools) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_notes",
		Description: "Fetch the transcript of a YouTube video and turn it into detailed study notes. Uses the subject template when no prompt is given.",
	}, t.generateNotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_subjects",
		Description: "List the subjects with a prompt template and the supported output languages.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.listSubjects)
}

func (t *tools) generateNotes(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	ctx = logger.WithRequestID(ctx, logger.NewRequestID())

	prompt := input.Prompt
	if prompt == "" {
		prompt, _ = t.catalog.Current().Template(input.Subject)
	}

	note, err := t.notes.Generate(ctx, notes.Request{
		VideoURL: input.VideoURL,
		Subject:  input.Subject,
		Prompt:   prompt,
		Language: input.Language,
	})
	if err != nil {
		t.logger.Warn(ctx, "generate_notes failed: %v", err)
		return nil, GenerateOutput{}, fmt.Errorf("%s (%s)", notes.KindOf(err).Message(), notes.KindOf(err))
	}

	return nil, GenerateOutput{
		VideoID:  note.VideoID,
		Language: note.Language,
		Note:     note.Raw,
	}, nil
}

func (t *tools) listSubjects(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, SubjectsOutput, error) {
	cat := t.catalog.Current()
	var subjects []string
	for _, s := range cat.Subjects() {
		if s != "" {
			subjects = append(subjects, s)
		}
	}
	return nil, SubjectsOutput{Subjects: subjects, Languages: cat.Languages()}, nil
}
