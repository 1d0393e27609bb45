package generator

import "context"

// Generator sends one prompt to the hosted model and returns its text reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
