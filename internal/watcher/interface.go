package watcher

import "context"

// Watcher reports changes to a single file.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ChangeHandler is called once per settled burst of changes to the file.
type ChangeHandler func(ctx context.Context, path string) error
