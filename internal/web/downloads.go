package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/notes-craft/internal/notes"
)

// downloads keeps generated notes in memory until they expire. Nothing is
// written to disk.
type downloads struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]downloadEntry
}

type downloadEntry struct {
	note    *notes.Note
	expires time.Time
}

func newDownloads(ttl time.Duration) *downloads {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &downloads{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]downloadEntry),
	}
}

func (d *downloads) put(n *notes.Note) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pruneLocked()
	id := uuid.NewString()
	d.entries[id] = downloadEntry{note: n, expires: d.now().Add(d.ttl)}
	return id
}

func (d *downloads) get(id string) (*notes.Note, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[id]
	if !ok {
		return nil, false
	}
	if !d.now().Before(e.expires) {
		delete(d.entries, id)
		return nil, false
	}
	return e.note, true
}

func (d *downloads) pruneLocked() {
	now := d.now()
	for id, e := range d.entries {
		if !now.Before(e.expires) {
			delete(d.entries, id)
		}
	}
}

func (d *downloads) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}
