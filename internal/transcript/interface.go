package transcript

import "context"

// Segment is one timed caption line.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Provider fetches the caption segments of a video in provider order.
type Provider interface {
	Fetch(ctx context.Context, videoID string) ([]Segment, error)
}
