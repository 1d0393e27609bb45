package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrNoCaptions means the video exposes no usable caption track.
	ErrNoCaptions = errors.New("no captions available")
	// ErrEmptyTranscript means a caption track was found but held no text.
	ErrEmptyTranscript = errors.New("empty transcript")
	// ErrInvalidVideoID is returned for an empty id.
	ErrInvalidVideoID = errors.New("invalid video id")
)

// playerResponseMarker marks the start of the player JSON in watch page HTML.
const playerResponseMarker = "ytInitialPlayerResponse = "

const (
	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 2 * 1024 * 1024
)

// Fetch scrapes the watch page for caption tracks, picks the best one for the
// configured languages and returns its segments.
func (p *implProvider) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, ErrInvalidVideoID
	}

	tracks, err := p.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, ok := pickBestTrack(tracks, p.languages)
	if !ok {
		return nil, fmt.Errorf("%w: all caption tracks require a PoToken", ErrNoCaptions)
	}
	p.logger.Debug(ctx, "Caption track selected for %s: lang=%s kind=%s", videoID, track.LanguageCode, track.Kind)

	segments, err := p.fetchTimedText(ctx, p.resolve(track.BaseURL))
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, ErrEmptyTranscript
	}
	return segments, nil
}

// captionTracks extracts caption tracks from ytInitialPlayerResponse.
func (p *implProvider) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	watchURL := p.baseURL + "/watch?v=" + url.QueryEscape(videoID)

	body, err := p.get(ctx, watchURL, maxWatchPageBytes, func(req *http.Request) {
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	idx := strings.Index(string(body), playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: player response not found in watch page", ErrNoCaptions)
	}
	raw := extractJSON(body[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, errors.New("malformed player response")
	}

	var pr playerResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	if pr.Captions == nil || len(pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		if pr.PlayabilityStatus != nil && pr.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoCaptions, pr.PlayabilityStatus.Reason)
		}
		return nil, ErrNoCaptions
	}
	return pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// fetchTimedText downloads and parses a timedtext XML document.
func (p *implProvider) fetchTimedText(ctx context.Context, trackURL string) ([]Segment, error) {
	body, err := p.get(ctx, trackURL, maxTimedTextBytes, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}
	return segments, nil
}

func (p *implProvider) get(ctx context.Context, target string, limit int64, decorate func(*http.Request)) ([]byte, error) {
	resp, err := doWithRetry(ctx, p.retry, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		if decorate != nil {
			decorate(req)
		}
		return p.client.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// resolve makes relative caption URLs absolute against the provider host.
func (p *implProvider) resolve(ref string) string {
	if strings.HasPrefix(ref, "/") {
		return p.baseURL + ref
	}
	return ref
}

func parseTimedText(data []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, err
	}

	var segments []Segment
	for _, l := range tt.Lines {
		text := cleanText(l.Text)
		if text == "" {
			continue
		}
		start, _ := strconv.ParseFloat(l.Start, 64)
		dur, _ := strconv.ParseFloat(l.Dur, 64)
		segments = append(segments, Segment{Text: text, Start: start, Duration: dur})
	}

	for _, para := range tt.Paragraphs {
		raw := para.Text
		if len(para.Spans) > 0 {
			parts := make([]string, 0, len(para.Spans))
			for _, s := range para.Spans {
				parts = append(parts, s.Text)
			}
			raw = strings.Join(parts, "")
		}
		text := cleanText(raw)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    float64(para.T) / 1000,
			Duration: float64(para.D) / 1000,
		})
	}

	return segments, nil
}

// cleanText undoes the second round of HTML escaping YouTube applies and
// flattens line breaks.
func cleanText(s string) string {
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// needsPoToken reports whether a caption track URL requires a PoToken.
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack prefers a manual track in a preferred language, then an
// auto-generated one, then any English track, then the first usable track.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}

	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// extractJSON returns the leading JSON object of b, or nil.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i, c := range b {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// Join concatenates segment texts, each prefixed by a single space, in order.
func Join(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteByte(' ')
		sb.WriteString(s.Text)
	}
	return sb.String()
}
