// Package videoid derives YouTube video identifiers from user input.
package videoid

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalid is returned when no identifier can be derived.
var ErrInvalid = errors.New("no video id in input")

var bareIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// LastSegment returns everything after the last '=' in s, or s itself when
// it has none.
func LastSegment(s string) string {
	if i := strings.LastIndex(s, "="); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Parse extracts a video id from a watch URL, a short link, a shorts, embed
// or live URL, or a bare 11-character id. Inputs that match none of those but
// contain '=' fall back to LastSegment.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}
	if bareIDRe.MatchString(s) {
		return s, nil
	}

	if id := fromURL(s); id != "" {
		return id, nil
	}

	if strings.Contains(s, "=") {
		if id := LastSegment(s); id != "" {
			return id, nil
		}
	}
	return "", ErrInvalid
}

func fromURL(s string) string {
	raw := s
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	if v := u.Query().Get("v"); v != "" {
		return v
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")

	switch host {
	case "youtu.be":
		if len(parts) == 1 && parts[0] != "" {
			return parts[0]
		}
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		if len(parts) == 2 {
			switch parts[0] {
			case "shorts", "embed", "live", "v":
				return parts[1]
			}
		}
	}
	return ""
}
