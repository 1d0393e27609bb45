package transcript

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/notes-craft/internal/logger"
)

const classicTimedText = `<?xml version="1.0" encoding="utf-8" ?><transcript>
<text start="0.5" dur="1.2">hello</text>
<text start="1.7" dur="2">world</text>
<text start="3.7" dur="1"></text>
<text start="4.7" dur="1.5">don&amp;#39;t
stop</text>
</transcript>`

func watchPage(playerJSON string) string {
	return `<html><head><script>var ytInitialPlayerResponse = ` + playerJSON +
		`;var meta = {"a":"}"};</script></head><body></body></html>`
}

func newTestServer(t *testing.T, player func(base string) string, timedtext string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch":
			fmt.Fprint(w, watchPage(player(srv.URL)))
		case "/api/timedtext":
			w.Header().Set("Content-Type", "text/xml")
			fmt.Fprint(w, timedtext)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newProvider(base string) Provider {
	return New(Options{BaseURL: base, Timeout: 2 * time.Second}, logger.Nop())
}

func TestFetch(t *testing.T) {
	srv := newTestServer(t, func(base string) string {
		return `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
			`{"baseUrl":"` + base + `/api/timedtext?v=abc123&lang=en","languageCode":"en","kind":"asr"}` +
			`]}}}`
	}, classicTimedText)

	segs, err := newProvider(srv.URL).Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, segs, 3)

	assert.Equal(t, Segment{Text: "hello", Start: 0.5, Duration: 1.2}, segs[0])
	assert.Equal(t, "world", segs[1].Text)
	assert.Equal(t, "don't stop", segs[2].Text)
	assert.Equal(t, " hello world don't stop", Join(segs))
}

func TestFetchRelativeTrackURL(t *testing.T) {
	srv := newTestServer(t, func(string) string {
		return `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
			`{"baseUrl":"/api/timedtext?v=abc123","languageCode":"de"}]}}}`
	}, `<timedtext format="3"><body><p t="1000" d="2500"><s>guten</s><s> tag</s></p><p t="4000" d="500">ende</p></body></timedtext>`)

	segs, err := newProvider(srv.URL).Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Text: "guten tag", Start: 1, Duration: 2.5}, segs[0])
	assert.Equal(t, "ende", segs[1].Text)
}

func TestFetchNoCaptions(t *testing.T) {
	srv := newTestServer(t, func(string) string {
		return `{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`
	}, "")

	_, err := newProvider(srv.URL).Fetch(context.Background(), "missing0000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCaptions)
	assert.Contains(t, err.Error(), "Video unavailable")
}

func TestFetchMarkerMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>consent page</html>")
	}))
	defer srv.Close()

	_, err := newProvider(srv.URL).Fetch(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestFetchEmptyTranscript(t *testing.T) {
	srv := newTestServer(t, func(base string) string {
		return `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
			`{"baseUrl":"` + base + `/api/timedtext","languageCode":"en"}]}}}`
	}, `<transcript><text start="0" dur="1">  </text></transcript>`)

	_, err := newProvider(srv.URL).Fetch(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	_, err := newProvider(srv.URL).Fetch(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 410")
}

func TestFetchEmptyID(t *testing.T) {
	_, err := newProvider("http://127.0.0.1:1").Fetch(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidVideoID)
}

func TestFetchRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch":
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			fmt.Fprint(w, watchPage(`{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[`+
				`{"baseUrl":"`+srv.URL+`/api/timedtext","languageCode":"en"}]}}}`))
		case "/api/timedtext":
			fmt.Fprint(w, classicTimedText)
		}
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL, Timeout: 2 * time.Second, MaxRetries: 1}, logger.Nop())
	impl := p.(*implProvider)
	impl.retry.InitialWait = time.Millisecond

	segs, err := p.Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Len(t, segs, 3)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchNoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newProvider(srv.URL).Fetch(context.Background(), "abc123")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1&exp=xpe", LanguageCode: "hi"},
		{BaseURL: "u2", LanguageCode: "hi", Kind: "asr"},
		{BaseURL: "u3", LanguageCode: "en-GB"},
		{BaseURL: "u4", LanguageCode: "fr"},
	}

	tr, ok := pickBestTrack(tracks, []string{"hi"})
	require.True(t, ok)
	assert.Equal(t, "u2", tr.BaseURL)

	tr, ok = pickBestTrack(tracks, []string{"de"})
	require.True(t, ok)
	assert.Equal(t, "u3", tr.BaseURL)

	tr, ok = pickBestTrack(tracks[3:], []string{"de"})
	require.True(t, ok)
	assert.Equal(t, "u4", tr.BaseURL)

	_, ok = pickBestTrack(tracks[:1], []string{"hi"})
	assert.False(t, ok)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":"}{","b":{"c":1}}`, string(extractJSON([]byte(`{"a":"}{","b":{"c":1}};rest`))))
	assert.Equal(t, `{"q":"say \"}\""}`, string(extractJSON([]byte(`{"q":"say \"}\""} trailing`))))
	assert.Nil(t, extractJSON([]byte(`not json`)))
	assert.Nil(t, extractJSON([]byte(`{"open":`)))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, " hello world", Join([]Segment{{Text: "hello"}, {Text: "world"}}))
	assert.Equal(t, "", Join(nil))
}
