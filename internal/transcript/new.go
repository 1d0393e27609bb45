package transcript

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/notes-craft/internal/logger"
)

const (
	defaultBaseURL = "https://www.youtube.com"
	defaultTimeout = 15 * time.Second
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// Options configures the YouTube provider.
type Options struct {
	// BaseURL of the watch page host. Defaults to https://www.youtube.com.
	BaseURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts on 429/5xx or network errors.
	MaxRetries int
	// Languages lists caption language codes in preference order.
	Languages []string
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

type implProvider struct {
	baseURL   string
	client    *http.Client
	retry     retryConfig
	languages []string
	logger    logger.Logger
}

// New creates a Provider backed by the YouTube watch page and timedtext API.
func New(opts Options, log logger.Logger) Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if len(opts.Languages) == 0 {
		opts.Languages = []string{"en"}
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	rc := defaultRetryConfig
	rc.MaxRetries = opts.MaxRetries

	return &implProvider{
		baseURL:   opts.BaseURL,
		client:    client,
		retry:     rc,
		languages: opts.Languages,
		logger:    log,
	}
}
