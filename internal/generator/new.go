package generator

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/notes-craft/internal/logger"
)

// Options configures the Gemini generator.
type Options struct {
	// APIKeys are tried in order; the next one is used on quota errors.
	APIKeys []string
	Model   string
	// Timeout bounds a single generation call.
	Timeout time.Duration
	// RequestsPerMinute paces outbound calls. Zero disables pacing.
	RequestsPerMinute int
	// BaseURL overrides the Gemini API endpoint.
	BaseURL    string
	HTTPClient *http.Client
}

type implGenerator struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	timeout    time.Duration
	limiter    *rate.Limiter
	baseURL    string
	httpClient *http.Client
}

// New creates a Generator backed by the Gemini API. It never fails: a missing
// key is reported by Generate.
func New(opts Options, log logger.Logger) Generator {
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}

	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}

	return &implGenerator{
		apiKeys:    opts.APIKeys,
		logger:     log,
		model:      opts.Model,
		timeout:    opts.Timeout,
		limiter:    limiter,
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
	}
}
