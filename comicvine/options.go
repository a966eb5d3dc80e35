package comicvine

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
	cache      Store
	userAgent  string
	maxResults int
	perSecond  int
	perHour    int
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		logger:     zerolog.Nop(),
		maxResults: defaultMaxResults,
		perSecond:  defaultPerSecond,
		perHour:    defaultPerHour,
	}
}

// WithBaseURL overrides the API base url. Intended for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithCache enables the response cache backed by the given store.
func WithCache(store Store) Option {
	return func(o *clientOptions) {
		o.cache = store
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithMaxResults caps how many rows list and search requests collect before
// they stop paginating. The default is 500.
func WithMaxResults(maxResults int) Option {
	return func(o *clientOptions) {
		if maxResults > 0 {
			o.maxResults = maxResults
		}
	}
}

// WithRateLimit overrides the request budgets. Zero disables the
// corresponding limit.
func WithRateLimit(perSecond, perHour int) Option {
	return func(o *clientOptions) {
		o.perSecond = perSecond
		o.perHour = perHour
	}
}
