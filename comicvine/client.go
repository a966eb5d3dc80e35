package comicvine

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL    = "https://comicvine.gamespot.com/api"
	defaultMaxResults = 500
	defaultTimeout    = 30 * time.Second

	// Comic Vine allows 200 requests per resource per hour and asks
	// clients to space requests out to roughly one per second.
	defaultPerSecond = 1
	defaultPerHour   = 200
)

// Version of the library, reported in the User-Agent header.
const Version = "1.0.0"

// Store is the subset of the cache layer the client needs. Implementations
// live in the cache package; any key-value store of raw response bytes works.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}

// Client wraps the Comic Vine API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
	limiter    *limiter
	cache      Store
	userAgent  string
	maxResults int
}

// NewClient creates a new Comic Vine client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("comicvine: API key is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	userAgent := options.userAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("Longbox/%s (%s %s)", Version, runtime.GOOS, runtime.GOARCH)
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     options.logger,
		limiter:    newLimiter(options.perSecond, options.perHour),
		cache:      options.cache,
		userAgent:  userAgent,
		maxResults: options.maxResults,
	}, nil
}
