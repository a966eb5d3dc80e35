package comicvine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const pageLimit = 100

// envelope is the wrapper Comic Vine puts around every response.
type envelope struct {
	Error        string          `json:"error"`
	Limit        int             `json:"limit"`
	Offset       int             `json:"offset"`
	PageResults  int             `json:"number_of_page_results"`
	TotalResults int             `json:"number_of_total_results"`
	StatusCode   int             `json:"status_code"`
	Results      json.RawMessage `json:"results"`
}

// API-level status codes reported inside the envelope.
const (
	statusOK            = 1
	statusInvalidAPIKey = 100
	statusNotFound      = 101
	statusRateLimited   = 107
)

// ListOptions narrows list and search requests.
type ListOptions struct {
	// Filter holds field:value pairs passed through to the API's filter
	// parameter.
	Filter map[string]string
	// Sort is a "field:asc" or "field:desc" expression.
	Sort string
	// MaxResults caps the rows collected for this request, overriding the
	// client default when positive.
	MaxResults int
}

func (o *ListOptions) values() url.Values {
	params := url.Values{}
	if o == nil {
		return params
	}
	if len(o.Filter) > 0 {
		fields := make([]string, 0, len(o.Filter))
		for field := range o.Filter {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		pairs := make([]string, 0, len(fields))
		for _, field := range fields {
			pairs = append(pairs, field+":"+o.Filter[field])
		}
		params.Set("filter", strings.Join(pairs, ","))
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	return params
}

func (o *ListOptions) maxResults(fallback int) int {
	if o != nil && o.MaxResults > 0 {
		return o.MaxResults
	}
	return fallback
}

// cacheKey builds the canonical request signature: url plus sorted query
// parameters, with the api_key value masked so credentials never reach the
// cache file or the logs.
func cacheKey(requestURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		value := params.Get(key)
		if key == "api_key" {
			value = "*****"
		}
		pairs = append(pairs, key+"="+value)
	}
	return requestURL + "?" + strings.Join(pairs, "&")
}

// get performs a single request against the given endpoint, consulting the
// cache first when one is configured.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*envelope, error) {
	merged := url.Values{}
	for key, values := range params {
		merged[key] = values
	}
	merged.Set("api_key", c.apiKey)
	merged.Set("format", "json")

	requestURL := c.baseURL + endpoint + "/"
	key := cacheKey(requestURL, merged)

	if c.cache != nil {
		body, found, err := c.cache.Get(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCache, err)
		}
		if found {
			var env envelope
			if err := json.Unmarshal(body, &env); err == nil {
				c.logger.Debug().Str("key", key).Msg("Cache hit")
				return &env, nil
			}
			// Unreadable entry, refetch and overwrite.
			c.logger.Warn().Str("key", key).Msg("Discarding unreadable cache entry")
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, requestURL, merged, key)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: unable to parse response from %q: %s", ErrSchema, key, err)
	}

	if err := env.check(); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(key, body); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCache, err)
		}
	}

	return &env, nil
}

// doRequest performs the HTTP round trip and maps non-200 statuses to the
// error taxonomy. maskedURL is used for logging only.
func (c *Client) doRequest(ctx context.Context, requestURL string, params url.Values, maskedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("url", maskedURL).Msg("Making Comic Vine API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, 420:
		// Comic Vine reports rate limiting as 420, and both 401 and 420
		// carry the invalid-key message for bad credentials.
		return nil, fmt.Errorf("%w: %s", ErrInvalidAPIKey, apiMessage(body))
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return nil, &APIError{HTTPStatus: resp.StatusCode, Message: "service error, retry again later"}
	default:
		return nil, &APIError{HTTPStatus: resp.StatusCode, Message: apiMessage(body)}
	}
}

// check maps API-level status codes inside a 200 response.
func (e *envelope) check() error {
	switch e.StatusCode {
	case statusOK:
		return nil
	case statusInvalidAPIKey:
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, e.Error)
	case statusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, e.Error)
	case statusRateLimited:
		return fmt.Errorf("%w: %s", ErrRateLimited, e.Error)
	}
	if e.Error != "" && e.Error != "OK" {
		return &APIError{StatusCode: e.StatusCode, Message: e.Error}
	}
	return nil
}

// apiMessage extracts the error string from an envelope body, falling back
// to the raw body when it isn't parseable.
func apiMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		// Back up to a rune boundary so the cut never splits a multibyte
		// character from an HTML error page.
		cut := 200
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}

type validator interface {
	validate() error
}

// decodeResults unmarshals the envelope results into dst and validates it.
func decodeResults(results json.RawMessage, dst any) error {
	if err := json.Unmarshal(results, dst); err != nil {
		return fmt.Errorf("%w: %s", ErrSchema, err)
	}
	if v, ok := dst.(validator); ok {
		if err := v.validate(); err != nil {
			return fmt.Errorf("%w: %s", ErrSchema, err)
		}
	}
	return nil
}

// getResource fetches and decodes a single resource.
func getResource[T any](ctx context.Context, c *Client, resource Resource, id int64) (*T, error) {
	env, err := c.get(ctx, resource.DetailPath(id), nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := decodeResults(env.Results, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// listResource collects offset-paginated results until the total is reached
// or the max-results cap is hit.
func listResource[T any](ctx context.Context, c *Client, endpoint string, opts *ListOptions) ([]T, error) {
	params := opts.values()
	params.Set("limit", strconv.Itoa(pageLimit))
	maxResults := opts.maxResults(c.maxResults)

	var out []T
	for {
		params.Set("offset", strconv.Itoa(len(out)))
		env, err := c.get(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}

		var page []T
		if err := json.Unmarshal(env.Results, &page); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSchema, err)
		}
		if len(page) == 0 {
			break
		}
		out = append(out, page...)
		if len(out) >= env.TotalResults || len(out) >= maxResults {
			break
		}
	}

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return validateAll(out)
}

// pageResource collects page-paginated results; the search endpoint pages
// with a page parameter instead of an offset.
func pageResource[T any](ctx context.Context, c *Client, endpoint string, params url.Values, maxResults int) ([]T, error) {
	params.Set("limit", strconv.Itoa(pageLimit))

	var out []T
	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))
		env, err := c.get(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}

		var rows []T
		if err := json.Unmarshal(env.Results, &rows); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSchema, err)
		}
		if len(rows) == 0 {
			break
		}
		out = append(out, rows...)
		if len(out) >= env.TotalResults || len(out) >= maxResults {
			break
		}
	}

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return validateAll(out)
}

func validateAll[T any](rows []T) ([]T, error) {
	for i := range rows {
		if v, ok := any(&rows[i]).(validator); ok {
			if err := v.validate(); err != nil {
				return nil, fmt.Errorf("%w: result %d: %s", ErrSchema, i, err)
			}
		}
	}
	return rows, nil
}
