package comicvine

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			apiKey: "test-key",
		},
		{
			name:    "missing API key",
			apiKey:  "",
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultBaseURL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
			assert.Equal(t, defaultMaxResults, client.maxResults)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with base url", func(t *testing.T) {
		client, err := NewClient("test-key", WithBaseURL("http://localhost:9000/api/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/api", client.baseURL)
	})

	t.Run("with max results", func(t *testing.T) {
		client, err := NewClient("test-key", WithMaxResults(50))
		require.NoError(t, err)
		assert.Equal(t, 50, client.maxResults)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("test-key", WithUserAgent("custom/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "custom/1.0", client.userAgent)
	})

	t.Run("with logger", func(t *testing.T) {
		logger := zerolog.Nop()
		_, err := NewClient("test-key", WithLogger(logger))
		require.NoError(t, err)
	})
}

func TestResource(t *testing.T) {
	tests := []struct {
		resource   Resource
		str        string
		listPath   string
		id         int64
		detailPath string
	}{
		{ResourcePublisher, "publisher", "/publishers", 31, "/publisher/4010-31"},
		{ResourceVolume, "volume", "/volumes", 18216, "/volume/4050-18216"},
		{ResourceIssue, "issue", "/issues", 6, "/issue/4000-6"},
		{ResourceCreator, "person", "/people", 40439, "/person/4040-40439"},
		{ResourceItem, "object", "/objects", 1, "/object/4055-1"},
		{ResourceStoryArc, "story_arc", "/story_arcs", 55766, "/story_arc/4045-55766"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.resource.String())
			assert.Equal(t, tt.listPath, tt.resource.ListPath())
			assert.Equal(t, tt.detailPath, tt.resource.DetailPath(tt.id))
		})
	}
}
