package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftnotes/internal/ingest/notes"
)

// HTTPClient implements Converter by calling the liftnotes REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// conversion happens on the server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies Converter.
var _ Converter = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// may be empty when the server runs without one.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body io.Reader) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, data)
	}

	return data, nil
}

func (c *HTTPClient) Convert(ctx context.Context, text string, skipDates []string, consolidate bool) (*Conversion, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("consolidate", strconv.FormatBool(consolidate))
	if skipDates != nil {
		params.Set("skip_dates", strings.Join(skipDates, ","))
	}

	body, err := c.do(ctx, http.MethodPost, "/api/v1/convert", params, strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	var conv Conversion
	if err := json.Unmarshal(body, &conv); err != nil {
		return nil, fmt.Errorf("httpclient: decode conversion: %w", err)
	}
	return &conv, nil
}

func (c *HTTPClient) Settings(ctx context.Context) (notes.Settings, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/parser", nil, nil)
	if err != nil {
		return notes.Settings{}, err
	}

	var settings notes.Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		return notes.Settings{}, fmt.Errorf("httpclient: decode parser settings: %w", err)
	}
	return settings, nil
}
