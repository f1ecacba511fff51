package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/generator"
)

// HTTPClient implements Planner by calling the NextBlock REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the catalog lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies Planner.
var _ Planner = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// is sent as X-API-Key when non-empty.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("httpclient: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: read body: %w", err)
	}
	return data, resp.StatusCode, nil
}

func (c *HTTPClient) Generate(ctx context.Context, req generator.Request) (*generator.Result, error) {
	body, status, err := c.do(ctx, http.MethodPost, "/api/v1/generate", req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("httpclient: /api/v1/generate returned %d: %s", status, body)
	}

	var res generator.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("httpclient: decode result: %w", err)
	}
	return &res, nil
}

func (c *HTTPClient) Styles(ctx context.Context) ([]string, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/api/v1/templates", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("httpclient: /api/v1/templates returned %d: %s", status, body)
	}

	var styles []string
	if err := json.Unmarshal(body, &styles); err != nil {
		return nil, fmt.Errorf("httpclient: decode styles: %w", err)
	}
	return styles, nil
}

func (c *HTTPClient) Template(ctx context.Context, style string) (*catalog.Template, error) {
	path := "/api/v1/templates/" + url.PathEscape(style)
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownStyle, style)
	default:
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, status, body)
	}

	var tpl catalog.Template
	if err := json.Unmarshal(body, &tpl); err != nil {
		return nil, fmt.Errorf("httpclient: decode template: %w", err)
	}
	return &tpl, nil
}
