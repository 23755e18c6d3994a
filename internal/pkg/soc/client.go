package soc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vitalis-care/vitalis-backend-go/internal/config"
)

// ErrInvalidResponse indicates the feed returned something other than a JSON
// array (an error object, plain text, or unparseable content).
var ErrInvalidResponse = errors.New("soc: response is not a JSON array")

// Client calls the SOC exportadados endpoint. The whole request is encoded as
// a single JSON blob passed in the "parametro" query parameter.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.SOCConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ExportData performs the feed request and returns the raw response body.
// Callers decode the body with DecodeArray so that the raw payload stays
// available for error logging.
func (c *Client) ExportData(ctx context.Context, params interface{}) ([]byte, error) {
	blob, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("soc: encode params: %w", err)
	}

	query := url.Values{}
	query.Set("parametro", string(blob))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("soc: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("soc: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("soc: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("soc: unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// DecodeArray decodes the feed body into individual raw rows. The feed
// sometimes double-encodes its payload as a JSON string, so one level of
// string unwrapping is attempted first. Any non-array shape returns
// ErrInvalidResponse.
func DecodeArray(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrInvalidResponse
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, ErrInvalidResponse
		}
		trimmed = bytes.TrimSpace([]byte(inner))
	}

	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrInvalidResponse
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, ErrInvalidResponse
	}
	return rows, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
