package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RigelNana/arksignup/pkg/middleware"
)

// BackendClient forwards a submitted field set to the signup service.
type BackendClient interface {
	Forward(ctx context.Context, requestID string, fields map[string]string) (string, error)
}

type HTTPBackendClient struct {
	url    string
	client *http.Client
}

func NewBackendClient(url string, timeout time.Duration) *HTTPBackendClient {
	return &HTTPBackendClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Forward POSTs fields as a JSON object and returns the inserted id the
// backend answered with.
func (b *HTTPBackendClient) Forward(ctx context.Context, requestID string, fields map[string]string) (string, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode fields: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read backend response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("backend returned %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var out struct {
		InsertedID string `json:"inserted_id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode backend response: %w", err)
	}
	return out.InsertedID, nil
}
