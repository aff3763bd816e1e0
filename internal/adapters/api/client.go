package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/logging"
	"studyflow/internal/ports"
)

// DefaultTimeout bounds a single request
const DefaultTimeout = 10 * time.Second

const maxErrorBody = 4 << 10

// Client uploads sessions and reflections to the StudyFlow service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.Uploader = (*Client)(nil)

// NewClient creates a Client for baseURL (for example http://localhost:8080)
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// UploadSession sends a session with its reflections
func (c *Client) UploadSession(ctx context.Context, session domain.Session, reflections []domain.Reflection) (bool, error) {
	var ack Ack
	err := c.do(ctx, http.MethodPost, "/api/sessions", SessionUpload{
		Reflections: reflectionPayloads(reflections),
		Session:     NewSessionPayload(session),
	}, &ack)
	if err != nil {
		return false, err
	}
	return ack.OK, nil
}

// UploadReflection sends a single reflection
func (c *Client) UploadReflection(ctx context.Context, reflection domain.Reflection) (bool, error) {
	var ack Ack
	if err := c.do(ctx, http.MethodPost, "/api/reflections", NewReflectionPayload(reflection), &ack); err != nil {
		return false, err
	}
	return ack.OK, nil
}

// SubmitReflection asks the service to score a reflection
func (c *Client) SubmitReflection(ctx context.Context, reflection domain.Reflection) (float64, error) {
	var resp ScoreResponse
	if err := c.do(ctx, http.MethodPost, "/api/reflections/score", NewReflectionPayload(reflection), &resp); err != nil {
		return 0, err
	}
	return resp.Score, nil
}

// Health checks that the service is reachable
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	logging.Logger.Debug("API request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr ErrorResponse
		if json.Unmarshal(msg, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrNetwork, method, path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrNetwork, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: invalid response from %s: %w", domain.ErrNetwork, path, err)
	}
	return nil
}
