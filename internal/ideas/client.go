package ideas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the hosted idea-generation service.
const DefaultEndpoint = "https://agents-api-ucmd.onrender.com/generate-ideas"

// DefaultTimeout bounds a single generation. The service routinely needs up
// to a minute, so leave headroom.
const DefaultTimeout = 2 * time.Minute

const maxErrorBodyBytes = 512

var errInvalidJSON = errors.New("response body is not valid JSON")

// Config describes how to reach the service.
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
}

// Client generates ideas for a request.
type Client interface {
	Generate(ctx context.Context, requestID string, req Request) ([]Idea, error)
	Endpoint() string
}

type httpClient struct {
	endpoint string
	client   *http.Client
}

// New builds a Client, falling back to DefaultEndpoint.
func New(cfg Config) Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &httpClient{
		endpoint: endpoint,
		client:   pickHTTPClient(cfg.HTTPClient),
	}
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Callers bound each call with a context deadline; the client timeout is
	// only a backstop.
	return &http.Client{Timeout: DefaultTimeout + 30*time.Second}
}

func (c *httpClient) Endpoint() string {
	return c.endpoint
}

// Generate posts the request and normalizes the response. Errors are one of
// *TransportError, *StatusError or *ShapeError.
func (c *httpClient) Generate(ctx context.Context, requestID string, req Request) ([]Idea, error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return nil, &ShapeError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Printf("[ideas] %s returned %s (request=%s)", c.endpoint, resp.Status, requestID)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	results, err := Normalize(body)
	if err != nil {
		log.Printf("[ideas] undecodable response (request=%s): %v", requestID, errors.Unwrap(err))
		return nil, err
	}
	return results, nil
}
