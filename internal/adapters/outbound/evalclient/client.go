// Package evalclient wraps the evaluation service's HTTP contract: one POST
// per call, JSON both ways, no retries.
package evalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/riskgate/riskgate/internal/domain"
)

// DefaultPath is the endpoint suffix of the hosted AI evaluator. Deployments
// differ (the rules fallback lives at /evaluate/rules, some gateways expose
// a bare /evaluate), so the suffix is configuration, not a constant of the
// contract.
const DefaultPath = "/evaluate/ai"

// Client implements domain.EvaluationClient against a configured base URL.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
	newID      func() string
}

// Option configures a Client at creation time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithPath overrides the evaluation endpoint suffix.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithRequestIDFunc replaces the X-Request-ID generator.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) { c.newID = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		path:       DefaultPath,
		httpClient: http.DefaultClient,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Evaluate performs exactly one HTTP exchange. A 2xx response is decoded
// leniently into an EvaluationResult; everything else becomes an error
// carrying the failure class and, where available, the server's status and
// body text.
func (c *Client) Evaluate(ctx context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", c.newID())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("network error: evaluation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("evaluation service returned HTTP %d: %s", resp.StatusCode, failureDetail(resp))
	}

	var result domain.EvaluationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding evaluation response: %w", err)
	}
	return &result, nil
}

// failureDetail extracts a human-readable fragment from a failed response:
// the body text when there is one, the status phrase otherwise.
func failureDetail(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	text := strings.TrimSpace(string(data))
	if err != nil || text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
