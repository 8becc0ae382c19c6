package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// ErrNoCredential indicates no usable API key was available for a call.
var ErrNoCredential = errors.New("oracle: api key required")

// Config captures the runtime settings required to talk to the oracle.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// Client is the surface the planning pipeline depends on.
type Client interface {
	// GenerateText sends a prompt with a token budget and returns the raw
	// response text, which may wrap the requested JSON in prose.
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Factory produces a Client from an optional per-run credential override.
// An empty override falls back to the configured key; if neither is set the
// factory fails with ErrNoCredential.
type Factory func(credentialOverride string) (Client, error)

// NewFactory builds a Factory bound to the supplied base configuration.
func NewFactory(cfg Config, opts ...Option) Factory {
	return func(credentialOverride string) (Client, error) {
		resolved := cfg
		if override := strings.TrimSpace(credentialOverride); override != "" {
			resolved.APIKey = override
		}
		if strings.TrimSpace(resolved.APIKey) == "" {
			return nil, ErrNoCredential
		}
		return NewClient(resolved, opts...), nil
	}
}

// HTTPClient talks to a Gemini-style generateContent endpoint.
type HTTPClient struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs an oracle client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *HTTPClient {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &HTTPClient{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			Model:          strings.TrimSpace(cfg.Model),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if client.cfg.Model == "" {
		client.cfg.Model = "gemini-2.0-flash"
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// GenerateText issues a single generateContent request. No retry is
// attempted; transport and API failures surface directly.
func (c *HTTPClient) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("oracle generate: prompt required")
	}
	if c.cfg.APIKey == "" {
		return "", ErrNoCredential
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, url.QueryEscape(c.cfg.APIKey))

	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: maxTokens,
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("oracle generate: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("oracle generate: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle generate: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oracle generate: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("oracle generate: http %d: %s", resp.StatusCode, summarizeSnippet(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("oracle generate: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("oracle generate: api error: %s", strings.TrimSpace(parsed.Error.Message))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("oracle generate: empty candidates")
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// HealthCheck issues a tiny ping to verify the API key and model are usable.
func (c *HTTPClient) HealthCheck(ctx context.Context) error {
	content, err := c.GenerateText(ctx, `Respond with exactly this JSON and nothing else: {"ok":true}`, 16)
	if err != nil {
		return err
	}
	var parsed struct {
		OK bool `json:"ok"`
	}
	if err := DecodeObject(content, &parsed); err != nil {
		return fmt.Errorf("oracle health: parse payload: %w", err)
	}
	if !parsed.OK {
		return errors.New("oracle health: unexpected response")
	}
	return nil
}

func summarizeSnippet(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "<empty>"
	}
	replacer := strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")
	clean := strings.Join(strings.Fields(replacer.Replace(trimmed)), " ")
	const limit = 160
	runes := []rune(clean)
	if len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
