package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIKeyEnv = "PROSE2ACTIONS_API_KEY"
	defaultTimeout   = 60 * time.Second
)

// Config is the translation service client configuration.
type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	APIKeyEnv string        `mapstructure:"api_key_env"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Client calls a remote translation service over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient constructs a translation service client.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("translation service base url is required")
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		envKey := strings.TrimSpace(cfg.APIKeyEnv)
		if envKey == "" {
			envKey = defaultAPIKeyEnv
		}
		apiKey = strings.TrimSpace(os.Getenv(envKey))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		cfg: Config{
			BaseURL: baseURL,
			APIKey:  apiKey,
			Timeout: timeout,
		},
		client: httpClient,
	}, nil
}

type translateRequest struct {
	Sentences []string `json:"sentences"`
}

type translateResponse struct {
	Actions []string `json:"actions"`
	Error   string   `json:"error,omitempty"`
}

// Translate sends the sentences to the service and returns one raw action
// string per sentence.
func (c *Client) Translate(ctx context.Context, sentences []string) ([]string, error) {
	if len(sentences) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(translateRequest{Sentences: sentences})
	if err != nil {
		return nil, fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call translation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("read translate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation service returned %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded translateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("decode translate response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("translation service failed: %s", decoded.Error)
	}
	if len(decoded.Actions) != len(sentences) {
		return nil, fmt.Errorf("translation service returned %d action strings for %d sentences", len(decoded.Actions), len(sentences))
	}
	return decoded.Actions, nil
}
