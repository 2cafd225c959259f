package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// Client generates a free-text insight from a prompt.
type Client interface {
	GenerateInsights(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the generative language REST API. Requests are
// never retried: a failed insight simply falls back to the canned
// message, so retrying would only delay the response.
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *retryablehttp.Client
}

type ClientOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func NewGeminiClient(opts ClientOptions) *GeminiClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.HTTPClient = &http.Client{Timeout: opts.Timeout}
	retryClient.Logger = nil

	return &GeminiClient{
		baseURL:    opts.BaseURL,
		model:      opts.Model,
		apiKey:     opts.APIKey,
		httpClient: retryClient,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Insights request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("insights API returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return "", err
	}

	var response generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Errorf("Failed to decode insights response: %v", err)
		return "", err
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}
