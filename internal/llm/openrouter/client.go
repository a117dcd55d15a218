package openrouter

import (
	"fmt"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	ModelID    string
}

func NewClient(apiKey string, baseURL string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenRouter model ID is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	// No client-level timeout: the per-request deadline is owned by the
	// caller's context.
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		ModelID:    model,
	}, nil
}
