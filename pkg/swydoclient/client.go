// Package swydoclient provides the main entry point for creating Swydo API clients
package swydoclient

import (
	"fmt"
	"strings"

	"github.com/mayple/swydo/internal/client"
	"github.com/mayple/swydo/pkg/swydo"
)

// New creates a new Swydo API client from a full configuration.
func New(config *swydo.Config) (swydo.Client, error) {
	if config == nil {
		return nil, swydo.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, swydo.ErrAPIKeyRequired
	}

	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			return nil, fmt.Errorf("%w: %q", swydo.ErrInvalidBaseURL, config.BaseURL)
		}

		config.BaseURL = baseURL
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client that talks to the production Swydo API
// using default settings.
func NewWithAPIKey(apiKey string) (swydo.Client, error) {
	return New(&swydo.Config{APIKey: apiKey})
}
