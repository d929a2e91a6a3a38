// Package client implements the swydo.Client interface: the operation
// invoker backed by the embedded API contract, the rate-limited call
// executor, and one client per remote resource.
package client

import (
	"fmt"

	"github.com/mayple/swydo/internal/constants"
	"github.com/mayple/swydo/internal/http"
	"github.com/mayple/swydo/internal/spec"
	"github.com/mayple/swydo/pkg/swydo"
)

// Client implements the swydo.Client interface.
type Client struct {
	httpClient *http.Client
	registry   *spec.Registry
	exec       *executor
	logger     swydo.Logger

	// Resource clients
	teams           swydo.TeamsClient
	users           swydo.UsersClient
	brandTemplates  swydo.BrandTemplatesClient
	reportTemplates swydo.ReportTemplatesClient
	connections     swydo.ConnectionsClient
	clients         swydo.ClientsClient
	dataSources     swydo.DataSourcesClient
	reports         swydo.ReportsClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *swydo.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new Swydo API client.
func New(config *swydo.Config) (*Client, error) {
	if config == nil {
		return nil, swydo.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, swydo.ErrAPIKeyRequired
	}

	registry, err := spec.Load()
	if err != nil {
		return nil, fmt.Errorf("loading API contract: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		registry:   registry,
		exec:       newExecutor(newInvoker(registry, httpClient), config),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Teams implements swydo.Client.Teams.
func (c *Client) Teams() swydo.TeamsClient {
	return c.teams
}

// Users implements swydo.Client.Users.
func (c *Client) Users() swydo.UsersClient {
	return c.users
}

// BrandTemplates implements swydo.Client.BrandTemplates.
func (c *Client) BrandTemplates() swydo.BrandTemplatesClient {
	return c.brandTemplates
}

// ReportTemplates implements swydo.Client.ReportTemplates.
func (c *Client) ReportTemplates() swydo.ReportTemplatesClient {
	return c.reportTemplates
}

// Connections implements swydo.Client.Connections.
func (c *Client) Connections() swydo.ConnectionsClient {
	return c.connections
}

// Clients implements swydo.Client.Clients.
func (c *Client) Clients() swydo.ClientsClient {
	return c.clients
}

// DataSources implements swydo.Client.DataSources.
func (c *Client) DataSources() swydo.DataSourcesClient {
	return c.dataSources
}

// Reports implements swydo.Client.Reports.
func (c *Client) Reports() swydo.ReportsClient {
	return c.reports
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.teams = NewTeamsClient(c.exec)
	c.users = NewUsersClient(c.exec)
	c.brandTemplates = NewBrandTemplatesClient(c.exec)
	c.reportTemplates = NewReportTemplatesClient(c.exec)
	c.connections = NewConnectionsClient(c.exec)
	c.clients = NewClientsClient(c.exec)
	c.dataSources = NewDataSourcesClient(c.exec)
	c.reports = NewReportsClient(c.exec)
}
