package swydo

import (
	"context"
	"encoding/json"
	"time"
)

// Params is the parameter mapping handed to a remote operation. Keys are
// parameter names from the API contract; values are strings, enum names,
// or request structs destined for the operation's body parameter.
type Params map[string]any

// Invoker calls a named remote operation with a parameter mapping and
// returns the raw decoded result. The concrete implementation resolves the
// operation against the embedded API contract; wrappers add rate limiting
// and retry on top of it.
type Invoker interface {
	Invoke(ctx context.Context, operationID string, params Params) (json.RawMessage, error)
}

// TeamsClient provides access to team resources.
type TeamsClient interface {
	List(ctx context.Context) *PageIterator[Team]
	Get(ctx context.Context, teamID string) (*Team, error)
}

// UsersClient provides access to team member resources.
type UsersClient interface {
	List(ctx context.Context, teamID string) *PageIterator[User]
	Get(ctx context.Context, teamID, userID string) (*User, error)
}

// BrandTemplatesClient provides access to brand template resources.
type BrandTemplatesClient interface {
	List(ctx context.Context, teamID string) *PageIterator[BrandTemplate]
	Get(ctx context.Context, teamID, brandTemplateID string) (*BrandTemplate, error)
}

// ReportTemplatesClient provides access to report template resources.
type ReportTemplatesClient interface {
	List(ctx context.Context, teamID string) *PageIterator[ReportTemplate]
	Get(ctx context.Context, teamID, reportTemplateID string) (*ReportTemplate, error)
}

// ConnectionsClient provides access to provider connection resources.
type ConnectionsClient interface {
	List(ctx context.Context, teamID string, opts *ConnectionListOptions) *PageIterator[Connection]
	Get(ctx context.Context, teamID, connectionID string) (*Connection, error)
}

// ClientsClient provides access to the team's client accounts.
type ClientsClient interface {
	List(ctx context.Context, teamID string) *PageIterator[ClientAccount]
	Get(ctx context.Context, teamID, clientID string) (*ClientAccount, error)
	Create(ctx context.Context, teamID string, request *ClientCreate) (*ClientAccount, error)
	Update(ctx context.Context, teamID, clientID string, request *ClientUpdate) (*ClientAccount, error)
	Archive(ctx context.Context, teamID, clientID string) error
	Unarchive(ctx context.Context, teamID, clientID string) error
}

// DataSourcesClient manages the data sources attached to a client account.
//
// The Swydo service reports an absent data source as a 404 with the error
// code DATASOURCE_NOT_FOUND. Get translates that answer into an empty
// ClientDataSources; the Remove methods treat it as success, making removal
// idempotent. Every other failure is returned unchanged.
type DataSourcesClient interface {
	Get(ctx context.Context, teamID, clientID string) (*ClientDataSources, error)

	SetFacebookAds(ctx context.Context, teamID, clientID string, request *FacebookAdsDataSource) (*ClientDataSources, error)
	RemoveFacebookAds(ctx context.Context, teamID, clientID string) error

	SetFacebookGraph(ctx context.Context, teamID, clientID string, request *FacebookGraphDataSource) (*ClientDataSources, error)
	RemoveFacebookGraph(ctx context.Context, teamID, clientID string) error

	SetGoogleAdWords(ctx context.Context, teamID, clientID string, request *GoogleAdWordsDataSource) (*ClientDataSources, error)
	RemoveGoogleAdWords(ctx context.Context, teamID, clientID string) error

	SetGoogleAnalytics(ctx context.Context, teamID, clientID string, request *GoogleAnalyticsDataSource) (*ClientDataSources, error)
	RemoveGoogleAnalytics(ctx context.Context, teamID, clientID string) error
}

// ReportsClient provides access to report resources.
type ReportsClient interface {
	List(ctx context.Context, teamID string) *PageIterator[Report]
	Get(ctx context.Context, teamID, reportID string) (*Report, error)
	Create(ctx context.Context, teamID string, request *ReportCreate) (*Report, error)
	Update(ctx context.Context, teamID, reportID string, request *ReportUpdate) (*Report, error)
	Delete(ctx context.Context, teamID, reportID string) error
	Share(ctx context.Context, teamID, reportID string) error
	Unshare(ctx context.Context, teamID, reportID string) error
}

// Client is the Swydo API client.
type Client interface {
	Teams() TeamsClient
	Users() UsersClient
	BrandTemplates() BrandTemplatesClient
	ReportTemplates() ReportTemplatesClient
	Connections() ConnectionsClient
	Clients() ClientsClient
	DataSources() DataSourcesClient
	Reports() ReportsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a swydo.Client.
//
// Only APIKey is required. The key is sent with every request as HTTP
// basic auth (user "API", password APIKey), which is how the Swydo service
// authenticates SDK callers.
//
// # Throttling
//
// The client enforces a local quota (RateLimit calls per second, shared by
// everything issued through one client) and retries throttled calls with
// exponential backoff starting at RetryWaitBase, doubling per attempt,
// until the cumulative retry time exceeds RetryBudget. DisableRetry turns
// the whole layer off: no quota gate, no retry, one invocation per call.
//
// # Transport retries
//
// RetryMax/RetryWaitMin/RetryWaitMax tune connection-level retries in the
// underlying HTTP transport. They are independent of the throttle layer
// and default to zero retries.
type Config struct {
	// APIKey authenticates against the Swydo API. Required.
	APIKey string

	// BaseURL overrides the API endpoint. Defaults to https://api.swydo.com/v1.
	BaseURL string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout is the per-request timeout of the underlying transport.
	// Prefer context deadlines on individual calls.
	HTTPTimeout time.Duration

	// DisableRetry issues every call exactly once, with no local rate
	// limiting and no backoff. Use when the host has its own throttling.
	DisableRetry bool

	// RetryBudget bounds the cumulative time spent retrying a throttled
	// call. Defaults to 10 seconds.
	RetryBudget time.Duration

	// RetryWaitBase is the first backoff delay; it doubles per attempt.
	// Defaults to 250ms.
	RetryWaitBase time.Duration

	// RateLimit is the local call quota in calls per second, shared across
	// all operations issued through this client. Defaults to 10.
	RateLimit int

	// RateBurst is the burst size of the local quota. Defaults to RateLimit.
	RateBurst int

	// RetryMax is the maximum number of transport-level retries for
	// connection failures. If 0, requests are attempted once.
	RetryMax int
	// RetryWaitMin is the minimum transport backoff. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum transport backoff. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}
