package constants

import "time"

// API endpoint.
const (
	// DefaultBaseURL is the public Swydo API endpoint.
	DefaultBaseURL = "https://api.swydo.com/v1"

	// BasicAuthUser is the fixed basic-auth user the Swydo API expects;
	// the API key travels as the password.
	BasicAuthUser = "API"

	// DefaultUserAgent identifies the SDK on the wire.
	DefaultUserAgent = "swydo-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Local call quota.
const (
	// DefaultRateLimit is the local call ceiling, in calls per second,
	// shared by all operations issued through one client. Matches the
	// quota the Swydo service enforces remotely.
	DefaultRateLimit = 10
)

// Throttle retry policy.
const (
	// DefaultRetryWaitBase is the first backoff delay after a throttled
	// call; it doubles on every further attempt.
	DefaultRetryWaitBase = 250 * time.Millisecond

	// DefaultRetryBudget bounds the cumulative time spent retrying one
	// throttled call before the last error is surfaced.
	DefaultRetryBudget = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formatting.
const (
	// YAMLIndentSize is the indent used for YAML command output.
	YAMLIndentSize = 2
)
