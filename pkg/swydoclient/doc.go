// Package swydoclient provides the primary entry point for constructing a
// Swydo API client that implements the swydo.Client interface.
//
// It layers configuration, HTTP transport, basic authentication, and the
// rate-limited call executor on top of the resource interfaces and types
// defined in the swydo package. Most applications should import swydoclient
// to build a client, then use the returned swydo.Client to access
// resource-specific clients, for example Teams(), Clients(), Reports(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/mayple/swydo/pkg/swydo"
//	  "github.com/mayple/swydo/pkg/swydoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key.
//	  cli, err := swydoclient.NewWithAPIKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  cli, err = swydoclient.New(&swydo.Config{
//	    APIKey:       "your-api-key",
//	    DisableRetry: false,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the swydo.Client interface
//	  teams, err := cli.Teams().List(ctx).All()
//	  if err != nil { log.Fatal(err) }
//	  _ = teams
//	}
//
// Every call made through the returned client passes the process-local rate
// limiter, and throttled calls are retried with exponential backoff unless
// Config.DisableRetry is set. See the swydo package documentation for the
// full behavior.
package swydoclient
