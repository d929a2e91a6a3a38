// Package swydo defines the public surface of the Swydo API SDK: the
// Client interface with its per-resource clients, the typed models and
// enumerations used by the Swydo reporting API, the Params mapping passed
// to remote operations, and the PageIterator used to consume paginated
// list endpoints lazily.
//
// Most applications construct a client through the swydoclient package and
// use the resource clients from there:
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
//	  cli, err := swydoclient.NewWithAPIKey("my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  teams, err := cli.Teams().List(ctx).All()
//	  if err != nil { log.Fatal(err) }
//
//	  for _, team := range teams {
//	    report, err := cli.Reports().Create(ctx, team.ID, &swydo.ReportCreate{
//	      Name:             "Monthly overview",
//	      ClientID:         "client-id",
//	      BrandTemplateID:  "brand-template-id",
//	      ReportTemplateID: "report-template-id",
//	      ComparePeriod:    swydo.ComparePeriodPrevious,
//	    })
//	    if err != nil { log.Fatal(err) }
//	    _ = report
//	  }
//	}
//
// # Rate limiting and retries
//
// The Swydo service throttles callers at roughly ten requests per second.
// By default every call made through the client passes a local quota gate
// sized to that ceiling and, when the service still answers 429, is retried
// with exponential backoff inside a bounded time budget. Set
// Config.DisableRetry when the host application runs its own throttling;
// calls are then issued exactly once.
//
// Retried calls can cause duplicate side effects server-side for
// non-idempotent operations such as Create. Removal of data sources is the
// only operation family with an idempotency guarantee (see DataSourcesClient).
//
// # Pagination
//
// List methods return a *PageIterator that fetches pages on demand while
// the caller consumes items. An iterator is forward-only, not restartable,
// and owned by a single consumer.
package swydo
