package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// ConnectionsClient implements swydo.ConnectionsClient.
type ConnectionsClient struct {
	exec *executor
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(exec *executor) *ConnectionsClient {
	return &ConnectionsClient{exec: exec}
}

// List implements swydo.ConnectionsClient.List. Zero-value option fields
// are omitted from the request.
func (c *ConnectionsClient) List(ctx context.Context, teamID string, opts *swydo.ConnectionListOptions) *swydo.PageIterator[swydo.Connection] {
	params := swydo.Params{
		"teamId": teamID,
	}

	if opts != nil {
		if opts.UserID != "" {
			params["userId"] = opts.UserID
		}

		if opts.ProviderID != "" {
			params["providerId"] = opts.ProviderID
		}
	}

	return swydo.NewPageIterator[swydo.Connection](ctx, c.exec, "getTeamConnections", params)
}

// Get implements swydo.ConnectionsClient.Get.
func (c *ConnectionsClient) Get(ctx context.Context, teamID, connectionID string) (*swydo.Connection, error) {
	raw, err := c.exec.Invoke(ctx, "getTeamConnection", swydo.Params{
		"teamId":       teamID,
		"connectionId": connectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	var connection swydo.Connection

	err = json.Unmarshal(raw, &connection)
	if err != nil {
		return nil, fmt.Errorf("parsing connection response: %w", err)
	}

	return &connection, nil
}
