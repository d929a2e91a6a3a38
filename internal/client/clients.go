package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// ClientsClient implements swydo.ClientsClient.
type ClientsClient struct {
	exec *executor
}

// NewClientsClient creates a new client accounts client.
func NewClientsClient(exec *executor) *ClientsClient {
	return &ClientsClient{exec: exec}
}

// List implements swydo.ClientsClient.List.
func (c *ClientsClient) List(ctx context.Context, teamID string) *swydo.PageIterator[swydo.ClientAccount] {
	return swydo.NewPageIterator[swydo.ClientAccount](ctx, c.exec, "getTeamClients", swydo.Params{
		"teamId": teamID,
	})
}

// Get implements swydo.ClientsClient.Get.
func (c *ClientsClient) Get(ctx context.Context, teamID, clientID string) (*swydo.ClientAccount, error) {
	raw, err := c.exec.Invoke(ctx, "getTeamClient", swydo.Params{
		"teamId":   teamID,
		"clientId": clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	return parseClientAccount(raw)
}

// Create implements swydo.ClientsClient.Create.
func (c *ClientsClient) Create(ctx context.Context, teamID string, request *swydo.ClientCreate) (*swydo.ClientAccount, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	raw, err := c.exec.Invoke(ctx, "createTeamClient", swydo.Params{
		"teamId":       teamID,
		"clientCreate": request,
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return parseClientAccount(raw)
}

// Update implements swydo.ClientsClient.Update.
func (c *ClientsClient) Update(ctx context.Context, teamID, clientID string, request *swydo.ClientUpdate) (*swydo.ClientAccount, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	raw, err := c.exec.Invoke(ctx, "updateTeamClient", swydo.Params{
		"teamId":       teamID,
		"clientId":     clientID,
		"clientUpdate": request,
	})
	if err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}

	return parseClientAccount(raw)
}

// Archive implements swydo.ClientsClient.Archive. Archived clients cannot
// be used until unarchived.
func (c *ClientsClient) Archive(ctx context.Context, teamID, clientID string) error {
	_, err := c.exec.Invoke(ctx, "archiveTeamClient", swydo.Params{
		"teamId":   teamID,
		"clientId": clientID,
	})
	if err != nil {
		return fmt.Errorf("archiving client: %w", err)
	}

	return nil
}

// Unarchive implements swydo.ClientsClient.Unarchive.
func (c *ClientsClient) Unarchive(ctx context.Context, teamID, clientID string) error {
	_, err := c.exec.Invoke(ctx, "unarchiveTeamClient", swydo.Params{
		"teamId":   teamID,
		"clientId": clientID,
	})
	if err != nil {
		return fmt.Errorf("unarchiving client: %w", err)
	}

	return nil
}

func parseClientAccount(raw json.RawMessage) (*swydo.ClientAccount, error) {
	var account swydo.ClientAccount

	err := json.Unmarshal(raw, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing client response: %w", err)
	}

	return &account, nil
}
