package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// TeamsClient implements swydo.TeamsClient.
type TeamsClient struct {
	exec *executor
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(exec *executor) *TeamsClient {
	return &TeamsClient{exec: exec}
}

// List implements swydo.TeamsClient.List.
func (c *TeamsClient) List(ctx context.Context) *swydo.PageIterator[swydo.Team] {
	return swydo.NewPageIterator[swydo.Team](ctx, c.exec, "getTeams", swydo.Params{})
}

// Get implements swydo.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID string) (*swydo.Team, error) {
	raw, err := c.exec.Invoke(ctx, "getTeam", swydo.Params{"teamId": teamID})
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	var team swydo.Team

	err = json.Unmarshal(raw, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team response: %w", err)
	}

	return &team, nil
}
