package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// UsersClient implements swydo.UsersClient.
type UsersClient struct {
	exec *executor
}

// NewUsersClient creates a new users client.
func NewUsersClient(exec *executor) *UsersClient {
	return &UsersClient{exec: exec}
}

// List implements swydo.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, teamID string) *swydo.PageIterator[swydo.User] {
	return swydo.NewPageIterator[swydo.User](ctx, c.exec, "getTeamUsers", swydo.Params{
		"teamId": teamID,
	})
}

// Get implements swydo.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, teamID, userID string) (*swydo.User, error) {
	raw, err := c.exec.Invoke(ctx, "getTeamUser", swydo.Params{
		"teamId": teamID,
		"userId": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting team user: %w", err)
	}

	var user swydo.User

	err = json.Unmarshal(raw, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}
