package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// BrandTemplatesClient implements swydo.BrandTemplatesClient.
type BrandTemplatesClient struct {
	exec *executor
}

// NewBrandTemplatesClient creates a new brand templates client.
func NewBrandTemplatesClient(exec *executor) *BrandTemplatesClient {
	return &BrandTemplatesClient{exec: exec}
}

// List implements swydo.BrandTemplatesClient.List.
func (c *BrandTemplatesClient) List(ctx context.Context, teamID string) *swydo.PageIterator[swydo.BrandTemplate] {
	return swydo.NewPageIterator[swydo.BrandTemplate](ctx, c.exec, "getTeamBrandTemplates", swydo.Params{
		"teamId": teamID,
	})
}

// Get implements swydo.BrandTemplatesClient.Get.
func (c *BrandTemplatesClient) Get(ctx context.Context, teamID, brandTemplateID string) (*swydo.BrandTemplate, error) {
	raw, err := c.exec.Invoke(ctx, "getTeamBrandTemplate", swydo.Params{
		"teamId":          teamID,
		"brandTemplateId": brandTemplateID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting brand template: %w", err)
	}

	var template swydo.BrandTemplate

	err = json.Unmarshal(raw, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing brand template response: %w", err)
	}

	return &template, nil
}
