package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// ReportTemplatesClient implements swydo.ReportTemplatesClient.
type ReportTemplatesClient struct {
	exec *executor
}

// NewReportTemplatesClient creates a new report templates client.
func NewReportTemplatesClient(exec *executor) *ReportTemplatesClient {
	return &ReportTemplatesClient{exec: exec}
}

// List implements swydo.ReportTemplatesClient.List.
func (c *ReportTemplatesClient) List(ctx context.Context, teamID string) *swydo.PageIterator[swydo.ReportTemplate] {
	return swydo.NewPageIterator[swydo.ReportTemplate](ctx, c.exec, "getTeamReportTemplates", swydo.Params{
		"teamId": teamID,
	})
}

// Get implements swydo.ReportTemplatesClient.Get.
func (c *ReportTemplatesClient) Get(ctx context.Context, teamID, reportTemplateID string) (*swydo.ReportTemplate, error) {
	raw, err := c.exec.Invoke(ctx, "getTeamReportTemplate", swydo.Params{
		"teamId":           teamID,
		"reportTemplateId": reportTemplateID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting report template: %w", err)
	}

	var template swydo.ReportTemplate

	err = json.Unmarshal(raw, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing report template response: %w", err)
	}

	return &template, nil
}
