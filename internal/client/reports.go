package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// ReportsClient implements swydo.ReportsClient.
type ReportsClient struct {
	exec *executor
}

// NewReportsClient creates a new reports client.
func NewReportsClient(exec *executor) *ReportsClient {
	return &ReportsClient{exec: exec}
}

// List implements swydo.ReportsClient.List.
func (c *ReportsClient) List(ctx context.Context, teamID string) *swydo.PageIterator[swydo.Report] {
	return swydo.NewPageIterator[swydo.Report](ctx, c.exec, "getTeamReports", swydo.Params{
		"teamId": teamID,
	})
}

// Get implements swydo.ReportsClient.Get.
func (c *ReportsClient) Get(ctx context.Context, teamID, reportID string) (*swydo.Report, error) {
	raw, err := c.exec.Invoke(ctx, "getTeamReport", swydo.Params{
		"teamId":   teamID,
		"reportId": reportID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return parseReport(raw)
}

// Create implements swydo.ReportsClient.Create.
func (c *ReportsClient) Create(ctx context.Context, teamID string, request *swydo.ReportCreate) (*swydo.Report, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	if !request.ComparePeriod.Valid() {
		return nil, fmt.Errorf("%w: %q", swydo.ErrInvalidComparePeriod, request.ComparePeriod)
	}

	raw, err := c.exec.Invoke(ctx, "createTeamReport", swydo.Params{
		"teamId":       teamID,
		"reportCreate": request,
	})
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}

	return parseReport(raw)
}

// Update implements swydo.ReportsClient.Update.
func (c *ReportsClient) Update(ctx context.Context, teamID, reportID string, request *swydo.ReportUpdate) (*swydo.Report, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	if request.ComparePeriod != "" && !request.ComparePeriod.Valid() {
		return nil, fmt.Errorf("%w: %q", swydo.ErrInvalidComparePeriod, request.ComparePeriod)
	}

	raw, err := c.exec.Invoke(ctx, "updateTeamReport", swydo.Params{
		"teamId":       teamID,
		"reportId":     reportID,
		"reportUpdate": request,
	})
	if err != nil {
		return nil, fmt.Errorf("updating report: %w", err)
	}

	return parseReport(raw)
}

// Delete implements swydo.ReportsClient.Delete.
func (c *ReportsClient) Delete(ctx context.Context, teamID, reportID string) error {
	_, err := c.exec.Invoke(ctx, "deleteTeamReport", swydo.Params{
		"teamId":   teamID,
		"reportId": reportID,
	})
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}

	return nil
}

// Share implements swydo.ReportsClient.Share.
func (c *ReportsClient) Share(ctx context.Context, teamID, reportID string) error {
	_, err := c.exec.Invoke(ctx, "shareTeamReport", swydo.Params{
		"teamId":   teamID,
		"reportId": reportID,
	})
	if err != nil {
		return fmt.Errorf("sharing report: %w", err)
	}

	return nil
}

// Unshare implements swydo.ReportsClient.Unshare.
func (c *ReportsClient) Unshare(ctx context.Context, teamID, reportID string) error {
	_, err := c.exec.Invoke(ctx, "unshareTeamReport", swydo.Params{
		"teamId":   teamID,
		"reportId": reportID,
	})
	if err != nil {
		return fmt.Errorf("unsharing report: %w", err)
	}

	return nil
}

func parseReport(raw json.RawMessage) (*swydo.Report, error) {
	var report swydo.Report

	err := json.Unmarshal(raw, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing report response: %w", err)
	}

	return &report, nil
}
