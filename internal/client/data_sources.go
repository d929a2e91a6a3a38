package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayple/swydo/pkg/swydo"
)

// DataSourcesClient implements swydo.DataSourcesClient.
//
// The Swydo service answers 404 with the DATASOURCE_NOT_FOUND error code
// when a client account has no data source configured. For read and
// removal callers that absence is not an error: Get remaps it to an empty
// result and the Remove methods to a no-op success. Only that exact
// answer is remapped; a 404 with a different or unparseable body
// propagates unchanged.
type DataSourcesClient struct {
	exec *executor
}

// NewDataSourcesClient creates a new data sources client.
func NewDataSourcesClient(exec *executor) *DataSourcesClient {
	return &DataSourcesClient{exec: exec}
}

// Get implements swydo.DataSourcesClient.Get.
func (c *DataSourcesClient) Get(ctx context.Context, teamID, clientID string) (*swydo.ClientDataSources, error) {
	raw, err := c.exec.Invoke(ctx, "getClientDataSources", swydo.Params{
		"teamId":   teamID,
		"clientId": clientID,
	})
	if err != nil {
		if swydo.IsDataSourceNotFound(err) {
			return &swydo.ClientDataSources{
				ID:          clientID,
				DataSources: []swydo.DataSource{},
			}, nil
		}

		return nil, fmt.Errorf("getting client data sources: %w", err)
	}

	return parseClientDataSources(raw)
}

// SetFacebookAds implements swydo.DataSourcesClient.SetFacebookAds.
func (c *DataSourcesClient) SetFacebookAds(ctx context.Context, teamID, clientID string, request *swydo.FacebookAdsDataSource) (*swydo.ClientDataSources, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	return c.set(ctx, "setClientDataSourceFacebookAds", teamID, clientID, &swydo.DataSourceCreate{
		ConnectionID: request.ConnectionID,
		Scope: swydo.DataSourceScope{
			ID:           request.AccountID,
			Name:         request.Name,
			CurrencyCode: request.CurrencyCode,
		},
	})
}

// RemoveFacebookAds implements swydo.DataSourcesClient.RemoveFacebookAds.
func (c *DataSourcesClient) RemoveFacebookAds(ctx context.Context, teamID, clientID string) error {
	return c.remove(ctx, "removeClientDataSourceFacebookAds", teamID, clientID)
}

// SetFacebookGraph implements swydo.DataSourcesClient.SetFacebookGraph.
func (c *DataSourcesClient) SetFacebookGraph(ctx context.Context, teamID, clientID string, request *swydo.FacebookGraphDataSource) (*swydo.ClientDataSources, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	return c.set(ctx, "setClientDataSourceFacebookGraph", teamID, clientID, &swydo.DataSourceCreate{
		ConnectionID: request.ConnectionID,
		Scope: swydo.DataSourceScope{
			ID:     request.AccountID,
			Name:   request.Name,
			PageID: request.PageID,
		},
	})
}

// RemoveFacebookGraph implements swydo.DataSourcesClient.RemoveFacebookGraph.
func (c *DataSourcesClient) RemoveFacebookGraph(ctx context.Context, teamID, clientID string) error {
	return c.remove(ctx, "removeClientDataSourceFacebookGraph", teamID, clientID)
}

// SetGoogleAdWords implements swydo.DataSourcesClient.SetGoogleAdWords.
func (c *DataSourcesClient) SetGoogleAdWords(ctx context.Context, teamID, clientID string, request *swydo.GoogleAdWordsDataSource) (*swydo.ClientDataSources, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	return c.set(ctx, "setClientDataSourceGoogleAdWords", teamID, clientID, &swydo.DataSourceCreate{
		ConnectionID: request.ConnectionID,
		Scope: swydo.DataSourceScope{
			ClientID:     request.ClientID,
			Name:         request.Name,
			CurrencyCode: request.CurrencyCode,
		},
	})
}

// RemoveGoogleAdWords implements swydo.DataSourcesClient.RemoveGoogleAdWords.
func (c *DataSourcesClient) RemoveGoogleAdWords(ctx context.Context, teamID, clientID string) error {
	return c.remove(ctx, "removeClientDataSourceGoogleAdWords", teamID, clientID)
}

// SetGoogleAnalytics implements swydo.DataSourcesClient.SetGoogleAnalytics.
func (c *DataSourcesClient) SetGoogleAnalytics(ctx context.Context, teamID, clientID string, request *swydo.GoogleAnalyticsDataSource) (*swydo.ClientDataSources, error) {
	if request == nil {
		return nil, swydo.ErrRequestRequired
	}

	return c.set(ctx, "setClientDataSourceGoogleAnalytics", teamID, clientID, &swydo.DataSourceCreate{
		ConnectionID: request.ConnectionID,
		Scope: swydo.DataSourceScope{
			Name:          request.Name,
			AccountID:     request.AccountID,
			AccountName:   request.AccountName,
			WebPropertyID: request.WebPropertyID,
			ProfileID:     request.ProfileID,
			CurrencyCode:  request.CurrencyCode,
		},
	})
}

// RemoveGoogleAnalytics implements swydo.DataSourcesClient.RemoveGoogleAnalytics.
func (c *DataSourcesClient) RemoveGoogleAnalytics(ctx context.Context, teamID, clientID string) error {
	return c.remove(ctx, "removeClientDataSourceGoogleAnalytics", teamID, clientID)
}

// set issues one of the provider-specific set operations.
func (c *DataSourcesClient) set(ctx context.Context, operationID, teamID, clientID string, request *swydo.DataSourceCreate) (*swydo.ClientDataSources, error) {
	raw, err := c.exec.Invoke(ctx, operationID, swydo.Params{
		"teamId":           teamID,
		"clientId":         clientID,
		"dataSourceCreate": request,
	})
	if err != nil {
		return nil, fmt.Errorf("setting client data source: %w", err)
	}

	return parseClientDataSources(raw)
}

// remove issues one of the provider-specific remove operations, treating
// the DATASOURCE_NOT_FOUND answer as already absent.
func (c *DataSourcesClient) remove(ctx context.Context, operationID, teamID, clientID string) error {
	_, err := c.exec.Invoke(ctx, operationID, swydo.Params{
		"teamId":   teamID,
		"clientId": clientID,
	})
	if err != nil {
		if swydo.IsDataSourceNotFound(err) {
			return nil
		}

		return fmt.Errorf("removing client data source: %w", err)
	}

	return nil
}

func parseClientDataSources(raw json.RawMessage) (*swydo.ClientDataSources, error) {
	var dataSources swydo.ClientDataSources

	err := json.Unmarshal(raw, &dataSources)
	if err != nil {
		return nil, fmt.Errorf("parsing client data sources response: %w", err)
	}

	return &dataSources, nil
}
