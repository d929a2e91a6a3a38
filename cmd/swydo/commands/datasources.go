package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/mayple/swydo/pkg/swydo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Provider names accepted by the data source subcommands.
const (
	providerFacebookAds     = "facebookads"
	providerFacebookGraph   = "facebookgraph"
	providerGoogleAdWords   = "googleadwords"
	providerGoogleAnalytics = "googleanalytics"
)

// NewDataSourcesCommand creates the datasources command group
func NewDataSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datasources",
		Aliases: []string{"datasource", "ds"},
		Short:   "Manage client data sources",
		Long:    "Inspect and manage the data sources attached to a client account",
	}

	cmd.AddCommand(newDataSourcesGetCommand())
	cmd.AddCommand(newDataSourcesRemoveCommand())

	return cmd
}

func newDataSourcesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <client-id>",
		Short: "Get the data sources of a client account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			dataSources, err := client.DataSources().Get(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get data sources: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(dataSources)
			case OutputFormatYAML:
				return outputYAML(dataSources)
			default:
				if len(dataSources.DataSources) == 0 {
					fmt.Println("No data sources configured")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Type", "Connection", "Account", "Name")

				for _, dataSource := range dataSources.DataSources {
					account := dataSource.Scope.AccountID
					if account == "" {
						account = dataSource.Scope.ID
					}

					_ = table.Append(valueOrNA(dataSource.Type), valueOrNA(dataSource.ConnectionID),
						valueOrNA(account), valueOrNA(dataSource.Scope.Name))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newDataSourcesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <client-id> <provider>",
		Short: "Remove a data source from a client account",
		Long: `Remove the data source of the given provider from a client account.

Removal is idempotent: removing a data source that is not configured
succeeds without error.

Providers: facebookads, facebookgraph, googleadwords, googleanalytics`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			clientID := args[0]
			ctx := context.Background()

			err = removeDataSource(ctx, client, teamID, clientID, args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Removed %s data source from client %s\n", args[1], clientID)

			return nil
		},
	}
}

func removeDataSource(ctx context.Context, client swydo.Client, teamID, clientID, provider string) error {
	var err error

	switch provider {
	case providerFacebookAds:
		err = client.DataSources().RemoveFacebookAds(ctx, teamID, clientID)
	case providerFacebookGraph:
		err = client.DataSources().RemoveFacebookGraph(ctx, teamID, clientID)
	case providerGoogleAdWords:
		err = client.DataSources().RemoveGoogleAdWords(ctx, teamID, clientID)
	case providerGoogleAnalytics:
		err = client.DataSources().RemoveGoogleAnalytics(ctx, teamID, clientID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	if err != nil {
		return fmt.Errorf("failed to remove data source: %w", err)
	}

	return nil
}
