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

// NewConnectionsCommand creates the connections command group
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"connection"},
		Short:   "Manage provider connections",
		Long:    "List and inspect the team's connections to external data providers",
	}

	cmd.AddCommand(newConnectionsListCommand())
	cmd.AddCommand(newConnectionsGetCommand())

	return cmd
}

func newConnectionsListCommand() *cobra.Command {
	var (
		userID     string
		providerID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List provider connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			var opts *swydo.ConnectionListOptions
			if userID != "" || providerID != "" {
				opts = &swydo.ConnectionListOptions{
					UserID:     userID,
					ProviderID: providerID,
				}
			}

			connections, err := client.Connections().List(context.Background(), teamID, opts).All()
			if err != nil {
				return fmt.Errorf("failed to list connections: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(connections)
			case OutputFormatYAML:
				return outputYAML(connections)
			default:
				if len(connections) == 0 {
					fmt.Println("No connections found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Provider", "User")

				for _, connection := range connections {
					_ = table.Append(connection.ID, valueOrNA(connection.Name),
						valueOrNA(connection.ProviderID), valueOrNA(connection.UserID))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "filter by connection owner")
	cmd.Flags().StringVar(&providerID, "provider", "", "filter by provider ID")

	return cmd
}

func newConnectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <connection-id>",
		Short: "Get connection details",
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

			connection, err := client.Connections().Get(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get connection: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(connection)
			case OutputFormatYAML:
				return outputYAML(connection)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", connection.ID)
				_ = table.Append("Name", valueOrNA(connection.Name))
				_ = table.Append("Provider", valueOrNA(connection.ProviderID))
				_ = table.Append("User", valueOrNA(connection.UserID))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
