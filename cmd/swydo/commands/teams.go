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

// NewTeamsCommand creates the teams command group
func NewTeamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Manage teams",
		Long:    "List and inspect the teams accessible with the configured API key",
	}

	cmd.AddCommand(newTeamsListCommand())
	cmd.AddCommand(newTeamsGetCommand())

	return cmd
}

func newTeamsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		Long:  "List all teams accessible with the configured API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			teams, err := client.Teams().List(ctx).All()
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(teams)
			case OutputFormatYAML:
				return outputYAML(teams)
			default:
				if len(teams) == 0 {
					fmt.Println("No teams found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Plan", "Cancelled")

				for _, team := range teams {
					cancelled := "no"
					if team.Cancelled {
						cancelled = "yes"
					}

					_ = table.Append(team.ID, team.Name, valueOrNA(team.PaymentPlan), cancelled)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newTeamsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <team-id>",
		Short: "Get team details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			team, err := client.Teams().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get team: %w", err)
			}

			return renderTeam(team)
		},
	}
}

func renderTeam(team *swydo.Team) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(team)
	case OutputFormatYAML:
		return outputYAML(team)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", team.ID)
		_ = table.Append("Name", team.Name)
		_ = table.Append("Plan", valueOrNA(team.PaymentPlan))

		if team.CreatedAt != nil {
			_ = table.Append("Created", team.CreatedAt.String())
		}

		if team.LastActiveAt != nil {
			_ = table.Append("Last Active", team.LastActiveAt.String())
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
