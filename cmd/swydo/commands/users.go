package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage team users",
		Long:    "List and inspect the members of a team",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team users",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background(), teamID).All()
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(users)
			case OutputFormatYAML:
				return outputYAML(users)
			default:
				if len(users) == 0 {
					fmt.Println("No users found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "State")

				for _, user := range users {
					_ = table.Append(user.ID, valueOrNA(user.Name), valueOrNA(user.Email), string(user.State))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Get user details",
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

			user, err := client.Users().Get(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(user)
			case OutputFormatYAML:
				return outputYAML(user)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", user.ID)
				_ = table.Append("Name", valueOrNA(user.Name))
				_ = table.Append("Email", valueOrNA(user.Email))
				_ = table.Append("State", string(user.State))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
