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

// NewClientsCommand creates the clients command group
func NewClientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "Manage client accounts",
		Long:    "List and manage the client accounts reports are produced for",
	}

	cmd.AddCommand(newClientsListCommand())
	cmd.AddCommand(newClientsGetCommand())
	cmd.AddCommand(newClientsCreateCommand())
	cmd.AddCommand(newClientsUpdateCommand())
	cmd.AddCommand(newClientsArchiveCommand())
	cmd.AddCommand(newClientsUnarchiveCommand())

	return cmd
}

func newClientsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List client accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			accounts, err := client.Clients().List(context.Background(), teamID).All()
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(accounts)
			case OutputFormatYAML:
				return outputYAML(accounts)
			default:
				if len(accounts) == 0 {
					fmt.Println("No clients found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "Archived")

				for _, account := range accounts {
					archived := "no"
					if account.Archived {
						archived = "yes"
					}

					_ = table.Append(account.ID, account.Name, valueOrNA(account.Email), archived)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newClientsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <client-id>",
		Short: "Get client account details",
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

			account, err := client.Clients().Get(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get client: %w", err)
			}

			return renderClientAccount(account)
		},
	}
}

func newClientsCreateCommand() *cobra.Command {
	var (
		description string
		email       string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a client account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrClientNameRequired
			}

			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.Clients().Create(context.Background(), teamID, &swydo.ClientCreate{
				Name:        args[0],
				Description: description,
				Email:       email,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			fmt.Printf("Created client '%s' with ID %s\n", account.Name, account.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "client description")
	cmd.Flags().StringVar(&email, "email", "", "client contact email")

	return cmd
}

func newClientsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		email       string
	)

	cmd := &cobra.Command{
		Use:   "update <client-id>",
		Short: "Update a client account",
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

			account, err := client.Clients().Update(context.Background(), teamID, args[0], &swydo.ClientUpdate{
				Name:        name,
				Description: description,
				Email:       email,
			})
			if err != nil {
				return fmt.Errorf("failed to update client: %w", err)
			}

			fmt.Printf("Updated client '%s'\n", account.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new client name")
	cmd.Flags().StringVar(&description, "description", "", "new client description")
	cmd.Flags().StringVar(&email, "email", "", "new client contact email")

	return cmd
}

func newClientsArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <client-id>",
		Short: "Archive a client account",
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

			err = client.Clients().Archive(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to archive client: %w", err)
			}

			fmt.Printf("Archived client %s\n", args[0])

			return nil
		},
	}
}

func newClientsUnarchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <client-id>",
		Short: "Unarchive a client account",
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

			err = client.Clients().Unarchive(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to unarchive client: %w", err)
			}

			fmt.Printf("Unarchived client %s\n", args[0])

			return nil
		},
	}
}

func renderClientAccount(account *swydo.ClientAccount) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(account)
	case OutputFormatYAML:
		return outputYAML(account)
	default:
		archived := "no"
		if account.Archived {
			archived = "yes"
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", account.ID)
		_ = table.Append("Name", account.Name)
		_ = table.Append("Description", valueOrNA(account.Description))
		_ = table.Append("Email", valueOrNA(account.Email))
		_ = table.Append("Archived", archived)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
