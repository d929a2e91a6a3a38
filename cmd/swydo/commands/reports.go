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

// NewReportsCommand creates the reports command group
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage reports",
		Long:    "List and manage the reports of a team",
	}

	cmd.AddCommand(newReportsListCommand())
	cmd.AddCommand(newReportsGetCommand())
	cmd.AddCommand(newReportsCreateCommand())
	cmd.AddCommand(newReportsDeleteCommand())
	cmd.AddCommand(newReportsShareCommand())
	cmd.AddCommand(newReportsUnshareCommand())

	return cmd
}

func newReportsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			reports, err := client.Reports().List(context.Background(), teamID).All()
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(reports)
			case OutputFormatYAML:
				return outputYAML(reports)
			default:
				if len(reports) == 0 {
					fmt.Println("No reports found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Client", "Compare Period", "Shared")

				for _, report := range reports {
					shared := "no"
					if report.Shared {
						shared = "yes"
					}

					_ = table.Append(report.ID, report.Name, valueOrNA(report.ClientID),
						string(report.ComparePeriod), shared)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newReportsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <report-id>",
		Short: "Get report details",
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

			report, err := client.Reports().Get(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			return renderReport(report)
		},
	}
}

func newReportsCreateCommand() *cobra.Command {
	var (
		clientID         string
		brandTemplateID  string
		reportTemplateID string
		comparePeriod    string
		authorID         string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrReportNameRequired
			}

			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			report, err := client.Reports().Create(context.Background(), teamID, &swydo.ReportCreate{
				Name:             args[0],
				ClientID:         clientID,
				BrandTemplateID:  brandTemplateID,
				ReportTemplateID: reportTemplateID,
				ComparePeriod:    swydo.ComparePeriod(comparePeriod),
				AuthorID:         authorID,
			})
			if err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}

			fmt.Printf("Created report '%s' with ID %s\n", report.Name, report.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "client account ID (required)")
	cmd.Flags().StringVar(&brandTemplateID, "brand-template", "", "brand template ID (required)")
	cmd.Flags().StringVar(&reportTemplateID, "report-template", "", "report template ID (required)")
	cmd.Flags().StringVar(&comparePeriod, "compare-period", "previous", "compare period (previous, lastYear, previousMonth)")
	cmd.Flags().StringVar(&authorID, "author", "", "author user ID")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("brand-template")
	_ = cmd.MarkFlagRequired("report-template")

	return cmd
}

func newReportsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <report-id>",
		Short: "Delete a report",
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

			err = client.Reports().Delete(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete report: %w", err)
			}

			fmt.Printf("Deleted report %s\n", args[0])

			return nil
		},
	}
}

func newReportsShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share <report-id>",
		Short: "Share a report publicly",
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

			err = client.Reports().Share(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to share report: %w", err)
			}

			fmt.Printf("Shared report %s\n", args[0])

			return nil
		},
	}
}

func newReportsUnshareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unshare <report-id>",
		Short: "Stop sharing a report",
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

			err = client.Reports().Unshare(context.Background(), teamID, args[0])
			if err != nil {
				return fmt.Errorf("failed to unshare report: %w", err)
			}

			fmt.Printf("Unshared report %s\n", args[0])

			return nil
		},
	}
}

func renderReport(report *swydo.Report) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(report)
	case OutputFormatYAML:
		return outputYAML(report)
	default:
		shared := "no"
		if report.Shared {
			shared = "yes"
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", report.ID)
		_ = table.Append("Name", report.Name)
		_ = table.Append("Client", valueOrNA(report.ClientID))
		_ = table.Append("Author", valueOrNA(report.AuthorID))
		_ = table.Append("Brand Template", valueOrNA(report.BrandTemplateID))
		_ = table.Append("Report Template", valueOrNA(report.ReportTemplateID))
		_ = table.Append("Compare Period", string(report.ComparePeriod))
		_ = table.Append("Shared", shared)
		_ = table.Append("Share URL", valueOrNA(report.ShareURL))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
