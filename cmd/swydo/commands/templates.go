package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTemplatesCommand creates the templates command group
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage templates",
		Long:  "List the brand and report templates available to a team",
	}

	cmd.AddCommand(newBrandTemplatesCommand())
	cmd.AddCommand(newReportTemplatesCommand())

	return cmd
}

// templateRow is one ID/Name pair for output.
type templateRow struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

func newBrandTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "brand",
		Short: "List brand templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			templates, err := client.BrandTemplates().List(context.Background(), teamID).All()
			if err != nil {
				return fmt.Errorf("failed to list brand templates: %w", err)
			}

			rows := make([]templateRow, 0, len(templates))
			for _, template := range templates {
				rows = append(rows, templateRow{ID: template.ID, Name: template.Name})
			}

			return renderTemplates(rows)
		},
	}
}

func newReportTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "List report templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := requireTeam()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			templates, err := client.ReportTemplates().List(context.Background(), teamID).All()
			if err != nil {
				return fmt.Errorf("failed to list report templates: %w", err)
			}

			rows := make([]templateRow, 0, len(templates))
			for _, template := range templates {
				rows = append(rows, templateRow{ID: template.ID, Name: template.Name})
			}

			return renderTemplates(rows)
		},
	}
}

func renderTemplates(rows []templateRow) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(rows)
	case OutputFormatYAML:
		return outputYAML(rows)
	default:
		if len(rows) == 0 {
			fmt.Println("No templates found")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name")

		for _, row := range rows {
			_ = table.Append(row.ID, valueOrNA(row.Name))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
