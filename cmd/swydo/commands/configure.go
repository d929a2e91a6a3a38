package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mayple/swydo/internal/constants"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewConfigureCommand creates the configure command
func NewConfigureCommand() *cobra.Command {
	var (
		apiKey string
		team   string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long:  "Store the Swydo API key and default team in ~/.swydo/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(keyBytes))
			}

			if apiKey == "" {
				return ErrAPIKeyNotConfigured
			}

			return writeConfigFile(apiKey, team)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (prompted when omitted)")
	cmd.Flags().StringVar(&team, "team", "", "default team ID")

	return cmd
}

func writeConfigFile(apiKey, team string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".swydo")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settings := map[string]string{
		"api-key": apiKey,
	}
	if team != "" {
		settings["team"] = team
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Println("Configuration saved to", configPath)

	return nil
}
