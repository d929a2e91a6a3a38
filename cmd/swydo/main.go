package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mayple/swydo/cmd/swydo/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "swydo",
	Short: "Swydo API CLI",
	Long: `A command-line interface for interacting with the Swydo reporting API.

This CLI provides access to Swydo resources including teams, users, clients,
data sources, connections, templates, and reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.swydo/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Swydo API key")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL")
	rootCmd.PersistentFlags().StringP("team", "t", "", "team ID")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-retry", false, "disable retry on throttled calls")

	// Bind flags to viper
	_ = viper.BindPFlag("api-key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("team", rootCmd.PersistentFlags().Lookup("team"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no-retry", rootCmd.PersistentFlags().Lookup("no-retry"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigureCommand())
	rootCmd.AddCommand(commands.NewTeamsCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewClientsCommand())
	rootCmd.AddCommand(commands.NewConnectionsCommand())
	rootCmd.AddCommand(commands.NewTemplatesCommand())
	rootCmd.AddCommand(commands.NewDataSourcesCommand())
	rootCmd.AddCommand(commands.NewReportsCommand())
}

func initConfig() {
	// Load a local .env file when present
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.swydo/config.yml
		viper.AddConfigPath(filepath.Join(home, ".swydo"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("SWYDO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
