package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mayple/swydo/internal/constants"
	"github.com/mayple/swydo/pkg/swydo"
	"github.com/mayple/swydo/pkg/swydoclient"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured  = errors.New("no API key configured (run 'swydo configure' or set SWYDO_API_KEY)")
	ErrTeamRequired         = errors.New("team ID is required (use --team or set SWYDO_TEAM)")
	ErrClientIDRequired     = errors.New("client ID is required")
	ErrReportIDRequired     = errors.New("report ID is required")
	ErrClientNameRequired   = errors.New("client name is required")
	ErrReportNameRequired   = errors.New("report name is required")
	ErrConnectionIDRequired = errors.New("connection ID is required")
	ErrUnknownProvider      = errors.New("unknown provider (expected facebookads, facebookgraph, googleadwords, or googleanalytics)")
)

// createClient builds a Swydo API client from the resolved configuration.
func createClient() (swydo.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &swydo.Config{
		APIKey:       apiKey,
		BaseURL:      viper.GetString("base-url"),
		DisableRetry: viper.GetBool("no-retry"),
	}

	if viper.GetBool("verbose") {
		logger, err := createLogger()
		if err != nil {
			return nil, err
		}

		config.Debug = true
		config.Logger = logger
	}

	return swydoclient.New(config)
}

// requireTeam resolves the team ID from flags or environment.
func requireTeam() (string, error) {
	teamID := viper.GetString("team")
	if teamID == "" {
		return "", ErrTeamRequired
	}

	return teamID, nil
}

// zapLogger adapts a zap.SugaredLogger to the swydo.Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func createLogger() (*zapLogger, error) {
	cfg := zap.NewDevelopmentConfig()

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &zapLogger{sugar: logger.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	keysAndValues := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		keysAndValues = append(keysAndValues, k, v)
	}

	return keysAndValues
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.YAMLIndentSize)

	return encoder.Encode(v)
}

// valueOrNA returns s, or "N/A" when s is empty.
func valueOrNA(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}
