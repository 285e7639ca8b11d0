package cli

import (
	"context"

	"github.com/Shrinivas-go/ats-backend/internal/common"
	"github.com/Shrinivas-go/ats-backend/internal/config"
	"github.com/Shrinivas-go/ats-backend/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "ats-backend",
	Short: "A deterministic ATS scoring engine for resumes and job descriptions",
	Long: `ats-backend scores resumes against job descriptions using deterministic
rule tables: skill extraction, weighted matching, resume quality checks and a
blended final score. It also answers questions about an analysis through a
rule-based assistant. The same pipeline is available as CLI commands and as
an HTTP API.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// loadRuleTables resolves the optional rules file from the configuration.
// A missing rulesFile setting yields nil tables, which selects the built-in
// defaults downstream.
func loadRuleTables(cfg *config.Config) (*config.RuleTables, error) {
	return config.LoadRuleTables(cfg.Analysis.RulesFile)
}

// applyDefaultFormat fills in the configured default output format and
// validates it against the supported formats
func applyDefaultFormat(cmdConfig *common.CommandConfig, cfg *config.Config) error {
	if cmdConfig.OutputFormat == "" {
		cmdConfig.OutputFormat = cfg.App.DefaultFormat
	}
	return common.ValidateOutputFormat(cmdConfig.OutputFormat, cfg.App.SupportedFormats)
}

// registerFormatCompletion wires shell completion for a command's format flag
func registerFormatCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return cfg.App.SupportedFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
