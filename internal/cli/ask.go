package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Shrinivas-go/ats-backend/internal/ai"
	"github.com/Shrinivas-go/ats-backend/internal/assistant"
	"github.com/Shrinivas-go/ats-backend/internal/common"
	"github.com/Shrinivas-go/ats-backend/internal/engine"
	"github.com/Shrinivas-go/ats-backend/internal/errors"
	"github.com/Shrinivas-go/ats-backend/internal/types"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant about an analysis result",
	Long: `Ask the rule-based assistant a question about resume scoring.

Questions about a specific result ("what is my score", "which skills am I
missing", "how can I improve") need the analysis context from a previous
analyze run, passed with --analysis. General questions about how scoring
works need no context.

When answer elaboration is enabled in the configuration, delegable answers
are rewritten for readability; all facts come from the deterministic
pipeline either way.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(&askConfig, getConfigFromContext(cmd.Context()))
	},
	RunE: runAsk,
}

var askConfig common.CommandConfig
var askAnalysisFile string

func init() {
	askCmd.Flags().StringVarP(&askAnalysisFile, "analysis", "a", "", "JSON file with an analyze result to answer against")
	askCmd.Flags().StringVarP(&askConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	askCmd.Flags().StringVar(&askConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	registerFormatCompletion(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	query := args[0]

	tables, err := loadRuleTables(cfg)
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}

	analysis, err := loadAnalysisContext(logger)
	if err != nil {
		return err
	}

	var elaborator assistant.Elaborator
	if cfg.AI.Enabled {
		service, err := ai.NewService(&cfg.AI, logger)
		if err != nil {
			return fmt.Errorf("failed to create elaboration service: %w", err)
		}
		elaborator = service
	}

	asst := engine.NewAssistant(tables, elaborator)

	logger.Info("Processing assistant query",
		"query_chars", len(query),
		"has_analysis", analysis != nil,
		"elaboration", cfg.AI.Enabled)

	result := asst.ProcessQuery(cmd.Context(), query, analysis)

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(result, askConfig); err != nil {
		return fmt.Errorf("failed to write assistant response: %w", err)
	}

	logger.Info("Assistant query completed",
		"intent", result.Intent,
		"success", result.Success)
	return nil
}

// loadAnalysisContext reads the optional analysis result file
func loadAnalysisContext(logger *errors.Logger) (*types.AnalysisResult, error) {
	if askAnalysisFile == "" {
		return nil, nil
	}

	fileProcessor := common.NewFileProcessor(logger)
	content, err := fileProcessor.ReadFile(askAnalysisFile)
	if err != nil {
		return nil, err
	}

	var analysis types.AnalysisResult
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("invalid analysis file %s: %w", askAnalysisFile, err)
	}
	return &analysis, nil
}
