package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shrinivas-go/ats-backend/internal/common"
	"github.com/Shrinivas-go/ats-backend/internal/skills"
	"github.com/Shrinivas-go/ats-backend/internal/types"

	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [comparison-file]",
	Short: "Rank missing skills by their score gain if added",
	Long: `Simulate the score impact of adding each missing skill to a resume,
one at a time, and rank the additions by gain.

The input file is a JSON document with the requirement sets and comparison
outcome, matching the skillsBreakdown section of an analyze result:

  {
    "coreSkills": [...], "optionalSkills": [...],
    "matchedCoreSkills": [...], "missingCoreSkills": [...],
    "matchedOptionalSkills": [...], "missingOptionalSkills": [...]
  }

Gains are marginal: each entry assumes only that one skill is added, so
gains of separate entries do not add up.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(&simulateConfig, getConfigFromContext(cmd.Context()))
	},
	RunE: runSimulate,
}

var simulateConfig common.CommandConfig

func init() {
	simulateCmd.Flags().StringVarP(&simulateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	simulateCmd.Flags().StringVar(&simulateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	registerFormatCompletion(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (skills.SimulationInput, error) {
		if len(contents) != 1 {
			return skills.SimulationInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		var input skills.SimulationInput
		if err := json.Unmarshal([]byte(contents[0]), &input); err != nil {
			return skills.SimulationInput{}, fmt.Errorf("invalid comparison file: %w", err)
		}
		return input, nil
	}

	logDetails := func(input skills.SimulationInput, cfg common.CommandConfig) {
		logger.Info("Starting score simulation",
			"missing_core", len(input.MissingCoreSkills),
			"missing_optional", len(input.MissingOptionalSkills),
			"output_format", cfg.OutputFormat)
	}

	simulateOperation := func(ctx context.Context, input skills.SimulationInput) (types.SimulationResult, error) {
		return skills.Simulate(input), nil
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		simulateConfig,
		args,
		createInput,
		simulateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to simulate score changes: %w", err)
	}
	logger.Info("Score simulation completed successfully")
	return nil
}
