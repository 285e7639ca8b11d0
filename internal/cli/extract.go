package cli

import (
	"context"
	"fmt"

	"github.com/Shrinivas-go/ats-backend/internal/common"
	"github.com/Shrinivas-go/ats-backend/internal/engine"
	"github.com/Shrinivas-go/ats-backend/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [job-description-file]",
	Short: "Extract skill requirements from a job description",
	Long: `Extract the core and optional skill requirements from a job description.

Skills mentioned near requirement phrases ("must have", "required") are
classified as core; skills near preference phrases ("nice to have",
"preferred") are classified as optional. Unclassified mentions default to
core. The output is the requirement set the analyze command scores against.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(&extractConfig, getConfigFromContext(cmd.Context()))
	},
	RunE: runExtract,
}

var extractConfig common.CommandConfig

func init() {
	extractCmd.Flags().StringVarP(&extractConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	registerFormatCompletion(extractCmd)
}

type extractInput struct {
	JobDescription string
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	tables, err := loadRuleTables(cfg)
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}
	extractor := engine.NewExtractor(tables)

	createInput := func(contents []string) (extractInput, error) {
		if len(contents) != 1 {
			return extractInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return extractInput{JobDescription: contents[0]}, nil
	}

	logDetails := func(input extractInput, cfg common.CommandConfig) {
		logger.Info("Starting skill extraction",
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(ctx context.Context, input extractInput) (types.SkillSet, error) {
		return extractor.Extract(input.JobDescription), nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		extractConfig,
		args,
		createInput,
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract skills: %w", err)
	}
	logger.Info("Skill extraction completed successfully")
	return nil
}
