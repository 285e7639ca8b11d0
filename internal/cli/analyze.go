package cli

import (
	"context"
	"fmt"

	"github.com/Shrinivas-go/ats-backend/internal/common"
	"github.com/Shrinivas-go/ats-backend/internal/engine"
	"github.com/Shrinivas-go/ats-backend/internal/resume"
	"github.com/Shrinivas-go/ats-backend/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Score a resume against a job description using the deterministic
analysis pipeline.

The analysis includes:
- Skill requirement extraction from the job description
- Weighted core/optional skill matching
- Resume quality scoring (structure, contact info, action verbs, metrics)
- Blended final score with a relevance band and improvement suggestions`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(&analyzeConfig, getConfigFromContext(cmd.Context()))
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	registerFormatCompletion(analyzeCmd)
}

type analyzeInput struct {
	Resume         string
	JobDescription string
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	tables, err := loadRuleTables(cfg)
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}
	analyzer := engine.NewAnalyzer(tables)

	createInput := func(contents []string) (analyzeInput, error) {
		if len(contents) != 2 {
			return analyzeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return analyzeInput{
			Resume:         contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input analyzeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input analyzeInput) (types.AnalysisResult, error) {
		parsed := resume.Parse(input.Resume)
		return analyzer.Analyze(parsed, input.JobDescription), nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
