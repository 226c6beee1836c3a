package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tiwe0/cmdparse/internal/config"
	"github.com/tiwe0/cmdparse/internal/docstore"
	"github.com/tiwe0/cmdparse/internal/platform/gemini"
	"github.com/tiwe0/cmdparse/internal/platform/logger"
	"github.com/tiwe0/cmdparse/internal/task"
)

var runFlags struct {
	inputPath   string
	outputPath  string
	concurrency int
	model       string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch extraction over a commands file",
	Long: `Run reads the input JSON array of documentation strings, extracts one
structured record per string, and writes the aggregated records.

The Gemini API key is read from the CMDPARSE_LLM_GEMINI_API_KEY environment
variable; a .env file in the working directory is loaded first if present.
The run either produces a complete output file or fails listing every item
that could not be parsed.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.inputPath, "input", "i", "", "Input JSON array of documentation strings (default: from config)")
	f.StringVarP(&runFlags.outputPath, "output", "o", "", "Output path for the parsed records (default: from config)")
	f.IntVar(&runFlags.concurrency, "concurrency", 0, "Max concurrent extraction calls (default: from config)")
	f.StringVar(&runFlags.model, "model", "", "Gemini model name (default: from config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	// A .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	log := logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor, err := gemini.NewExtractor(ctx, log, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	texts, err := docstore.LoadTexts(cfg.Run.InputPath)
	if err != nil {
		return err
	}
	log.Info("loaded command documentation",
		"path", cfg.Run.InputPath,
		"count", len(texts))

	orch := task.New(extractor, task.Config{
		ConcurrencyLimit: cfg.Run.ConcurrencyLimit,
		MaxAttempts:      cfg.Run.MaxAttempts,
		BackoffBase:      cfg.Run.BackoffBase,
		BackoffUnit:      cfg.Run.BackoffUnit,
		PacingDelay:      cfg.Run.PacingDelay,
	}, log)
	orch.SetMetrics(task.NewMetrics(prometheus.DefaultRegisterer))

	records, err := orch.Run(ctx, texts)
	if err != nil {
		var runErr *task.RunError
		if errors.As(err, &runErr) {
			for _, f := range runErr.Failures {
				log.Error("item could not be parsed",
					"position", f.Index,
					"attempts", f.Attempts,
					"error", f.Last)
			}
		}
		return err
	}

	if err := docstore.WriteRecords(cfg.Run.OutputPath, records); err != nil {
		return err
	}
	log.Info("wrote parsed commands",
		"path", cfg.Run.OutputPath,
		"count", len(records))
	return nil
}

// applyFlagOverrides lets explicit flags win over config and environment.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if runFlags.inputPath != "" {
		cfg.Run.InputPath = runFlags.inputPath
	}
	if runFlags.outputPath != "" {
		cfg.Run.OutputPath = runFlags.outputPath
	}
	if cmd.Flags().Changed("concurrency") && runFlags.concurrency > 0 {
		cfg.Run.ConcurrencyLimit = runFlags.concurrency
	}
	if runFlags.model != "" {
		cfg.LLM.ModelName = runFlags.model
	}
}
