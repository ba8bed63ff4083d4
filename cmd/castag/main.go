package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crimson-sun/castag/internal/config"
	"github.com/crimson-sun/castag/internal/engine"
	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/logging"
	"github.com/crimson-sun/castag/internal/output"
	"github.com/crimson-sun/castag/internal/output/file"
	"github.com/crimson-sun/castag/internal/output/multi"
	"github.com/crimson-sun/castag/internal/output/stdout"
	"github.com/crimson-sun/castag/internal/pipeline"
)

// app carries state shared by all subcommands.
type app struct {
	stdout io.Writer

	// Global flags
	configPath string
	logLevel   string
	seed       int64

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(w io.Writer) *cobra.Command {
	a := &app{stdout: w, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "castag",
		Short: "castag - multi-label activity classifier",
		Long: `castag tags short activity descriptions with Creativity, Action and
Service labels.

Training data is a headerless CSV of "name,creativity,action,service" rows.
Extract caches it as a dataset file; train and predict accept either form.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.Int64Var(&a.seed, "seed", 0, "seed for the SVM solver's visiting order")

	root.AddCommand(newExtractCmd(a), newTrainCmd(a), newPredictCmd(a))
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
	} else {
		a.cfg = config.Load()
	}

	if cmd.Flags().Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("seed") {
		a.cfg.Engine.Seed = a.seed
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.logger, err = logging.Init(a.cfg.Log.Level, a.cfg.Log.JSON)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) newEngine() *engine.Engine {
	e := a.cfg.Engine
	return engine.New(
		engine.WithSeed(e.Seed),
		engine.WithC(e.C),
		engine.WithTolerance(e.Tolerance),
		engine.WithMaxIter(e.MaxIter),
		engine.WithParallel(e.Parallel),
		engine.WithLogger(a.logger),
	)
}

// newOutput builds the configured outputs: always the terminal, plus an
// NDJSON file when one is set.
func (a *app) newOutput() (output.Output, error) {
	enc, err := output.ParseEncoding(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	tax, err := taxonomy.FromNames(a.cfg.Output.Categories)
	if err != nil {
		return nil, err
	}

	term := stdout.New(a.stdout, enc, tax)
	if a.cfg.Output.File == "" {
		return term, nil
	}
	var opts []file.Option
	if a.cfg.Output.Append {
		opts = append(opts, file.WithAppend())
	}
	f, err := file.New(a.cfg.Output.File, tax, opts...)
	if err != nil {
		return nil, err
	}
	return multi.New(term, f), nil
}

func (a *app) newPipeline() (*pipeline.Pipeline, error) {
	out, err := a.newOutput()
	if err != nil {
		return nil, err
	}
	return pipeline.New(a.newEngine(), out, a.logger,
		pipeline.WithDatasetName(a.cfg.Data.DatasetName),
		pipeline.WithScores(a.cfg.Output.Scores),
	), nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "castag:", err)
		os.Exit(1)
	}
}
