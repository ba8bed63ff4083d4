package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crimson-sun/castag/internal/pipeline"
)

// outputFlags are shared by the commands that render predictions.
type outputFlags struct {
	format string
	out    string
	append bool
	scores bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "", "report format: text, json, yaml")
	cmd.Flags().StringVar(&o.out, "out", "", "also write predictions as NDJSON to this file")
	cmd.Flags().BoolVar(&o.append, "append", false, "append to the --out file instead of truncating it")
	cmd.Flags().BoolVar(&o.scores, "scores", false, "include raw decision scores")
}

func (o *outputFlags) apply(cmd *cobra.Command, a *app) {
	if cmd.Flags().Changed("format") {
		a.cfg.Output.Format = o.format
	}
	if cmd.Flags().Changed("out") {
		a.cfg.Output.File = o.out
	}
	if cmd.Flags().Changed("append") {
		a.cfg.Output.Append = o.append
	}
	if cmd.Flags().Changed("scores") {
		a.cfg.Output.Scores = o.scores
	}
}

func newTrainCmd(a *app) *cobra.Command {
	var (
		src  string
		test string
		of   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the classifier and evaluate it on held-out items",
		Long: `Fits the classifier on a training CSV or cached dataset, then predicts
labels for every item of the held-out file. A labeled held-out file (.csv or
.pkl) is also scored; a .txt file lists one item per line.

Example:
  castag train -f data.pkl -t test-data.csv --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			of.apply(cmd, a)
			if cmd.Flags().Changed("test") {
				a.cfg.Data.TestFile = test
			}

			p, err := a.newPipeline()
			if err != nil {
				return err
			}
			defer closePipeline(p, &err)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r, err := p.Train(ctx, src, a.cfg.Data.TestFile)
			if err != nil {
				return err
			}
			a.logger.Debug("train finished", zap.String("run", r.RunID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&src, "file", "f", "", "training data (.csv or .pkl)")
	cmd.Flags().StringVarP(&test, "test", "t", "", "held-out items (default from config: test-data.csv)")
	of.register(cmd)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPredictCmd(a *app) *cobra.Command {
	var (
		src string
		of  outputFlags
	)

	cmd := &cobra.Command{
		Use:   "predict [text...]",
		Short: "Train the classifier and label the given texts",
		Long: `Fits the classifier on a training CSV or cached dataset and prints the
labels predicted for each argument.

Example:
  castag predict -f data.csv "paint a mural" "beach cleanup"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			of.apply(cmd, a)

			p, err := a.newPipeline()
			if err != nil {
				return err
			}
			defer closePipeline(p, &err)

			_, err = p.Predict(cmd.Context(), src, args)
			return err
		},
	}

	cmd.Flags().StringVarP(&src, "file", "f", "", "training data (.csv or .pkl)")
	of.register(cmd)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// closePipeline flushes the outputs, reporting the close error only when
// the command itself succeeded.
func closePipeline(p *pipeline.Pipeline, err *error) {
	if cerr := p.Close(); *err == nil {
		*err = cerr
	}
}
