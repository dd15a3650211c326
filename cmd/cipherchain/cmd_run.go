package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/go-cipherchain/internal/config"
	"github.com/askiada/go-cipherchain/internal/logging"
	"github.com/askiada/go-cipherchain/pkg/chain"
	"github.com/askiada/go-cipherchain/pkg/chain/drawer"
	"github.com/askiada/go-cipherchain/pkg/chain/measure"
	"github.com/askiada/go-cipherchain/pkg/chain/model"
)

type runFlags struct {
	chainPath   string
	text        string
	dotPath     string
	savePath    string
	measure     bool
	concurrency int
}

func newRunCmd(a *app) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [TEXT...]",
		Short: "Execute a chain file and print the output of every step",
		Long: `Execute a chain file and print the output of every step.

Without arguments the text comes from --text, then from the chain file.
Every argument is otherwise executed as its own input, concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.chainPath, "chain", "c", "", "Chain file (.toml, .yaml or .yml)")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Text to transform, replaces the text of the chain file")
	cmd.Flags().StringVar(&flags.dotPath, "dot", "", "Write the chain as a Graphviz DOT file")
	cmd.Flags().StringVar(&flags.savePath, "save", "", "Save the chain and its text to another chain file")
	cmd.Flags().BoolVar(&flags.measure, "measure", false, "Measure how long every step takes")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 4, "Inputs processed at the same time when several are given")

	return cmd
}

func (a *app) run(ctx context.Context, out io.Writer, flags *runFlags, args []string) error {
	text, chn, err := a.loadChain(flags.chainPath, flags.text)
	if err != nil {
		return err
	}

	texts := args
	if len(texts) == 0 {
		texts = []string{text}
	}

	opts := []model.ChainOption{logging.ChainOption(a.logger)}

	var msr *measure.DefaultMeasure
	if flags.measure {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.ChainMeasure(msr))
	}

	if flags.dotPath != "" {
		dotFile, err := os.Create(flags.dotPath)
		if err != nil {
			return errors.Wrapf(err, "unable to create file %s", flags.dotPath)
		}
		defer dotFile.Close()

		var drawMeasure measure.Measure
		if msr != nil {
			drawMeasure = msr
		}

		opts = append(opts, drawer.ChainDrawer(drawer.NewDOTDrawer(), drawMeasure, dotFile))
	}

	results, err := chain.ExecuteBatch(ctx, texts, chn,
		chain.WithConcurrency(flags.concurrency), chain.WithOptions(opts...))
	if err != nil {
		return errors.Wrap(err, "unable to execute chain")
	}

	for idx, res := range results {
		if idx > 0 {
			fmt.Fprintln(out)
		}

		printResult(out, texts[idx], res)
	}

	if msr != nil {
		a.logMeasure(chn, msr)
	}

	if flags.savePath != "" {
		err := config.Save(flags.savePath, config.FromChain(texts[0], chn))
		if err != nil {
			return err
		}

		a.logger.Info("chain saved", zap.String("path", flags.savePath))
	}

	return nil
}

func printResult(out io.Writer, text string, res chain.Result) {
	fmt.Fprintf(out, "Original Text: %s\n", text)

	for idx, step := range res {
		fmt.Fprintf(out, "Step %d: %s\n", idx+1, step)
	}
}

func (a *app) logMeasure(chn chain.Chain, msr measure.Measure) {
	for idx := range chn.Steps() {
		name := fmt.Sprintf("step %d", idx+1)

		mt := msr.GetMetric(name)
		if mt == nil {
			continue
		}

		a.logger.Info("step timing",
			zap.String("step", name),
			zap.Int64("runs", mt.Count()),
			zap.Duration("avg", mt.AVGDuration()),
		)
	}

	if mt := msr.GetMetric(model.EndStep.Name); mt != nil {
		a.logger.Info("chain timing", zap.Duration("total", mt.GetTotalDuration()))
	}
}
