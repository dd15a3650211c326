package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/go-cipherchain/internal/config"
	"github.com/askiada/go-cipherchain/internal/logging"
	"github.com/askiada/go-cipherchain/pkg/chain"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "cipherchain",
		Short: "Apply a chain of classical ciphers to a text",
		Long: `cipherchain applies an ordered chain of Vigenère and Caesar ciphers to a text
and prints the output of every step.

A chain is described in a TOML or YAML file:

  text = "HELLO WORLD"

  [[steps]]
  type = "vigenere"
  key  = "KEY"
  mode = "encode"

  [[steps]]
  type  = "caesar"
  shift = 3
  mode  = "encode"

These are teaching ciphers: they offer no security.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newRunCmd(a),
		newVigenereCmd(a),
		newCaesarCmd(a),
		newDescribeCmd(a),
		newDrawCmd(a),
	)

	return rootCmd
}

// loadChain reads a chain file, letting text replace the text it holds.
func (a *app) loadChain(path, text string) (string, chain.Chain, error) {
	if path == "" {
		return "", chain.Chain{}, errors.New("--chain is required")
	}

	file, err := config.Load(path)
	if err != nil {
		return "", chain.Chain{}, err
	}

	chn, err := file.Chain()
	if err != nil {
		return "", chain.Chain{}, errors.Wrapf(err, "invalid chain file %s", path)
	}

	if text != "" {
		file.Text = text
	}

	a.logger.Debug("chain loaded", zap.String("path", path), zap.Int("steps", chn.Len()))

	return file.Text, chn, nil
}

// inputText joins positional arguments, falling back to the --text flag.
func inputText(text string, args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}

	return text
}
