package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-cipherchain/pkg/chain"
	"github.com/askiada/go-cipherchain/pkg/chain/drawer"
)

func newDrawCmd(a *app) *cobra.Command {
	var chainPath, outPath string

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Write a chain file as a Graphviz DOT graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, chn, err := a.loadChain(chainPath, "")
			if err != nil {
				return err
			}

			wrt := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return errors.Wrapf(err, "unable to create file %s", outPath)
				}
				defer file.Close()

				wrt = file
			}

			_, err = chain.Execute(text, chn, chain.WithOptions(drawer.ChainDrawer(drawer.NewDOTDrawer(), nil, wrt)))
			if err != nil {
				return errors.Wrap(err, "unable to draw chain")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&chainPath, "chain", "c", "", "Chain file (.toml, .yaml or .yml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, stdout when empty")

	return cmd
}
