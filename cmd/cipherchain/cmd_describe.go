package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/askiada/go-cipherchain/pkg/chain"
)

func newDescribeCmd(a *app) *cobra.Command {
	var chainPath string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "List the steps of a chain file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, chn, err := a.loadChain(chainPath, "")
			if err != nil {
				return err
			}

			describe(cmd.OutOrStdout(), chn)

			return nil
		},
	}

	cmd.Flags().StringVarP(&chainPath, "chain", "c", "", "Chain file (.toml, .yaml or .yml)")

	return cmd
}

func describe(out io.Writer, chn chain.Chain) {
	fmt.Fprintln(out, "Cipher Chain:")

	for idx, step := range chn.Steps() {
		fmt.Fprintf(out, "%d. %s\n", idx+1, chain.Describe(step))
	}
}
