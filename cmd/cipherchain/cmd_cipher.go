package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/go-cipherchain/pkg/cipher"
)

func directionFlag(decode bool) cipher.Direction {
	if decode {
		return cipher.Decode
	}

	return cipher.Encode
}

func newVigenereCmd(a *app) *cobra.Command {
	var (
		key    string
		text   string
		decode bool
	)

	cmd := &cobra.Command{
		Use:   "vigenere [TEXT...]",
		Short: "Encode or decode a text with the Vigenère cipher",
		Example: `  cipherchain vigenere --key KEY HELLO WORLD
  cipherchain vigenere --key KEY --decode "RIJVS UYVJN"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := directionFlag(decode)

			out, err := cipher.Vigenere(inputText(text, args), key, direction)
			if err != nil {
				return err
			}

			a.logger.Debug("vigenere applied", zap.String("direction", direction.String()), zap.Int("length", len(out)))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Keyword, letters A-Z only; empty leaves the text unchanged")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to transform when no argument is given")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode instead of encode")

	return cmd
}

func newCaesarCmd(a *app) *cobra.Command {
	var (
		shift   int
		letters string
		text    string
		decode  bool
	)

	cmd := &cobra.Command{
		Use:   "caesar [TEXT...]",
		Short: "Encode or decode a text with the Caesar cipher over a custom alphabet",
		Example: `  cipherchain caesar --shift 3 HELLO
  cipherchain caesar --shift 1 --letters abc --decode cab`,
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := directionFlag(decode)
			alphabet := cipher.Alphabet(letters)

			if alphabet.HasDuplicates() {
				a.logger.Warn("alphabet has duplicated characters, decoding is ambiguous", zap.String("letters", letters))
			}

			out := cipher.Caesar(inputText(text, args), shift, alphabet, direction)

			a.logger.Debug("caesar applied", zap.String("direction", direction.String()), zap.Int("shift", shift))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().IntVarP(&shift, "shift", "s", 3, "Shift, any integer")
	cmd.Flags().StringVarP(&letters, "letters", "l", string(cipher.LatinUpper), "Ordered alphabet; empty leaves the text unchanged")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to transform when no argument is given")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode instead of encode")

	return cmd
}
