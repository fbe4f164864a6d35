// SPDX-License-Identifier: GPL-2.0-only

// Command topdecc is a small command-line front end over the lzss codec and
// its container header: compress a file, decompress one, or inspect a
// compressed file's token stream.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	fs     afero.Fs = afero.NewOsFs()
	logger          = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "topdecc",
		Short:         "Compress, decompress, and inspect topdec-style LZSS containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompressCmd(), newDecompressCmd(), newInspectCmd())
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.ErrOrStderr() != nil {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
		}
		return nil
	}
	return root
}

func wrapErr(verb string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("topdecc: %s: %w", verb, err)
}
