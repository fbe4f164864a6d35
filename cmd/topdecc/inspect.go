// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keelwerk/lzss/container"
	"github.com/keelwerk/lzss/internal/diag"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <in>",
		Short: "Print a token-by-token trace of a compressed container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := afero.ReadFile(fs, args[0])
			if err != nil {
				return wrapErr("inspect", err)
			}

			h, err := container.ReadHeader(bytes.NewReader(raw))
			if err != nil {
				return wrapErr("inspect", err)
			}
			if err := h.Validate(); err != nil {
				return wrapErr("inspect", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "type=0x%02x compressed=%d uncompressed=%d\n",
				byte(h.Type), h.CompressedLength, h.UncompressedLength)

			tokens, err := diag.Trace(h.Type, raw[9:], int(h.UncompressedLength))
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok.String())
			}
			if err != nil {
				return wrapErr("inspect", err)
			}
			return nil
		},
	}
	return cmd
}
