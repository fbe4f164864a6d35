// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"bytes"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keelwerk/lzss/container"
)

func newDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress <in> [out]",
		Short: "Decompress a type-tagged container",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out := in + ".dec"
			if len(args) == 2 {
				out = args[1]
			}

			raw, err := afero.ReadFile(fs, in)
			if err != nil {
				return wrapErr("decompress", err)
			}

			h, err := container.ReadHeader(bytes.NewReader(raw))
			if err != nil {
				return wrapErr("decompress", err)
			}
			payload := raw[9:]

			decoded, err := container.DecodeContainer(h, payload)
			if err != nil {
				return wrapErr("decompress", err)
			}
			if uint32(len(decoded)) != h.UncompressedLength {
				logger.Warn().
					Str("in", in).
					Uint32("declared", h.UncompressedLength).
					Int("actual", len(decoded)).
					Msg("decoded length mismatch")
			}

			if err := afero.WriteFile(fs, out, decoded, 0o644); err != nil {
				return wrapErr("decompress", err)
			}

			logger.Info().Str("in", in).Str("out", out).Msg("decompressed")
			return nil
		},
	}
	return cmd
}
