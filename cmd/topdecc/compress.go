// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keelwerk/lzss"
	"github.com/keelwerk/lzss/container"
)

func newCompressCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "compress <in> <out>",
		Short: "Compress a file into a type-tagged container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(typeFlag)
			if err != nil {
				return wrapErr("compress", err)
			}

			input, err := afero.ReadFile(fs, args[0])
			if err != nil {
				return wrapErr("compress", err)
			}

			h, payload, err := container.EncodeContainer(t, input)
			if err != nil {
				return wrapErr("compress", err)
			}

			out, err := fs.Create(args[1])
			if err != nil {
				return wrapErr("compress", err)
			}
			defer out.Close()

			if _, err := h.WriteTo(out); err != nil {
				return wrapErr("compress", err)
			}
			if _, err := out.Write(payload); err != nil {
				return wrapErr("compress", err)
			}

			logger.Info().
				Str("in", args[0]).
				Str("out", args[1]).
				Uint32("compressed", h.CompressedLength).
				Uint32("uncompressed", h.UncompressedLength).
				Msg("compressed")
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "0x83", "compression type: 0x81 or 0x83")
	return cmd
}

func parseType(s string) (lzss.Type, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	t := lzss.Type(v)
	if t != lzss.TypeSelf && t != lzss.TypeSelfRuns {
		return 0, lzss.ErrUnsupportedType
	}
	return t, nil
}
