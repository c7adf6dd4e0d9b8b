// Command wvdec decompresses a wavepack stream back into a grayscale PGM
// image.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lhcong/wavepack/codec"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wvdec:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "wvdec",
		Short: "Decompress a wavepack stream into a PGM image",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if inPath != "" && inPath != "-" {
				f, err := os.Open(inPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			out := os.Stdout
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return codec.Decode(out, in, os.Stderr)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "-", "input stream path, - for stdin")
	cmd.Flags().StringVar(&outPath, "out", "-", "output PGM path, - for stdout")
	return cmd
}
