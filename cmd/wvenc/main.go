// Command wvenc compresses a grayscale PGM image into a wavepack stream.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lhcong/wavepack/codec"
	"github.com/lhcong/wavepack/internal/intstream"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wvenc:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		quality    float64
		inPath     string
		outPath    string
		backendStr string
	)

	cmd := &cobra.Command{
		Use:   "wvenc",
		Short: "Compress a PGM image with the pyramidal wavelet codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			if quality < 0 {
				return fmt.Errorf("quality must be non-negative, got %v", quality)
			}
			backend, err := parseBackend(backendStr)
			if err != nil {
				return err
			}

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

			return codec.Encode(out, in, codec.Options{Quality: quality, Backend: backend, Diag: os.Stderr})
		},
	}

	cmd.Flags().Float64Var(&quality, "quality", 0, "quantization quality; 0 approaches lossless")
	cmd.Flags().StringVar(&inPath, "in", "-", "input PGM path, - for stdin")
	cmd.Flags().StringVar(&outPath, "out", "-", "output stream path, - for stdout")
	cmd.Flags().StringVar(&backendStr, "backend", "shannonfano", "entropy backend: fixed or shannonfano")
	return cmd
}

func parseBackend(s string) (intstream.Backend, error) {
	switch s {
	case "fixed":
		return intstream.Fixed, nil
	case "shannonfano":
		return intstream.ShannonFano, nil
	default:
		return 0, fmt.Errorf("unknown backend %q, want fixed or shannonfano", s)
	}
}
