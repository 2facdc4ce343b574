package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/verdict-ml/verdict/internal/idx"
	"github.com/verdict-ml/verdict/internal/tensor"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print an idx file's element type, shape and value range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := idx.ReadFile(afero.NewOsFs(), args[0])
			if err != nil {
				return err
			}
			printTensor(cmd.OutOrStdout(), args[0], raw)
			return nil
		},
	}
}

func printTensor(w io.Writer, path string, raw *tensor.RawTensor) {
	fmt.Fprintf(w, "%s: %s %s, %d elements\n", path, raw.DType(), raw.Shape(), raw.NumElements())

	if raw.DType() != tensor.Float32 {
		return
	}

	vals := raw.AsFloat32()
	lo, hi, sum := vals[0], vals[0], 0.0
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += float64(v)
	}
	fmt.Fprintf(w, "min=%g max=%g mean=%g\n", lo, hi, sum/float64(len(vals)))
}
