package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/verdict-ml/verdict/internal/idx"
	"github.com/verdict-ml/verdict/internal/tensor"
)

// newEncodeCmd builds golden idx files from a JSON array of numbers,
// for preparing reference data without the original toolchain.
func newEncodeCmd() *cobra.Command {
	var (
		shapeStr string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "encode VALUES.json",
		Short: "Write a float32 idx file from a JSON array of numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read values: %w", err)
			}

			var vals []float32
			if err := json.Unmarshal(data, &vals); err != nil {
				return fmt.Errorf("parse values: %w", err)
			}

			shape, err := parseShape(shapeStr, len(vals))
			if err != nil {
				return err
			}

			t, err := tensor.FromSlice(vals, shape)
			if err != nil {
				return err
			}
			return idx.WriteFile(afero.NewOsFs(), outPath, t.Raw())
		},
	}

	cmd.Flags().StringVar(&shapeStr, "shape", "", "Comma-separated dimensions (default: flat)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "out.idx", "Output idx file")

	return cmd
}

// parseShape turns "2,3" into Shape{2, 3}. Empty means a flat vector
// covering all values.
func parseShape(s string, numVals int) (tensor.Shape, error) {
	if s == "" {
		return tensor.Shape{numVals}, nil
	}

	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, len(parts))
	for i, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape[i] = dim
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
