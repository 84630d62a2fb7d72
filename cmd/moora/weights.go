package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

func weightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Weight utilities",
	}
	cmd.AddCommand(normalizeWeightsCmd())
	return cmd
}

func normalizeWeightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <weight>...",
		Short: "Scale raw weights so they sum to 1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("weight %q must be a number: %w", a, err)
				}
				raw[i] = v
			}

			norm, err := scoring.NormalizeWeights(raw)
			if err != nil {
				return err
			}
			for i, v := range norm {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\t%.6f\n", raw[i], v)
			}
			return nil
		},
	}
}
