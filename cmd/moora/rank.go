package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Moora/internal/config"
	"github.com/MikeSquared-Agency/Moora/internal/metrics"
	"github.com/MikeSquared-Agency/Moora/internal/ranking"
	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the alternatives in a YAML file",
		Long: `Rank the alternatives in a YAML file. The file lists alternatives with one
score per criterion and may carry its own criteria; otherwise the configured
criteria are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			explain, _ := cmd.Flags().GetBool("explain")
			asJSON, _ := cmd.Flags().GetBool("json")
			normalize, _ := cmd.Flags().GetBool("normalize-weights")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			m, err := readMatrix(file)
			if err != nil {
				return err
			}
			if normalize {
				// Configured criteria are validated to sum to 1 at load time.
				if m.Criteria == nil {
					return &scoring.ConfigurationError{Reason: "--normalize-weights needs criteria in the alternatives file"}
				}
				if m.Criteria, err = m.Criteria.WithNormalizedWeights(); err != nil {
					return err
				}
			}

			// Logs go to stderr so stdout stays clean for --json.
			logger := cfg.Logging.NewLogger(cmd.ErrOrStderr())
			return runRank(cmd, cfg, m, explain, asJSON, logger)
		},
	}

	cmd.Flags().StringP("file", "f", "", "alternatives file (YAML)")
	cmd.Flags().Bool("explain", false, "print the per-criterion breakdown of every score")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	cmd.Flags().Bool("normalize-weights", false, "rescale the file's criteria weights to sum to 1 before ranking")
	cmd.MarkFlagRequired("file")

	return cmd
}

func readMatrix(path string) (scoring.Matrix, error) {
	var m scoring.Matrix
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read alternatives: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse alternatives: %w", err)
	}
	return m, nil
}

func runRank(cmd *cobra.Command, cfg *config.Config, m scoring.Matrix, explain, asJSON bool, logger *slog.Logger) error {
	engine := scoring.NewEngine(cfg.Scoring.WeightTolerance, cfg.Scoring.FrontierEnabled, logger)
	svc := ranking.NewService(engine, cfg.Criteria, nil, nil, logger)

	req := ranking.Request{Transport: metrics.TransportCLI, Source: "cli", Criteria: m.Criteria, Alternatives: m.Alternatives}
	rep, err := svc.Explain(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if explain {
			return enc.Encode(rep)
		}
		return enc.Encode(rep.Report)
	}

	printResults(out, &rep.Report)
	if explain {
		printBreakdowns(out, rep.Breakdowns)
	}
	return nil
}

func printResults(out io.Writer, rep *ranking.Report) {
	fmt.Fprintf(out, "Run %s\n\n", rep.RunID)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tALTERNATIVE\tSCORE")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", r.Rank, r.Name, r.Score)
	}
	tw.Flush()

	if len(rep.Frontier) > 0 {
		fmt.Fprintf(out, "\nNon-dominated: %s\n", strings.Join(rep.Frontier, ", "))
	}
	fmt.Fprintf(out, "\n%s\n", rep.Summary)
}

func printBreakdowns(out io.Writer, breakdowns []scoring.Breakdown) {
	for _, b := range breakdowns {
		fmt.Fprintf(out, "\n%s (%.4f)\n", b.Name, b.Score)
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  CRITERION\tDIRECTION\tRAW\tNORMALIZED\tWEIGHT\tCONTRIBUTION")
		for _, f := range b.Factors {
			fmt.Fprintf(tw, "  %s\t%s\t%g\t%.4f\t%.2f\t%+.4f\n",
				f.Criterion, f.Direction, f.Raw, f.Normalized, f.Weight, f.Weighted)
		}
		tw.Flush()
	}
}
