package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vectlab/permute/experiment"
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "permute",
		Short:         "Explore how coordinate permutations affect cosine similarity",
		Long: `Generates a pair of random dense vectors and reports their cosine
similarity before and after sort, shared random, and independent random
permutations of their coordinates.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runExperiment,
	}
	cmd.Flags().IntP("dimension", "d", experiment.DefaultDimension, "Vector dimensionality")
	cmd.Flags().Int64P("seed", "s", 0, "Random seed (0 uses the current time)")
	cmd.Flags().BoolP("verbose", "v", false, "Log run parameters and timing")
	return cmd
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	dim, _ := cmd.Flags().GetInt("dimension")
	seed, _ := cmd.Flags().GetInt64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = dev
	}
	defer func() { _ = logger.Sync() }()

	start := time.Now()
	report, err := experiment.Run(experiment.Config{Dimension: dim, Seed: seed})
	if err != nil {
		return err
	}
	logger.Info("experiment complete",
		zap.Int("dimension", dim),
		zap.Int64("seed", seed),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}
