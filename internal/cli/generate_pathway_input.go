package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaptation-pathways/pathwaymap/pkg/generator"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwayinput"
)

type generatePathwayInputOpts struct {
	xpositionsPath string
	sequencesPath  string
}

// generatePathwayInputCommand runs the generate -> evaluate -> filter ->
// materialize pipeline over a TOML run configuration and writes the two
// pathway-input text artifacts.
func (c *CLI) generatePathwayInputCommand() *cobra.Command {
	opts := generatePathwayInputOpts{
		xpositionsPath: "xpositions.txt",
		sequencesPath:  "sequences.txt",
	}

	cmd := &cobra.Command{
		Use:   "generate-pathway-input <config.toml>",
		Short: "Generate candidate sequences and write pathway-input artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGeneratePathwayInput(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.xpositionsPath, "xpositions", opts.xpositionsPath, "output path for xpositions.txt")
	cmd.Flags().StringVar(&opts.sequencesPath, "sequences", opts.sequencesPath, "output path for sequences.txt")

	return cmd
}

func (c *CLI) runGeneratePathwayInput(ctx context.Context, configPath string, opts *generatePathwayInputOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Infof("Reading run configuration from %s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := pathwayinput.ReadRunConfig(f)
	if err != nil {
		return err
	}

	actions := cfg.Actions()
	constraints, err := cfg.Constraints()
	if err != nil {
		return err
	}

	sequences := generator.GenerateAll(actions, constraints)
	logger.Infof("Generated %d candidate sequences", len(sequences))

	generator.Evaluate(sequences, cfg.TippingPointMetric, cfg.PlanningEnd)

	sampler := generator.NewSeededSampler(cfg.ShortlistSeed)
	generator.Filter(sequences, constraints.MetricFilters, cfg.ShortlistCap, sampler)

	result, err := pathwayinput.Materialize(sequences, cfg.TippingPointMetric, cfg.EndCurrentSystem, cfg.Scenario())
	if err != nil {
		return err
	}
	logger.Infof("Materialized %d instances across %d sequences", len(result.Instances), len(result.Sequences))

	if err := pathwayinput.WriteXPositions(result.XPositions, opts.xpositionsPath); err != nil {
		return err
	}
	if err := pathwayinput.WriteSequences(result.Sequences, opts.sequencesPath); err != nil {
		return err
	}

	prog.done("Wrote " + opts.xpositionsPath + " and " + opts.sequencesPath)
	return nil
}
