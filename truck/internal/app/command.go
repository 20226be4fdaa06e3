package app

import "github.com/spf13/cobra"

const (
	flagCapacity   = "capacity"
	flagManifest   = "manifest"
	flagMinQuality = "min-quality"
	flagMaxQuality = "max-quality"
)

// NewCommand builds the truck root command. Flags that are left unset fall
// back to the environment and then to interactive prompts.
func NewCommand() *cobra.Command {
	var (
		capacity   float64
		manifest   string
		minQuality float64
		maxQuality float64
	)

	cmd := &cobra.Command{
		Use:          "truck",
		Short:        "Load a coffee truck, sort the cargo and filter it by quality",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := Options{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			}

			flags := cmd.Flags()
			if flags.Changed(flagCapacity) {
				opts.MaxVolume = &capacity
			}
			if flags.Changed(flagManifest) {
				opts.ManifestPath = &manifest
			}
			if flags.Changed(flagMinQuality) && flags.Changed(flagMaxQuality) {
				opts.MinQuality = &minQuality
				opts.MaxQuality = &maxQuality
			}

			a, err := New(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	cmd.Flags().Float64Var(&capacity, flagCapacity, 0, "truck maximum volume in kg (skips the prompt)")
	cmd.Flags().StringVar(&manifest, flagManifest, "", "cargo manifest file (.yaml, .yml, .toml or .json)")
	cmd.Flags().Float64Var(&minQuality, flagMinQuality, 0, "lower bound of the quality filter")
	cmd.Flags().Float64Var(&maxQuality, flagMaxQuality, 0, "upper bound of the quality filter")
	cmd.MarkFlagsRequiredTogether(flagMinQuality, flagMaxQuality)

	return cmd
}
