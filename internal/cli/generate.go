package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Achu067/PLANEXA/pkg/pipeline"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	width     float64 // footprint width in meters
	length    float64 // footprint length in meters
	rooms     string  // room spec, e.g. "bedroom:2,bathroom:1"
	floors    int     // number of floors
	style     string  // architectural style
	seed      uint64  // generation seed (0 draws a fresh one)
	formats   string  // comma-separated output formats
	output    string  // output directory
	standards string  // path to a TOML standards override file
	noWindows bool    // skip window generation
	noFurnish bool    // skip furniture placement
	noCache   bool    // bypass the plan cache
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		floors: pipeline.DefaultFloors,
		style:  pipeline.DefaultStyle,
		output: ".",
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a building floor plan",
		Long: `Generate a multi-storey building floor plan and write the rendered
artifacts to the output directory.

Examples:
  planexa generate --width 12 --length 10 --rooms bedroom:2,bathroom:1
  planexa generate --width 15 --length 12 --rooms living:1,kitchen:1,bedroom:3 \
      --floors 2 --style minimalist -f svg,png,pdf --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "W", 0, "footprint width in meters (required)")
	cmd.Flags().Float64VarP(&opts.length, "length", "L", 0, "footprint length in meters (required)")
	cmd.Flags().StringVarP(&opts.rooms, "rooms", "r", "", "rooms as type:count pairs, e.g. bedroom:2,bathroom:1 (required)")
	cmd.Flags().IntVar(&opts.floors, "floors", opts.floors, "number of floors")
	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "style: modern, traditional, minimalist, open_plan")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible layouts (0 = random)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVar(&opts.standards, "standards", "", "TOML file overriding the built-in room standards")
	cmd.Flags().BoolVar(&opts.noWindows, "no-windows", false, "skip window openings")
	cmd.Flags().BoolVar(&opts.noFurnish, "no-furniture", false, "skip furniture placement")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the local cache")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("rooms")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	rooms, err := parseRooms(opts.rooms)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Width:   opts.width,
		Length:  opts.length,
		Rooms:   rooms,
		Floors:  opts.floors,
		Style:   opts.style,
		Seed:    opts.seed,
		Formats: parseFormats(opts.formats),
	}
	if opts.noWindows {
		off := false
		popts.IncludeWindows = &off
	}
	if opts.noFurnish {
		off := false
		popts.IncludeFurniture = &off
	}
	if opts.standards != "" {
		std, err := standards.Load(opts.standards)
		if err != nil {
			return fmt.Errorf("load standards: %w", err)
		}
		popts.Standards = std
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), popts)
	if err != nil {
		printError("%v", err)
		return err
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, name := range sortedNames(result.Artifacts) {
		path := filepath.Join(opts.output, name)
		if err := os.WriteFile(path, result.Artifacts[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	b := result.Building
	printSuccess("Generated %d-floor building", len(b.Floors))
	printStats(b.Metrics.TotalRooms, len(b.Floors), result.CacheInfo.PlanHit)
	printMetrics(b)
	printNewline()
	printKeyValue("seed", fmt.Sprintf("%d", result.Seed))
	printNextStep("Reproduce this layout", fmt.Sprintf("%s generate -W %.0f -L %.0f -r %s --seed %d",
		appName, opts.width, opts.length, opts.rooms, result.Seed))

	return nil
}
