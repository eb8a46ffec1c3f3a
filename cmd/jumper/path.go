package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-jumper/internal/lane"
	"github.com/vovakirdan/lane-jumper/internal/run"
)

var (
	flagPathLength  int
	flagEmptyChance float64
	flagTileSize    float64
	flagCheck       string
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print a generated path",
	Long: `Generate a road the way a run does and print it, one character per
tile: '#' is solid, '_' is a gap. The path is validated: it starts and
ends on solid tiles and never has two gaps in a row.

With --check, the given path is parsed and validated instead.

Examples:
  jumper path
  jumper path --length 20 --seed 7
  jumper path --empty-chance 0.8 --tile-size 40
  jumper path --check "##_#__#"`,
	Args: cobra.NoArgs,
	RunE: runPath,
}

func init() {
	pathCmd.Flags().IntVar(&flagPathLength, "length", run.DefaultRoadLength, "Number of tiles")
	pathCmd.Flags().Float64Var(&flagEmptyChance, "empty-chance", lane.DefaultEmptyChance, "Probability that a free tile is a gap")
	pathCmd.Flags().Float64Var(&flagTileSize, "tile-size", 0, "Also print tile offsets for this tile size")
	pathCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this path instead of generating one")
}

func runPath(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	var p lane.Path
	if flagCheck != "" {
		parsed, err := lane.ParsePath(flagCheck)
		if err != nil {
			return err
		}
		p = parsed
	} else {
		seed := resolveSeed()
		p = lane.NewGenerator(flagEmptyChance).Generate(flagPathLength, rand.New(rand.NewSource(seed)))
		fmt.Fprintf(out, "seed:    %d\n", seed)
	}

	fmt.Fprintf(out, "path:    %s\n", p)
	fmt.Fprintf(out, "length:  %d\n", p.Len())
	fmt.Fprintf(out, "gaps:    %d\n", p.Gaps())

	if flagTileSize > 0 {
		fmt.Fprintf(out, "offsets: %v\n", p.Offsets(flagTileSize))
	}

	if err := p.Validate(); err != nil {
		fmt.Fprintf(out, "valid:   no (%v)\n", err)
		return err
	}
	fmt.Fprintln(out, "valid:   yes")
	return nil
}
