package main

import (
	"fmt"

	"gearsum/cmd/gearsum/ui"
	"gearsum/internal/logging"
	"gearsum/internal/schematic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// gearsCmd lists every gear with its parts and ratio
var gearsCmd = &cobra.Command{
	Use:   "gears [schematic]",
	Short: "List the gears of an engine schematic",
	Long: `Prints a table of every gear (position, both part numbers and ratio)
followed by the total of all ratios.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGears,
}

func runGears(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(cmd, args, logging.CategorySchematic)
	if err != nil {
		return err
	}

	var gears []schematic.Gear
	total := 0
	for g, err := range s.Gears() {
		if err != nil {
			return fmt.Errorf("gear search failed: %w", err)
		}
		gears = append(gears, g)
		total += g.Ratio
	}

	logging.For(logger, cfg.Logging, logging.CategoryReport).Debug("Rendering gear report",
		zap.Int("gears", len(gears)),
		zap.String("theme", cfg.Report.Theme))

	styles := ui.NewStyles(ui.ThemeFor(cfg.Report.Theme))
	return ui.WriteGears(cmd.OutOrStdout(), styles, gears, total)
}
