package main

import (
	"fmt"

	"gearsum/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// partsCmd sums every number adjacent to a symbol
var partsCmd = &cobra.Command{
	Use:   "parts [schematic]",
	Short: "Sum the part numbers of an engine schematic",
	Long: `Prints the sum of every part number: a number adjacent (diagonals
included) to any symbol, where a symbol is anything other than a letter,
a digit or '.'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParts,
}

func runParts(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(cmd, args, logging.CategoryParts)
	if err != nil {
		return err
	}

	total, err := s.PartNumberSum()
	if err != nil {
		return fmt.Errorf("part number sum failed: %w", err)
	}
	logger.Info("Part numbers summed", zap.Int("total", total))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
	return err
}
