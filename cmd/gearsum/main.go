package main

import (
	"fmt"
	"io"
	"os"

	"gearsum/internal/config"
	"gearsum/internal/logging"
	"gearsum/internal/schematic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gearsum [schematic]",
	Short: "Sum the gear ratios of an engine schematic",
	Long: `Reads an engine schematic, one row per line, and prints the sum of all
gear ratios. A gear is a '*' adjacent (diagonals included) to exactly two
numbers; its ratio is the product of those numbers.

The schematic is read from the file argument, or from stdin when the
argument is omitted or "-".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		base, err := logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger, _ = logging.WithRunID(base)
		logging.For(logger, cfg.Logging, logging.CategoryBoot).Debug("Configuration loaded",
			zap.String("config", configPath),
			zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGearSum,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")

	rootCmd.AddCommand(partsCmd)
	rootCmd.AddCommand(gearsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGearSum prints the sum of every gear ratio in the schematic
func runGearSum(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(cmd, args, logging.CategorySchematic)
	if err != nil {
		return err
	}

	total, err := s.GearRatioSum()
	if err != nil {
		return fmt.Errorf("gear ratio sum failed: %w", err)
	}
	logger.Info("Gear ratios summed", zap.Int("total", total))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
	return err
}

// openInput resolves the optional schematic argument.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open schematic: %w", err)
	}
	return f, args[0], nil
}

// loadSchematic reads the schematic and attaches the logger for category.
func loadSchematic(cmd *cobra.Command, args []string, category logging.Category) (*schematic.Schematic, error) {
	r, source, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	logging.For(logger, cfg.Logging, logging.CategoryInput).Debug("Reading schematic",
		zap.String("source", source),
		zap.Int("max_line_bytes", cfg.Input.MaxLineBytes))

	s, err := schematic.Read(r, cfg.Input.MaxLineBytes,
		schematic.WithLogger(logging.For(logger, cfg.Logging, category)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return s, nil
}
