// trackgen generates 3D-printable toy-track connector geometry.
package main

import (
	"fmt"
	"os"

	"github.com/chazu/trackgen/pkg/track"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string

	logger  *zap.Logger
	catalog track.Catalog
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trackgen",
	Short: "Parametric toy-track connector generator",
	Long: `trackgen builds manufacturable connector geometry for wooden-railway
and trackmaster style toy track: straight segments, male plugs, and female
socket cutters, exported as binary STL.

Dimensions come from a built-in catalog; pass --config to override any of
them with a YAML file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup initializes logging and loads the dimensional catalog before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	catalog = track.DefaultCatalog()
	if configPath != "" {
		catalog, err = track.LoadCatalog(configPath)
		if err != nil {
			return err
		}
		logger.Debug("Loaded catalog overrides", zap.String("path", configPath))
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML catalog override file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
