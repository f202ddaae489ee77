package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/defense-econ/internal/config"
	"github.com/napolitain/defense-econ/internal/game"
	"github.com/napolitain/defense-econ/internal/loader"
	"github.com/napolitain/defense-econ/internal/models"
)

var (
	configFile string
	dataDir    string
	nationName string
	noColor    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "econsim",
		Short: "Turn-based national economy simulator",
		Long: `Run a single nation economy turn by turn: research technologies,
build industrial capacity and keep public opinion in check while crisis
awareness grows with your industry.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML settings file")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Path to data directory (overrides settings)")
	rootCmd.PersistentFlags().StringVarP(&nationName, "nation", "n", "", "Player nation name (overrides settings)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newPlayCmd(), newSimulateCmd(), newCatalogCmd(), newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSettings resolves settings from file and environment, then applies flags
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configFile)
	if err != nil {
		return config.Settings{}, err
	}
	if dataDir != "" {
		settings.DataDir = dataDir
	}
	if nationName != "" {
		settings.NationName = nationName
	}
	return settings, settings.Validate()
}

// newLogger routes slog records through a charmbracelet handler on stderr
func newLogger(level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
		Prefix:          "econsim",
	})
	return slog.New(handler)
}

// newGame loads settings and catalogs and builds the engine and initial state
func newGame() (*game.Engine, *models.GameState, config.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, settings, err
	}
	catalogs, err := loader.LoadCatalogs(settings.DataDir)
	if err != nil {
		return nil, nil, settings, fmt.Errorf("failed to load catalogs: %w", err)
	}
	engine := game.NewEngine(newLogger(settings.LogLevel))
	return engine, game.NewState(catalogs, settings), settings, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved settings as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			out, err := settings.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
