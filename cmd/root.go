package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arcanaland/mtgdc/internal/catalog"
	"github.com/arcanaland/mtgdc/internal/config"
	"github.com/arcanaland/mtgdc/internal/mtgjson"
)

var (
	cfgFile string
	dataDir string
	verbose bool

	// Set by the root command before any subcommand runs
	appConfig *config.Config
	logger    *log.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mtgdc",
	Short: "Look up Magic: The Gathering cards and format decklists",
	Long: `mtgdc looks up cards and sets from the MTGJSON bulk files, answers
commander eligibility questions for Duel Commander and formats decklists.

The bulk files are cached locally and downloaded again once they are older
than the configured number of days (7 by default).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadAppConfig()
	},
}

// configPath returns the --config value or the default location
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.GetConfigFilePath()
}

// loadAppConfig reads .env and the config file, then builds the logger
func loadAppConfig() error {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	appConfig = cfg

	return setupLogger(cfg.LogLevel)
}

func setupLogger(levelName string) error {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log_level %q: %w", levelName, err)
	}
	if verbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "mtgdc",
	})
	return nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/mtgdc/config.toml)")
	RootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the cached MTGJSON files")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func newRefresher(force bool) *mtgjson.Refresher {
	return mtgjson.NewRefresher(mtgjson.RefresherOptions{
		CardsURL: appConfig.CardsURL,
		SetsURL:  appConfig.SetsURL,
		StaleAge: appConfig.StaleAge(),
		Force:    force,
		Logger:   logger,
	})
}

// openCatalog refreshes the cached files if needed and loads them
func openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	return catalog.Open(cmd.Context(), catalog.Options{
		DataDir:   appConfig.DataDir,
		Refresher: newRefresher(false),
		Logger:    logger,
	})
}
