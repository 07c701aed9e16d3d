package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mtgdc/internal/config"
)

// Whether the config file was on disk before this run created a default one
var configExisted bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mtgdc configuration file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, statErr := os.Stat(configPath())
		configExisted = statErr == nil

		err := loadAppConfig()
		if err != nil && cmd.Name() == "init" {
			// init --force rewrites a file that does not load
			if force, _ := cmd.Flags().GetBool("force"); force {
				return setupLogger("info")
			}
		}
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath()

		if force {
			if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Config file reset to defaults at:", path)
			return nil
		}

		// Loading the config already wrote the defaults when there was no file
		if configExisted {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Use --force to reset it to the defaults.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Show prints the configuration after environment variables and flags are applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appConfig.Encode(cmd.OutOrStdout())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file with the defaults")
}
