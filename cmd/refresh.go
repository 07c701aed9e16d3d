package cmd

import (
	"fmt"
	"os"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/mtgdc/internal/catalog"
	"github.com/arcanaland/mtgdc/internal/mtgjson"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Download the MTGJSON files if they are missing or stale",
	Long: `Refresh downloads AtomicCards.json.gz and SetList.json.gz into the data
directory when they are missing or older than stale_days.

Use --force to download regardless of age, or --check to only report the
state of the cached files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		check, _ := cmd.Flags().GetBool("check")

		refresher := newRefresher(force)
		targets := []struct {
			kind mtgjson.Kind
			path string
		}{
			{mtgjson.KindSets, catalog.SetsPath(appConfig.DataDir)},
			{mtgjson.KindCards, catalog.CardsPath(appConfig.DataDir)},
		}

		if check {
			for _, target := range targets {
				status, err := refresher.Status(target.path)
				if err != nil {
					return err
				}
				printStatus(target.kind, status)
			}
			return nil
		}

		if err := os.MkdirAll(appConfig.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		for _, target := range targets {
			if err := refresher.EnsureFresh(cmd.Context(), target.kind, target.path); err != nil {
				return err
			}
		}

		fmt.Println("Data files are up to date in", appConfig.DataDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().BoolP("force", "f", false, "Download even if the cached files are fresh")
	refreshCmd.Flags().Bool("check", false, "Only report the state of the cached files")
}

func printStatus(kind mtgjson.Kind, status mtgjson.FileStatus) {
	var state string
	switch {
	case !status.Exists:
		state = colorize.RedString("missing")
	case status.Stale:
		state = colorize.YellowString("stale, %s old", status.Age.Round(time.Hour))
	default:
		state = colorize.GreenString("fresh, %s old", status.Age.Round(time.Minute))
	}
	fmt.Printf("%s %s (%s)\n", label(string(kind)), status.Path, state)
}
