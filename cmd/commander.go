package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// commanderCmd represents the commander command group
var commanderCmd = &cobra.Command{
	Use:   "commander",
	Short: "Commander eligibility and command zone names",
	Long:  `Commands answering Duel Commander questions about legendary cards.`,
}

var commanderListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card that can lead a Duel Commander deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		for _, name := range cat.Cards.Commanders() {
			fmt.Println(name)
		}
		return nil
	},
}

var commanderCheckCmd = &cobra.Command{
	Use:   "check [name]",
	Short: "Check whether a card can be a commander",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		c, err := cat.Cards.Resolve(name)
		if err != nil {
			return err
		}

		fmt.Println(label("Card") + colorize.HiWhiteString("%s", c.Name))
		fmt.Println(label("Commander") + yesNo(c.IsEverCommander()))
		fmt.Println(label("Duel commander") + yesNo(c.IsCommander()))
		return nil
	},
}

var commanderZoneCmd = &cobra.Command{
	Use:   "zone [name]...",
	Short: "Print the display name of a command zone",
	Long: `Zone joins the names of one or more commanders into the name used for a
command zone, skipping companions such as sticker sheets and attractions.
Names that cannot be resolved produce "Unknown Command Zone".

Examples:
  mtgdc commander zone "Yuriko, the Tiger's Shadow"
  mtgdc commander zone --join " + " "Minsc & Boo, Timeless Heroes" "Agent of the Iron Throne"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := appConfig.ZoneOptions()
		if cmd.Flags().Changed("join") {
			opts.JoinSymbol, _ = cmd.Flags().GetString("join")
		}
		if cmd.Flags().Changed("exclude") {
			opts.ExcludedTypes, _ = cmd.Flags().GetStringSlice("exclude")
		}

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		fmt.Println(cat.Cards.FormatCommandZone(args, opts))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(commanderCmd)
	commanderCmd.AddCommand(commanderListCmd)
	commanderCmd.AddCommand(commanderCheckCmd)
	commanderCmd.AddCommand(commanderZoneCmd)

	commanderZoneCmd.Flags().String("join", "", "Separator between commander names (default from config)")
	commanderZoneCmd.Flags().StringSlice("exclude", nil, "Card types left out of the name (default from config)")
}
