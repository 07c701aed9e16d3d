package cmd

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Look up sets",
}

var setShowCmd = &cobra.Command{
	Use:   "show [code]",
	Short: "Display information about a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		s, err := cat.Sets.Get(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(os.Stdout, s)
		}

		fmt.Println()
		fmt.Println("  " + label("Set") + colorize.HiWhiteString("%s", s.Name))
		fmt.Println("  " + label("Code") + colorize.HiWhiteString("%s", s.Code))
		fmt.Println("  " + label("Type") + colorize.HiWhiteString("%s", s.Type))
		fmt.Println("  " + label("Released") + colorize.HiWhiteString("%s", s.ReleaseDate))
		fmt.Println()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(setCmd)
	setCmd.AddCommand(setShowCmd)

	setShowCmd.Flags().Bool("json", false, "Print the MTGJSON record instead")
}
