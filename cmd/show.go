package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/mtgdc/internal/card"
	"github.com/arcanaland/mtgdc/internal/catalog"
)

// cardCmd represents the card command group
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Look up cards",
	Long:  `Commands for looking up cards by name. Names are matched exactly, then ignoring accents, case and punctuation, then as the front face of a split card.`,
}

var cardShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display information about a card",
	Long: `Show displays the current printing of a card, the date it was first printed
and whether it can be used as a commander.

Examples:
  mtgdc card show "Sol Ring"
  mtgdc card show jotun grunt
  mtgdc card show --json Fire`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		asJSON, _ := cmd.Flags().GetBool("json")

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		c, err := cat.Cards.Resolve(name)
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(os.Stdout, c)
		}

		displayCard(cat.Cards, c)
		return nil
	},
}

var cardDumpCmd = &cobra.Command{
	Use:   "dump [name]",
	Short: "Write the MTGJSON record of a card to a file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		out, _ := cmd.Flags().GetString("out")

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		c, err := cat.Cards.Resolve(name)
		if err != nil {
			return err
		}

		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		if err := writeJSONAndClose(file, c); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		fmt.Printf("Wrote %s to %s\n", c.Name, out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardShowCmd)
	cardCmd.AddCommand(cardDumpCmd)

	cardShowCmd.Flags().Bool("json", false, "Print the MTGJSON record instead")
	cardDumpCmd.Flags().StringP("out", "o", "", "File to write")
	_ = cardDumpCmd.MarkFlagRequired("out")
}

// writeJSON pretty-prints v with four space indentation, leaving non-ASCII
// and HTML characters unescaped
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	return encoder.Encode(v)
}

// writeJSONAndClose writes v to wc and reports the error from Close, where
// failed buffered writes show up
func writeJSONAndClose(wc io.WriteCloser, v any) error {
	if err := writeJSON(wc, v); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

// separatorWidth returns the width of horizontal rules, capped to the terminal
func separatorWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return min(width, 60)
}

func yesNo(b bool) string {
	if b {
		return colorize.GreenString("yes")
	}
	return colorize.RedString("no")
}

func label(s string) string {
	return colorize.CyanString("%-15s", s+":")
}

// displayCard prints the card and its commander status
func displayCard(cards *catalog.Cards, c card.Card) {
	var infoLines []string

	infoLines = append(infoLines, label("Card")+colorize.HiWhiteString("%s", c.Name))
	infoLines = append(infoLines, label("Type")+colorize.HiWhiteString("%s", c.Type))

	if date, err := cards.FirstPrintingDate(c.Name); err == nil {
		infoLines = append(infoLines, label("First printed")+
			colorize.HiWhiteString("%s (%s)", c.FirstPrinting, date.Format(card.ReleaseDateLayout)))
	} else {
		infoLines = append(infoLines, label("First printed")+colorize.YellowString("%s (unknown date)", c.FirstPrinting))
	}

	infoLines = append(infoLines, label("Commander")+yesNo(c.IsEverCommander()))
	infoLines = append(infoLines, label("Duel commander")+yesNo(c.IsCommander()))

	formats := make([]string, 0, len(c.Legalities))
	for format := range c.Legalities {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	rule := strings.Repeat("─", separatorWidth())

	fmt.Println()
	for _, line := range infoLines {
		fmt.Println("  " + line)
	}

	if len(formats) > 0 {
		fmt.Println("  " + rule)
		for _, format := range formats {
			fmt.Println("  " + label(format) + legalityString(c.Legalities[format]))
		}
	}
	fmt.Println()
}

func legalityString(legality string) string {
	switch legality {
	case "Legal":
		return colorize.GreenString(legality)
	case "Restricted":
		return colorize.YellowString(legality)
	default:
		return colorize.RedString(legality)
	}
}
