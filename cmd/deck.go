package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mtgdc/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Work with decklists",
	Long: `Commands for working with plain text decklists. A decklist has one card per
line, optionally prefixed by a quantity ("4 Forest" or "4x Forest"). Blank
lines and lines starting with // or # are ignored.`,
}

// deckRenderCmd represents the deck render command
var deckRenderCmd = &cobra.Command{
	Use:   "render [path]",
	Short: "Print a decklist grouped by card type",
	Long: `Render prints the decklist in sections (Lands, Creatures, Instants, ...)
with the card count of each section. Use - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := readDecklist(args[0])
		if err != nil {
			return err
		}

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		out, err := deck.NewFormatter(cat.Cards).Render(entries)
		if err != nil {
			return fmt.Errorf("error rendering decklist: %w", err)
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckRenderCmd)
}

// readDecklist parses the decklist at path, or standard input for "-"
func readDecklist(path string) (map[string]int, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("decklist not found: %s", path)
			}
			return nil, fmt.Errorf("error opening decklist: %w", err)
		}
		defer func() { _ = file.Close() }()
		r = file
	}

	entries, err := deck.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error reading decklist %s: %w", path, err)
	}
	return entries, nil
}
