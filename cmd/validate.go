package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mtgdc/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a decklist",
	Long: `Validate checks that every card in a decklist can be found and placed in a
section of the rendered list. It also warns about names that only matched
loosely and cards that are not legal in Duel Commander.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		entries, err := readDecklist(deckPath)
		if err != nil {
			return err
		}

		cat, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		// Create validator and run validation
		v := validator.NewValidator(cat.Cards)
		results := v.Validate(entries)

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Decklist '%s' is valid (%d cards).\n", deckPath, countCards(entries))
		} else {
			fmt.Printf("❌ Decklist '%s' has %d validation errors:\n", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return errors.New("validation failed")
		}
		return nil
	},
}

func countCards(entries map[string]int) int {
	total := 0
	for _, qty := range entries {
		total += qty
	}
	return total
}
