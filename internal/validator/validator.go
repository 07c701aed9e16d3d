package validator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arcanaland/mtgdc/internal/catalog"
	"github.com/arcanaland/mtgdc/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a decklist against the card catalog
type Validator struct {
	Cards   deck.Resolver
	Results ValidationResults
}

func NewValidator(cards deck.Resolver) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

// Validate reports problems with entries. Errors would make the decklist fail
// to render; warnings are worth a look.
func (v *Validator) Validate(entries map[string]int) ValidationResults {
	v.Results = ValidationResults{}

	for name, qty := range entries {
		v.validateEntry(name, qty)
	}

	sort.Strings(v.Results.Errors)
	sort.Strings(v.Results.Warnings)
	return v.Results
}

func (v *Validator) validateEntry(name string, qty int) {
	if qty <= 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("invalid quantity %d for %s", qty, name))
	}

	c, err := v.Cards.Resolve(name)
	if errors.Is(err, catalog.ErrNotFound) {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card not found: %s", name))
		return
	}
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("error resolving %s: %v", name, err))
		return
	}

	// Check the card has a section in the rendered list
	primary, err := deck.PrimaryType(c.Types)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: %v", name, err))
	} else if primary == "Tribal" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: Tribal cards have no decklist section", name))
	}

	if c.Name != name {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s matched %s", name, c.Name))
	}

	switch legality := c.Legalities["duel"]; legality {
	case "Legal", "Restricted":
	case "":
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s is not legal in duel", c.Name))
	default:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s is %s in duel", c.Name, legality))
	}
}
