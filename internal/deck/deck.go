package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arcanaland/mtgdc/internal/card"
	"github.com/arcanaland/mtgdc/internal/catalog"
)

// Resolver looks up the current printing of a card by name
type Resolver interface {
	Resolve(name string) (card.Card, error)
}

// Formatter renders decklists grouped by primary card type
type Formatter struct {
	cards Resolver
}

// NewFormatter creates a formatter resolving names through cards
func NewFormatter(cards Resolver) *Formatter {
	return &Formatter{cards: cards}
}

// typeRanks orders card types for primary type selection.
// Ranks 8 and 9 are unused.
var typeRanks = map[string]int{
	"Land":         0,
	"Creature":     1,
	"Planeswalker": 2,
	"Instant":      3,
	"Sorcery":      4,
	"Artifact":     5,
	"Enchantment":  6,
	"Battle":       7,
	"Tribal":       10,
}

// sections lists the rendered groups in output order. Tribal has none.
var sections = []string{
	"Land",
	"Creature",
	"Planeswalker",
	"Instant",
	"Sorcery",
	"Artifact",
	"Enchantment",
	"Battle",
}

// PrimaryType returns the lowest ranked entry of types
func PrimaryType(types []string) (string, error) {
	if len(types) == 0 {
		return "", fmt.Errorf("no card types: %w", catalog.ErrFormat)
	}

	primary := ""
	best := -1
	for _, t := range types {
		rank, ok := typeRanks[t]
		if !ok {
			return "", fmt.Errorf("unknown card type %q: %w", t, catalog.ErrFormat)
		}
		if best < 0 || rank < best {
			primary, best = t, rank
		}
	}
	return primary, nil
}

// sectionLabel pluralizes a section header
func sectionLabel(cardType string) string {
	if cardType == "Sorcery" {
		return "Sorceries"
	}
	return cardType + "s"
}

// Render formats a decklist of card name to quantity.
//
// Each non-empty section is rendered as
//
//	\n// Creatures (12)\n1 Card A\n11 Card B\n
//
// with lines sorted as whole strings, so "10 Forest" sorts after "1 Sol Ring".
func (f *Formatter) Render(entries map[string]int) (string, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make(map[string][]string)
	counts := make(map[string]int)

	for _, name := range names {
		qty := entries[name]

		c, err := f.cards.Resolve(name)
		if err != nil {
			return "", err
		}

		primary, err := PrimaryType(c.Types)
		if err != nil {
			return "", fmt.Errorf("card %q: %w", name, err)
		}
		if primary == "Tribal" {
			return "", fmt.Errorf("card %q has no section for type Tribal: %w", name, catalog.ErrFormat)
		}

		lines[primary] = append(lines[primary], fmt.Sprintf("%d %s", qty, name))
		counts[primary] += qty
	}

	var b strings.Builder
	for _, section := range sections {
		sectionLines := lines[section]
		if len(sectionLines) == 0 {
			continue
		}
		sort.Strings(sectionLines)

		fmt.Fprintf(&b, "\n// %s (%d)\n", sectionLabel(section), counts[section])
		b.WriteString(strings.Join(sectionLines, "\n"))
		b.WriteString("\n")
	}

	return b.String(), nil
}
