package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/mtgdc/internal/card"
)

// Cards resolves card names to records.
//
// Lookups always use the current printing of a card (see card.Printings.Current).
// Cards is read-only after NewCards returns.
type Cards struct {
	printings map[string]card.Printings
	names     []string

	// normalized name -> canonical name
	index map[string]string

	// split cards from index, sorted by normalized key
	splits []indexEntry

	commanders []string
	sets       *Sets
	logger     *log.Logger
}

type indexEntry struct {
	key  string
	name string
}

// NewCards builds the name index over printings. sets is used by FirstPrintingDate.
//
// Canonical names are indexed in sorted order. When two names normalize to the
// same key the later one wins; each such collision is logged at debug level.
func NewCards(printings map[string]card.Printings, sets *Sets, logger *log.Logger) *Cards {
	if logger == nil {
		logger = log.Default()
	}
	if sets == nil {
		sets = NewSets(nil)
	}

	names := make([]string, 0, len(printings))
	for name := range printings {
		names = append(names, name)
	}
	sort.Strings(names)

	index := make(map[string]string, len(names))
	for _, name := range names {
		key := Normalize(name)
		if previous, ok := index[key]; ok {
			logger.Debug("Normalized name collision", "key", key, "dropped", previous, "kept", name)
		}
		index[key] = name
	}

	var splits []indexEntry
	for key, name := range index {
		if strings.Contains(name, card.SplitSeparator) {
			splits = append(splits, indexEntry{key: key, name: name})
		}
	}
	sort.Slice(splits, func(i, j int) bool {
		return splits[i].key < splits[j].key
	})

	c := &Cards{
		printings: printings,
		names:     names,
		index:     index,
		splits:    splits,
		sets:      sets,
		logger:    logger,
	}

	for _, name := range names {
		if current, ok := printings[name].Current(); ok && current.IsCommander() {
			c.commanders = append(c.commanders, name)
		}
	}

	return c
}

// Resolve maps a user supplied card name to its current printing.
//
// The name is tried as an exact canonical name first, then as a normalized
// name with "&amp;" removed, and finally as the prefix of exactly one split
// card. Anything else, including a prefix shared by several split cards,
// returns ErrNotFound.
func (c *Cards) Resolve(rawName string) (card.Card, error) {
	name, ok := c.canonicalName(rawName)
	if !ok {
		return card.Card{}, fmt.Errorf("card %q: %w", rawName, ErrNotFound)
	}

	current, ok := c.printings[name].Current()
	if !ok {
		return card.Card{}, fmt.Errorf("card %q has no printings: %w", name, ErrNotFound)
	}
	return current, nil
}

// Printings returns the full print history of the card rawName resolves to.
func (c *Cards) Printings(rawName string) (card.Printings, error) {
	name, ok := c.canonicalName(rawName)
	if !ok {
		return nil, fmt.Errorf("card %q: %w", rawName, ErrNotFound)
	}
	return c.printings[name], nil
}

func (c *Cards) canonicalName(rawName string) (string, bool) {
	if _, ok := c.printings[rawName]; ok {
		return rawName, true
	}

	key := Normalize(strings.ReplaceAll(rawName, "&amp;", ""))
	if key == "" {
		return "", false
	}

	if name, ok := c.index[key]; ok {
		return name, true
	}

	// All keys sharing the prefix are contiguous in the sorted slice
	start := sort.Search(len(c.splits), func(i int) bool {
		return c.splits[i].key >= key
	})
	var candidates []string
	for i := start; i < len(c.splits) && strings.HasPrefix(c.splits[i].key, key); i++ {
		candidates = append(candidates, c.splits[i].name)
	}

	if len(candidates) != 1 {
		if len(candidates) > 1 {
			c.logger.Debug("Ambiguous split card prefix", "query", rawName, "candidates", candidates)
		}
		return "", false
	}
	return candidates[0], true
}

// FirstPrintingDate returns the release date of the set a card was first printed in.
func (c *Cards) FirstPrintingDate(name string) (time.Time, error) {
	current, err := c.Resolve(name)
	if err != nil {
		return time.Time{}, err
	}

	set, err := c.sets.Get(current.FirstPrinting)
	if err != nil {
		return time.Time{}, fmt.Errorf("first printing of %q: %w", current.Name, err)
	}

	date, err := time.Parse(card.ReleaseDateLayout, set.ReleaseDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("release date %q of set %s: %w", set.ReleaseDate, set.Code, ErrFormat)
	}
	return date, nil
}

// IsEverCommander resolves name and reports whether it can lead a Commander deck.
func (c *Cards) IsEverCommander(name string) (bool, error) {
	current, err := c.Resolve(name)
	if err != nil {
		return false, err
	}
	return current.IsEverCommander(), nil
}

// IsCommander resolves name and reports whether it can lead a Duel Commander deck.
func (c *Cards) IsCommander(name string) (bool, error) {
	current, err := c.Resolve(name)
	if err != nil {
		return false, err
	}
	return current.IsCommander(), nil
}

// Commanders returns the sorted canonical names of every eligible commander.
func (c *Cards) Commanders() []string {
	return append([]string(nil), c.commanders...)
}

// Names returns every canonical name in sorted order.
func (c *Cards) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Cards) Len() int {
	return len(c.names)
}
