package catalog

import (
	"sort"
	"strings"
)

const (
	// UnknownCard is the placeholder callers use for an unidentified commander slot
	UnknownCard = "Unknown Card"

	// UnknownCommandZone is returned when any member of a command zone cannot be resolved
	UnknownCommandZone = "Unknown Command Zone"
)

// ZoneOptions controls how a command zone is rendered.
type ZoneOptions struct {
	JoinSymbol    string
	ExcludedTypes []string // Substrings of the type line that hide a card (e.g., "Attraction")
}

// DefaultZoneOptions joins with "++" and hides stickers and attractions.
func DefaultZoneOptions() ZoneOptions {
	return ZoneOptions{
		JoinSymbol:    "++",
		ExcludedTypes: []string{"Stickers", "Attraction"},
	}
}

// FormatCommandZone renders the commanders of a deck as one sorted string.
//
// UnknownCard entries are dropped before resolution. If any other name fails
// to resolve the result is UnknownCommandZone, never a partial zone.
func (c *Cards) FormatCommandZone(commanders []string, opts ZoneOptions) string {
	var kept []string
	for _, name := range commanders {
		if name == UnknownCard {
			continue
		}

		current, err := c.Resolve(name)
		if err != nil {
			c.logger.Debug("Command zone member not found", "name", name)
			return UnknownCommandZone
		}

		if hasAnySubstring(current.Type, opts.ExcludedTypes) {
			continue
		}
		kept = append(kept, name)
	}

	sort.Strings(kept)
	return strings.Join(kept, opts.JoinSymbol)
}

func hasAnySubstring(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
