package card

import (
	"encoding/json"
	"strings"
)

// Card represents one MTGJSON atomic card record
type Card struct {
	Name             string            `json:"name"`
	Type             string            `json:"type"`  // Full type line (e.g., "Legendary Creature — Human Wizard")
	Types            []string          `json:"types"` // Card types in printed order (e.g., ["Artifact", "Creature"])
	Legalities       map[string]string `json:"legalities"`
	LeadershipSkills *LeadershipSkills `json:"leadershipSkills,omitempty"`
	FirstPrinting    string            `json:"firstPrinting"`

	// Upstream JSON object exactly as it was decoded
	raw json.RawMessage
}

// LeadershipSkills lists the formats in which a card may lead a deck
type LeadershipSkills struct {
	Brawl       bool `json:"brawl"`
	Commander   bool `json:"commander"`
	Oathbreaker bool `json:"oathbreaker"`
}

// AlchemyPrefix marks digitally rebalanced variants of a card
const AlchemyPrefix = "A-"

// SplitSeparator joins the face names of split and multi-faced cards
const SplitSeparator = " // "

type cardJSON Card

// UnmarshalJSON decodes the known fields and keeps the full upstream object.
func (c *Card) UnmarshalJSON(data []byte) error {
	var decoded cardJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = Card(decoded)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the upstream object when the card was decoded from one.
func (c Card) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	return json.Marshal(cardJSON(c))
}

// IsSplit reports whether the card has several faces joined by SplitSeparator
func (c Card) IsSplit() bool {
	return strings.Contains(c.Name, SplitSeparator)
}

// IsEverCommander reports whether the card can lead a Commander deck at all.
// Alchemy variants never qualify.
func (c Card) IsEverCommander() bool {
	if strings.HasPrefix(c.Name, AlchemyPrefix) {
		return false
	}
	return c.LeadershipSkills != nil && c.LeadershipSkills.Commander
}

// IsCommander reports whether the card can lead a Duel Commander deck.
// A card restricted in duel keeps its leadership skill but loses eligibility.
func (c Card) IsCommander() bool {
	if !c.IsEverCommander() {
		return false
	}
	return c.Legalities["duel"] != "Restricted"
}

// Printings is the print history MTGJSON stores under one canonical name
type Printings []Card

// Current returns the representative printing of a card.
// MTGJSON orders the history so that the first entry is the one to use.
func (p Printings) Current() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[0], true
}
