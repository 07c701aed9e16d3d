package catalog

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/mtgdc/internal/card"
)

func commander() *card.LeadershipSkills {
	return &card.LeadershipSkills{Commander: true}
}

// testPrintings is a small slice of AtomicCards covering the lookup edge cases.
func testPrintings() map[string]card.Printings {
	one := func(c card.Card) card.Printings { return card.Printings{c} }

	return map[string]card.Printings{
		"Sol Ring": one(card.Card{
			Name: "Sol Ring", Type: "Artifact", Types: []string{"Artifact"}, FirstPrinting: "LEA",
			Legalities: map[string]string{"duel": "Banned", "commander": "Legal"},
		}),
		"Forest": one(card.Card{
			Name: "Forest", Type: "Basic Land — Forest", Types: []string{"Land"}, FirstPrinting: "LEA",
			Legalities: map[string]string{"duel": "Legal"},
		}),
		"Counterspell": one(card.Card{
			Name: "Counterspell", Type: "Instant", Types: []string{"Instant"}, FirstPrinting: "LEA",
			Legalities: map[string]string{"duel": "Legal"},
		}),
		"Jötun Grunt": one(card.Card{
			Name: "Jötun Grunt", Type: "Creature — Giant Soldier", Types: []string{"Creature"}, FirstPrinting: "CSP",
		}),
		"Minsc & Boo, Timeless Heroes": one(card.Card{
			Name: "Minsc & Boo, Timeless Heroes", Type: "Legendary Creature — Human Hamster",
			Types: []string{"Creature"}, FirstPrinting: "HBG", LeadershipSkills: commander(),
			Legalities: map[string]string{"duel": "Banned"},
		}),
		"Fire // Ice": {
			{Name: "Fire // Ice", Type: "Instant", Types: []string{"Instant"}, FirstPrinting: "APC"},
			{Name: "Fire // Ice", Type: "Instant", Types: []string{"Instant"}, FirstPrinting: "APC"},
		},
		"Start // Finish": one(card.Card{
			Name: "Start // Finish", Type: "Instant", Types: []string{"Instant"}, FirstPrinting: "AKH",
		}),
		"Stand // Deliver": one(card.Card{
			Name: "Stand // Deliver", Type: "Instant", Types: []string{"Instant"}, FirstPrinting: "INV",
		}),
		"Yuriko, the Tiger's Shadow": one(card.Card{
			Name: "Yuriko, the Tiger's Shadow", Type: "Legendary Creature — Human Ninja",
			Types: []string{"Creature"}, FirstPrinting: "C18", LeadershipSkills: commander(),
			Legalities: map[string]string{"duel": "Legal", "commander": "Legal"},
		}),
		"Lurrus of the Dream-Den": one(card.Card{
			Name: "Lurrus of the Dream-Den", Type: "Legendary Creature — Cat Nightmare",
			Types: []string{"Creature"}, FirstPrinting: "IKO", LeadershipSkills: commander(),
			Legalities: map[string]string{"duel": "Restricted"},
		}),
		"A-Sheoldred": one(card.Card{
			Name: "A-Sheoldred", Type: "Legendary Creature — Phyrexian Praetor",
			Types: []string{"Creature"}, FirstPrinting: "YSNC", LeadershipSkills: commander(),
			Legalities: map[string]string{"duel": "Legal"},
		}),
		"Agent of the Iron Throne": one(card.Card{
			Name: "Agent of the Iron Throne", Type: "Legendary Enchantment — Background",
			Types: []string{"Enchantment"}, FirstPrinting: "CLB", LeadershipSkills: commander(),
			Legalities: map[string]string{"duel": "Legal"},
		}),
		"Ancestral / Hot Dog / Minotaur": one(card.Card{
			Name: "Ancestral / Hot Dog / Minotaur", Type: "Stickers", Types: []string{"Stickers"}, FirstPrinting: "UNF",
		}),
		"Balloon Stand": one(card.Card{
			Name: "Balloon Stand", Type: "Artifact — Attraction", Types: []string{"Artifact"}, FirstPrinting: "UNF",
		}),
		"Kitesail Larcenist": one(card.Card{
			Name: "Kitesail Larcenist", Type: "Creature — Human Pirate", Types: []string{"Creature"}, FirstPrinting: "NOPE",
		}),
		"Lightning Bolt": one(card.Card{
			Name: "Lightning Bolt", Type: "Instant", Types: []string{"Instant"}, FirstPrinting: "BAD",
		}),
	}
}

func testSets() *Sets {
	return NewSets([]card.Set{
		{Code: "LEA", Name: "Limited Edition Alpha", ReleaseDate: "1993-08-05"},
		{Code: "APC", Name: "Apocalypse", ReleaseDate: "2001-06-04"},
		{Code: "C18", Name: "Commander 2018", ReleaseDate: "2018-08-10"},
		{Code: "BAD", Name: "Broken", ReleaseDate: "August 1993"},
	})
}

func newTestCards(t *testing.T) *Cards {
	t.Helper()
	return NewCards(testPrintings(), testSets(), log.New(io.Discard))
}
