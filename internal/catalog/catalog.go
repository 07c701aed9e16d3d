package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/mtgdc/internal/mtgjson"
)

// Refresher brings a cached bulk file up to date.
type Refresher interface {
	EnsureFresh(ctx context.Context, kind mtgjson.Kind, path string) error
}

// Catalog is the card and set data for one process run.
// Build it once with Open and hand it to whatever needs lookups.
type Catalog struct {
	Cards *Cards
	Sets  *Sets
}

// Options configures Open.
type Options struct {
	// DataDir holds the cached bulk files
	DataDir string

	// Refresher is consulted for both files before loading. Nil skips refreshing.
	Refresher Refresher

	Logger *log.Logger
}

// CardsPath returns the cached AtomicCards path inside dataDir
func CardsPath(dataDir string) string {
	return filepath.Join(dataDir, mtgjson.AtomicCardsFile)
}

// SetsPath returns the cached SetList path inside dataDir
func SetsPath(dataDir string) string {
	return filepath.Join(dataDir, mtgjson.SetListFile)
}

// Open refreshes the cached files as needed and loads them.
//
// A failed refresh is tolerated when an older copy of the file exists.
func Open(ctx context.Context, opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	setsPath := SetsPath(opts.DataDir)
	cardsPath := CardsPath(opts.DataDir)

	if opts.Refresher != nil {
		if err := refresh(ctx, opts.Refresher, mtgjson.KindSets, setsPath, logger); err != nil {
			return nil, err
		}
		if err := refresh(ctx, opts.Refresher, mtgjson.KindCards, cardsPath, logger); err != nil {
			return nil, err
		}
	}

	setList, err := mtgjson.ReadSets(setsPath)
	if err != nil {
		return nil, fmt.Errorf("error loading sets: %w", err)
	}
	sets := NewSets(setList)

	printings, err := mtgjson.ReadCards(cardsPath)
	if err != nil {
		return nil, fmt.Errorf("error loading cards: %w", err)
	}
	cards := NewCards(printings, sets, logger)

	logger.Debug("Catalog loaded", "cards", cards.Len(), "sets", sets.Len(), "commanders", len(cards.commanders))

	return &Catalog{Cards: cards, Sets: sets}, nil
}

func refresh(ctx context.Context, r Refresher, kind mtgjson.Kind, path string, logger *log.Logger) error {
	err := r.EnsureFresh(ctx, kind, path)
	if err == nil {
		return nil
	}

	if _, statErr := os.Stat(path); statErr == nil {
		logger.Warn("Refresh failed, using cached file", "kind", kind, "err", err)
		return nil
	}
	return err
}
