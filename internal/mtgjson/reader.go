package mtgjson

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"

	"github.com/arcanaland/mtgdc/internal/card"
)

// File names used for the cached bulk files
const (
	AtomicCardsFile = "AtomicCards.json.gz"
	SetListFile     = "SetList.json.gz"
)

type atomicCardsFile struct {
	Data map[string]card.Printings `json:"data"`
}

type setListFile struct {
	Data []card.Set `json:"data"`
}

// ReadCards decodes a gzipped AtomicCards file into print histories keyed by canonical name.
func ReadCards(path string) (map[string]card.Printings, error) {
	var file atomicCardsFile
	if err := decodeGzipJSON(path, &file); err != nil {
		return nil, err
	}
	if file.Data == nil {
		return nil, fmt.Errorf("%s has no card data", path)
	}
	return file.Data, nil
}

// ReadSets decodes a gzipped SetList file.
func ReadSets(path string) ([]card.Set, error) {
	var file setListFile
	if err := decodeGzipJSON(path, &file); err != nil {
		return nil, err
	}
	if file.Data == nil {
		return nil, fmt.Errorf("%s has no set data", path)
	}
	return file.Data, nil
}

func decodeGzipJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
	}
	defer func() { _ = gr.Close() }()

	if err := json.NewDecoder(gr).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
