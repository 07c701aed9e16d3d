package catalog

import (
	"fmt"
	"sort"

	"github.com/arcanaland/mtgdc/internal/card"
)

// Sets holds every set record keyed by set code.
type Sets struct {
	byCode map[string]card.Set
}

// NewSets indexes sets by code. A repeated code keeps the last record.
func NewSets(sets []card.Set) *Sets {
	byCode := make(map[string]card.Set, len(sets))
	for _, s := range sets {
		byCode[s.Code] = s
	}
	return &Sets{byCode: byCode}
}

// Get returns the set with the given code
func (s *Sets) Get(code string) (card.Set, error) {
	set, ok := s.byCode[code]
	if !ok {
		return card.Set{}, fmt.Errorf("set %q: %w", code, ErrNotFound)
	}
	return set, nil
}

// Codes returns every set code in sorted order
func (s *Sets) Codes() []string {
	codes := make([]string, 0, len(s.byCode))
	for code := range s.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (s *Sets) Len() int {
	return len(s.byCode)
}
